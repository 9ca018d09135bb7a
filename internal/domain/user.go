package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Operator é o único usuário com acesso ao dashboard quando a autenticação está habilitada
type Operator struct {
	Email        string
	PasswordHash string
}

type Claims struct {
	UserEmail string `json:"email"`
	jwt.RegisteredClaims
}
