package pipedrivedomain

import "github.com/go-playground/validator/v10"

// Page é o envelope de uma página de coleção da API v1 do Pipedrive
type Page[T any] struct {
	Success        bool           `json:"success"`
	Data           []T            `json:"data"`
	Error          string         `json:"error,omitempty"`
	AdditionalData AdditionalData `json:"additional_data"`
}

type AdditionalData struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Start                 int  `json:"start"`
	Limit                 int  `json:"limit"`
	MoreItemsInCollection bool `json:"more_items_in_collection"`
	NextStart             int  `json:"next_start,omitempty"`
}

// HasMore indica se o servidor tem mais itens depois desta página
func (p Page[T]) HasMore() bool {
	return p.AdditionalData.Pagination != nil && p.AdditionalData.Pagination.MoreItemsInCollection
}

// ErrorResponse representa o corpo de erro da API do Pipedrive
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorInfo string `json:"error_info,omitempty"`
	ErrorCode int    `json:"errorCode,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate verifica os campos obrigatórios de um registro recebido do CRM
func Validate(record any) error {
	return validate.Struct(record)
}
