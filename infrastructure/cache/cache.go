package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// DefaultTTL é usado quando Set recebe ttl <= 0 e a configuração não define outro
const DefaultTTL = 5 * time.Minute

// Cache guarda valores por chave até a expiração. Um ttl <= 0 em Set usa o TTL padrão
// da instância. Clear sem chaves remove tudo.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (T, bool)
	Set(ctx context.Context, key string, value T, ttl time.Duration)
	Clear(ctx context.Context, keys ...string)
}

// New cria o cache do driver configurado
func New[T any](cfg *config.Config) (Cache[T], error) {
	switch cfg.Cache.Driver {
	case "", config.CacheDriverMemory:
		return NewMemory[T](cfg.Cache.TTL), nil
	case config.CacheDriverRedis:
		return NewRedis[T](cfg.Cache.RedisURL, cfg.Cache.TTL)
	default:
		return nil, fmt.Errorf("driver de cache desconhecido: %s", cfg.Cache.Driver)
	}
}
