package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// keyPrefix isola as chaves do dashboard dentro de um Redis compartilhado
const keyPrefix = "sales-dashboard:"

// RedisCache guarda os valores como JSON e delega a expiração ao próprio Redis.
// Falhas de comunicação são logadas e tratadas como ausência do valor.
type RedisCache[T any] struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func NewRedis[T any](redisURL string, defaultTTL time.Duration) (*RedisCache[T], error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "cache: REDIS_URL inválida")
	}

	return NewRedisWithClient[T](redis.NewClient(opt), defaultTTL), nil
}

func NewRedisWithClient[T any](client *redis.Client, defaultTTL time.Duration) *RedisCache[T] {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &RedisCache[T]{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Ping verifica a conexão com o Redis
func (c *RedisCache[T]) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache[T]) Get(ctx context.Context, key string) (T, bool) {
	var value T

	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("key", key).Warn("cache: erro ao ler do redis")
		}
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: valor inválido no redis")
		return value, false
	}

	return value, true
}

func (c *RedisCache[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("cache: erro ao serializar valor")
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache: erro ao gravar no redis")
	}
}

func (c *RedisCache[T]) Clear(ctx context.Context, keys ...string) {
	if len(keys) > 0 {
		prefixed := make([]string, 0, len(keys))
		for _, key := range keys {
			prefixed = append(prefixed, keyPrefix+key)
		}
		if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
			logrus.WithError(err).Warn("cache: erro ao remover chaves do redis")
		}
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logrus.WithError(err).WithField("key", iter.Val()).Warn("cache: erro ao remover chave do redis")
		}
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("cache: erro ao percorrer chaves do redis")
	}
}
