// Package cache guarda listas de valores distintos (categorias, marcas)
// no Redis para aliviar o banco no caminho de leitura.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type ListCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// Get devolve (nil, false) em miss ou erro; o caller cai para o banco.
func (c *ListCache) Get(ctx context.Context, key string) ([]string, bool) {
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var values []string
	if err := json.Unmarshal([]byte(val), &values); err != nil {
		return nil, false
	}
	return values, true
}

// Set grava com TTL; falha de cache não é propagada.
func (c *ListCache) Set(ctx context.Context, key string, values []string) {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	b, err := json.Marshal(values)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, b, ttl)
}
