package cache

import (
	"context"
	"time"

	"github.com/gastrosmart/gastrosmart-api/internal/application/ports"
)

var _ ports.Cache = (*NoopCache)(nil)

// NoopCache implementación nula del puerto Cache: todo Get es un miss.
// Se usa cuando Redis no está configurado o no responde al arrancar, para que
// la app funcione igual (sin caché).
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(ctx context.Context, key string) (string, error) {
	return "", ports.ErrCacheMiss
}

func (NoopCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}
