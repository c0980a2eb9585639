package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss lo devuelve Get cuando la clave no existe o expiró.
var ErrCacheMiss = errors.New("cache miss")

// Cache puerto de caché clave-valor con TTL. La implementación Redis es la
// principal; existe una variante no-op para correr sin Redis.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
