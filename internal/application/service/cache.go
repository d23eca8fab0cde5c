package service

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// PageCache stores rendered pages by key. Get returns ErrCacheMiss for
// unknown keys.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, page []byte) error
}
