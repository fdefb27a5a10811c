package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Ready(t *testing.T) {
	ok := NewHealthService(pingerFunc(func(context.Context) error { return nil }), logger.Nop())
	assert.NoError(t, ok.Ready(context.Background()))

	down := NewHealthService(pingerFunc(func(context.Context) error {
		return fmt.Errorf("%w: connection refused", store.ErrStorageUnavailable)
	}), logger.Nop())
	assert.ErrorIs(t, down.Ready(context.Background()), store.ErrStorageUnavailable)
}

func TestStorages_PingWithoutDB(t *testing.T) {
	var s store.Storages
	assert.ErrorIs(t, s.Ping(context.Background()), store.ErrStorageUnavailable)
}
