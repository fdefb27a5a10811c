package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Pinger is satisfied by *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

func (s *healthService) Ready(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Ready").Msg("storage is not reachable")
		return err
	}
	return nil
}
