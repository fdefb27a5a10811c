package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(ui UI, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{
		ui:      ui,
		workers: workers,
		logger:  logger,
	}
}

// Run blocks until the UI returns. Quitting from the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(ctx)
	}()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)

	cancel()
	wg.Wait()

	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
