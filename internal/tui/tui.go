package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// Copier puts a value on the clipboard for a limited time.
type Copier interface {
	Copy(value string) error
	TTL() time.Duration
}

type TUI struct {
	services  *service.ClientServices
	copier    Copier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, copier Copier, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		copier:    copier,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the login screen and the vault until the user quits or ctx is
// done. A quit by the user is reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.copier, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
