package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageAuth  = "auth"
	pageVault = "vault"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) opens the vault page when a session starts and drops it when the
// session ends
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	services  *service.ClientServices
	copier    Copier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	pages   map[string]tea.Model
	current string

	quitByUser    bool
	showBuildInfo bool
}

func NewRootModel(ctx context.Context, services *service.ClientServices, copier Copier, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	return RootModel{
		ctx:       ctx,
		services:  services,
		copier:    copier,
		buildInfo: buildInfo,
		logger:    logger,
		pages: map[string]tea.Model{
			pageAuth: NewAuthModel(ctx, services.AuthService),
		},
		current: pageAuth,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}
		r.current = msg.Page
		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.pages[r.current].Init()

	case sessionStartedMsg:
		r.logger.Info().Str("user_id", msg.session.UserID).Msg("session started")
		vault := NewVaultModel(r.ctx, r.services.SessionService, r.copier, msg.session, r.logger)
		r.pages[pageVault] = vault
		r.current = pageVault
		return r, vault.Init()

	case sessionEndedMsg:
		r.logger.Info().Str("reason", msg.notice).Msg("session ended")
		delete(r.pages, pageVault)
		r.current = pageAuth
		auth, cmd := r.pages[pageAuth].Update(noticeMsg{text: msg.notice})
		r.pages[pageAuth] = auth
		return r, cmd
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("GO-PASS-VAULT", "", "")
	}
	return page.View()
}
