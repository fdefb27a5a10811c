package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyAlt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText feeds s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

type fakeCopier struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (c *fakeCopier) Copy(value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, value)
	return nil
}

func (c *fakeCopier) TTL() time.Duration { return 15 * time.Second }

var testSession = models.Session{
	Email:         "alice@example.com",
	UserID:        "user-1",
	Token:         "token",
	EncryptionKey: make([]byte, 32),
}

var (
	day     = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	records = []models.VaultRecord{
		{ID: "e1", Title: "bank", Username: "alice", Password: "pw-bank", URL: "https://bank.example", CreatedAt: day},
		{ID: "e2", Title: "Mail", Username: "alice@mail", Password: "pw-mail", CreatedAt: day.Add(time.Hour)},
		{ID: "e3", Title: "apple", Username: "a.smith", Password: "pw-apple", CreatedAt: day.Add(2 * time.Hour)},
	}
)

// newSessionMock returns a session service mock whose Sort and Search use
// the real implementation.
func newSessionMock(t *testing.T) *mock.MockClientSessionService {
	t.Helper()
	ctrl := gomock.NewController(t)
	real := service.NewClientSessionService(nil, nil, "en", logger.Nop())

	m := mock.NewMockClientSessionService(ctrl)
	m.EXPECT().Sort(gomock.Any(), gomock.Any()).DoAndReturn(real.Sort).AnyTimes()
	m.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(real.Search).AnyTimes()
	return m
}

func newLoadedVault(t *testing.T, sessions service.ClientSessionService, copier Copier) *VaultModel {
	t.Helper()
	v := NewVaultModel(context.Background(), sessions, copier, testSession, logger.Nop())
	v.Update(listLoadedMsg{records: records})
	return v
}

func titles(rs []models.VaultRecord) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}
