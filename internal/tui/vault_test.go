package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVault_InitRefreshes(t *testing.T) {
	sessions := newSessionMock(t)
	sessions.EXPECT().Refresh(gomock.Any(), testSession, models.ListFilter{}).Return(records, nil)

	v := NewVaultModel(context.Background(), sessions, &fakeCopier{}, testSession, logger.Nop())
	msg := v.Init()()

	loaded, ok := msg.(listLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.records, 3)
	assert.Contains(t, v.View(), "Loading")
}

func TestVault_SortCycles(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	assert.Equal(t, []string{"apple", "Mail", "bank"}, titles(v.visible))

	v.Update(keyRunes("s"))
	assert.Equal(t, models.SortOldest, v.sortOrder())
	assert.Equal(t, []string{"bank", "Mail", "apple"}, titles(v.visible))

	v.Update(keyRunes("s"))
	assert.Equal(t, []string{"apple", "bank", "Mail"}, titles(v.visible))

	v.Update(keyRunes("s"))
	assert.Equal(t, []string{"Mail", "bank", "apple"}, titles(v.visible))

	v.Update(keyRunes("s"))
	assert.Equal(t, models.SortNewest, v.sortOrder())
	assert.Contains(t, v.View(), "sort: newest")
}

func TestVault_LiveSearch(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(keyRunes("/"))
	require.Equal(t, vaultModeSearch, v.mode)

	typeText(v, "MA")
	assert.Equal(t, []string{"Mail"}, titles(v.visible))

	// letters typed while searching never trigger list shortcuts
	typeText(v, "il")
	assert.Equal(t, vaultModeSearch, v.mode)
	assert.Equal(t, []string{"Mail"}, titles(v.visible))

	v.Update(keyType(tea.KeyEnter))
	assert.Equal(t, vaultModeList, v.mode)
	assert.Equal(t, []string{"Mail"}, titles(v.visible))

	v.Update(keyType(tea.KeyEsc))
	assert.Len(t, v.visible, 3)
}

func TestVault_SearchByURLAndEscape(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(keyRunes("/"))
	typeText(v, "bank.example")
	assert.Equal(t, []string{"bank"}, titles(v.visible))

	v.Update(keyType(tea.KeyEsc))
	assert.Equal(t, vaultModeList, v.mode)
	assert.Len(t, v.visible, 3)
}

func TestVault_SearchNoMatch(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(keyRunes("/"))
	typeText(v, "zzz")

	assert.Empty(t, v.visible)
	assert.Contains(t, v.View(), "No entries")
}

func TestVault_SessionExpiredReturnsToLogin(t *testing.T) {
	expired := fmt.Errorf("%w: %w", service.ErrSessionExpired, &adapter.SessionExpiredError{Message: "Token expired"})

	for _, msg := range []tea.Msg{
		listLoadedMsg{err: expired},
		savedMsg{err: expired},
		deletedMsg{err: expired},
		listLoadedMsg{err: service.ErrAuthMissing},
	} {
		v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

		_, cmd := v.Update(msg)

		require.NotNil(t, cmd)
		ended, ok := cmd().(sessionEndedMsg)
		require.True(t, ok, "%T", msg)
		assert.Equal(t, noticeSessionExpired, ended.notice)
	}
}

func TestVault_PartialDecryptKeepsSurvivors(t *testing.T) {
	v := NewVaultModel(context.Background(), newSessionMock(t), &fakeCopier{}, testSession, logger.Nop())

	v.Update(listLoadedMsg{records: records[:2], err: &service.PartialDecryptError{Failed: 1, Total: 3}})

	assert.Len(t, v.visible, 2)
	assert.Contains(t, v.View(), "some items could not be decrypted")
}

func TestVault_RefreshFailureKeepsOldRecords(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(listLoadedMsg{err: fmt.Errorf("%w: dial tcp", service.ErrServerUnavailable)})

	assert.Len(t, v.visible, 3)
	assert.Contains(t, v.View(), "Server is unreachable")
}

func TestVault_CopyPassword(t *testing.T) {
	copier := &fakeCopier{}
	v := newLoadedVault(t, newSessionMock(t), copier)

	_, cmd := v.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Equal(t, []string{"pw-apple"}, copier.copied)
	assert.Contains(t, v.status, "Password copied")
	assert.Contains(t, v.status, "clears in 15s")
}

func TestVault_CopyUsernameOfSelected(t *testing.T) {
	copier := &fakeCopier{}
	v := newLoadedVault(t, newSessionMock(t), copier)

	v.Update(keyType(tea.KeyDown))
	_, cmd := v.Update(keyRunes("u"))
	v.Update(cmd())

	assert.Equal(t, []string{"alice@mail"}, copier.copied)
}

func TestVault_CopyFailure(t *testing.T) {
	copier := &fakeCopier{err: errors.New("clipboard is not available")}
	v := newLoadedVault(t, newSessionMock(t), copier)

	_, cmd := v.Update(keyRunes("c"))
	v.Update(cmd())

	assert.Contains(t, v.errMsg, "clipboard is not available")
}

func TestVault_DeleteFlow(t *testing.T) {
	sessions := newSessionMock(t)
	v := newLoadedVault(t, sessions, &fakeCopier{})

	v.Update(keyRunes("d"))
	require.Equal(t, vaultModeConfirmDelete, v.mode)
	assert.Contains(t, v.View(), `Delete "apple"?`)

	v.Update(keyRunes("n"))
	assert.Equal(t, vaultModeList, v.mode)

	v.Update(keyRunes("d"))
	sessions.EXPECT().Delete(gomock.Any(), testSession, "e3").Return(nil)
	_, cmd := v.Update(keyRunes("y"))
	msg := cmd()
	require.Equal(t, deletedMsg{}, msg)

	sessions.EXPECT().Refresh(gomock.Any(), testSession, gomock.Any()).Return(records[:2], nil)
	_, cmd = v.Update(msg)
	v.Update(cmd())

	assert.Equal(t, "Entry deleted", v.status)
	assert.Len(t, v.visible, 2)
}

func TestVault_DeleteMissingEntry(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})
	v.mode = vaultModeConfirmDelete

	v.Update(deletedMsg{err: service.ErrNotFound})

	assert.Equal(t, vaultModeList, v.mode)
	assert.Equal(t, "The entry no longer exists", v.errMsg)
}

func TestVault_CreateEntry(t *testing.T) {
	sessions := newSessionMock(t)
	v := newLoadedVault(t, sessions, &fakeCopier{})

	v.Update(keyRunes("n"))
	require.Equal(t, vaultModeForm, v.mode)
	assert.Contains(t, v.View(), "NEW ENTRY")

	typeText(v, "GitHub")
	v.Update(keyType(tea.KeyTab))
	typeText(v, "octocat")

	sessions.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, r models.VaultRecord) (string, error) {
			assert.Empty(t, r.ID)
			assert.Equal(t, "GitHub", r.Title)
			assert.Equal(t, "octocat", r.Username)
			return "e4", nil
		})
	_, cmd := v.Update(keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, v.form.saving)

	sessions.EXPECT().Refresh(gomock.Any(), testSession, gomock.Any()).Return(records, nil)
	_, cmd = v.Update(cmd())
	require.NotNil(t, cmd)

	assert.Equal(t, vaultModeList, v.mode)
	assert.Nil(t, v.form)
	assert.Equal(t, "Entry saved", v.status)
	cmd()
}

func TestVault_EditKeepsIdentity(t *testing.T) {
	sessions := newSessionMock(t)
	v := newLoadedVault(t, sessions, &fakeCopier{})

	v.Update(keyRunes("e"))
	require.Equal(t, vaultModeForm, v.mode)
	assert.Contains(t, v.View(), "EDIT ENTRY")

	sessions.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Session, r models.VaultRecord) (string, error) {
			assert.Equal(t, "e3", r.ID)
			assert.Equal(t, "apple!", r.Title)
			assert.Equal(t, "pw-apple", r.Password)
			assert.Equal(t, records[2].CreatedAt, r.CreatedAt)
			return r.ID, nil
		})

	typeText(v, "!")
	_, cmd := v.Update(keyType(tea.KeyCtrlS))
	cmd()
}

func TestVault_SaveValidationErrorStaysInForm(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})
	v.Update(keyRunes("n"))
	v.form.saving = true

	v.Update(savedMsg{err: fmt.Errorf("save: %w", errors.New("url must start with http:// or https://"))})

	assert.Equal(t, vaultModeForm, v.mode)
	assert.False(t, v.form.saving)
	assert.Contains(t, v.View(), "url must start with")
}

func TestVault_FormCancel(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(keyRunes("n"))
	v.Update(keyType(tea.KeyEsc))

	assert.Equal(t, vaultModeList, v.mode)
	assert.Nil(t, v.form)
}

func TestVault_Logout(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	_, cmd := v.Update(keyRunes("l"))

	assert.Equal(t, sessionEndedMsg{notice: noticeLoggedOut}, cmd())
}

func TestVault_NavigationClamped(t *testing.T) {
	v := newLoadedVault(t, newSessionMock(t), &fakeCopier{})

	v.Update(keyType(tea.KeyUp))
	assert.Equal(t, 0, v.idx)

	for range 5 {
		v.Update(keyRunes("j"))
	}
	assert.Equal(t, 2, v.idx)

	v.Update(listLoadedMsg{records: records[:1]})
	assert.Equal(t, 0, v.idx)
}
