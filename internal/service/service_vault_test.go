package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerA  = "0190a6a4-6e5c-7b3e-8f00-0000000000aa"
	entryID = "0190a6a4-6e5c-7b3e-8f00-0000000000e1"
)

// countingRepo records how often the repository is reached.
type countingRepo struct {
	calls int
}

func (r *countingRepo) Create(context.Context, models.VaultEntry) (models.VaultEntry, error) {
	r.calls++
	return models.VaultEntry{}, nil
}

func (r *countingRepo) List(context.Context, string, models.ListFilter) ([]models.VaultEntry, error) {
	r.calls++
	return nil, nil
}

func (r *countingRepo) Update(context.Context, models.VaultEntry) (models.VaultEntry, error) {
	r.calls++
	return models.VaultEntry{}, nil
}

func (r *countingRepo) Delete(context.Context, string, string) error {
	r.calls++
	return nil
}

func newTestVaultSvc(t *testing.T) (VaultService, *mock.MockVaultRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockVaultRepository(ctrl)
	return NewVaultService(repo, logger.Nop()), repo
}

func TestVaultService_NoUserNeverReachesRepository(t *testing.T) {
	repo := &countingRepo{}
	svc := NewVaultService(repo, logger.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "blob")
	assert.ErrorIs(t, err, ErrAuthMissing)

	_, err = svc.List(ctx, models.ListFilter{})
	assert.ErrorIs(t, err, ErrAuthMissing)

	_, err = svc.Update(ctx, entryID, "blob")
	assert.ErrorIs(t, err, ErrAuthMissing)

	err = svc.Delete(ctx, entryID)
	assert.ErrorIs(t, err, ErrAuthMissing)

	assert.Equal(t, 0, repo.calls)
}

func TestVaultService_Create(t *testing.T) {
	svc, repo := newTestVaultSvc(t)
	ctx := utils.WithUserID(context.Background(), ownerA)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
			assert.Equal(t, ownerA, e.OwnerID)
			assert.Equal(t, "blob", e.Ciphertext)
			assert.True(t, utils.IsUUID(e.ID))
			assert.WithinDuration(t, time.Now(), e.CreatedAt, 5*time.Second)
			return e, nil
		})

	entry, err := svc.Create(ctx, "blob")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
}

func TestVaultService_ListScopedToOwner(t *testing.T) {
	svc, repo := newTestVaultSvc(t)
	ctx := utils.WithUserID(context.Background(), ownerA)
	filter := models.ListFilter{Order: models.ListOldestFirst, Limit: 5}

	repo.EXPECT().List(gomock.Any(), ownerA, filter).Return([]models.VaultEntry{{ID: entryID, Ciphertext: "c"}}, nil)

	entries, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestVaultService_UpdateAndDelete_NotFound(t *testing.T) {
	svc, repo := newTestVaultSvc(t)
	ctx := utils.WithUserID(context.Background(), ownerA)

	repo.EXPECT().
		Update(gomock.Any(), models.VaultEntry{ID: entryID, OwnerID: ownerA, Ciphertext: "blob"}).
		Return(models.VaultEntry{}, store.ErrEntryNotFound)
	repo.EXPECT().Delete(gomock.Any(), ownerA, entryID).Return(store.ErrEntryNotFound)

	_, err := svc.Update(ctx, entryID, "blob")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, entryID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaultService_MalformedIDIsNotFound(t *testing.T) {
	svc, _ := newTestVaultSvc(t)
	ctx := utils.WithUserID(context.Background(), ownerA)

	_, err := svc.Update(ctx, "42", "blob")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "'; drop table users; --")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaultService_StorageUnavailable(t *testing.T) {
	svc, repo := newTestVaultSvc(t)
	ctx := utils.WithUserID(context.Background(), ownerA)
	storageErr := fmt.Errorf("%w: connection reset", store.ErrStorageUnavailable)

	repo.EXPECT().Delete(gomock.Any(), ownerA, entryID).Return(storageErr)
	repo.EXPECT().List(gomock.Any(), ownerA, gomock.Any()).Return(nil, storageErr)

	err := svc.Delete(ctx, entryID)
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = svc.List(ctx, models.ListFilter{})
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func TestVaultValidationService_EmptyCiphertext(t *testing.T) {
	repo := &countingRepo{}
	svc := NewVaultValidationService().Wrap(NewVaultService(repo, logger.Nop()))
	ctx := utils.WithUserID(context.Background(), ownerA)

	_, err := svc.Create(ctx, "")
	assert.ErrorIs(t, err, validators.ErrValidationFailed)

	_, err = svc.Update(ctx, entryID, "")
	assert.ErrorIs(t, err, validators.ErrValidationFailed)

	assert.Equal(t, 0, repo.calls)
}

func TestVaultValidationService_InvertedWindow(t *testing.T) {
	repo := &countingRepo{}
	svc := NewVaultValidationService().Wrap(NewVaultService(repo, logger.Nop()))
	ctx := utils.WithUserID(context.Background(), ownerA)

	after := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	before := after.Add(-time.Hour)

	_, err := svc.List(ctx, models.ListFilter{CreatedAfter: &after, CreatedBefore: &before})
	assert.ErrorIs(t, err, validators.ErrValidationFailed)
	assert.Equal(t, 0, repo.calls)
}

func TestVaultValidationService_PassesThrough(t *testing.T) {
	repo := &countingRepo{}
	svc := NewVaultValidationService().Wrap(NewVaultService(repo, logger.Nop()))
	ctx := utils.WithUserID(context.Background(), ownerA)

	_, err := svc.Create(ctx, "blob")
	require.NoError(t, err)
	_, err = svc.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, entryID))

	assert.Equal(t, 3, repo.calls)
}
