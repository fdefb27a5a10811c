package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService scopes every repository call to the user id found in the
// context. Without one it fails with ErrAuthMissing before touching the
// repository.
type vaultService struct {
	vaultRepository store.VaultRepository
	ids             *utils.UUIDGenerator

	logger *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

func ownerFromContext(ctx context.Context) (string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrAuthMissing
	}
	return userID, nil
}

func (s *vaultService) Create(ctx context.Context, ciphertext string) (models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry, err := s.vaultRepository.Create(ctx, models.VaultEntry{
		ID:         s.ids.Generate(),
		OwnerID:    ownerID,
		Ciphertext: ciphertext,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultService.Create").Msg("error creating vault entry")
		return models.VaultEntry{}, fmt.Errorf("error creating vault entry: %w", err)
	}

	return entry, nil
}

func (s *vaultService) List(ctx context.Context, filter models.ListFilter) ([]models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.vaultRepository.List(ctx, ownerID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultService.List").Msg("error listing vault entries")
		return nil, fmt.Errorf("error listing vault entries: %w", err)
	}

	return entries, nil
}

func (s *vaultService) Update(ctx context.Context, id, ciphertext string) (models.VaultEntry, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}
	if !utils.IsUUID(id) {
		return models.VaultEntry{}, ErrNotFound
	}

	entry, err := s.vaultRepository.Update(ctx, models.VaultEntry{ID: id, OwnerID: ownerID, Ciphertext: ciphertext})
	if err != nil {
		return models.VaultEntry{}, s.mapStoreError(ctx, "*vaultService.Update", err)
	}

	return entry, nil
}

func (s *vaultService) Delete(ctx context.Context, id string) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if !utils.IsUUID(id) {
		return ErrNotFound
	}

	if err = s.vaultRepository.Delete(ctx, ownerID, id); err != nil {
		return s.mapStoreError(ctx, "*vaultService.Delete", err)
	}

	return nil
}

func (s *vaultService) mapStoreError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, store.ErrEntryNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("vault storage error")
	return fmt.Errorf("vault storage error: %w", err)
}
