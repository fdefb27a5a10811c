package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultValidationService rejects empty ciphertext before it reaches the
// wrapped service. The ciphertext itself is opaque and never inspected.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) Create(ctx context.Context, ciphertext string) (models.VaultEntry, error) {
	if err := v.validateCiphertext(ctx, ciphertext); err != nil {
		return models.VaultEntry{}, err
	}
	return v.inner.Create(ctx, ciphertext)
}

func (v *VaultValidationService) List(ctx context.Context, filter models.ListFilter) ([]models.VaultEntry, error) {
	if filter.CreatedAfter != nil && filter.CreatedBefore != nil && !filter.CreatedAfter.Before(*filter.CreatedBefore) {
		return nil, &validators.ValidationError{Field: "created_after", Reason: "must be before created_before"}
	}
	return v.inner.List(ctx, filter)
}

func (v *VaultValidationService) Update(ctx context.Context, id, ciphertext string) (models.VaultEntry, error) {
	if err := v.validateCiphertext(ctx, ciphertext); err != nil {
		return models.VaultEntry{}, err
	}
	return v.inner.Update(ctx, id, ciphertext)
}

func (v *VaultValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *VaultValidationService) Wrap(wrapper VaultService) VaultService {
	v.inner = wrapper
	return v
}

func (v *VaultValidationService) validateCiphertext(ctx context.Context, ciphertext string) error {
	err := v.validator.Validate(ctx, models.VaultEntry{Ciphertext: ciphertext}, validators.FieldCiphertext)
	if err != nil {
		return fmt.Errorf("error during vault entry validation before saving: %w", err)
	}
	return nil
}
