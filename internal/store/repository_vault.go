// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var vaultColumns = []string{"id", "owner_id", "ciphertext", "created_at"}

const vaultReturning = "RETURNING id, owner_id, ciphertext, created_at"

// vaultRepository is the SQL implementation of [VaultRepository] over the
// "vault_entries" table.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts entry. A zero CreatedAt is set to the current UTC time so
// both dialects store the same precision.
func (r *vaultRepository) Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder().
		Insert(models.VaultEntry{}.TableName()).
		Columns(vaultColumns...).
		Values(entry.ID, entry.OwnerID, entry.Ciphertext, entry.CreatedAt).
		Suffix(vaultReturning).
		ToSql()
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.VaultEntry{}, r.db.storageError(log, "*vaultRepository.Create", err)
	}

	return created, nil
}

// List returns the owner's entries ordered by created_at; ties are broken by
// id so paging with CreatedAfter/CreatedBefore is stable.
func (r *vaultRepository) List(ctx context.Context, ownerID string, filter models.ListFilter) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder().
		Select(vaultColumns...).
		From(models.VaultEntry{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID})

	if filter.CreatedAfter != nil {
		builder = builder.Where(sq.Gt{"created_at": filter.CreatedAfter.UTC()})
	}
	if filter.CreatedBefore != nil {
		builder = builder.Where(sq.Lt{"created_at": filter.CreatedBefore.UTC()})
	}

	if filter.Order == models.ListOldestFirst {
		builder = builder.OrderBy("created_at ASC", "id ASC")
	} else {
		builder = builder.OrderBy("created_at DESC", "id DESC")
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.storageError(log, "*vaultRepository.List", err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, r.db.storageError(log, "*vaultRepository.List", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.storageError(log, "*vaultRepository.List", err)
	}

	return entries, nil
}

// Update replaces the ciphertext in a single statement; the owner check and
// the write happen atomically in the WHERE clause. created_at is kept.
func (r *vaultRepository) Update(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(models.VaultEntry{}.TableName()).
		Set("ciphertext", entry.Ciphertext).
		Where(sq.Eq{"id": entry.ID, "owner_id": entry.OwnerID}).
		Suffix(vaultReturning).
		ToSql()
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.VaultEntry{}, ErrEntryNotFound
		}
		return models.VaultEntry{}, r.db.storageError(log, "*vaultRepository.Update", err)
	}

	return updated, nil
}

func (r *vaultRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(models.VaultEntry{}.TableName()).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.storageError(log, "*vaultRepository.Delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.storageError(log, "*vaultRepository.Delete", err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.VaultEntry, error) {
	var e models.VaultEntry
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Ciphertext, scanTime{&e.CreatedAt}); err != nil {
		return models.VaultEntry{}, err
	}
	return e, nil
}
