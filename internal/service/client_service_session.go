package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type clientSessionService struct {
	adapter   adapter.ServerAdapter
	transform crypto.Transform
	validator validators.Validator

	// locale drives title collation.
	locale language.Tag

	logger *logger.Logger
}

// NewClientSessionService builds the vault session. An unparsable locale
// falls back to English.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, transform crypto.Transform, locale string, logger *logger.Logger) ClientSessionService {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &clientSessionService{
		adapter:   serverAdapter,
		transform: transform,
		validator: validators.NewVaultValidator(),
		locale:    tag,
		logger:    logger,
	}
}

func checkSession(session models.Session) error {
	if session.Token == "" || len(session.EncryptionKey) == 0 {
		return ErrAuthMissing
	}
	return nil
}

func (s *clientSessionService) Refresh(ctx context.Context, session models.Session, filter models.ListFilter) ([]models.VaultRecord, error) {
	if err := checkSession(session); err != nil {
		return nil, err
	}

	entries, err := s.adapter.ListEntries(ctx, session.Token, filter)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Refresh").Msg("error listing entries")
		return nil, mapAdapterError(err)
	}

	records := make([]models.VaultRecord, 0, len(entries))
	failed := 0
	for _, entry := range entries {
		record, err := s.transform.Open(entry.Ciphertext, session.EncryptionKey)
		if err != nil {
			failed++
			s.logger.Debug().Err(err).Str("func", "*clientSessionService.Refresh").Str("entry_id", entry.ID).Msg("entry could not be opened")
			continue
		}
		record.ID = entry.ID
		record.CreatedAt = entry.CreatedAt
		records = append(records, record)
	}

	if failed > 0 {
		return records, &PartialDecryptError{Failed: failed, Total: len(entries)}
	}
	return records, nil
}

func (s *clientSessionService) Search(records []models.VaultRecord, query string) []models.VaultRecord {
	if strings.TrimSpace(query) == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(query)

	found := make([]models.VaultRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Title), needle) ||
			strings.Contains(fold.String(r.Username), needle) ||
			strings.Contains(fold.String(r.URL), needle) {
			found = append(found, r)
		}
	}
	return found
}

// Sort orders a copy of records. Equal keys keep their input order.
func (s *clientSessionService) Sort(records []models.VaultRecord, order models.SortOrder) []models.VaultRecord {
	sorted := make([]models.VaultRecord, len(records))
	copy(sorted, records)

	switch order {
	case models.SortTitleAsc, models.SortTitleDesc:
		// a Collator is not safe for concurrent use
		c := collate.New(s.locale)
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := c.CompareString(sorted[i].Title, sorted[j].Title)
			if order == models.SortTitleDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case models.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}

func (s *clientSessionService) Save(ctx context.Context, session models.Session, record models.VaultRecord) (string, error) {
	if err := checkSession(session); err != nil {
		return "", err
	}

	if err := s.validator.Validate(ctx, record); err != nil {
		return "", err
	}

	blob, err := s.transform.Seal(record, session.EncryptionKey)
	if err != nil {
		return "", fmt.Errorf("error sealing record: %w", err)
	}

	if record.ID == "" {
		id, err := s.adapter.CreateEntry(ctx, session.Token, blob)
		if err != nil {
			s.logger.Err(err).Str("func", "*clientSessionService.Save").Msg("error creating entry")
			return "", mapAdapterError(err)
		}
		return id, nil
	}

	if err = s.adapter.UpdateEntry(ctx, session.Token, record.ID, blob); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Save").Msg("error updating entry")
		return "", mapAdapterError(err)
	}
	return record.ID, nil
}

func (s *clientSessionService) Delete(ctx context.Context, session models.Session, id string) error {
	if err := checkSession(session); err != nil {
		return err
	}

	if err := s.adapter.DeleteEntry(ctx, session.Token, id); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Delete").Msg("error deleting entry")
		return mapAdapterError(err)
	}
	return nil
}
