package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is a database handle together with the dialect-specific pieces the
// repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            Dialect
}

// DialectFromDSN picks PostgreSQL for postgres:// and postgresql:// URLs and
// for key=value strings that name a host; everything else is a SQLite path.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return DialectPostgres
	}
	return DialectSQLite
}

// NewDB wraps an open connection. classificator may be nil, in which case
// no driver error is treated as a unique violation or as retryable.
func NewDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		logger:             log,
		dialect:            dialect,
	}
}

// NewConnect opens and pings the database selected by cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Migrate applies the embedded migrations of db's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect reports the backend in use.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// storageError wraps a driver error as [ErrStorageUnavailable], keeping the
// classification in the log.
func (db *DB) storageError(log *logger.Logger, fn string, err error) error {
	retryable := db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
	log.Err(err).Str("func", fn).Bool("retryable", retryable).Msg("storage error")
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
