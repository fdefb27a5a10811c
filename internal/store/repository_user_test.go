package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
		dialect:            DialectPostgres,
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	user := models.User{
		ID:           "0192f1c4-7d1e-7000-8000-000000000001",
		Email:        "john@example.com",
		PasswordHash: "hash",
		KeySalt:      []byte("0123456789abcdef"),
		CreatedAt:    now,
	}

	rows := sqlmock.NewRows(userColumns).
		AddRow(user.ID, user.Email, user.PasswordHash, user.KeySalt, now)

	mock.ExpectQuery(`INSERT INTO users \(id,email,password_hash,key_salt,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING`).
		WithArgs(user.ID, user.Email, user.PasswordHash, user.KeySalt, now).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != user.ID || created.Email != user.Email {
		t.Errorf("unexpected user returned: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, email, password_hash, key_salt, created_at FROM users WHERE email = \$1`).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "john@example.com", "hash", []byte("salt"), now))

	user, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.PasswordHash != "hash" || string(user.KeySalt) != "salt" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("expected driver error to be wrapped, got %v", err)
	}
}
