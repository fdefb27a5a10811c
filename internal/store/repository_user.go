package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var userColumns = []string{"id", "email", "password_hash", "key_salt", "created_at"}

// userRepository handles account creation and lookup against the "users"
// table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists]
//   - any other driver error → [ErrStorageUnavailable]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.KeySalt, user.CreatedAt).
		Suffix("RETURNING id, email, password_hash, key_salt, created_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.KeySalt, scanTime{&created.CreatedAt})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.storageError(log, "*userRepository.CreateUser", err)
	}

	return created, nil
}

// FindUserByEmail looks the account up by its normalized email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.KeySalt, scanTime{&found.CreatedAt})
	if err != nil {
		if isNoRows(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, r.db.storageError(log, "*userRepository.FindUserByEmail", err)
	}

	return found, nil
}
