package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/crypto/bcrypt"
)

const decoySaltSize = 16

// authService is the concrete implementation of AuthService.
// It stores bcrypt hashes of the client-derived auth secret and hands out
// tokens through a TokenService.
type authService struct {
	userRepository store.UserRepository
	tokens         TokenService
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// hashKey keys the HMAC that produces decoy salts for unknown emails.
	hashKey    string
	bcryptCost int

	// dummyHash is compared against when the email is unknown so a failed
	// login costs the same as a wrong password.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("go-pass-vault/dummy"), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error generating dummy hash")
	}

	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validators.NewVaultValidator(),
		ids:            utils.NewUUIDGenerator(),
		hashKey:        cfg.HashKey,
		bcryptCost:     cost,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a new account.
//
// Returns the persisted user or:
//   - a *validators.ValidationError for a bad email, empty secret or short salt;
//   - ErrEmailTaken if the email is registered already;
//   - a wrapped store.ErrStorageUnavailable.
func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = NormalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword, validators.FieldKeySalt); err != nil {
		log.Debug().Err(err).Str("func", "*authService.SignUp").Msg("invalid signup data")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error hashing auth secret")
		return models.User{}, fmt.Errorf("error hashing auth secret: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		KeySalt:      creds.KeySalt,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		log.Err(err).Str("func", "*authService.SignUp").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login verifies the auth secret with bcrypt and issues a token. Unknown
// email and wrong secret are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	creds.Email = NormalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(creds.Password))
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("error finding user")
		return models.Token{}, fmt.Errorf("error finding user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong auth secret")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.tokens.Issue(ctx, user.ID)
}

// KeyParams returns the stored salt, or HMAC(email)[:16] when the email is
// unknown, so the answer does not reveal whether an account exists.
func (a *authService) KeyParams(ctx context.Context, email string) ([]byte, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return nil, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return a.decoySalt(email), nil
		}
		log.Err(err).Str("func", "*authService.KeyParams").Msg("error finding user")
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user.KeySalt, nil
}

func (a *authService) decoySalt(email string) []byte {
	return utils.HashBytes([]byte(email), a.hashKey)[:decoySaltSize]
}
