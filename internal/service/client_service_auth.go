package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	keyChain  crypto.KeyChain
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		keyChain:  keyChain,
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, email, masterPassword string) (models.Session, error) {
	email = NormalizeEmail(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email, Password: masterPassword}); err != nil {
		return models.Session{}, err
	}

	salt, err := a.keyChain.GenerateSalt()
	if err != nil {
		return models.Session{}, fmt.Errorf("error generating key salt: %w", err)
	}

	keys, err := a.keyChain.DeriveKeys(masterPassword, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("error deriving keys: %w", err)
	}

	_, err = a.adapter.SignUp(ctx, models.Credentials{
		Email:    email,
		Password: keys.AuthSecret,
		KeySalt:  salt,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignUp").Msg("signup rejected")
		return models.Session{}, mapAdapterError(err)
	}

	return a.openSession(ctx, email, keys)
}

func (a *clientAuthService) Login(ctx context.Context, email, masterPassword string) (models.Session, error) {
	email = NormalizeEmail(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email, Password: masterPassword}); err != nil {
		return models.Session{}, err
	}

	// L1: the salt; unknown emails get a decoy and fail at L3
	salt, err := a.adapter.KeyParams(ctx, email)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("error fetching key params")
		return models.Session{}, mapAdapterError(err)
	}

	// L2: both keys from the master password
	keys, err := a.keyChain.DeriveKeys(masterPassword, salt)
	if err != nil {
		return models.Session{}, fmt.Errorf("error deriving keys: %w", err)
	}

	// L3: auth secret for a token
	return a.openSession(ctx, email, keys)
}

func (a *clientAuthService) openSession(ctx context.Context, email string, keys crypto.DerivedKeys) (models.Session, error) {
	token, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: keys.AuthSecret})
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.openSession").Msg("login rejected")
		return models.Session{}, mapAdapterError(err)
	}

	userID, err := utils.ParseUserIDFromJWT(token.SignedString)
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading token subject: %w", err)
	}

	return models.Session{
		Email:         email,
		UserID:        userID,
		Token:         token.SignedString,
		EncryptionKey: keys.EncryptionKey,
	}, nil
}
