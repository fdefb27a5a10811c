package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// tokenService signs HS256 tokens; it keeps no state besides its settings,
// so a token stays valid until exp regardless of server restarts.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// Verify maps every verification failure onto ErrAuthExpired or
// ErrAuthInvalid; the utils error stays in the chain.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if err == nil {
		return token, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")

	if errors.Is(err, utils.ErrTokenExpired) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrAuthExpired, err)
	}
	return models.Token{}, fmt.Errorf("%w: %w", ErrAuthInvalid, err)
}
