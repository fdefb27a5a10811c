package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	VaultService   VaultService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg, logger)

	return &Services{
		TokenService:   tokens,
		AuthService:    NewAuthService(storages.UserRepository, tokens, cfg, logger),
		VaultService:   NewVaultValidationService().Wrap(NewVaultService(storages.VaultRepository, logger)),
		AppInfoService: NewAppInfoService(cfg, buildInfo, logger),
		HealthService:  NewHealthService(storages, logger),
	}
}
