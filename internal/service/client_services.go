package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SessionService ClientSessionService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, crypto.NewKeyChain(), logger),
		SessionService: NewClientSessionService(serverAdapter, crypto.NewTransform(), cfg.Locale, logger),
	}
}
