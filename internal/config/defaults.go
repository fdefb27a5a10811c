package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultAdapterAddress  = "http://localhost:8080"
	defaultDSN             = "vault.db"
	defaultTokenIssuer     = "go-pass-vault"
	defaultTokenDuration   = time.Hour
	defaultBcryptCost      = 10
	defaultMaxOpenConns    = 10
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAdapterTimeout  = 15 * time.Second
	defaultLocale          = "en"
	defaultClipboardTTL    = 15 * time.Second
)

// defaults is the lowest-priority source. Secrets have no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:          defaultDSN,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Client: Client{
			Locale:       defaultLocale,
			ClipboardTTL: defaultClipboardTTL,
		},
	}
}
