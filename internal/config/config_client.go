package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	// Adapter contains the server URL and request timeout.
	Adapter Adapter
	// Locale is the BCP 47 tag used for title collation.
	Locale string
	// ClipboardTTL is how long a copied secret stays on the clipboard.
	ClipboardTTL time.Duration
	// LogFile is where client logs go.
	LogFile string
}

// GetClientConfig builds and validates the client configuration from the
// same sources as [GetStructuredConfig]. Server-only settings are ignored.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter:      cfg.Adapter,
		Locale:       cfg.Client.Locale,
		ClipboardTTL: cfg.Client.ClipboardTTL,
		LogFile:      cfg.Client.LogFile,
	}

	return clientCfg, clientCfg.validate()
}
