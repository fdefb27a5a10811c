package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that mergo keeps a value already set by
// a higher-priority source.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second", Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithFlags_ThenDefaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := newConfigBuilder([]string{"-a", "127.0.0.1:9000"}).
		withEnv().
		withFlags().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultClipboardTTL, cfg.Client.ClipboardTTL)
}

func TestWithEnv_BeatsFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:7000"})

	cfg, err := newConfigBuilder([]string{"-a", "localhost:9000"}).
		withEnv().
		withFlags().
		build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
}

func TestWithJSON_PathFromFlag(t *testing.T) {
	setEnvVars(t, nil)
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "from-json", "token_issuer": "json-iss"},
	})

	cfg, err := newConfigBuilder([]string{"-c", path, "-token-issuer", "flag-iss"}).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-iss", cfg.App.TokenIssuer)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder(nil).withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	setEnvVars(t, nil)
	_, err := newConfigBuilder([]string{"-c", "/does/not/exist.json"}).
		withEnv().
		withFlags().
		withJSON().
		build()
	assert.Error(t, err)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Valid(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "sign",
		"APP_HASH_KEY":       "hash",
	})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HASH_KEY": "hash"})

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultLocale, cfg.Locale)
	assert.Equal(t, defaultClipboardTTL, cfg.ClipboardTTL)
}

func TestGetClientConfig_BadLocale(t *testing.T) {
	setEnvVars(t, map[string]string{"CLIENT_LOCALE": "not a locale!"})

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}
