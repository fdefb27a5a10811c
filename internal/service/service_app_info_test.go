package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.0", "2026-01-01", "abc123")
	svc := NewAppInfoService(config.App{}, info, logger.Nop())

	assert.Equal(t, info, svc.GetBuildInfo(context.Background()))
}

func TestGetBuildInfo_ConfiguredVersionWins(t *testing.T) {
	info := models.NewAppBuildInfo("", "", "")
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "3.1.4", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}
