package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"), logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, AppInfo{Version: "1.2.0", Date: "2026-10-01", Commit: "abc123"}, got)
}

func TestGetAppInfo_EmptyFieldsAreNotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", "abc123"), logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "N/A", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "abc123", got.Commit)
}
