package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// AppInfo is the build metadata served by the version endpoint.
type AppInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// AppInfoService reports the build the server runs.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) AppInfo
}

type appInfoService struct {
	info AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] over buildInfo. Fields the
// linker left empty are reported as "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info: AppInfo{
			Version: orNotAvailable(buildInfo.BuildVersion()),
			Date:    orNotAvailable(buildInfo.BuildDate()),
			Commit:  orNotAvailable(buildInfo.BuildCommit()),
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) AppInfo {
	return s.info
}

func orNotAvailable(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
