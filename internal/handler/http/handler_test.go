package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "ledger-tests"
	testUserID  = int64(7)
)

type testMocks struct {
	books        *mock.MockResourceService[models.RemoteBook]
	wallets      *mock.MockResourceService[models.RemoteWallet]
	categories   *mock.MockResourceService[models.RemoteCategory]
	transactions *mock.MockResourceService[models.RemoteTransaction]
}

func newTestRouter(t *testing.T, hashKey string) (*chi.Mux, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		books:        mock.NewMockResourceService[models.RemoteBook](ctrl),
		wallets:      mock.NewMockResourceService[models.RemoteWallet](ctrl),
		categories:   mock.NewMockResourceService[models.RemoteCategory](ctrl),
		transactions: mock.NewMockResourceService[models.RemoteTransaction](ctrl),
	}

	services := &service.Services{
		AppInfo:      service.NewAppInfoService(models.NewAppBuildInfo("v1.2.3", "2026-05-01", "abc123"), logger.Nop()),
		Books:        m.books,
		Wallets:      m.wallets,
		Categories:   m.categories,
		Transactions: m.transactions,
	}

	cfg := config.ServerApp{HashKey: hashKey, TokenSignKey: testSignKey, TokenIssuer: testIssuer}
	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.Raw
}

// do sends an authenticated request and returns the recorded response.
func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", bearer(t))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
