package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth_Rejects(t *testing.T) {
	foreign, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, "another-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no scheme", header: foreign.Raw},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "wrong key", header: "Bearer " + foreign.Raw},
		{name: "wrong issuer", header: "Bearer " + otherIssuer.Raw},
		{name: "garbage", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no service call is expected
			router, _ := newTestRouter(t, "")

			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_PublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var info service.AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, service.AppInfo{Version: "v1.2.3", Date: "2026-05-01", Commit: "abc123"}, info)
}

// ── integrity hash ───────────────────────────────────────────────────────────

func TestHashCheck(t *testing.T) {
	const hashKey = "hash-secret"
	body := `{"name":"Ledger","currency":"EUR"}`

	tests := []struct {
		name       string
		hash       string
		wantStatus int
	}{
		{name: "valid", hash: utils.HashString(body, hashKey), wantStatus: http.StatusCreated},
		{name: "missing", hash: "", wantStatus: http.StatusBadRequest},
		{name: "wrong key", hash: utils.HashString(body, "other"), wantStatus: http.StatusBadRequest},
		{name: "not hex", hash: "zz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, hashKey)
			if tt.wantStatus == http.StatusCreated {
				m.books.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).
					Return(models.RemoteBook{RemoteMeta: models.RemoteMeta{ID: "b-1"}}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))
			req.Header.Set("Authorization", bearer(t))
			if tt.hash != "" {
				req.Header.Set(hashHeader, tt.hash)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHashCheck_BodylessRequestPasses(t *testing.T) {
	router, m := newTestRouter(t, "hash-secret")
	m.books.EXPECT().Delete(gomock.Any(), testUserID, "b-1").Return(nil)

	rec := do(t, router, http.MethodDelete, "/api/books/b-1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestTraceID(t *testing.T) {
	router, _ := newTestRouter(t, "")

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "echoed", incoming: "trace-123", keep: true},
		{name: "generated", incoming: ""},
		{name: "too long", incoming: strings.Repeat("x", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.True(t, utils.IsValidUUID(got), got)
		})
	}
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestCheckHTTPMethod_UnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	for _, target := range []string{"/api/books", "/api/books/b-1", "/api/health"} {
		req := httptest.NewRequest(http.MethodPatch, target, nil)
		req.Header.Set("Authorization", bearer(t))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

// ── response writer ──────────────────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("records explicit status once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusAccepted)
		w.WriteHeader(http.StatusTeapot)
		n, err := w.Write([]byte("hello"))

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusAccepted, w.status)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 5, w.size)
	})

	t.Run("write implies 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		_, _ = w.Write([]byte("a"))
		_, _ = w.Write([]byte("bc"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 3, w.size)
	})
}
