package adapter

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

const (
	booksPath        = "/api/books"
	walletsPath      = "/api/wallets"
	categoriesPath   = "/api/categories"
	transactionsPath = "/api/transactions"
	healthPath       = "/api/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	books        *httpResource[models.RemoteBook]
	wallets      *httpResource[models.RemoteWallet]
	categories   *httpResource[models.RemoteCategory]
	transactions *httpResource[models.RemoteTransaction]

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for the
// HashSHA256 request header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	h := &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}
	h.SetToken(appCfg.Token)

	h.books = newHTTPResource[models.RemoteBook](h, booksPath)
	h.wallets = newHTTPResource[models.RemoteWallet](h, walletsPath)
	h.categories = newHTTPResource[models.RemoteCategory](h, categoriesPath)
	h.transactions = newHTTPResource[models.RemoteTransaction](h, transactionsPath)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter]. It GETs /api/health and succeeds on any
// 2xx answer.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Books() Resource[models.RemoteBook] {
	return h.books
}

func (h *httpServerAdapter) Wallets() Resource[models.RemoteWallet] {
	return h.wallets
}

func (h *httpServerAdapter) Categories() Resource[models.RemoteCategory] {
	return h.categories
}

func (h *httpServerAdapter) Transactions() Resource[models.RemoteTransaction] {
	return h.transactions
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest returns an authed request carrying body as JSON, signed with
// the HashSHA256 header when a hash key is configured.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, computeTransportHash(body))
	}
	return req
}

func computeTransportHash(body []byte) string {
	return hex.EncodeToString(utils.Hash(body))
}
