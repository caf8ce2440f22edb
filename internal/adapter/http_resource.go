package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// httpResource is the REST binding of one resource family rooted at path.
type httpResource[P models.RemoteRecord] struct {
	adapter *httpServerAdapter
	path    string
}

func newHTTPResource[P models.RemoteRecord](adapter *httpServerAdapter, path string) *httpResource[P] {
	return &httpResource[P]{adapter: adapter, path: path}
}

// Create implements [Resource]. It POSTs payload to /api/{resource} and
// returns the id from the {"id": ...} response body.
func (r *httpResource[P]) Create(ctx context.Context, payload P) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", r.path, err)
	}

	resp, err := r.adapter.signedRequest(ctx, body).Post(r.path)
	if err != nil {
		return "", fmt.Errorf("create %s request: %w", r.path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created models.CreatedResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create %s response: %w", r.path, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create %s: %w", r.path, ErrEmptyServerID)
	}

	return created.ID, nil
}

// Update implements [Resource]. It PUTs payload to /api/{resource}/{id}.
func (r *httpResource[P]) Update(ctx context.Context, serverID string, payload P) error {
	if serverID == "" {
		return fmt.Errorf("update %s: %w", r.path, ErrEmptyServerID)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", r.path, err)
	}

	resp, err := r.adapter.signedRequest(ctx, body).
		SetPathParam("id", serverID).
		Put(r.path + "/{id}")
	if err != nil {
		return fmt.Errorf("update %s request: %w", r.path, err)
	}

	return mapHTTPError(resp)
}

// Delete implements [Resource]. It sends DELETE /api/{resource}/{id}.
func (r *httpResource[P]) Delete(ctx context.Context, serverID string) error {
	if serverID == "" {
		return fmt.Errorf("delete %s: %w", r.path, ErrEmptyServerID)
	}

	resp, err := r.adapter.authedRequest(ctx).
		SetPathParam("id", serverID).
		Delete(r.path + "/{id}")
	if err != nil {
		return fmt.Errorf("delete %s request: %w", r.path, err)
	}

	return mapHTTPError(resp)
}

// ListChangedSince implements [Resource]. It GETs /api/{resource} with the
// updatedSince query parameter in RFC 3339 (nanosecond) form. The parameter
// is omitted for a zero watermark.
func (r *httpResource[P]) ListChangedSince(ctx context.Context, since time.Time) ([]P, error) {
	req := r.adapter.authedRequest(ctx)
	if !since.IsZero() {
		req.SetQueryParam("updatedSince", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get(r.path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", r.path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []P
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list %s response: %w", r.path, err)
	}

	return items, nil
}
