// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// resourceHandler serves one resource family:
//
//	POST   /api/{resource}                      -> 201 {"id": ...}
//	PUT    /api/{resource}/{id}                 -> 200 record
//	DELETE /api/{resource}/{id}                 -> 204
//	GET    /api/{resource}?updatedSince=RFC3339 -> 200 [records]
type resourceHandler[P models.RemoteRecord] struct {
	name    string
	service service.ResourceService[P]
}

func newResourceHandler[P models.RemoteRecord](name string, svc service.ResourceService[P]) *resourceHandler[P] {
	return &resourceHandler[P]{name: name, service: svc}
}

func mountResource[P models.RemoteRecord](r chi.Router, path string, rh *resourceHandler[P]) {
	r.Post(path, rh.create)
	r.Get(path, rh.list)
	r.Put(path+"/{id}", rh.update)
	r.Delete(path+"/{id}", rh.delete)
}

func (rh *resourceHandler[P]) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := rh.userID(w, r)
	if !ok {
		return
	}

	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*resourceHandler.create").Str("resource", rh.name).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	created, err := rh.service.Create(r.Context(), userID, payload)
	if err != nil {
		rh.fail(w, r, "*resourceHandler.create", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CreatedResponse{ID: created.GetRemoteMeta().ID}, http.StatusCreated)
}

func (rh *resourceHandler[P]) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := rh.userID(w, r)
	if !ok {
		return
	}

	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*resourceHandler.update").Str("resource", rh.name).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	updated, err := rh.service.Update(r.Context(), userID, chi.URLParam(r, "id"), payload)
	if err != nil {
		rh.fail(w, r, "*resourceHandler.update", err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (rh *resourceHandler[P]) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := rh.userID(w, r)
	if !ok {
		return
	}

	if err := rh.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		rh.fail(w, r, "*resourceHandler.delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (rh *resourceHandler[P]) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := rh.userID(w, r)
	if !ok {
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("updatedSince"); raw != "" {
		var err error
		if since, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*resourceHandler.list").Str("updatedSince", raw).Send()
			utils.WriteError(w, ErrInvalidUpdatedSince.Error(), http.StatusBadRequest)
			return
		}
	}

	records, err := rh.service.ListChangedSince(r.Context(), userID, since)
	if err != nil {
		rh.fail(w, r, "*resourceHandler.list", err)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

// userID reads the caller set by the auth middleware.
func (rh *resourceHandler[P]) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return userID, ok
}

func (rh *resourceHandler[P]) fail(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).
		Str("func", funcName).
		Str("resource", rh.name).
		Int("status", status).
		Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
