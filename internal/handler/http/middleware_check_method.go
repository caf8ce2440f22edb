// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// CheckHTTPMethod returns the handler registered through
// [chi.Mux.MethodNotAllowed]. A path that exists only under other methods
// answers 404 instead of chi's default 405, so callers cannot discover which
// methods a resource supports.
//
// Matching goes through [chi.Mux.Match], so parameterised patterns such as
// /api/books/{id} are resolved like regular routing does.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
