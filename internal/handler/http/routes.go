package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// resource routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withHashCheck)

		mountResource(r, "/api/books", newResourceHandler("books", h.services.Books))
		mountResource(r, "/api/wallets", newResourceHandler("wallets", h.services.Wallets))
		mountResource(r, "/api/categories", newResourceHandler("categories", h.services.Categories))
		mountResource(r, "/api/transactions", newResourceHandler("transactions", h.services.Transactions))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
