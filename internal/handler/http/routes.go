// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/profiles", h.upsertProfile)
	})

	router.Route("/api/transactions", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listTransactions)
		r.With(h.batchHashing).Post("/batch", h.putTransactionBatch)
		r.Post("/delete", h.deleteTransactionBatch)
		r.With(h.bodyHashing).Put("/{id}", h.putTransaction)
		r.Delete("/{id}", h.deleteTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
