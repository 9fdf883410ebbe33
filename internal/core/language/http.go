// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkamin61/wmm-sub000/internal/platform/middleware"
	"github.com/jkamin61/wmm-sub000/internal/platform/respond"
	"github.com/jkamin61/wmm-sub000/internal/platform/sec"
)

// Handler exposes the language registry over HTTP.
type Handler struct {
	registry *Registry
}

// NewHandler constructs a [Handler].
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes mounts the public listing.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
}

// RegisterAdminRoutes mounts cache maintenance; callers must already have
// authenticated the request.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/cache/invalidate", handler.invalidateCache)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	languages, err := handler.registry.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, languages)
}

func (handler *Handler) invalidateCache(writer http.ResponseWriter, request *http.Request) {
	if err := handler.registry.Invalidate(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
