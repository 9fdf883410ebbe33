// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jkamin61/wmm-sub000/internal/platform/request"
	"github.com/jkamin61/wmm-sub000/internal/platform/respond"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
)

// Handler exposes the public catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public read endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/menu", handler.menu)
	router.Get("/topics/{slug}/items", handler.itemsByTopic)
	router.Get("/items/{slug}", handler.itemBySlug)
}

func (handler *Handler) menu(writer http.ResponseWriter, request *http.Request) {
	menu, err := handler.service.Menu(request.Context(), requestutil.Lang(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, menu)
}

func (handler *Handler) itemsByTopic(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ItemsByTopic(
		request.Context(),
		requestutil.Param(request, "slug"),
		requestutil.Lang(request),
		pagination.FromRequest(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result.Items, result.Meta)
}

func (handler *Handler) itemBySlug(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.ItemBySlug(request.Context(), requestutil.Param(request, "slug"), requestutil.Lang(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}
