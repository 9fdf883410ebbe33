// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jkamin61/wmm-sub000/internal/platform/request"
	"github.com/jkamin61/wmm-sub000/internal/platform/respond"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/query"
)

// Handler exposes the public search endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts GET /search.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.search)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	criteria, err := criteriaFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Search(request.Context(), criteria)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result.Items, result.Meta)
}

// criteriaFromRequest maps query parameters onto [Criteria]. Paging is
// clamped later by the service against its configured cap.
func criteriaFromRequest(request *http.Request) (Criteria, error) {
	values := request.URL.Query()
	params := pagination.FromRequest(request)

	criteria := Criteria{
		Text:       values.Get("q"),
		CategoryID: query.String(values, "category"),
		TopicID:    query.String(values, "topic"),
		SubtopicID: query.String(values, "subtopic"),
		Flavors:    query.StringSlice(values, "flavors"),
		Language:   requestutil.Lang(request),
		Page:       params.Page,
		Size:       params.Limit,
	}

	var err error
	if criteria.Featured, err = query.Bool(values, "featured"); err != nil {
		return criteria, validate.Field("featured", err.Error())
	}
	if criteria.MinScore, err = query.Float(values, "minScore"); err != nil {
		return criteria, validate.Field("minScore", err.Error())
	}
	if criteria.MaxScore, err = query.Float(values, "maxScore"); err != nil {
		return criteria, validate.Field("maxScore", err.Error())
	}
	return criteria, nil
}
