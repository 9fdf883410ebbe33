// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	requestutil "github.com/jkamin61/wmm-sub000/internal/platform/request"
	"github.com/jkamin61/wmm-sub000/internal/platform/respond"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/query"
)

// Handler exposes the admin surface of every content kind.
type Handler struct {
	service *Service
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the four kinds. itemRoutes lets other packages
// attach endpoints under /items/{id}.
func (handler *Handler) RegisterAdminRoutes(router chi.Router, itemRoutes ...func(chi.Router)) {
	router.Route("/categories", func(r chi.Router) {
		r.Post("/", handler.createCategory)
		r.Patch("/{id}", handler.updateCategory)
		handler.mountKind(r, content.KindCategory)
	})

	router.Route("/topics", func(r chi.Router) {
		r.Post("/", handler.createTopic)
		r.Patch("/{id}", handler.updateTopic)
		handler.mountKind(r, content.KindTopic)
	})

	router.Route("/subtopics", func(r chi.Router) {
		r.Post("/", handler.createSubtopic)
		r.Patch("/{id}", handler.updateSubtopic)
		handler.mountKind(r, content.KindSubtopic)
	})

	router.Route("/items", func(r chi.Router) {
		r.Post("/", handler.createItem)
		r.Patch("/{id}", handler.updateItem)
		r.Put("/{id}/images", handler.replaceImages)
		handler.mountKind(r, content.KindItem)
		for _, mount := range itemRoutes {
			mount(r)
		}
	})
}

// mountKind registers the endpoints whose handling is identical for every kind.
func (handler *Handler) mountKind(router chi.Router, kind content.Kind) {
	router.Get("/", handler.list(kind))
	router.Get("/{id}", handler.get(kind))
	router.Delete("/{id}", handler.remove(kind))
	router.Post("/{id}/publish", handler.transition(kind, handler.service.Publish))
	router.Post("/{id}/unpublish", handler.transition(kind, handler.service.Unpublish))
	router.Post("/{id}/archive", handler.transition(kind, handler.service.Archive))
	router.Put("/{id}/translations/{lang}", handler.upsertTranslation(kind))
	router.Delete("/{id}/translations/{lang}", handler.deleteTranslation(kind))
}

// # Shared endpoints

func (handler *Handler) list(kind content.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		params := pagination.FromRequest(request)

		filter := ListFilter{ParentID: request.URL.Query().Get("parent_id")}
		if raw := query.String(request.URL.Query(), "status"); raw != nil {
			status := content.Status(*raw)
			filter.Status = &status
		}

		records, total, err := handler.service.List(request.Context(), kind, filter, params)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if records == nil {
			records = []Record{}
		}
		respond.Paginated(writer, records, pagination.NewMeta(params.Page, params.Limit, total))
	}
}

func (handler *Handler) get(kind content.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		record, err := handler.service.Get(request.Context(), kind, requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) remove(kind content.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := handler.service.Delete(request.Context(), kind, requestutil.ID(request, "id")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}

func (handler *Handler) transition(kind content.Kind, apply func(context.Context, content.Kind, string) (Record, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		record, err := apply(request.Context(), kind, requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) upsertTranslation(kind content.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input TranslationInput
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		record, err := handler.service.UpsertTranslation(request.Context(), kind,
			requestutil.ID(request, "id"), requestutil.Param(request, "lang"), input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) deleteTranslation(kind content.Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		err := handler.service.DeleteTranslation(request.Context(), kind,
			requestutil.ID(request, "id"), requestutil.Param(request, "lang"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}

// # Kind-specific endpoints

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CategoryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input TopicInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.CreateTopic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, topic)
}

func (handler *Handler) createSubtopic(writer http.ResponseWriter, request *http.Request) {
	var input SubtopicInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subtopic, err := handler.service.CreateSubtopic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, subtopic)
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input ItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateItem(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var patch CategoryPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.UpdateCategory(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) updateTopic(writer http.ResponseWriter, request *http.Request) {
	var patch TopicPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.UpdateTopic(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topic)
}

func (handler *Handler) updateSubtopic(writer http.ResponseWriter, request *http.Request) {
	var patch SubtopicPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subtopic, err := handler.service.UpdateSubtopic(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subtopic)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	var patch ItemPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateItem(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) replaceImages(writer http.ResponseWriter, request *http.Request) {
	var payload struct {
		Images []ImageInput `json:"images" validate:"max=50,dive"`
	}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.ReplaceImages(request.Context(), requestutil.ID(request, "id"), payload.Images)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}
