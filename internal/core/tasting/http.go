// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/jkamin61/wmm-sub000/internal/platform/request"
	"github.com/jkamin61/wmm-sub000/internal/platform/respond"
)

// Handler exposes flavors and tasting notes over HTTP.
type Handler struct {
	service *Service
	editor  *Editor
}

// NewHandler constructs a [Handler].
func NewHandler(service *Service, editor *Editor) *Handler {
	return &Handler{service: service, editor: editor}
}

// RegisterRoutes mounts the public flavor list.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/flavors", handler.listFlavors)
}

// RegisterAdminRoutes mounts flavor administration.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Route("/flavors", func(r chi.Router) {
		r.Get("/", handler.listRawFlavors)
		r.Post("/", handler.createFlavor)
	})
}

// RegisterItemRoutes mounts the note endpoints under an /items router.
func (handler *Handler) RegisterItemRoutes(router chi.Router) {
	router.Get("/{id}/tasting", handler.getNote)
	router.Put("/{id}/tasting", handler.saveNote)
	router.Put("/{id}/tasting/flavors", handler.replaceProfile)
}

// # Flavors

func (handler *Handler) listFlavors(writer http.ResponseWriter, request *http.Request) {
	flavors, err := handler.service.ListLocalizedFlavors(request.Context(), requestutil.Lang(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, flavors)
}

func (handler *Handler) listRawFlavors(writer http.ResponseWriter, request *http.Request) {
	flavors, err := handler.service.ListFlavors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if flavors == nil {
		flavors = []*Flavor{}
	}
	respond.OK(writer, flavors)
}

func (handler *Handler) createFlavor(writer http.ResponseWriter, request *http.Request) {
	var input FlavorInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	flavor, err := handler.service.CreateFlavor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, flavor)
}

// # Notes

func (handler *Handler) getNote(writer http.ResponseWriter, request *http.Request) {
	note, err := handler.service.GetNote(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}

func (handler *Handler) saveNote(writer http.ResponseWriter, request *http.Request) {
	var input NoteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.SaveNote(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}

func (handler *Handler) replaceProfile(writer http.ResponseWriter, request *http.Request) {
	var update ProfileUpdate
	if err := requestutil.DecodeJSON(request, &update); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.editor.Replace(request.Context(), requestutil.ID(request, "id"), update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}
