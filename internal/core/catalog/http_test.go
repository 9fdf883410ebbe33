// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*fixture, http.Handler) {
	t.Helper()

	f := newFixture(t)
	router := chi.NewRouter()
	NewHandler(f.service).RegisterAdminRoutes(router, func(items chi.Router) {
		items.Get("/{id}/ping", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusTeapot)
		})
	})
	return f, router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_CreateAndPublishCategory(t *testing.T) {
	_, router := newRouter(t)

	created := serve(router, http.MethodPost, "/categories", `{"title":"Gin","display_order":2}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var envelope struct {
		Data struct {
			ID     string `json:"id"`
			Slug   string `json:"slug"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	assert.Equal(t, "gin", envelope.Data.Slug)
	assert.Equal(t, "draft", envelope.Data.Status)

	published := serve(router, http.MethodPost, "/categories/"+envelope.Data.ID+"/publish", "")
	assert.Equal(t, http.StatusOK, published.Code)
	assert.Contains(t, published.Body.String(), `"status":"published"`)

	again := serve(router, http.MethodPost, "/categories/"+envelope.Data.ID+"/publish", "")
	assert.Equal(t, http.StatusBadRequest, again.Code)
	assert.Contains(t, again.Body.String(), `"code":"CONFLICT"`)
}

func TestHandler_RejectsInvalidBody(t *testing.T) {
	_, router := newRouter(t)

	unknownField := serve(router, http.MethodPost, "/topics", `{"slug":"x","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, unknownField.Code)

	missingParent := serve(router, http.MethodPost, "/topics", `{"slug":"speyside"}`)
	assert.Equal(t, http.StatusBadRequest, missingParent.Code)
	assert.Contains(t, missingParent.Body.String(), "category_id")
}

func TestHandler_ListAndItemExtensions(t *testing.T) {
	f, router := newRouter(t)

	listed := serve(router, http.MethodGet, "/topics?size=1", "")
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"total":2`)
	assert.Contains(t, listed.Body.String(), `"limit":1`)

	missing := serve(router, http.MethodGet, "/subtopics/"+f.islay.ID, "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	extension := serve(router, http.MethodGet, "/items/abc/ping", "")
	assert.Equal(t, http.StatusTeapot, extension.Code)
}

func TestHandler_TranslationRoutes(t *testing.T) {
	f, router := newRouter(t)

	saved := serve(router, http.MethodPut, "/topics/"+f.islay.ID+"/translations/en", `{"title":"Islay","description":"Peat country"}`)
	require.Equal(t, http.StatusOK, saved.Code)
	assert.Contains(t, saved.Body.String(), `"title":"Islay"`)

	removed := serve(router, http.MethodDelete, "/topics/"+f.islay.ID+"/translations/en", "")
	assert.Equal(t, http.StatusNoContent, removed.Code)
}
