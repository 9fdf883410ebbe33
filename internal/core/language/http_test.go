// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandler_ListLanguages(t *testing.T) {
	handler := NewHandler(NewRegistry(NewCache(seeded()), nil))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"pl"`)
	assert.Contains(t, recorder.Body.String(), `"is_default":true`)
}

func TestHandler_InvalidateRequiresAdmin(t *testing.T) {
	handler := NewHandler(NewRegistry(NewCache(seeded()), nil))
	router := chi.NewRouter()
	handler.RegisterAdminRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/cache/invalidate", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
