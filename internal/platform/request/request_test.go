// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	requestutil "github.com/jkamin61/wmm-sub000/internal/platform/request"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
)

type createPayload struct {
	Slug       string `json:"slug" validate:"required,max=160"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Order      int    `json:"display_order" validate:"gte=0"`
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/admin/topics", strings.NewReader(body))
}

func TestDecodeJSON_Valid(t *testing.T) {
	var payload createPayload
	err := requestutil.DecodeJSON(newRequest(`{"slug":"islay","category_id":"0190c7d4-5b8e-7b3a-9c1d-2f3e4a5b6c7d","display_order":2}`), &payload)

	require.NoError(t, err)
	assert.Equal(t, "islay", payload.Slug)
	assert.Equal(t, 2, payload.Order)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var payload createPayload
	err := requestutil.DecodeJSON(newRequest(`{"slug":`), &payload)
	assert.Equal(t, validate.ErrInvalidJSON, err)
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	var payload createPayload
	err := requestutil.DecodeJSON(newRequest(`{"slug":"islay","colour":"red"}`), &payload)
	assert.Equal(t, validate.ErrInvalidJSON, err)
}

func TestDecodeJSON_TagFailuresUseJSONNames(t *testing.T) {
	var payload createPayload
	err := requestutil.DecodeJSON(newRequest(`{"slug":"","category_id":"not-a-uuid","display_order":-1}`), &payload)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)

	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{"slug", "category_id", "display_order"}, fields)
}

func TestLang(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/menu?lang=pl", nil)
	assert.Equal(t, "pl", requestutil.Lang(request))
}
