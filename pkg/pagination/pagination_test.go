// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkamin61/wmm-sub000/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&limit=10", 3, 10},
		{"size_alias", "?page=2&size=5", 2, 5},
		{"capped", "?size=500", 1, 100},
		{"negative_page", "?page=-4", 1, 20},
		{"garbage", "?page=abc&limit=xyz", 1, 20},
		{"huge_page", "?page=9223372036854775807&size=100", pagination.MaxPage, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/items"+tt.query, nil)
			params := pagination.FromRequest(r)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 31)
	assert.Equal(t, 4, meta.TotalPages)

	assert.Equal(t, 0, pagination.NewMeta(1, 0, 5).TotalPages)
}

func TestClamp_RespectsConfiguredMaximum(t *testing.T) {
	assert.Equal(t, pagination.Params{Page: 1, Limit: 50}, pagination.Clamp(0, 80, 50))
	assert.Equal(t, pagination.Params{Page: 1, Limit: 100}, pagination.Clamp(1, 1000, 0))
}

func TestClamp_BoundsOffset(t *testing.T) {
	params := pagination.Clamp(int(^uint(0) >> 1), pagination.MaxLimit, pagination.MaxLimit)

	assert.Equal(t, pagination.MaxPage, params.Page)
	assert.Equal(t, (pagination.MaxPage-1)*pagination.MaxLimit, params.Offset())
}
