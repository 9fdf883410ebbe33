// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Talisker 10", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, "title", ae.Details[0].Field)
				assert.Contains(t, ae.Message, "title")
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Slug checks the URL slug format rule.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		slug    string
		isValid bool
	}{
		{"talisker-10", true},
		{"islay", true},
		{"Talisker", false},
		{"-leading", false},
		{"double--hyphen", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.slug)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Ranges covers the numeric rules used by tasting notes and items.
*/
func TestValidator_Ranges(t *testing.T) {
	negative := -1.5

	v := &validate.Validator{}
	err := v.
		FloatRange("overall_score", 100.5, 0, 100).
		Range("intensity", 4, 1, 3).
		NonNegative("price", &negative).
		NonNegative("abv", nil).
		MaxItems("aroma", 16, 15).
		Color("color", "blue").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 5)
	assert.Equal(t, "Validation failed", ae.Message)
}

/*
TestValidator_Chain tests that a passing chain yields no error.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("slug", "islay").
		Slug("slug", "islay").
		MaxLen("title", "Islay", 255).
		FloatRange("overall_score", 91, 0, 100).
		Color("color", "#8B4513").
		OneOf("status", "draft", "draft", "published", "archived").
		Err()

	assert.NoError(t, err)
}
