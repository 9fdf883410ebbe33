// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

Bodies are decoded strictly and then checked against their `validate` struct
tags. Business rules that need the store (hierarchy, flavor existence) stay in
the services.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
)

// maxBodyBytes bounds admin payloads; image lists are the largest.
const maxBodyBytes = 1 << 20

// structValidator is safe for concurrent use and caches struct metadata.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

/*
DecodeJSON reads the request body, decodes it into target and runs struct-tag
validation.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, a VALIDATION_ERROR listing
    every failed field, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	if err := structValidator.Struct(target); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return toAppError(fieldErrors)
		}
		return validate.ErrInvalidJSON
	}

	return nil
}

// toAppError converts validator failures to the API's field error shape.
func toAppError(fieldErrors validator.ValidationErrors) error {
	details := make([]apperr.FieldError, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldError.Field(),
			Message: describe(fieldError),
		})
	}

	if len(details) == 1 {
		return apperr.ValidationError(details[0].Field+": "+details[0].Message, details...)
	}
	return apperr.ValidationError("Validation failed", details...)
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Must be at most " + fieldError.Param()
	case "min":
		return "Must be at least " + fieldError.Param()
	case "gte":
		return "Must be greater than or equal to " + fieldError.Param()
	case "lte":
		return "Must be less than or equal to " + fieldError.Param()
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return "Must be one of: " + fieldError.Param()
	default:
		return "Invalid value"
	}
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Lang returns the requested language code from the query string. Empty means
"use the default language".
*/
func Lang(request *http.Request) string {
	return request.URL.Query().Get(constants.QueryLang)
}

/*
Actor returns the identity recorded in audit entries for this request.
*/
func Actor(request *http.Request) string {
	return ctxutil.ActorID(request.Context())
}
