// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage bounds the page number so OFFSET stays within int range.
	MaxPage = 10000
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Clamp applies the page and size rules shared by list and search endpoints.
//
// A page below 1 becomes 1 and a page above [MaxPage] becomes [MaxPage]. A
// size below 1 becomes [DefaultLimit]; a size above maxLimit is capped at
// maxLimit rather than rejected.
func Clamp(page, size, maxLimit int) Params {
	if maxLimit < 1 || maxLimit > MaxLimit {
		maxLimit = MaxLimit
	}
	switch {
	case page < 1:
		page = DefaultPage
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case size < 1:
		size = DefaultLimit
	case size > maxLimit:
		size = maxLimit
	}
	return Params{Page: page, Limit: size}
}

// FromRequest parses "page" and "limit" (or its alias "size") query
// parameters from an HTTP request and clamps them with [Clamp].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)

	limit := parseIntParam(r, "limit", 0)
	if limit == 0 {
		limit = parseIntParam(r, "size", DefaultLimit)
	}

	return Clamp(page, limit, MaxLimit)
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
