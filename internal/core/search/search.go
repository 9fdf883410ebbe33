// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search finds published items with an optional full-text query and
scalar and flavor filters.

Every search is composed into exactly one of four query shapes. Relevance
ranking only exists when there is text to rank against, and the flavor
filter is a join over three sibling section tables that is added or removed
as a unit.
*/
package search

import (
	"strings"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/slug"
)

// # Query shapes

// Shape names the composed query variant.
type Shape string

const (
	ShapeTextAndFlavors Shape = "text_and_flavors"
	ShapeTextOnly       Shape = "text_only"
	ShapeFlavorsOnly    Shape = "flavors_only"
	ShapeFilterOnly     Shape = "filter_only"
)

// Ranked reports whether the shape orders by text relevance.
func (shape Shape) Ranked() bool {
	return shape == ShapeTextAndFlavors || shape == ShapeTextOnly
}

// # Criteria

// Criteria are the inputs of one search. Nil pointers mean "no filter".
type Criteria struct {
	Text       string
	CategoryID *string
	TopicID    *string
	SubtopicID *string
	Featured   *bool
	MinScore   *float64
	MaxScore   *float64
	Flavors    []string
	Language   string
	Page       int
	Size       int
}

// Normalize trims the text, normalizes flavor slugs and clamps paging.
// A whitespace-only text becomes no text.
func (criteria Criteria) Normalize(maxSize int) Criteria {
	criteria.Text = strings.TrimSpace(criteria.Text)

	var flavors []string
	seen := map[string]bool{}
	for _, raw := range criteria.Flavors {
		value := slug.Normalize(raw)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		flavors = append(flavors, value)
	}
	criteria.Flavors = flavors

	params := pagination.Clamp(criteria.Page, criteria.Size, maxSize)
	criteria.Page, criteria.Size = params.Page, params.Limit
	return criteria
}

// Shape selects the query variant for normalized criteria.
func (criteria Criteria) Shape() Shape {
	hasText := criteria.Text != ""
	hasFlavors := len(criteria.Flavors) > 0

	switch {
	case hasText && hasFlavors:
		return ShapeTextAndFlavors
	case hasText:
		return ShapeTextOnly
	case hasFlavors:
		return ShapeFlavorsOnly
	default:
		return ShapeFilterOnly
	}
}

// # Results

// Candidate is one matched item with the raw data its summary is built from.
type Candidate struct {
	ID           string
	Slug         string
	PublishedAt  *time.Time
	Rank         float64
	OverallScore *float64
	Translations []content.Translation
	Images       []catalog.Image
}

// Summary is the language-resolved list view of an item.
type Summary struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Excerpt      string   `json:"excerpt,omitempty"`
	ImagePath    string   `json:"image_path,omitempty"`
	OverallScore *float64 `json:"overall_score,omitempty"`
}

// Summarize resolves a candidate for the requested language. Missing
// translation or image data leaves the field empty; the title falls back to
// the slug.
func Summarize(candidate Candidate, requested, fallback int) Summary {
	summary := Summary{
		ID:           candidate.ID,
		Slug:         candidate.Slug,
		Title:        content.Title(candidate.Translations, requested, fallback, candidate.Slug),
		OverallScore: candidate.OverallScore,
	}

	if translation, ok := content.Resolve(candidate.Translations, requested, fallback); ok {
		summary.Subtitle = translation.Subtitle
		summary.Excerpt = translation.Excerpt
	}

	for _, image := range candidate.Images {
		if image.IsPrimary {
			summary.ImagePath = image.Path
			break
		}
	}
	return summary
}

// Result is one page of summaries.
type Result struct {
	Shape Shape           `json:"-"`
	Items []Summary       `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}
