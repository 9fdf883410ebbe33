// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/slice"
	"github.com/jkamin61/wmm-sub000/pkg/uuid"
)

// Languages resolves the requested language with fallback to the default.
type Languages interface {
	Resolve(context context.Context, code string) (*language.Language, error)
	Default(context context.Context) (*language.Language, error)
}

// Service runs searches and shapes their results.
type Service struct {
	store     Store
	languages Languages
	metrics   *metrics.Catalog
	maxSize   int
}

// NewService constructs a [Service]. maxSize caps the page size.
func NewService(store Store, languages Languages, collectors *metrics.Catalog, maxSize int) *Service {
	return &Service{store: store, languages: languages, metrics: collectors, maxSize: maxSize}
}

/*
Search finds published items matching criteria.

Description: Criteria are normalized, the language is resolved (unknown
codes fall back to the default), the query is composed into one of four
shapes and executed. Each hit is summarized for the resolved language.

Parameters:
  - context: context.Context
  - criteria: Criteria

Returns:
  - *Result: One page of summaries and pagination metadata
  - error: VALIDATION_ERROR for malformed filters, CONFIGURATION_ERROR when
    no default language exists, or persistence errors
*/
func (service *Service) Search(context context.Context, criteria Criteria) (*Result, error) {
	criteria = criteria.Normalize(service.maxSize)
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	requested, err := service.languages.Resolve(context, criteria.Language)
	if err != nil {
		return nil, err
	}
	fallback, err := service.languages.Default(context)
	if err != nil {
		return nil, err
	}

	query := Compose(criteria, requested.ID)

	started := time.Now()
	candidates, total, err := service.store.Search(context, query)
	elapsed := time.Since(started)
	service.metrics.ObserveSearch(string(query.Shape), elapsed)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Debug("search_executed",
		slog.String("shape", string(query.Shape)),
		slog.Int("total", total),
		slog.Duration("elapsed", elapsed),
	)

	items := slice.Map(candidates, func(candidate Candidate) Summary {
		return Summarize(candidate, requested.ID, fallback.ID)
	})
	if items == nil {
		items = []Summary{}
	}

	return &Result{
		Shape: query.Shape,
		Items: items,
		Meta:  pagination.NewMeta(criteria.Page, criteria.Size, total),
	}, nil
}

func validateCriteria(criteria Criteria) error {
	validator := &validate.Validator{}

	filters := []struct {
		field string
		id    *string
	}{
		{"category", criteria.CategoryID},
		{"topic", criteria.TopicID},
		{"subtopic", criteria.SubtopicID},
	}
	for _, filter := range filters {
		validator.Custom(filter.field, filter.id != nil && !uuid.Valid(*filter.id), "Must be a valid UUID")
	}

	if criteria.MinScore != nil {
		validator.FloatRange("minScore", *criteria.MinScore, 0, 100)
	}
	if criteria.MaxScore != nil {
		validator.FloatRange("maxScore", *criteria.MaxScore, 0, 100)
	}
	if criteria.MinScore != nil && criteria.MaxScore != nil {
		validator.Custom("minScore", *criteria.MinScore > *criteria.MaxScore, "Must not exceed maxScore")
	}

	return validator.Err()
}
