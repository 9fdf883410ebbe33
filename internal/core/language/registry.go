// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
)

// errNoDefault is wrapped in a CONFIGURATION_ERROR when no active default exists.
var errNoDefault = errors.New("no active default language configured")

// Invalidator clears a shared cache tier such as [RedisRepository].
type Invalidator interface {
	Invalidate(context context.Context) error
}

// # Registry

// Registry resolves language codes against the active language set.
// It is read-only and safe for concurrent use.
type Registry struct {
	cache  *Cache
	shared Invalidator
}

// NewRegistry constructs a [Registry] over cache. shared may be nil when no
// distributed cache sits beneath the repository.
func NewRegistry(cache *Cache, shared Invalidator) *Registry {
	return &Registry{cache: cache, shared: shared}
}

/*
Resolve maps a requested language code to an active language.

Description: The code is trimmed and compared case-insensitively against the
active set. An empty or unknown code yields the default language.

Parameters:
  - context: context.Context
  - code: string (e.g. "en", " PL ", "")

Returns:
  - *Language: The matched or default language
  - error: CONFIGURATION_ERROR when no default language exists
*/
func (registry *Registry) Resolve(context context.Context, code string) (*Language, error) {
	current, err := registry.cache.get(context)
	if err != nil {
		return nil, err
	}

	if match, ok := current.byCode[normalizeCode(code)]; ok {
		return match, nil
	}

	if current.fallback == nil {
		return nil, apperr.Configuration(errNoDefault)
	}
	return current.fallback, nil
}

// Default returns the single default language.
func (registry *Registry) Default(context context.Context) (*Language, error) {
	current, err := registry.cache.get(context)
	if err != nil {
		return nil, err
	}
	if current.fallback == nil {
		return nil, apperr.Configuration(errNoDefault)
	}
	return current.fallback, nil
}

// Lookup is the strict variant of [Registry.Resolve] used by admin writes:
// an unknown or inactive code is NOT_FOUND instead of falling back.
func (registry *Registry) Lookup(context context.Context, code string) (*Language, error) {
	current, err := registry.cache.get(context)
	if err != nil {
		return nil, err
	}

	if match, ok := current.byCode[normalizeCode(code)]; ok {
		return match, nil
	}
	return nil, apperr.NotFound("Language")
}

// List returns the active languages in display order.
func (registry *Registry) List(context context.Context) ([]*Language, error) {
	current, err := registry.cache.get(context)
	if err != nil {
		return nil, err
	}
	return current.ordered, nil
}

// Invalidate clears the shared cache tier first, then the process snapshot.
func (registry *Registry) Invalidate(context context.Context) error {
	if registry.shared != nil {
		if err := registry.shared.Invalidate(context); err != nil {
			return apperr.Internal(err)
		}
	}
	registry.cache.Invalidate()

	ctxutil.GetLogger(context).Info("language_cache_invalidated",
		slog.Bool("shared", registry.shared != nil),
	)
	return nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
