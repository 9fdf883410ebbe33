// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"sync"
)

// Cache holds an in-process snapshot of the active languages.
//
// It is created once at startup and shared by reference. Readers take the
// read lock; the first reader after construction or [Cache.Invalidate]
// loads a fresh snapshot under the write lock.
type Cache struct {
	repository Repository

	mu       sync.RWMutex
	loaded   bool
	ordered  []*Language
	byCode   map[string]*Language
	fallback *Language
}

// snapshot is an immutable view handed to readers.
type snapshot struct {
	ordered  []*Language
	byCode   map[string]*Language
	fallback *Language
}

// NewCache builds an empty cache over repository.
func NewCache(repository Repository) *Cache {
	return &Cache{repository: repository}
}

// Invalidate forces the next read to reload from the repository.
func (cache *Cache) Invalidate() {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.loaded = false
	cache.ordered = nil
	cache.byCode = nil
	cache.fallback = nil
}

func (cache *Cache) get(ctx context.Context) (snapshot, error) {
	cache.mu.RLock()
	if cache.loaded {
		current := snapshot{ordered: cache.ordered, byCode: cache.byCode, fallback: cache.fallback}
		cache.mu.RUnlock()
		return current, nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Another goroutine may have loaded while we waited for the write lock.
	if cache.loaded {
		return snapshot{ordered: cache.ordered, byCode: cache.byCode, fallback: cache.fallback}, nil
	}

	languages, err := cache.repository.ListActive(ctx)
	if err != nil {
		return snapshot{}, err
	}

	byCode := make(map[string]*Language, len(languages))
	var fallback *Language
	for _, l := range languages {
		byCode[normalizeCode(l.Code)] = l
		if l.IsDefault && fallback == nil {
			fallback = l
		}
	}

	cache.loaded = true
	cache.ordered = languages
	cache.byCode = byCode
	cache.fallback = fallback

	return snapshot{ordered: languages, byCode: byCode, fallback: fallback}, nil
}
