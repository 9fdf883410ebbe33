// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

// # Fakes

type fakeRepository struct {
	mu        sync.Mutex
	languages []*Language
	err       error
	calls     int
}

func (repository *fakeRepository) ListActive(context.Context) ([]*Language, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.calls++
	if repository.err != nil {
		return nil, repository.err
	}
	return repository.languages, nil
}

type fakeInvalidator struct {
	err   error
	calls int
}

func (invalidator *fakeInvalidator) Invalidate(context.Context) error {
	invalidator.calls++
	return invalidator.err
}

func seeded() *fakeRepository {
	return &fakeRepository{languages: []*Language{
		{ID: 1, Code: "pl", Name: "Polish", IsActive: true, IsDefault: true},
		{ID: 2, Code: "en", Name: "English", IsActive: true, DisplayOrder: 1},
	}}
}

// # Registry

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry(NewCache(seeded()), nil)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"exact", "en", "en"},
		{"case_and_space", "  EN ", "en"},
		{"empty_falls_back", "", "pl"},
		{"unknown_falls_back", "de", "pl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Resolve(context.Background(), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestRegistry_NoDefaultIsConfigurationError(t *testing.T) {
	repository := &fakeRepository{languages: []*Language{{ID: 2, Code: "en", IsActive: true}}}
	registry := NewRegistry(NewCache(repository), nil)

	_, err := registry.Resolve(context.Background(), "de")
	assert.True(t, apperr.HasCode(err, apperr.CodeConfiguration))

	_, err = registry.Default(context.Background())
	assert.True(t, apperr.HasCode(err, apperr.CodeConfiguration))

	// A known code still resolves without a default.
	got, err := registry.Resolve(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry(NewCache(seeded()), nil)

	got, err := registry.Lookup(context.Background(), "PL")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	_, err = registry.Lookup(context.Background(), "de")
	assert.True(t, apperr.IsNotFound(err))
}

func TestRegistry_RepositoryErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	registry := NewRegistry(NewCache(&fakeRepository{err: boom}), nil)

	_, err := registry.Resolve(context.Background(), "en")
	assert.ErrorIs(t, err, boom)
}

// # Cache

func TestCache_LoadsOnceUntilInvalidated(t *testing.T) {
	repository := seeded()
	invalidator := &fakeInvalidator{}
	registry := NewRegistry(NewCache(repository), invalidator)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = registry.Resolve(context.Background(), "en")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, repository.calls)

	require.NoError(t, registry.Invalidate(context.Background()))
	assert.Equal(t, 1, invalidator.calls)

	languages, err := registry.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, languages, 2)
	assert.Equal(t, 2, repository.calls)
}

func TestRegistry_InvalidateSharedFailure(t *testing.T) {
	registry := NewRegistry(NewCache(seeded()), &fakeInvalidator{err: errors.New("redis down")})

	err := registry.Invalidate(context.Background())
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

// # Redis decorator

func TestRedisRepository_FallsThroughWhenRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	inner := seeded()
	repository := NewRedisRepository(inner, client, time.Minute)

	languages, err := repository.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, languages, 2)
	assert.Equal(t, 1, inner.calls)

	assert.Error(t, repository.Invalidate(context.Background()))
}
