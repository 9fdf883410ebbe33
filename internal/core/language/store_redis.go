// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
)

// RedisRepository is a read-through cache in front of another [Repository].
//
// The active language list is stored as one JSON document. Redis failures are
// logged and the call falls through to the wrapped repository, so a cache
// outage never takes the catalog down.
type RedisRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository wraps next with a Redis cache whose entries live for ttl.
func NewRedisRepository(next Repository, client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{next: next, client: client, ttl: ttl}
}

/*
ListActive implements [Repository].

Description: Serves the cached snapshot when present. On a miss it loads from
the wrapped repository and stores the result with the configured TTL.

Parameters:
  - context: context.Context

Returns:
  - []*Language: Active languages in display order
  - error: Errors from the wrapped repository only
*/
func (repository *RedisRepository) ListActive(context context.Context) ([]*Language, error) {
	logger := ctxutil.GetLogger(context)

	cached, err := repository.client.Get(context, constants.RedisKeyActiveLanguages).Bytes()
	switch {
	case err == nil:
		var languages []*Language
		if err := json.Unmarshal(cached, &languages); err == nil {
			return languages, nil
		}
		logger.Warn("language_cache_corrupt", slog.String("key", constants.RedisKeyActiveLanguages))
	case !errors.Is(err, redis.Nil):
		logger.Warn("language_cache_read_failed", slog.Any("error", err))
	}

	languages, err := repository.next.ListActive(context)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(languages); err == nil {
		if err := repository.client.Set(context, constants.RedisKeyActiveLanguages, payload, repository.ttl).Err(); err != nil {
			logger.Warn("language_cache_write_failed", slog.Any("error", err))
		}
	}

	return languages, nil
}

// Invalidate drops the cached snapshot.
func (repository *RedisRepository) Invalidate(context context.Context) error {
	if err := repository.client.Del(context, constants.RedisKeyActiveLanguages).Err(); err != nil {
		return fmt.Errorf("redis_language_cache_delete_failed: %w", err)
	}
	return nil
}
