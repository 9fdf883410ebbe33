// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/postgres"
)

// fakeTx overrides only the methods WithTx calls.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeStarter struct {
	tx  *fakeTx
	err error
}

func (starter *fakeStarter) Begin(context.Context) (pgx.Tx, error) {
	if starter.err != nil {
		return nil, starter.err
	}
	return starter.tx, nil
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	starter := &fakeStarter{tx: &fakeTx{}}

	err := postgres.WithTx(context.Background(), starter, func(pgx.Tx) error { return nil })

	assert.NoError(t, err)
	assert.True(t, starter.tx.committed)
	assert.False(t, starter.tx.rolledBack)
}

func TestWithTx_RollsBackAndKeepsError(t *testing.T) {
	starter := &fakeStarter{tx: &fakeTx{}}
	conflict := apperr.Conflict("already published")

	err := postgres.WithTx(context.Background(), starter, func(pgx.Tx) error { return conflict })

	assert.Same(t, conflict, err)
	assert.False(t, starter.tx.committed)
	assert.True(t, starter.tx.rolledBack)
}

func TestWithTx_BeginFailure(t *testing.T) {
	starter := &fakeStarter{err: errors.New("pool closed")}

	err := postgres.WithTx(context.Background(), starter, func(pgx.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.Error(t, err)
}
