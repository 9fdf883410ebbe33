// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr bridges low-level PostgreSQL errors and application errors.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

// SQLSTATE codes the catalog reacts to.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	invalidText         = "22P02"
)

// Wrap classifies a database error into an [apperr.AppError].
//
// resource names the entity for NOT_FOUND messages (e.g. "Item"); action is
// recorded on internal errors for log correlation.
//
//   - pgx.ErrNoRows -> NOT_FOUND
//   - unique violation -> VALIDATION_ERROR naming the constraint
//   - foreign key violation -> NOT_FOUND for the referenced resource
//   - check violation -> VALIDATION_ERROR
//   - invalid text representation (malformed UUID) -> NOT_FOUND
//   - anything else -> INTERNAL_ERROR
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	if apperr.As(err) != nil {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperr.ValidationError(fmt.Sprintf("%s already exists", describeUnique(pgErr)))
		case foreignKeyViolation:
			return apperr.NotFound("Referenced resource")
		case checkViolation:
			return apperr.ValidationError(fmt.Sprintf("%s violates constraint %s", resource, pgErr.ConstraintName))
		case invalidText:
			return apperr.NotFound(resource)
		}
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}

// describeUnique turns a unique-constraint name into a client-safe subject.
func describeUnique(pgErr *pgconn.PgError) string {
	switch {
	case strings.Contains(pgErr.ConstraintName, "slug"):
		return "slug"
	case pgErr.ColumnName != "":
		return pgErr.ColumnName
	case pgErr.ConstraintName != "":
		return pgErr.ConstraintName
	default:
		return "record"
	}
}
