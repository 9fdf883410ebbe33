// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package audit notifies the audit trail about catalog mutations.

Services call [Notify] after every successful create, update, publish,
unpublish, archive and delete. Delivery is best-effort: a failing recorder is
logged and never fails the operation that triggered it.
*/
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
)

// # Actions

const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
	ActionArchive   = "archive"
)

// Entry describes one mutation.
type Entry struct {
	EntityType string
	EntityID   string
	Action     string
	Summary    string
	ActorID    string
	OccurredAt time.Time
}

// Recorder persists or forwards audit entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Notify hands entry to recorder and swallows any failure.
//
// The actor defaults to the identity of the verified token in ctx.
func Notify(ctx context.Context, recorder Recorder, entry Entry) {
	if recorder == nil {
		return
	}

	if entry.ActorID == "" {
		entry.ActorID = ctxutil.ActorID(ctx)
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	if err := recorder.Record(ctx, entry); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "audit_record_failed",
			slog.String("entity_type", entry.EntityType),
			slog.String("entity_id", entry.EntityID),
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)
	}
}

// LogRecorder writes entries as structured log lines.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder returns a recorder that logs on logger.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger.With(slog.String("component", "audit"))}
}

// Record implements [Recorder].
func (recorder *LogRecorder) Record(ctx context.Context, entry Entry) error {
	recorder.logger.InfoContext(ctx, "audit_entry",
		slog.String("entity_type", entry.EntityType),
		slog.String("entity_id", entry.EntityID),
		slog.String("action", entry.Action),
		slog.String("summary", entry.Summary),
		slog.String("actor_id", entry.ActorID),
		slog.Time("occurred_at", entry.OccurredAt),
	)
	return nil
}
