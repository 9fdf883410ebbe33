// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
)

// # Store Contract

// State is the part of a node the lifecycle reasons about. Title and
// Description come from the default-language translation and are empty when
// that translation is missing.
type State struct {
	Kind        Kind
	ID          string
	Slug        string
	Status      Status
	IsActive    bool
	PublishedAt *time.Time
	Title       string
	Description string
}

// Stamp says what a transition does to published_at.
type Stamp int

const (
	StampKeep Stamp = iota
	StampSet
	StampClear
)

// Change is a compare-and-set instruction: apply Next only while the stored
// status still equals Expected.
type Change struct {
	Expected   Status
	Next       Status
	Stamp      Stamp
	At         time.Time
	Deactivate bool
}

// Decider inspects the locked current state and returns the change to apply,
// or an error that aborts the transition without writing.
type Decider func(current *State) (*Change, error)

// StateStore applies lifecycle changes atomically.
//
// Transition must load the current state, call decide, and write the change
// as one unit. When the guarded write affects no row, implementations re-read
// the state and return decide's error for it.
type StateStore interface {
	Transition(context context.Context, kind Kind, id string, decide Decider) (*State, error)
}

// # Preconditions

// Precondition guards publishing. It receives the state before the change.
type Precondition func(current *State) error

// RequireTitle demands a non-blank default-language title.
func RequireTitle(current *State) error {
	if strings.TrimSpace(current.Title) == "" {
		return validate.Field("title", fmt.Sprintf("%s needs a title in the default language before it can be published", current.Kind))
	}
	return nil
}

// RequireTitleAndDescription extends [RequireTitle] with a non-blank description.
func RequireTitleAndDescription(current *State) error {
	if err := RequireTitle(current); err != nil {
		return err
	}
	if strings.TrimSpace(current.Description) == "" {
		return validate.Field("description", fmt.Sprintf("%s needs a description in the default language before it can be published", current.Kind))
	}
	return nil
}

// # Lifecycle

// Lifecycle is the draft/published/archived state machine shared by all kinds.
type Lifecycle struct {
	store         StateStore
	recorder      audit.Recorder
	metrics       *metrics.Catalog
	preconditions map[Kind]Precondition
	now           func() time.Time
}

// NewLifecycle wires the state machine with the default preconditions: items
// need a title and a description, every other kind only a title.
func NewLifecycle(store StateStore, recorder audit.Recorder, collector *metrics.Catalog) *Lifecycle {
	return &Lifecycle{
		store:    store,
		recorder: recorder,
		metrics:  collector,
		preconditions: map[Kind]Precondition{
			KindCategory: RequireTitle,
			KindTopic:    RequireTitle,
			KindSubtopic: RequireTitle,
			KindItem:     RequireTitleAndDescription,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithPrecondition overrides the publish precondition for kind.
func (lifecycle *Lifecycle) WithPrecondition(kind Kind, precondition Precondition) *Lifecycle {
	lifecycle.preconditions[kind] = precondition
	return lifecycle
}

/*
Publish moves a draft node to published and stamps published_at.

Description: The status guard and the kind's precondition run against the
locked current state. Publishing an already published or archived node is a
CONFLICT; a failed precondition is a VALIDATION_ERROR naming the field.

Parameters:
  - context: context.Context
  - kind: Kind
  - id: string (Node UUID)

Returns:
  - *State: The node after the transition
  - error: NOT_FOUND, CONFLICT, VALIDATION_ERROR or persistence errors
*/
func (lifecycle *Lifecycle) Publish(context context.Context, kind Kind, id string) (*State, error) {
	at := lifecycle.now()
	precondition := lifecycle.preconditions[kind]

	return lifecycle.apply(context, kind, id, audit.ActionPublish, func(current *State) (*Change, error) {
		switch current.Status {
		case StatusPublished:
			return nil, apperr.Conflict(fmt.Sprintf("%s is already published", kind))
		case StatusArchived:
			return nil, apperr.Conflict(fmt.Sprintf("archived %s cannot be published", kind))
		}

		if precondition != nil {
			if err := precondition(current); err != nil {
				return nil, err
			}
		}

		return &Change{Expected: StatusDraft, Next: StatusPublished, Stamp: StampSet, At: at}, nil
	})
}

// Unpublish moves a published node back to draft and clears published_at.
func (lifecycle *Lifecycle) Unpublish(context context.Context, kind Kind, id string) (*State, error) {
	return lifecycle.apply(context, kind, id, audit.ActionUnpublish, func(current *State) (*Change, error) {
		if current.Status != StatusPublished {
			return nil, apperr.Conflict(fmt.Sprintf("%s is not currently published", kind))
		}
		return &Change{Expected: StatusPublished, Next: StatusDraft, Stamp: StampClear}, nil
	})
}

// Archive moves a draft or published node to archived.
func (lifecycle *Lifecycle) Archive(context context.Context, kind Kind, id string) (*State, error) {
	return lifecycle.apply(context, kind, id, audit.ActionArchive, func(current *State) (*Change, error) {
		if current.Status == StatusArchived {
			return nil, apperr.Conflict(fmt.Sprintf("%s is already archived", kind))
		}
		return &Change{Expected: current.Status, Next: StatusArchived}, nil
	})
}

// Delete soft-deletes a node: it is deactivated and archived from any state.
func (lifecycle *Lifecycle) Delete(context context.Context, kind Kind, id string) (*State, error) {
	return lifecycle.apply(context, kind, id, audit.ActionDelete, func(current *State) (*Change, error) {
		return &Change{Expected: current.Status, Next: StatusArchived, Deactivate: true}, nil
	})
}

// apply runs one transition and reports it on success.
func (lifecycle *Lifecycle) apply(context context.Context, kind Kind, id, action string, decide Decider) (*State, error) {
	var previous Status
	state, err := lifecycle.store.Transition(context, kind, id, func(current *State) (*Change, error) {
		previous = current.Status
		return decide(current)
	})
	if err != nil {
		return nil, err
	}

	lifecycle.metrics.ObserveTransition(string(kind), action)

	ctxutil.GetLogger(context).Info(EventName(kind, action),
		slog.String("id", id),
		slog.String("slug", state.Slug),
		slog.String("from", string(previous)),
		slog.String("to", string(state.Status)),
	)

	audit.Notify(context, lifecycle.recorder, audit.Entry{
		EntityType: string(kind),
		EntityID:   id,
		Action:     action,
		Summary:    fmt.Sprintf("%s: %s -> %s", state.Slug, previous, state.Status),
	})

	return state, nil
}

// EventName builds the log message for a mutation, e.g. "item_published".
func EventName(kind Kind, action string) string {
	if strings.HasSuffix(action, "e") {
		return string(kind) + "_" + action + "d"
	}
	return string(kind) + "_" + action + "ed"
}
