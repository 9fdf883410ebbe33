// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
)

// # Fakes

// memoryStates serializes transitions the way a row lock would.
type memoryStates struct {
	mu     sync.Mutex
	states map[string]*content.State
	writes int
}

func newMemoryStates(states ...*content.State) *memoryStates {
	store := &memoryStates{states: map[string]*content.State{}}
	for _, state := range states {
		store.states[state.ID] = state
	}
	return store
}

func (store *memoryStates) Transition(_ context.Context, kind content.Kind, id string, decide content.Decider) (*content.State, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, ok := store.states[id]
	if !ok || current.Kind != kind {
		return nil, apperr.NotFound(kind.Label())
	}

	snapshot := *current
	change, err := decide(&snapshot)
	if err != nil {
		return nil, err
	}
	if current.Status != change.Expected {
		return nil, apperr.Conflict("status changed concurrently")
	}

	current.Status = change.Next
	switch change.Stamp {
	case content.StampSet:
		at := change.At
		current.PublishedAt = &at
	case content.StampClear:
		current.PublishedAt = nil
	}
	if change.Deactivate {
		current.IsActive = false
	}
	store.writes++

	result := *current
	return &result, nil
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (recorder *recordingAudit) Record(_ context.Context, entry audit.Entry) error {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.entries = append(recorder.entries, entry)
	return nil
}

func draftItem(title, description string) *content.State {
	return &content.State{
		Kind:        content.KindItem,
		ID:          "item-1",
		Slug:        "talisker-10",
		Status:      content.StatusDraft,
		IsActive:    true,
		Title:       title,
		Description: description,
	}
}

// # Publish

func TestLifecycle_ItemPublishNeedsDescription(t *testing.T) {
	state := draftItem("Talisker 10", "")
	store := newMemoryStates(state)
	lifecycle := content.NewLifecycle(store, nil, nil)

	_, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "description")
	assert.Equal(t, 0, store.writes)

	state.Description = "Maritime, peppery, smoky."

	published, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)
	assert.Equal(t, content.StatusPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)
}

func TestLifecycle_PublishNeedsTitle(t *testing.T) {
	store := newMemoryStates(&content.State{Kind: content.KindTopic, ID: "topic-1", Status: content.StatusDraft})
	lifecycle := content.NewLifecycle(store, nil, nil)

	_, err := lifecycle.Publish(context.Background(), content.KindTopic, "topic-1")
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "title")
}

func TestLifecycle_CategoryNeedsOnlyTitle(t *testing.T) {
	store := newMemoryStates(&content.State{Kind: content.KindCategory, ID: "cat-1", Status: content.StatusDraft, Title: "Whisky"})
	lifecycle := content.NewLifecycle(store, nil, nil)

	_, err := lifecycle.Publish(context.Background(), content.KindCategory, "cat-1")
	assert.NoError(t, err)
}

func TestLifecycle_PublishTwiceConflicts(t *testing.T) {
	store := newMemoryStates(draftItem("Talisker 10", "Smoky"))
	lifecycle := content.NewLifecycle(store, nil, nil)

	_, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)

	_, err = lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	assert.True(t, apperr.IsConflict(err))
	assert.Contains(t, err.Error(), "already published")
}

func TestLifecycle_CustomPrecondition(t *testing.T) {
	store := newMemoryStates(&content.State{Kind: content.KindCategory, ID: "cat-1", Status: content.StatusDraft})
	lifecycle := content.NewLifecycle(store, nil, nil).
		WithPrecondition(content.KindCategory, func(*content.State) error { return nil })

	_, err := lifecycle.Publish(context.Background(), content.KindCategory, "cat-1")
	assert.NoError(t, err)
}

// # Transition table

func TestLifecycle_Transitions(t *testing.T) {
	type operation func(*content.Lifecycle) (*content.State, error)

	publish := func(l *content.Lifecycle) (*content.State, error) {
		return l.Publish(context.Background(), content.KindItem, "item-1")
	}
	unpublish := func(l *content.Lifecycle) (*content.State, error) {
		return l.Unpublish(context.Background(), content.KindItem, "item-1")
	}
	archive := func(l *content.Lifecycle) (*content.State, error) {
		return l.Archive(context.Background(), content.KindItem, "item-1")
	}
	remove := func(l *content.Lifecycle) (*content.State, error) {
		return l.Delete(context.Background(), content.KindItem, "item-1")
	}

	tests := []struct {
		name       string
		from       content.Status
		op         operation
		wantStatus content.Status
		wantErr    string
	}{
		{"unpublish_draft", content.StatusDraft, unpublish, "", "not currently published"},
		{"unpublish_published", content.StatusPublished, unpublish, content.StatusDraft, ""},
		{"unpublish_archived", content.StatusArchived, unpublish, "", "not currently published"},
		{"publish_archived", content.StatusArchived, publish, "", "cannot be published"},
		{"archive_draft", content.StatusDraft, archive, content.StatusArchived, ""},
		{"archive_published", content.StatusPublished, archive, content.StatusArchived, ""},
		{"archive_archived", content.StatusArchived, archive, "", "already archived"},
		{"delete_archived", content.StatusArchived, remove, content.StatusArchived, ""},
		{"delete_published", content.StatusPublished, remove, content.StatusArchived, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := draftItem("Talisker 10", "Smoky")
			state.Status = tt.from
			lifecycle := content.NewLifecycle(newMemoryStates(state), nil, nil)

			got, err := tt.op(lifecycle)
			if tt.wantErr != "" {
				assert.True(t, apperr.IsConflict(err), "got %v", err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.from, state.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestLifecycle_UnpublishClearsTimestamp(t *testing.T) {
	state := draftItem("Talisker 10", "Smoky")
	lifecycle := content.NewLifecycle(newMemoryStates(state), nil, nil)

	_, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)
	require.NotNil(t, state.PublishedAt)

	_, err = lifecycle.Unpublish(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)
	assert.Nil(t, state.PublishedAt)
}

func TestLifecycle_DeleteDeactivates(t *testing.T) {
	state := draftItem("Talisker 10", "Smoky")
	lifecycle := content.NewLifecycle(newMemoryStates(state), nil, nil)

	got, err := lifecycle.Delete(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, content.StatusArchived, got.Status)
}

func TestLifecycle_MissingNode(t *testing.T) {
	lifecycle := content.NewLifecycle(newMemoryStates(), nil, nil)

	_, err := lifecycle.Archive(context.Background(), content.KindTopic, "nope")
	assert.True(t, apperr.IsNotFound(err))
}

// # Concurrency and reporting

func TestLifecycle_ConcurrentPublishSucceedsOnce(t *testing.T) {
	store := newMemoryStates(draftItem("Talisker 10", "Smoky"))
	recorder := &recordingAudit{}
	lifecycle := content.NewLifecycle(store, recorder, nil)

	const publishers = 16
	errs := make(chan error, publishers)

	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, conflicted := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperr.IsConflict(err):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, publishers-1, conflicted)
	assert.Len(t, recorder.entries, 1)
}

func TestLifecycle_ReportsAuditAndMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewWithRegistry(registry, registry)
	recorder := &recordingAudit{}
	lifecycle := content.NewLifecycle(newMemoryStates(draftItem("Talisker 10", "Smoky")), recorder, collector)

	_, err := lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.NoError(t, err)
	_, err = lifecycle.Publish(context.Background(), content.KindItem, "item-1")
	require.Error(t, err)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "item", entry.EntityType)
	assert.Equal(t, audit.ActionPublish, entry.Action)
	assert.Equal(t, "talisker-10: draft -> published", entry.Summary)
	assert.Equal(t, "anonymous", entry.ActorID)

	count, err := testutil.GatherAndCount(registry, "catalog_lifecycle_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
