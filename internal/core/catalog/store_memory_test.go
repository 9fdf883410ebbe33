// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

// memoryStore is an in-process [Store] used by the service tests.
type memoryStore struct {
	mu          sync.Mutex
	records     map[content.Kind]map[string]Record
	defaultLang int
	writes      int
}

func newMemoryStore(defaultLang int) *memoryStore {
	store := &memoryStore{records: map[content.Kind]map[string]Record{}, defaultLang: defaultLang}
	for _, kind := range content.Kinds {
		store.records[kind] = map[string]Record{}
	}
	return store
}

func clone(record Record) Record {
	switch typed := record.(type) {
	case *Category:
		copied := *typed
		copied.Translations = append([]content.Translation(nil), typed.Translations...)
		return &copied
	case *Topic:
		copied := *typed
		copied.Translations = append([]content.Translation(nil), typed.Translations...)
		return &copied
	case *Subtopic:
		copied := *typed
		copied.Translations = append([]content.Translation(nil), typed.Translations...)
		return &copied
	case *Item:
		copied := *typed
		copied.Translations = append([]content.Translation(nil), typed.Translations...)
		copied.Images = append([]Image(nil), typed.Images...)
		return &copied
	}
	return nil
}

func (store *memoryStore) Create(_ context.Context, record Record) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.records[record.Kind()] {
		if existing.Base().Slug == record.Base().Slug {
			return apperr.ValidationError("slug already exists")
		}
	}

	now := time.Now().UTC()
	record.Base().CreatedAt = now
	record.Base().UpdatedAt = now
	store.records[record.Kind()][record.Base().ID] = clone(record)
	store.writes++
	return nil
}

func (store *memoryStore) Update(_ context.Context, record Record) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.records[record.Kind()][record.Base().ID]
	if !ok || !existing.Base().IsActive {
		return apperr.NotFound(record.Kind().Label())
	}
	for id, other := range store.records[record.Kind()] {
		if id != record.Base().ID && other.Base().Slug == record.Base().Slug {
			return apperr.ValidationError("slug already exists")
		}
	}

	updated := clone(record)
	updated.Base().Status = existing.Base().Status
	updated.Base().PublishedAt = existing.Base().PublishedAt
	updated.Base().Translations = existing.Base().Translations
	store.records[record.Kind()][record.Base().ID] = updated
	store.writes++
	return nil
}

func (store *memoryStore) Get(_ context.Context, kind content.Kind, id string) (Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.records[kind][id]
	if !ok {
		return nil, apperr.NotFound(kind.Label())
	}
	return clone(record), nil
}

func (store *memoryStore) List(_ context.Context, kind content.Kind, filter ListFilter, limit, offset int) ([]Record, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var matched []Record
	for _, record := range store.records[kind] {
		node := record.Base()
		if !node.IsActive {
			continue
		}
		if filter.Status != nil && node.Status != *filter.Status {
			continue
		}
		matched = append(matched, clone(record))
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].Base().Slug < matched[b].Base().Slug })

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (store *memoryStore) UpsertTranslation(_ context.Context, kind content.Kind, nodeID string, translation content.Translation) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	node := store.records[kind][nodeID].Base()
	for i, existing := range node.Translations {
		if existing.LanguageID == translation.LanguageID {
			node.Translations[i] = translation
			store.writes++
			return nil
		}
	}
	node.Translations = append(node.Translations, translation)
	sort.Slice(node.Translations, func(a, b int) bool { return node.Translations[a].LanguageID < node.Translations[b].LanguageID })
	store.writes++
	return nil
}

func (store *memoryStore) DeleteTranslation(_ context.Context, kind content.Kind, nodeID string, languageID int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	node := store.records[kind][nodeID].Base()
	for i, existing := range node.Translations {
		if existing.LanguageID == languageID {
			node.Translations = append(node.Translations[:i], node.Translations[i+1:]...)
			store.writes++
			return nil
		}
	}
	return apperr.NotFound("Translation")
}

func (store *memoryStore) ReplaceImages(_ context.Context, itemID string, images []Image) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.records[content.KindItem][itemID].(*Item).Images = append([]Image(nil), images...)
	store.writes++
	return nil
}

func (store *memoryStore) CountItems(_ context.Context, parent content.Kind, parentID string) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	count := 0
	for _, record := range store.records[content.KindItem] {
		item := record.(*Item)
		if !item.IsActive {
			continue
		}
		switch {
		case parent == content.KindTopic && item.TopicID == parentID:
			count++
		case parent == content.KindSubtopic && item.SubtopicID != nil && *item.SubtopicID == parentID:
			count++
		}
	}
	return count, nil
}

func (store *memoryStore) Ref(_ context.Context, kind content.Kind, id string) (*content.Ref, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.records[kind][id]
	if !ok || !record.Base().IsActive {
		return nil, apperr.NotFound(kind.Label())
	}

	ref := &content.Ref{Kind: kind, ID: id, Slug: record.Base().Slug}
	switch typed := record.(type) {
	case *Topic:
		ref.ParentID = typed.CategoryID
	case *Subtopic:
		ref.ParentID = typed.TopicID
	}
	return ref, nil
}

func (store *memoryStore) Transition(_ context.Context, kind content.Kind, id string, decide content.Decider) (*content.State, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.records[kind][id]
	if !ok {
		return nil, apperr.NotFound(kind.Label())
	}
	node := record.Base()

	state := &content.State{Kind: kind, ID: id, Slug: node.Slug, Status: node.Status, IsActive: node.IsActive, PublishedAt: node.PublishedAt}
	for _, translation := range node.Translations {
		if translation.LanguageID == store.defaultLang {
			state.Title = translation.Title
			state.Description = translation.Description
		}
	}

	change, err := decide(state)
	if err != nil {
		return nil, err
	}

	node.Status = change.Next
	switch change.Stamp {
	case content.StampSet:
		at := change.At
		node.PublishedAt = &at
	case content.StampClear:
		node.PublishedAt = nil
	}
	if change.Deactivate {
		node.IsActive = false
	}
	store.writes++

	state.Status = node.Status
	state.PublishedAt = node.PublishedAt
	state.IsActive = node.IsActive
	return state, nil
}

// # Languages

type fakeLanguages struct {
	byCode map[string]*language.Language
}

func newFakeLanguages() *fakeLanguages {
	return &fakeLanguages{byCode: map[string]*language.Language{
		"pl": {ID: 1, Code: "pl", IsActive: true, IsDefault: true},
		"en": {ID: 2, Code: "en", IsActive: true},
	}}
}

func (languages *fakeLanguages) Lookup(_ context.Context, code string) (*language.Language, error) {
	if lang, ok := languages.byCode[code]; ok {
		return lang, nil
	}
	return nil, apperr.NotFound("Language")
}

func (languages *fakeLanguages) Default(context.Context) (*language.Language, error) {
	if lang, ok := languages.byCode["pl"]; ok {
		return lang, nil
	}
	return nil, apperr.Configuration(errors.New("no default language"))
}
