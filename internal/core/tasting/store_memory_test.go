// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

// memoryStore is an in-process [Store] that counts writes.
type memoryStore struct {
	mu      sync.Mutex
	flavors map[int]*Flavor
	notes   map[string]*Note
	writes  int
}

func newMemoryStore(flavorIDs ...int) *memoryStore {
	store := &memoryStore{flavors: map[int]*Flavor{}, notes: map[string]*Note{}}
	for _, id := range flavorIDs {
		store.flavors[id] = &Flavor{ID: id, Slug: "flavor-" + string(rune('a'+id))}
	}
	return store
}

func copyNote(note *Note) *Note {
	copied := *note
	copied.Notes = append([]NoteText(nil), note.Notes...)
	copied.Aroma = append([]Entry{}, note.Aroma...)
	copied.Taste = append([]Entry{}, note.Taste...)
	copied.Finish = append([]Entry{}, note.Finish...)
	return &copied
}

func (store *memoryStore) ListFlavors(context.Context) ([]*Flavor, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	flavors := make([]*Flavor, 0, len(store.flavors))
	for _, flavor := range store.flavors {
		flavors = append(flavors, flavor)
	}
	sort.Slice(flavors, func(a, b int) bool { return flavors[a].Slug < flavors[b].Slug })
	return flavors, nil
}

func (store *memoryStore) CreateFlavor(_ context.Context, flavor *Flavor) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.flavors {
		if existing.Slug == flavor.Slug {
			return apperr.ValidationError("slug already exists")
		}
	}
	flavor.ID = len(store.flavors) + 100
	store.flavors[flavor.ID] = flavor
	store.writes++
	return nil
}

func (store *memoryStore) MissingFlavors(_ context.Context, ids []int) ([]int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var missing []int
	for _, id := range ids {
		if _, ok := store.flavors[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (store *memoryStore) GetNote(_ context.Context, itemID string) (*Note, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	note, ok := store.notes[itemID]
	if !ok {
		return nil, apperr.NotFound("Tasting note")
	}
	return copyNote(note), nil
}

func (store *memoryStore) SaveNote(_ context.Context, note *Note) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if existing, ok := store.notes[note.ItemID]; ok {
		note.ID = existing.ID
		note.Aroma, note.Taste, note.Finish = existing.Aroma, existing.Taste, existing.Finish
	}
	store.notes[note.ItemID] = copyNote(note)
	store.writes++
	return nil
}

func (store *memoryStore) ReplaceSections(_ context.Context, noteID string, sections map[Section][]Entry) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, note := range store.notes {
		if note.ID != noteID {
			continue
		}
		for section, entries := range sections {
			note.SetSection(section, append([]Entry{}, entries...))
		}
		store.writes++
		return nil
	}
	return apperr.NotFound("Tasting note")
}

// seed stores a note with every section populated.
func (store *memoryStore) seed(itemID string) *Note {
	note := &Note{
		ID:        "note-" + itemID,
		ItemID:    itemID,
		Intensity: 2,
		Aroma:     []Entry{{FlavorID: 1, Intensity: 3, DisplayOrder: 0}},
		Taste:     []Entry{{FlavorID: 2, Intensity: 2, DisplayOrder: 0}},
		Finish:    []Entry{{FlavorID: 3, Intensity: 1, DisplayOrder: 0}},
	}
	store.notes[itemID] = copyNote(note)
	return note
}

// fakeItems answers item lookups for SaveNote.
type fakeItems map[string]bool

func (items fakeItems) Ref(_ context.Context, kind content.Kind, id string) (*content.Ref, error) {
	if !items[id] {
		return nil, apperr.NotFound(kind.Label())
	}
	return &content.Ref{Kind: kind, ID: id, Slug: id}, nil
}

// fakeLanguages knows pl (id 1, default) and en (id 2).
type fakeLanguages struct{}

var (
	polish  = &language.Language{ID: 1, Code: "pl", IsActive: true, IsDefault: true}
	english = &language.Language{ID: 2, Code: "en", IsActive: true}
)

func (fakeLanguages) Lookup(_ context.Context, code string) (*language.Language, error) {
	switch strings.ToLower(code) {
	case "pl":
		return polish, nil
	case "en":
		return english, nil
	}
	return nil, apperr.NotFound("Language")
}

func (languages fakeLanguages) Resolve(context context.Context, code string) (*language.Language, error) {
	if found, err := languages.Lookup(context, code); err == nil {
		return found, nil
	}
	return polish, nil
}

func (fakeLanguages) Default(context.Context) (*language.Language, error) {
	return polish, nil
}
