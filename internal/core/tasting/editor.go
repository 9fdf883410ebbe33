// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
)

// Editor replaces whole flavor sections of a tasting note.
type Editor struct {
	store    Store
	recorder audit.Recorder
}

// NewEditor constructs an [Editor].
func NewEditor(store Store, recorder audit.Recorder) *Editor {
	return &Editor{store: store, recorder: recorder}
}

/*
Replace applies a flavor profile update to the note of an item.

Description: Every present section is validated first: at most
[constants.MaxSectionEntries] entries, no flavor twice, intensity 1..3, and
every flavor must exist. Only then are the present sections replaced, all in
one transaction. Absent sections keep their entries.

Parameters:
  - context: context.Context
  - itemID: string
  - update: ProfileUpdate

Returns:
  - *Note: The note after the replacement
  - error: VALIDATION_ERROR, NOT_FOUND (note or flavor) or persistence errors
*/
func (editor *Editor) Replace(context context.Context, itemID string, update ProfileUpdate) (*Note, error) {
	present := update.Present()
	if len(present) == 0 {
		return nil, apperr.ValidationError("at least one flavor section is required")
	}

	if err := validateSections(present); err != nil {
		return nil, err
	}

	note, err := editor.store.GetNote(context, itemID)
	if err != nil {
		return nil, err
	}

	missing, err := editor.store.MissingFlavors(context, flavorIDs(present))
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperr.NotFound("Flavor " + joinInts(missing))
	}

	if err := editor.store.ReplaceSections(context, note.ID, present); err != nil {
		return nil, err
	}

	logger := ctxutil.GetLogger(context)
	var replaced []string
	for _, section := range Sections {
		entries, ok := present[section]
		if !ok {
			continue
		}
		note.SetSection(section, entries)
		replaced = append(replaced, string(section))

		logger.Info("flavor_section_replaced",
			slog.String("note_id", note.ID),
			slog.String("section", string(section)),
			slog.Int("entries", len(entries)),
		)
	}

	audit.Notify(context, editor.recorder, audit.Entry{
		EntityType: "tasting_note",
		EntityID:   note.ID,
		Action:     audit.ActionUpdate,
		Summary:    "replaced " + strings.Join(replaced, ", "),
	})

	return note, nil
}

// validateSections checks every present section before anything is written.
func validateSections(present map[Section][]Entry) error {
	validator := &validate.Validator{}

	for _, section := range Sections {
		entries, ok := present[section]
		if !ok {
			continue
		}
		field := string(section)

		validator.MaxItems(field, len(entries), constants.MaxSectionEntries)

		seen := make(map[int]bool, len(entries))
		for i, entry := range entries {
			if seen[entry.FlavorID] {
				validator.Custom(field, true, fmt.Sprintf("flavor %d appears more than once", entry.FlavorID))
			}
			seen[entry.FlavorID] = true

			validator.Range(fmt.Sprintf("%s[%d].intensity", field, i), entry.Intensity, 1, 3)
		}
	}

	return validator.Err()
}

// flavorIDs returns the distinct flavor ids of all present sections, sorted.
func flavorIDs(present map[Section][]Entry) []int {
	unique := map[int]bool{}
	for _, entries := range present {
		for _, entry := range entries {
			unique[entry.FlavorID] = true
		}
	}

	ids := make([]int, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
