// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
	"github.com/jkamin61/wmm-sub000/pkg/slug"
	"github.com/jkamin61/wmm-sub000/pkg/uuid"
)

// Languages resolves language codes.
type Languages interface {
	Lookup(context context.Context, code string) (*language.Language, error)
	Resolve(context context.Context, code string) (*language.Language, error)
	Default(context context.Context) (*language.Language, error)
}

// NoteInput is the admin payload for a tasting note. Notes is keyed by
// language code; TastedAt uses the YYYY-MM-DD layout.
type NoteInput struct {
	OverallScore float64           `json:"overall_score" validate:"gte=0,lte=100"`
	AromaScore   float64           `json:"aroma_score" validate:"gte=0,lte=100"`
	TasteScore   float64           `json:"taste_score" validate:"gte=0,lte=100"`
	FinishScore  float64           `json:"finish_score" validate:"gte=0,lte=100"`
	Intensity    int               `json:"intensity" validate:"gte=1,lte=3"`
	TastedAt     string            `json:"tasted_at"`
	TasterName   string            `json:"taster_name" validate:"max=120"`
	Notes        map[string]string `json:"notes"`
}

// FlavorInput is the admin payload for a new flavor. Names is keyed by
// language code.
type FlavorInput struct {
	Slug  string            `json:"slug" validate:"required,max=160"`
	Color string            `json:"color"`
	Icon  string            `json:"icon" validate:"max=64"`
	Names map[string]string `json:"names"`
}

const dateLayout = "2006-01-02"

// # Service Layer

// Service manages tasting notes and the flavor vocabulary.
type Service struct {
	store     Store
	items     content.RefLookup
	languages Languages
	recorder  audit.Recorder
}

// NewService constructs a [Service]. items confirms that an item exists
// before a note is attached to it.
func NewService(store Store, items content.RefLookup, languages Languages, recorder audit.Recorder) *Service {
	return &Service{store: store, items: items, languages: languages, recorder: recorder}
}

// GetNote returns the tasting note of an item.
func (service *Service) GetNote(context context.Context, itemID string) (*Note, error) {
	return service.store.GetNote(context, itemID)
}

/*
SaveNote creates or updates the tasting note of an item.

Description: Scores must lie in [0, 100] and intensity in 1..3. Notes texts
replace the stored ones. Flavor sections are not touched; they are edited
through the [Editor].

Parameters:
  - context: context.Context
  - itemID: string
  - input: NoteInput

Returns:
  - *Note: The saved note with its sections
  - error: VALIDATION_ERROR, NOT_FOUND (item or language)
*/
func (service *Service) SaveNote(context context.Context, itemID string, input NoteInput) (*Note, error) {
	validator := &validate.Validator{}
	validator.FloatRange("overall_score", input.OverallScore, 0, 100).
		FloatRange("aroma_score", input.AromaScore, 0, 100).
		FloatRange("taste_score", input.TasteScore, 0, 100).
		FloatRange("finish_score", input.FinishScore, 0, 100).
		Range("intensity", input.Intensity, 1, 3).
		MaxLen("taster_name", input.TasterName, 120)

	var tastedAt *time.Time
	if raw := strings.TrimSpace(input.TastedAt); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		validator.Custom("tasted_at", err != nil, "Must be a date like 2026-01-31")
		if err == nil {
			tastedAt = &parsed
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.items.Ref(context, content.KindItem, itemID); err != nil {
		return nil, err
	}

	texts := make([]NoteText, 0, len(input.Notes))
	for code, text := range input.Notes {
		lang, err := service.languages.Lookup(context, code)
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			texts = append(texts, NoteText{LanguageID: lang.ID, Text: trimmed})
		}
	}
	sort.Slice(texts, func(a, b int) bool { return texts[a].LanguageID < texts[b].LanguageID })

	note, err := service.store.GetNote(context, itemID)
	switch {
	case apperr.IsNotFound(err):
		note = &Note{ID: uuid.New(), ItemID: itemID}
	case err != nil:
		return nil, err
	}

	note.OverallScore = input.OverallScore
	note.AromaScore = input.AromaScore
	note.TasteScore = input.TasteScore
	note.FinishScore = input.FinishScore
	note.Intensity = input.Intensity
	note.TastedAt = tastedAt
	note.TasterName = strings.TrimSpace(input.TasterName)
	note.Notes = texts

	if err := service.store.SaveNote(context, note); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("tasting_note_saved",
		slog.String("item_id", itemID),
		slog.String("note_id", note.ID),
	)
	audit.Notify(context, service.recorder, audit.Entry{
		EntityType: "tasting_note",
		EntityID:   note.ID,
		Action:     audit.ActionUpdate,
		Summary:    "scores and notes saved for item " + itemID,
	})

	return note, nil
}

// # Flavors

// ListFlavors returns the whole flavor vocabulary ordered by slug.
func (service *Service) ListFlavors(context context.Context) ([]*Flavor, error) {
	return service.store.ListFlavors(context)
}

// ListLocalizedFlavors returns the vocabulary with names resolved for code.
// Unknown codes fall back to the default language.
func (service *Service) ListLocalizedFlavors(context context.Context, code string) ([]FlavorView, error) {
	lang, err := service.languages.Resolve(context, code)
	if err != nil {
		return nil, err
	}
	fallback, err := service.languages.Default(context)
	if err != nil {
		return nil, err
	}

	flavors, err := service.store.ListFlavors(context)
	if err != nil {
		return nil, err
	}

	views := make([]FlavorView, 0, len(flavors))
	for _, flavor := range flavors {
		views = append(views, flavor.Localize(lang.ID, fallback.ID))
	}
	return views, nil
}

// CreateFlavor adds a flavor to the vocabulary.
func (service *Service) CreateFlavor(context context.Context, input FlavorInput) (*Flavor, error) {
	flavor := &Flavor{
		Slug:  slug.Normalize(input.Slug),
		Color: strings.ToUpper(strings.TrimSpace(input.Color)),
		Icon:  strings.TrimSpace(input.Icon),
	}

	validator := &validate.Validator{}
	validator.Required("slug", flavor.Slug).
		MaxLen("slug", flavor.Slug, constants.MaxSlugLength).
		Slug("slug", flavor.Slug).
		Color("color", flavor.Color)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	for code, name := range input.Names {
		lang, err := service.languages.Lookup(context, code)
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			flavor.Names = append(flavor.Names, FlavorName{LanguageID: lang.ID, Name: trimmed})
		}
	}
	sort.Slice(flavor.Names, func(a, b int) bool { return flavor.Names[a].LanguageID < flavor.Names[b].LanguageID })

	if err := service.store.CreateFlavor(context, flavor); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("flavor_created", slog.String("slug", flavor.Slug), slog.Int("id", flavor.ID))
	audit.Notify(context, service.recorder, audit.Entry{
		EntityType: "flavor",
		EntityID:   flavor.Slug,
		Action:     audit.ActionCreate,
		Summary:    "created " + flavor.Slug,
	})

	return flavor, nil
}
