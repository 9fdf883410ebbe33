// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tasting manages item tasting notes and the flavor vocabulary.

A tasting note carries four scores and three flavor sections (aroma, taste,
finish). Sections are edited with whole-section replace semantics by the
[Editor]: callers always resubmit the complete list for a section.
*/
package tasting

import (
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
)

// # Flavors

// Flavor is one entry of the flat flavor vocabulary.
type Flavor struct {
	ID    int          `json:"id"`
	Slug  string       `json:"slug"`
	Color string       `json:"color,omitempty"`
	Icon  string       `json:"icon,omitempty"`
	Names []FlavorName `json:"names,omitempty"`
}

// FlavorName is the localized display name of a [Flavor].
type FlavorName struct {
	LanguageID int    `json:"language_id"`
	Name       string `json:"name"`
}

// LanguageKey implements content.Localized.
func (name FlavorName) LanguageKey() int { return name.LanguageID }

// FlavorView is a flavor with its name resolved for one language.
type FlavorView struct {
	ID    int    `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Localize resolves the display name. The slug stands in when the flavor
// has no name at all.
func (flavor *Flavor) Localize(requested, fallback int) FlavorView {
	view := FlavorView{ID: flavor.ID, Slug: flavor.Slug, Name: flavor.Slug, Color: flavor.Color, Icon: flavor.Icon}
	if name, ok := content.Resolve(flavor.Names, requested, fallback); ok {
		view.Name = name.Name
	}
	return view
}

// # Sections

// Section names one of the three flavor profile lists of a note.
type Section string

const (
	SectionAroma  Section = "aroma"
	SectionTaste  Section = "taste"
	SectionFinish Section = "finish"
)

// Sections lists the sections in their canonical order.
var Sections = []Section{SectionAroma, SectionTaste, SectionFinish}

// Entry tags a section with one flavor. DisplayOrder is stored as given.
type Entry struct {
	FlavorID     int `json:"flavor_id"`
	Intensity    int `json:"intensity"`
	DisplayOrder int `json:"display_order"`
}

// # Notes

// Note is the tasting note of one item.
type Note struct {
	ID           string     `json:"id"`
	ItemID       string     `json:"item_id"`
	OverallScore float64    `json:"overall_score"`
	AromaScore   float64    `json:"aroma_score"`
	TasteScore   float64    `json:"taste_score"`
	FinishScore  float64    `json:"finish_score"`
	Intensity    int        `json:"intensity"`
	TastedAt     *time.Time `json:"tasted_at,omitempty"`
	TasterName   string     `json:"taster_name,omitempty"`
	Notes        []NoteText `json:"notes,omitempty"`
	Aroma        []Entry    `json:"aroma"`
	Taste        []Entry    `json:"taste"`
	Finish       []Entry    `json:"finish"`
}

// NoteText is the per-language prose of a [Note].
type NoteText struct {
	LanguageID int    `json:"language_id"`
	Text       string `json:"text"`
}

// LanguageKey implements content.Localized.
func (text NoteText) LanguageKey() int { return text.LanguageID }

// Section returns the entries of one section.
func (note *Note) Section(section Section) []Entry {
	switch section {
	case SectionAroma:
		return note.Aroma
	case SectionTaste:
		return note.Taste
	default:
		return note.Finish
	}
}

// SetSection replaces the entries of one section.
func (note *Note) SetSection(section Section, entries []Entry) {
	switch section {
	case SectionAroma:
		note.Aroma = entries
	case SectionTaste:
		note.Taste = entries
	default:
		note.Finish = entries
	}
}

// # Profile updates

// ProfileUpdate is a flavor profile edit. A nil section is left untouched;
// a pointer to an empty slice clears that section.
type ProfileUpdate struct {
	Aroma  *[]Entry `json:"aroma"`
	Taste  *[]Entry `json:"taste"`
	Finish *[]Entry `json:"finish"`
}

// Present returns the sections included in the update, keyed by section.
func (update ProfileUpdate) Present() map[Section][]Entry {
	present := map[Section][]Entry{}
	if update.Aroma != nil {
		present[SectionAroma] = *update.Aroma
	}
	if update.Taste != nil {
		present[SectionTaste] = *update.Taste
	}
	if update.Finish != nil {
		present[SectionFinish] = *update.Finish
	}
	return present
}
