// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import "context"

// Store defines the data access contract.
type Store interface {
	// # Flavors

	ListFlavors(context context.Context) ([]*Flavor, error)
	CreateFlavor(context context.Context, flavor *Flavor) error

	// MissingFlavors returns the ids in ids that have no flavor row.
	MissingFlavors(context context.Context, ids []int) ([]int, error)

	// # Notes

	// GetNote returns the note of an item, or NOT_FOUND.
	GetNote(context context.Context, itemID string) (*Note, error)

	// SaveNote inserts or updates the scores and replaces the note texts.
	SaveNote(context context.Context, note *Note) error

	// ReplaceSections deletes and re-inserts every given section of a note
	// in one transaction. Sections not in the map are untouched.
	ReplaceSections(context context.Context, noteID string, sections map[Section][]Entry) error
}
