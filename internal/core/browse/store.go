// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"

	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/tasting"
)

// Store reads published content for the public surface.
type Store interface {
	// MenuNodes returns published active categories, topics and subtopics,
	// each kind ordered by display order.
	MenuNodes(context context.Context) ([]MenuNode, error)

	// PublishedID maps a slug to the id of a published active node, or
	// NOT_FOUND.
	PublishedID(context context.Context, kind content.Kind, slug string) (string, error)
}

// Records loads full catalog records.
type Records interface {
	Get(context context.Context, kind content.Kind, id string) (catalog.Record, error)
}

// Notes loads tasting notes and the flavor vocabulary.
type Notes interface {
	GetNote(context context.Context, itemID string) (*tasting.Note, error)
	ListFlavors(context context.Context) ([]*tasting.Flavor, error)
}
