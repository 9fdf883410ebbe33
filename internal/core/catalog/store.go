// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
)

// Store defines the data access contract for all four kinds.
//
// It also provides the lifecycle and hierarchy seams of the content package.
type Store interface {
	content.StateStore
	content.RefLookup

	// Create inserts the node and its translations in one transaction.
	Create(context context.Context, record Record) error

	// Update writes slug, display order and the kind-specific columns.
	Update(context context.Context, record Record) error

	// Get loads one node with translations (and images for items).
	Get(context context.Context, kind content.Kind, id string) (Record, error)

	// List returns active nodes of kind and the total matching count.
	List(context context.Context, kind content.Kind, filter ListFilter, limit, offset int) ([]Record, int, error)

	UpsertTranslation(context context.Context, kind content.Kind, nodeID string, translation content.Translation) error
	DeleteTranslation(context context.Context, kind content.Kind, nodeID string, languageID int) error

	// ReplaceImages swaps the item's whole image list atomically.
	ReplaceImages(context context.Context, itemID string, images []Image) error

	// CountItems counts active items placed under a topic or subtopic.
	CountItems(context context.Context, parent content.Kind, parentID string) (int, error)
}
