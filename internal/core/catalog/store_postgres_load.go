// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
	"github.com/jkamin61/wmm-sub000/internal/platform/postgres"
)

// # Batch Loaders
//
// Shared with the public read paths, which resolve many nodes per request.

/*
LoadTranslations reads the translations of many nodes in one query.

Description: Rows are ordered by language id so that the resolver's "first
element" fallback is the lowest language id.

Parameters:
  - context: context.Context
  - db: postgres.Querier
  - table: schema.TranslationTable
  - ids: []string (Node UUIDs)

Returns:
  - map[string][]content.Translation: Translations keyed by node id
  - error: Persistence errors
*/
func LoadTranslations(context context.Context, db postgres.Querier, table schema.TranslationTable, ids []string) (map[string][]content.Translation, error) {
	result := make(map[string][]content.Translation, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT %s::text, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		WHERE %s = ANY($1::text[]::uuid[])
		ORDER BY %s, %s;
	`,
		table.NodeID, table.LanguageID, table.Title, table.Subtitle, table.Excerpt,
		table.Description, table.SEOTitle, table.SEODescription,
		table.Table,
		table.NodeID,
		table.NodeID, table.LanguageID,
	)

	rows, err := db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "Translation", "load_translations")
	}
	defer rows.Close()

	for rows.Next() {
		var nodeID string
		var t content.Translation
		if err := rows.Scan(&nodeID, &t.LanguageID, &t.Title, &t.Subtitle, &t.Excerpt, &t.Description, &t.SEOTitle, &t.SEODescription); err != nil {
			return nil, dberr.Wrap(err, "Translation", "scan_translation")
		}
		result[nodeID] = append(result[nodeID], t)
	}

	return result, dberr.Wrap(rows.Err(), "Translation", "load_translations")
}

// LoadImages reads the images of many items, in caller-supplied display
// order, with their alt texts ordered by language id.
func LoadImages(context context.Context, db postgres.Querier, itemIDs []string) (map[string][]Image, error) {
	result := make(map[string][]Image, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	image := schema.ItemImage
	alt := schema.ItemImageTranslation

	query := fmt.Sprintf(`
		SELECT i.%s::text, i.%s::text, i.%s, i.%s, i.%s, a.%s, a.%s
		FROM %s i
		LEFT JOIN %s a ON a.%s = i.%s
		WHERE i.%s = ANY($1::text[]::uuid[])
		ORDER BY i.%s, i.%s, i.%s, a.%s;
	`,
		image.ItemID, image.ID, image.Path, image.DisplayOrder, image.IsPrimary, alt.LanguageID, alt.AltText,
		image.Table,
		alt.Table, alt.ImageID, image.ID,
		image.ItemID,
		image.ItemID, image.DisplayOrder, image.ID, alt.LanguageID,
	)

	rows, err := db.Query(context, query, itemIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "Image", "load_images")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID     string
			current    Image
			languageID *int
			text       *string
		)
		if err := rows.Scan(&itemID, &current.ID, &current.Path, &current.DisplayOrder, &current.IsPrimary, &languageID, &text); err != nil {
			return nil, dberr.Wrap(err, "Image", "scan_image")
		}

		images := result[itemID]
		if n := len(images); n == 0 || images[n-1].ID != current.ID {
			images = append(images, current)
		}
		if languageID != nil && text != nil {
			last := &images[len(images)-1]
			last.AltTexts = append(last.AltTexts, AltText{LanguageID: *languageID, Text: *text})
		}
		result[itemID] = images
	}

	return result, dberr.Wrap(rows.Err(), "Image", "load_images")
}
