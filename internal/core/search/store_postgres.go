// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
)

// PostgresStore implements [Store].
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a [PostgresStore].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Search implements [Store]. Translations and images are batch loaded for
// the page only.
func (store *PostgresStore) Search(context context.Context, query Query) ([]Candidate, int, error) {
	rows, err := store.db.Query(context, query.SQL, query.Args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Item", "search_"+string(query.Shape))
	}
	defer rows.Close()

	var (
		candidates []Candidate
		ids        []string
		total      int
	)
	for rows.Next() {
		var candidate Candidate
		if err := rows.Scan(&candidate.ID, &candidate.Slug, &candidate.PublishedAt, &candidate.OverallScore, &candidate.Rank, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "Item", "scan_search")
		}
		candidates = append(candidates, candidate)
		ids = append(ids, candidate.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Item", "search_"+string(query.Shape))
	}

	translations, err := catalog.LoadTranslations(context, store.db, schema.ItemTranslation, ids)
	if err != nil {
		return nil, 0, err
	}
	images, err := catalog.LoadImages(context, store.db, ids)
	if err != nil {
		return nil, 0, err
	}

	for i := range candidates {
		candidates[i].Translations = translations[candidates[i].ID]
		candidates[i].Images = images[candidates[i].ID]
	}
	return candidates, total, nil
}
