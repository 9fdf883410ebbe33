// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
)

// PostgresRepository reads languages from catalog.language.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListActive implements [Repository].
func (repository *PostgresRepository) ListActive(context context.Context) ([]*Language, error) {
	table := schema.CatalogLanguage

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s ASC, %s ASC;
	`,
		strings.Join(table.Columns(), ", "),
		table.CreatedAt,
		table.Table,
		table.IsActive,
		table.DisplayOrder,
		table.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Language", "list_languages")
	}
	defer rows.Close()

	var languages []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsActive, &l.IsDefault, &l.DisplayOrder, &l.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Language", "scan_language")
		}
		languages = append(languages, l)
	}

	return languages, dberr.Wrap(rows.Err(), "Language", "list_languages")
}
