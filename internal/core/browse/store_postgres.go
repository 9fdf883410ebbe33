// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
)

// menuTables are the menu levels in tree order.
var menuTables = []struct {
	kind        content.Kind
	node        schema.NodeTable
	translation schema.TranslationTable
}{
	{content.KindCategory, schema.CatalogCategory, schema.CategoryTranslation},
	{content.KindTopic, schema.CatalogTopic, schema.TopicTranslation},
	{content.KindSubtopic, schema.CatalogSubtopic, schema.SubtopicTranslation},
}

// PostgresStore implements [Store].
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a [PostgresStore].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// MenuNodes implements [Store].
func (store *PostgresStore) MenuNodes(context context.Context) ([]MenuNode, error) {
	var nodes []MenuNode

	for _, level := range menuTables {
		table := level.node

		parent := "''"
		if table.Parent != "" {
			parent = table.Parent + "::text"
		}

		query := fmt.Sprintf(`
			SELECT %s::text, %s, %s
			FROM %s
			WHERE %s = '%s' AND %s = TRUE
			ORDER BY %s ASC, %s ASC;
		`,
			table.ID, table.Slug, parent,
			table.Table,
			table.Status, content.StatusPublished, table.IsActive,
			table.DisplayOrder, table.CreatedAt,
		)

		rows, err := store.db.Query(context, query)
		if err != nil {
			return nil, dberr.Wrap(err, level.kind.Label(), "menu_"+string(level.kind))
		}

		var ids []string
		start := len(nodes)
		for rows.Next() {
			node := MenuNode{Kind: level.kind}
			if err := rows.Scan(&node.ID, &node.Slug, &node.ParentID); err != nil {
				rows.Close()
				return nil, dberr.Wrap(err, level.kind.Label(), "scan_menu_"+string(level.kind))
			}
			nodes = append(nodes, node)
			ids = append(ids, node.ID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, dberr.Wrap(err, level.kind.Label(), "menu_"+string(level.kind))
		}

		translations, err := catalog.LoadTranslations(context, store.db, level.translation, ids)
		if err != nil {
			return nil, err
		}
		for i := start; i < len(nodes); i++ {
			nodes[i].Translations = translations[nodes[i].ID]
		}
	}

	return nodes, nil
}

// PublishedID implements [Store].
func (store *PostgresStore) PublishedID(context context.Context, kind content.Kind, slug string) (string, error) {
	table := schema.CatalogItem.NodeTable
	for _, level := range menuTables {
		if level.kind == kind {
			table = level.node
		}
	}

	query := fmt.Sprintf(`
		SELECT %s::text
		FROM %s
		WHERE %s = $1 AND %s = '%s' AND %s = TRUE;
	`, table.ID, table.Table, table.Slug, table.Status, content.StatusPublished, table.IsActive)

	var id string
	if err := store.db.QueryRow(context, query, slug).Scan(&id); err != nil {
		return "", dberr.Wrap(err, kind.Label(), "published_"+string(kind))
	}
	return id, nil
}
