// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
	"github.com/jkamin61/wmm-sub000/internal/platform/postgres"
	"github.com/jkamin61/wmm-sub000/pkg/uuid"
)

// PostgresStore implements [Store] on the catalog schema.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a [PostgresStore].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// # Writes

/*
Create inserts a node together with its initial translations.

Parameters:
  - context: context.Context
  - record: Record (ID and slug already assigned by the service)

Returns:
  - error: VALIDATION_ERROR on a duplicate slug, otherwise persistence errors
*/
func (store *PostgresStore) Create(context context.Context, record Record) error {
	kind := record.Kind()
	tables := tablesFor(kind)
	node := record.Base()

	columns := append([]string{
		tables.node.ID, tables.node.Slug, tables.node.DisplayOrder,
		tables.node.IsActive, tables.node.Status,
	}, extraColumns(kind)...)
	values := append([]any{node.ID, node.Slug, node.DisplayOrder, node.IsActive, string(node.Status)}, extraValues(record)...)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s, %s;
	`,
		tables.node.Table,
		strings.Join(columns, ", "),
		placeholders(1, len(columns)),
		tables.node.CreatedAt,
		tables.node.UpdatedAt,
	)

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, query, values...).Scan(&node.CreatedAt, &node.UpdatedAt); err != nil {
			return dberr.Wrap(err, kind.Label(), "insert_"+string(kind))
		}

		for _, translation := range node.Translations {
			if err := upsertTranslation(context, tx, kind, node.ID, translation); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update implements [Store].
func (store *PostgresStore) Update(context context.Context, record Record) error {
	kind := record.Kind()
	tables := tablesFor(kind)
	node := record.Base()

	columns := append([]string{tables.node.Slug, tables.node.DisplayOrder}, extraColumns(kind)...)
	values := append([]any{node.ID, node.Slug, node.DisplayOrder}, extraValues(record)...)

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = NOW()
		WHERE %s = $1 AND %s = TRUE
		RETURNING %s;
	`,
		tables.node.Table,
		strings.Join(assignments, ", "),
		tables.node.UpdatedAt,
		tables.node.ID,
		tables.node.IsActive,
		tables.node.UpdatedAt,
	)

	err := store.db.QueryRow(context, query, values...).Scan(&node.UpdatedAt)
	return dberr.Wrap(err, kind.Label(), "update_"+string(kind))
}

// UpsertTranslation implements [Store].
func (store *PostgresStore) UpsertTranslation(context context.Context, kind content.Kind, nodeID string, translation content.Translation) error {
	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		if err := upsertTranslation(context, tx, kind, nodeID, translation); err != nil {
			return err
		}
		return touch(context, tx, kind, nodeID)
	})
}

// DeleteTranslation implements [Store].
func (store *PostgresStore) DeleteTranslation(context context.Context, kind content.Kind, nodeID string, languageID int) error {
	table := tablesFor(kind).translation

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2;`,
		table.Table, table.NodeID, table.LanguageID,
	)

	tag, err := store.db.Exec(context, query, nodeID, languageID)
	if err != nil {
		return dberr.Wrap(err, "Translation", "delete_translation")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Translation")
	}
	return nil
}

/*
ReplaceImages deletes every image of the item and inserts images verbatim.

Description: Display orders are stored exactly as supplied. Alt texts are
written per image and language in the same transaction.
*/
func (store *PostgresStore) ReplaceImages(context context.Context, itemID string, images []Image) error {
	image := schema.ItemImage
	alt := schema.ItemImageTranslation

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, image.Table, image.ItemID)

	insertImage := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5);
	`, image.Table, image.ID, image.ItemID, image.Path, image.DisplayOrder, image.IsPrimary)

	insertAlt := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3);
	`, alt.Table, alt.ImageID, alt.LanguageID, alt.AltText)

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, deleteQuery, itemID); err != nil {
			return dberr.Wrap(err, "Image", "delete_images")
		}

		for i := range images {
			if images[i].ID == "" {
				images[i].ID = uuid.New()
			}
			current := images[i]

			if _, err := tx.Exec(context, insertImage, current.ID, itemID, current.Path, current.DisplayOrder, current.IsPrimary); err != nil {
				return dberr.Wrap(err, "Image", "insert_image")
			}
			for _, text := range current.AltTexts {
				if _, err := tx.Exec(context, insertAlt, current.ID, text.LanguageID, text.Text); err != nil {
					return dberr.Wrap(err, "Image", "insert_image_alt")
				}
			}
		}

		return touch(context, tx, content.KindItem, itemID)
	})
}

// # Reads

// Get implements [Store].
func (store *PostgresStore) Get(context context.Context, kind content.Kind, id string) (Record, error) {
	tables := tablesFor(kind)
	record := newRecord(kind)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`,
		strings.Join(selectColumns(kind), ", "),
		tables.node.Table,
		tables.node.ID,
	)

	if err := store.db.QueryRow(context, query, id).Scan(scanTargets(record)...); err != nil {
		return nil, dberr.Wrap(err, kind.Label(), "get_"+string(kind))
	}

	translations, err := store.loadTranslations(context, kind, []string{id})
	if err != nil {
		return nil, err
	}
	record.Base().Translations = translations[id]

	if item, ok := record.(*Item); ok {
		images, err := LoadImages(context, store.db, []string{id})
		if err != nil {
			return nil, err
		}
		item.Images = images[id]
	}

	return record, nil
}

/*
List returns one page of active nodes of a kind.

Parameters:
  - context: context.Context
  - kind: content.Kind
  - filter: ListFilter (Optional status and parent id)
  - limit, offset: int

Returns:
  - []Record: Nodes ordered by display order, then creation time
  - int: Total matching rows
  - error: Persistence errors
*/
func (store *PostgresStore) List(context context.Context, kind content.Kind, filter ListFilter, limit, offset int) ([]Record, int, error) {
	tables := tablesFor(kind)

	conditions := []string{tables.node.IsActive + " = TRUE"}
	var args []any

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("%s = $%d", tables.node.Status, len(args)))
	}
	if filter.ParentID != "" && tables.node.Parent != "" {
		args = append(args, filter.ParentID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", tables.node.Parent, len(args)))
	}

	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER()
		FROM %s
		WHERE %s
		ORDER BY %s ASC, %s ASC
		LIMIT $%d OFFSET $%d;
	`,
		strings.Join(selectColumns(kind), ", "),
		tables.node.Table,
		strings.Join(conditions, " AND "),
		tables.node.DisplayOrder,
		tables.node.CreatedAt,
		len(args)-1,
		len(args),
	)

	rows, err := store.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, kind.Label(), "list_"+string(kind))
	}
	defer rows.Close()

	var (
		records []Record
		ids     []string
		total   int
	)
	for rows.Next() {
		record := newRecord(kind)
		if err := rows.Scan(append(scanTargets(record), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, kind.Label(), "scan_"+string(kind))
		}
		records = append(records, record)
		ids = append(ids, record.Base().ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, kind.Label(), "list_"+string(kind))
	}

	translations, err := store.loadTranslations(context, kind, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, record := range records {
		record.Base().Translations = translations[record.Base().ID]
	}

	return records, total, nil
}

// loadTranslations batches translation reads for nodes of one kind.
func (store *PostgresStore) loadTranslations(context context.Context, kind content.Kind, ids []string) (map[string][]content.Translation, error) {
	return LoadTranslations(context, store.db, tablesFor(kind).translation, ids)
}

// # Hierarchy and lifecycle seams

// CountItems implements [Store].
func (store *PostgresStore) CountItems(context context.Context, parent content.Kind, parentID string) (int, error) {
	item := schema.CatalogItem

	column := item.TopicID
	if parent == content.KindSubtopic {
		column = item.SubtopicID
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE %s = $1 AND %s = TRUE;
	`, item.Table, column, item.IsActive)

	var count int
	if err := store.db.QueryRow(context, query, parentID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, parent.Label(), "count_items")
	}
	return count, nil
}

// Ref implements [content.RefLookup].
func (store *PostgresStore) Ref(context context.Context, kind content.Kind, id string) (*content.Ref, error) {
	table := tablesFor(kind).node

	parent := "''"
	if table.Parent != "" {
		parent = table.Parent + "::text"
	}

	query := fmt.Sprintf(`
		SELECT %s::text, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = TRUE;
	`, table.ID, table.Slug, parent, table.Table, table.ID, table.IsActive)

	ref := &content.Ref{Kind: kind}
	err := store.db.QueryRow(context, query, id).Scan(&ref.ID, &ref.Slug, &ref.ParentID)
	if err != nil {
		return nil, dberr.Wrap(err, kind.Label(), "ref_"+string(kind))
	}
	return ref, nil
}

/*
Transition implements [content.StateStore].

Description: The row is locked with SELECT ... FOR UPDATE, the default
language translation is read for preconditions, and the change is written
with a status compare-and-set. If the guarded UPDATE matches no row the state
is read again and decide reports the conflict for it.

Parameters:
  - context: context.Context
  - kind: content.Kind
  - id: string
  - decide: content.Decider

Returns:
  - *content.State: The state after the write
  - error: Decider errors unchanged, NOT_FOUND, or persistence errors
*/
func (store *PostgresStore) Transition(context context.Context, kind content.Kind, id string, decide content.Decider) (*content.State, error) {
	table := tablesFor(kind).node

	update := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3,
		    %s = CASE $4::int WHEN %d THEN $5::timestamptz WHEN %d THEN NULL ELSE %s END,
		    %s = %s AND NOT $6::boolean,
		    %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s, %s;
	`,
		table.Table,
		table.Status,
		table.PublishedAt, content.StampSet, content.StampClear, table.PublishedAt,
		table.IsActive, table.IsActive,
		table.UpdatedAt,
		table.ID, table.Status,
		table.PublishedAt, table.IsActive,
	)

	var result *content.State
	err := postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		state, err := readState(context, tx, kind, id, true)
		if err != nil {
			return err
		}

		change, err := decide(state)
		if err != nil {
			return err
		}

		row := tx.QueryRow(context, update, id, string(change.Expected), string(change.Next), int(change.Stamp), change.At, change.Deactivate)
		if err := row.Scan(&state.PublishedAt, &state.IsActive); err != nil {
			if !isNoRows(err) {
				return dberr.Wrap(err, kind.Label(), "transition_"+string(kind))
			}

			fresh, readErr := readState(context, tx, kind, id, false)
			if readErr != nil {
				return readErr
			}
			if _, decideErr := decide(fresh); decideErr != nil {
				return decideErr
			}
			return apperr.Conflict(fmt.Sprintf("%s status changed concurrently", kind))
		}

		state.Status = change.Next
		result = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// readState loads the lifecycle view of one node, optionally locking the row.
func readState(context context.Context, tx pgx.Tx, kind content.Kind, id string, lock bool) (*content.State, error) {
	tables := tablesFor(kind)
	language := schema.CatalogLanguage

	locking := ""
	if lock {
		locking = "FOR UPDATE OF n"
	}

	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, n.%s, COALESCE(t.%s, ''), COALESCE(t.%s, '')
		FROM %s n
		LEFT JOIN %s t
		  ON t.%s = n.%s
		 AND t.%s = (SELECT %s FROM %s WHERE %s = TRUE)
		WHERE n.%s = $1
		%s;
	`,
		tables.node.Slug, tables.node.Status, tables.node.IsActive, tables.node.PublishedAt,
		tables.translation.Title, tables.translation.Description,
		tables.node.Table,
		tables.translation.Table,
		tables.translation.NodeID, tables.node.ID,
		tables.translation.LanguageID, language.ID, language.Table, language.IsDefault,
		tables.node.ID,
		locking,
	)

	state := &content.State{Kind: kind, ID: id}
	var status string
	err := tx.QueryRow(context, query, id).Scan(&state.Slug, &status, &state.IsActive, &state.PublishedAt, &state.Title, &state.Description)
	if err != nil {
		return nil, dberr.Wrap(err, kind.Label(), "read_state_"+string(kind))
	}
	state.Status = content.Status(status)
	return state, nil
}

// # Helpers

func upsertTranslation(context context.Context, tx pgx.Tx, kind content.Kind, nodeID string, translation content.Translation) error {
	table := tablesFor(kind).translation

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW();
	`,
		table.Table,
		table.NodeID, table.LanguageID, table.Title, table.Subtitle, table.Excerpt,
		table.Description, table.SEOTitle, table.SEODescription,
		table.NodeID, table.LanguageID,
		table.Title, table.Title,
		table.Subtitle, table.Subtitle,
		table.Excerpt, table.Excerpt,
		table.Description, table.Description,
		table.SEOTitle, table.SEOTitle,
		table.SEODescription, table.SEODescription,
		table.UpdatedAt,
	)

	_, err := tx.Exec(context, query,
		nodeID, translation.LanguageID, translation.Title, translation.Subtitle, translation.Excerpt,
		translation.Description, translation.SEOTitle, translation.SEODescription,
	)
	return dberr.Wrap(err, "Translation", "upsert_translation")
}

// touch bumps updated_at after a child-table write.
func touch(context context.Context, tx pgx.Tx, kind content.Kind, nodeID string) error {
	table := tablesFor(kind).node
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1;`, table.Table, table.UpdatedAt, table.ID)

	_, err := tx.Exec(context, query, nodeID)
	return dberr.Wrap(err, kind.Label(), "touch_"+string(kind))
}

// selectColumns lists the columns read for a kind, matching [scanTargets].
func selectColumns(kind content.Kind) []string {
	node := tablesFor(kind).node
	return append([]string{
		node.ID + "::text", node.Slug, node.DisplayOrder, node.IsActive,
		node.Status, node.PublishedAt, node.CreatedAt, node.UpdatedAt,
	}, castUUIDs(extraColumns(kind))...)
}

// castUUIDs renders parent id columns as text so they scan into strings.
func castUUIDs(columns []string) []string {
	item := schema.CatalogItem
	out := make([]string, len(columns))
	for i, column := range columns {
		switch column {
		case item.CategoryID, item.TopicID, item.SubtopicID:
			out[i] = column + "::text"
		default:
			out[i] = column
		}
	}
	return out
}

func scanTargets(record Record) []any {
	node := record.Base()
	return append([]any{
		&node.ID, &node.Slug, &node.DisplayOrder, &node.IsActive,
		&node.Status, &node.PublishedAt, &node.CreatedAt, &node.UpdatedAt,
	}, extraTargets(record)...)
}

func placeholders(from, count int) string {
	marks := make([]string, count)
	for i := range marks {
		marks[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(marks, ", ")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
