// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tasting

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
	"github.com/jkamin61/wmm-sub000/internal/platform/dberr"
	"github.com/jkamin61/wmm-sub000/internal/platform/postgres"
)

// sectionTables maps each section to its sibling table.
var sectionTables = map[Section]schema.FlavorSectionTable{
	SectionAroma:  schema.TastingAroma,
	SectionTaste:  schema.TastingTaste,
	SectionFinish: schema.TastingFinish,
}

// PostgresStore implements [Store] on the catalog schema.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a [PostgresStore].
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// # Flavors

// ListFlavors implements [Store]. Names are ordered by language id.
func (store *PostgresStore) ListFlavors(context context.Context) ([]*Flavor, error) {
	flavor := schema.Flavor
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), COALESCE(%s, '')
		FROM %s
		ORDER BY %s;
	`, flavor.ID, flavor.Slug, flavor.Color, flavor.Icon, flavor.Table, flavor.Slug)

	rows, err := store.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Flavor", "list_flavors")
	}
	defer rows.Close()

	var flavors []*Flavor
	byID := map[int]*Flavor{}
	for rows.Next() {
		current := &Flavor{}
		if err := rows.Scan(&current.ID, &current.Slug, &current.Color, &current.Icon); err != nil {
			return nil, dberr.Wrap(err, "Flavor", "scan_flavor")
		}
		flavors = append(flavors, current)
		byID[current.ID] = current
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Flavor", "list_flavors")
	}

	names, err := LoadFlavorNames(context, store.db, nil)
	if err != nil {
		return nil, err
	}
	for id, list := range names {
		if current, ok := byID[id]; ok {
			current.Names = list
		}
	}

	return flavors, nil
}

// LoadFlavorNames reads flavor display names ordered by language id. A nil
// ids slice loads the names of every flavor.
func LoadFlavorNames(context context.Context, db postgres.Querier, ids []int) (map[int][]FlavorName, error) {
	table := schema.FlavorTranslation

	where := ""
	var args []any
	if ids != nil {
		where = fmt.Sprintf("WHERE %s = ANY($1::int[])", table.FlavorID)
		args = append(args, ids)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		%s
		ORDER BY %s, %s;
	`, table.FlavorID, table.LanguageID, table.Name, table.Table, where, table.FlavorID, table.LanguageID)

	rows, err := db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Flavor", "load_flavor_names")
	}
	defer rows.Close()

	result := map[int][]FlavorName{}
	for rows.Next() {
		var flavorID int
		var name FlavorName
		if err := rows.Scan(&flavorID, &name.LanguageID, &name.Name); err != nil {
			return nil, dberr.Wrap(err, "Flavor", "scan_flavor_name")
		}
		result[flavorID] = append(result[flavorID], name)
	}

	return result, dberr.Wrap(rows.Err(), "Flavor", "load_flavor_names")
}

// CreateFlavor implements [Store]. The generated id is written back.
func (store *PostgresStore) CreateFlavor(context context.Context, flavor *Flavor) error {
	table := schema.Flavor
	names := schema.FlavorTranslation

	insertFlavor := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING %s;
	`, table.Table, table.Slug, table.Color, table.Icon, table.ID)

	insertName := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3);
	`, names.Table, names.FlavorID, names.LanguageID, names.Name)

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, insertFlavor, flavor.Slug, flavor.Color, flavor.Icon).Scan(&flavor.ID); err != nil {
			return dberr.Wrap(err, "Flavor", "insert_flavor")
		}
		for _, name := range flavor.Names {
			if _, err := tx.Exec(context, insertName, flavor.ID, name.LanguageID, name.Name); err != nil {
				return dberr.Wrap(err, "Flavor", "insert_flavor_name")
			}
		}
		return nil
	})
}

// MissingFlavors implements [Store].
func (store *PostgresStore) MissingFlavors(context context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT wanted.id
		FROM UNNEST($1::int[]) AS wanted(id)
		WHERE NOT EXISTS (SELECT 1 FROM %s f WHERE f.%s = wanted.id)
		ORDER BY wanted.id;
	`, schema.Flavor.Table, schema.Flavor.ID)

	rows, err := store.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "Flavor", "missing_flavors")
	}
	missing, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, dberr.Wrap(err, "Flavor", "missing_flavors")
	}
	return missing, nil
}

// # Notes

/*
GetNote implements [Store].

Description: Reads the note row, its texts and the three sections. Section
entries come back in display order.
*/
func (store *PostgresStore) GetNote(context context.Context, itemID string) (*Note, error) {
	table := schema.TastingNote

	query := fmt.Sprintf(`
		SELECT %s::text, %s::text, %s::float8, %s::float8, %s::float8, %s::float8, %s, %s, COALESCE(%s, '')
		FROM %s
		WHERE %s = $1;
	`,
		table.ID, table.ItemID, table.OverallScore, table.AromaScore, table.TasteScore,
		table.FinishScore, table.Intensity, table.TastedAt, table.TasterName,
		table.Table,
		table.ItemID,
	)

	note := &Note{}
	err := store.db.QueryRow(context, query, itemID).Scan(
		&note.ID, &note.ItemID, &note.OverallScore, &note.AromaScore, &note.TasteScore,
		&note.FinishScore, &note.Intensity, &note.TastedAt, &note.TasterName,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Tasting note", "get_note")
	}

	texts, err := LoadNoteTexts(context, store.db, []string{note.ID})
	if err != nil {
		return nil, err
	}
	note.Notes = texts[note.ID]

	for _, section := range Sections {
		entries, err := store.loadSection(context, section, note.ID)
		if err != nil {
			return nil, err
		}
		note.SetSection(section, entries)
	}

	return note, nil
}

// LoadNoteTexts reads the per-language prose of many notes.
func LoadNoteTexts(context context.Context, db postgres.Querier, noteIDs []string) (map[string][]NoteText, error) {
	table := schema.TastingNoteTranslation
	result := map[string][]NoteText{}
	if len(noteIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT %s::text, %s, %s
		FROM %s
		WHERE %s = ANY($1::text[]::uuid[])
		ORDER BY %s, %s;
	`, table.NoteID, table.LanguageID, table.Notes, table.Table, table.NoteID, table.NoteID, table.LanguageID)

	rows, err := db.Query(context, query, noteIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "Tasting note", "load_note_texts")
	}
	defer rows.Close()

	for rows.Next() {
		var noteID string
		var text NoteText
		if err := rows.Scan(&noteID, &text.LanguageID, &text.Text); err != nil {
			return nil, dberr.Wrap(err, "Tasting note", "scan_note_text")
		}
		result[noteID] = append(result[noteID], text)
	}

	return result, dberr.Wrap(rows.Err(), "Tasting note", "load_note_texts")
}

func (store *PostgresStore) loadSection(context context.Context, section Section, noteID string) ([]Entry, error) {
	table := sectionTables[section]

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s, %s;
	`, table.FlavorID, table.Intensity, table.DisplayOrder, table.Table, table.NoteID, table.DisplayOrder, table.FlavorID)

	rows, err := store.db.Query(context, query, noteID)
	if err != nil {
		return nil, dberr.Wrap(err, "Tasting note", "load_"+string(section))
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var entry Entry
		err := row.Scan(&entry.FlavorID, &entry.Intensity, &entry.DisplayOrder)
		return entry, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Tasting note", "load_"+string(section))
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

/*
SaveNote implements [Store].

Description: Upserts the note row keyed by item, then replaces all note texts
in the same transaction. On conflict the existing note id is kept and written
back to note.ID.
*/
func (store *PostgresStore) SaveNote(context context.Context, note *Note) error {
	table := schema.TastingNote
	texts := schema.TastingNoteTranslation

	upsert := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s, %[7]s, %[8]s, %[9]s, %[10]s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		ON CONFLICT (%[3]s) DO UPDATE SET
			%[4]s = EXCLUDED.%[4]s,
			%[5]s = EXCLUDED.%[5]s,
			%[6]s = EXCLUDED.%[6]s,
			%[7]s = EXCLUDED.%[7]s,
			%[8]s = EXCLUDED.%[8]s,
			%[9]s = EXCLUDED.%[9]s,
			%[10]s = EXCLUDED.%[10]s,
			%[11]s = NOW()
		RETURNING %[2]s::text;
	`,
		table.Table, table.ID, table.ItemID, table.OverallScore, table.AromaScore,
		table.TasteScore, table.FinishScore, table.Intensity, table.TastedAt, table.TasterName,
		table.UpdatedAt,
	)

	deleteTexts := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, texts.Table, texts.NoteID)
	insertText := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3);
	`, texts.Table, texts.NoteID, texts.LanguageID, texts.Notes)

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(context, upsert,
			note.ID, note.ItemID, note.OverallScore, note.AromaScore, note.TasteScore,
			note.FinishScore, note.Intensity, note.TastedAt, note.TasterName,
		).Scan(&note.ID)
		if err != nil {
			return dberr.Wrap(err, "Tasting note", "upsert_note")
		}

		if _, err := tx.Exec(context, deleteTexts, note.ID); err != nil {
			return dberr.Wrap(err, "Tasting note", "delete_note_texts")
		}
		for _, text := range note.Notes {
			if _, err := tx.Exec(context, insertText, note.ID, text.LanguageID, text.Text); err != nil {
				return dberr.Wrap(err, "Tasting note", "insert_note_text")
			}
		}
		return nil
	})
}

/*
ReplaceSections implements [Store].

Description: For every section in the map the old rows are deleted and the
new entries inserted with their display order as given. The note's
updatedat is bumped. Either every section is replaced or none is.
*/
func (store *PostgresStore) ReplaceSections(context context.Context, noteID string, sections map[Section][]Entry) error {
	touch := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1;`,
		schema.TastingNote.Table, schema.TastingNote.UpdatedAt, schema.TastingNote.ID,
	)

	return postgres.WithTx(context, store.db, func(tx pgx.Tx) error {
		for _, section := range Sections {
			entries, ok := sections[section]
			if !ok {
				continue
			}
			table := sectionTables[section]

			deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, table.Table, table.NoteID)
			if _, err := tx.Exec(context, deleteQuery, noteID); err != nil {
				return dberr.Wrap(err, "Tasting note", "delete_"+string(section))
			}

			insertQuery := fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s)
				VALUES ($1, $2, $3, $4);
			`, table.Table, table.NoteID, table.FlavorID, table.Intensity, table.DisplayOrder)

			for _, entry := range entries {
				if _, err := tx.Exec(context, insertQuery, noteID, entry.FlavorID, entry.Intensity, entry.DisplayOrder); err != nil {
					return dberr.Wrap(err, "Flavor", "insert_"+string(section))
				}
			}
		}

		tag, err := tx.Exec(context, touch, noteID)
		if err != nil {
			return dberr.Wrap(err, "Tasting note", "touch_note")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Tasting note")
		}
		return nil
	})
}
