// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"fmt"
	"strings"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
)

// Query is a composed search statement with its positional arguments.
type Query struct {
	Shape      Shape
	SQL        string
	Args       []any
	Criteria   Criteria
	LanguageID int
}

// binder hands out positional placeholders in argument order.
type binder struct {
	args []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

/*
Compose builds the SQL for normalized criteria.

Description: The scalar predicates are collected first, each filter adding
at most one. Two independent choices then complete the statement: whether
the requested language's search vector is joined and ranked, and whether
the flavor EXISTS clause over the three section tables is added.

Parameters:
  - criteria: Criteria (already normalized)
  - languageID: int (Language whose title and description are searched)

Returns:
  - Query: Shape, SQL and args. Columns are id, slug, publishedat, overall
    score, rank and the window total.
*/
func Compose(criteria Criteria, languageID int) Query {
	item := schema.CatalogItem
	translation := schema.ItemTranslation
	note := schema.TastingNote
	shape := criteria.Shape()

	args := &binder{}
	joins := []string{
		fmt.Sprintf("LEFT JOIN %s tn ON tn.%s = i.%s", note.Table, note.ItemID, item.ID),
	}
	predicates := []string{
		fmt.Sprintf("i.%s = '%s'", item.Status, content.StatusPublished),
		fmt.Sprintf("i.%s = TRUE", item.IsActive),
	}

	rank := "0::float8"
	if shape.Ranked() {
		text := args.bind(criteria.Text)
		tsquery := fmt.Sprintf("websearch_to_tsquery('simple', %s)", text)

		joins = append(joins, fmt.Sprintf(
			"JOIN %s st ON st.%s = i.%s AND st.%s = %s",
			translation.Table, translation.NodeID, item.ID, translation.LanguageID, args.bind(languageID),
		))
		predicates = append(predicates, fmt.Sprintf("st.%s @@ %s", schema.ItemSearchVector, tsquery))
		rank = fmt.Sprintf("ts_rank(st.%s, %s)::float8", schema.ItemSearchVector, tsquery)
	}

	if criteria.CategoryID != nil {
		predicates = append(predicates, fmt.Sprintf("i.%s = %s", item.CategoryID, args.bind(*criteria.CategoryID)))
	}
	if criteria.TopicID != nil {
		predicates = append(predicates, fmt.Sprintf("i.%s = %s", item.TopicID, args.bind(*criteria.TopicID)))
	}
	if criteria.SubtopicID != nil {
		predicates = append(predicates, fmt.Sprintf("i.%s = %s", item.SubtopicID, args.bind(*criteria.SubtopicID)))
	}
	if criteria.Featured != nil {
		predicates = append(predicates, fmt.Sprintf("i.%s = %s", item.IsFeatured, args.bind(*criteria.Featured)))
	}
	if criteria.MinScore != nil {
		predicates = append(predicates, fmt.Sprintf("tn.%s >= %s", note.OverallScore, args.bind(*criteria.MinScore)))
	}
	if criteria.MaxScore != nil {
		predicates = append(predicates, fmt.Sprintf("tn.%s <= %s", note.OverallScore, args.bind(*criteria.MaxScore)))
	}

	if len(criteria.Flavors) > 0 {
		predicates = append(predicates, flavorExists(args.bind(criteria.Flavors)))
	}

	order := fmt.Sprintf("i.%s DESC, i.%s DESC", item.PublishedAt, item.ID)
	if shape.Ranked() {
		order = "rank DESC, " + order
	}

	limit := args.bind(criteria.Size)
	offset := args.bind((criteria.Page - 1) * criteria.Size)

	sql := fmt.Sprintf(`
		SELECT i.%s::text, i.%s, i.%s, tn.%s::float8, %s AS rank, COUNT(*) OVER()
		FROM %s i
		%s
		WHERE %s
		ORDER BY %s
		LIMIT %s OFFSET %s;
	`,
		item.ID, item.Slug, item.PublishedAt, note.OverallScore, rank,
		item.Table,
		strings.Join(joins, "\n\t\t"),
		strings.Join(predicates, "\n\t\t  AND "),
		order,
		limit, offset,
	)

	return Query{Shape: shape, SQL: sql, Args: args.args, Criteria: criteria, LanguageID: languageID}
}

// flavorExists matches notes having the flavor in any of the three sections.
func flavorExists(slugs string) string {
	unions := make([]string, len(schema.FlavorSections))
	for i, section := range schema.FlavorSections {
		unions[i] = fmt.Sprintf("SELECT %s, %s FROM %s", section.NoteID, section.FlavorID, section.Table)
	}

	return fmt.Sprintf(`EXISTS (
			SELECT 1
			FROM (%s) fs
			JOIN %s f ON f.%s = fs.flavorid
			WHERE fs.noteid = tn.%s AND f.%s = ANY(%s::text[])
		)`,
		strings.Join(unions, " UNION ALL "),
		schema.Flavor.Table, schema.Flavor.ID,
		schema.TastingNote.ID, schema.Flavor.Slug, slugs,
	)
}
