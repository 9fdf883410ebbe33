// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/database/schema"
)

// tableSet couples a node table with its translation table.
type tableSet struct {
	node        schema.NodeTable
	translation schema.TranslationTable
}

var tablesByKind = map[content.Kind]tableSet{
	content.KindCategory: {node: schema.CatalogCategory, translation: schema.CategoryTranslation},
	content.KindTopic:    {node: schema.CatalogTopic, translation: schema.TopicTranslation},
	content.KindSubtopic: {node: schema.CatalogSubtopic, translation: schema.SubtopicTranslation},
	content.KindItem:     {node: schema.CatalogItem.NodeTable, translation: schema.ItemTranslation},
}

func tablesFor(kind content.Kind) tableSet {
	return tablesByKind[kind]
}

// extraColumns lists the kind-specific columns after the shared node columns.
func extraColumns(kind content.Kind) []string {
	item := schema.CatalogItem
	switch kind {
	case content.KindTopic:
		return []string{schema.CatalogTopic.Parent}
	case content.KindSubtopic:
		return []string{schema.CatalogSubtopic.Parent}
	case content.KindItem:
		return []string{item.CategoryID, item.TopicID, item.SubtopicID, item.ABV, item.Vintage, item.VolumeML, item.Price, item.IsFeatured}
	}
	return nil
}

// extraValues returns the values written to [extraColumns].
func extraValues(record Record) []any {
	switch typed := record.(type) {
	case *Topic:
		return []any{typed.CategoryID}
	case *Subtopic:
		return []any{typed.TopicID}
	case *Item:
		return []any{typed.CategoryID, typed.TopicID, typed.SubtopicID, typed.ABV, typed.Vintage, typed.VolumeML, typed.Price, typed.IsFeatured}
	}
	return nil
}

// extraTargets returns scan destinations matching [extraColumns].
func extraTargets(record Record) []any {
	switch typed := record.(type) {
	case *Topic:
		return []any{&typed.CategoryID}
	case *Subtopic:
		return []any{&typed.TopicID}
	case *Item:
		return []any{&typed.CategoryID, &typed.TopicID, &typed.SubtopicID, &typed.ABV, &typed.Vintage, &typed.VolumeML, &typed.Price, &typed.IsFeatured}
	}
	return nil
}
