// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog manages the four content kinds: categories, topics, subtopics
and items.

Every kind embeds [content.Node] and shares one service implementation. The
per-kind differences are limited to the parent references, the item product
attributes and the publish precondition registered on the lifecycle.
*/
package catalog

import (
	"github.com/jkamin61/wmm-sub000/internal/core/content"
)

// # Records

// Record is implemented by every content kind.
type Record interface {
	Kind() content.Kind
	Base() *content.Node
}

// Category is the top level of the hierarchy.
type Category struct {
	content.Node
}

// Topic belongs to exactly one category.
type Topic struct {
	content.Node
	CategoryID string `json:"category_id"`
}

// Subtopic belongs to exactly one topic.
type Subtopic struct {
	content.Node
	TopicID string `json:"topic_id"`
}

// Item is a reviewed product. It sits under a category and one of its
// topics, optionally narrowed to a subtopic of that topic.
type Item struct {
	content.Node
	CategoryID string   `json:"category_id"`
	TopicID    string   `json:"topic_id"`
	SubtopicID *string  `json:"subtopic_id,omitempty"`
	ABV        *float64 `json:"abv,omitempty"`
	Vintage    *int     `json:"vintage,omitempty"`
	VolumeML   *int     `json:"volume_ml,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	IsFeatured bool     `json:"is_featured"`
	Images     []Image  `json:"images,omitempty"`
}

func (*Category) Kind() content.Kind { return content.KindCategory }
func (*Topic) Kind() content.Kind    { return content.KindTopic }
func (*Subtopic) Kind() content.Kind { return content.KindSubtopic }
func (*Item) Kind() content.Kind     { return content.KindItem }

func (category *Category) Base() *content.Node { return &category.Node }
func (topic *Topic) Base() *content.Node       { return &topic.Node }
func (subtopic *Subtopic) Base() *content.Node { return &subtopic.Node }
func (item *Item) Base() *content.Node         { return &item.Node }

// newRecord returns an empty record of kind.
func newRecord(kind content.Kind) Record {
	switch kind {
	case content.KindCategory:
		return &Category{}
	case content.KindTopic:
		return &Topic{}
	case content.KindSubtopic:
		return &Subtopic{}
	default:
		return &Item{}
	}
}

// # Images

// Image is one picture of an item. The file itself lives in external
// storage; only its path is kept here.
type Image struct {
	ID           string    `json:"id"`
	Path         string    `json:"path"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
	AltTexts     []AltText `json:"alt_texts,omitempty"`
}

// AltText is the localized description of an [Image].
type AltText struct {
	LanguageID int    `json:"language_id"`
	Text       string `json:"text"`
}

// LanguageKey implements [content.Localized].
func (alt AltText) LanguageKey() int { return alt.LanguageID }

// # Filters

// ListFilter narrows admin listings.
type ListFilter struct {
	Status   *content.Status
	ParentID string
}
