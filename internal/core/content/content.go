// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content holds the rules shared by every node of the catalog hierarchy.

Categories, topics, subtopics and items are all content nodes: they carry a
slug, a lifecycle status and a set of per-language translations. This package
implements the pieces that behave identically for all four kinds:

  - [Resolve] picks the best translation for a requested language.
  - [Lifecycle] moves nodes between draft, published and archived.
  - [Hierarchy] checks parent/child consistency before writes.

Persistence is supplied by the catalog package through [StateStore] and
[RefLookup].
*/
package content

import (
	"strings"
	"time"
)

// # Kinds

// Kind names one level of the catalog hierarchy.
type Kind string

const (
	KindCategory Kind = "category"
	KindTopic    Kind = "topic"
	KindSubtopic Kind = "subtopic"
	KindItem     Kind = "item"
)

// Kinds lists every node kind, top level first.
var Kinds = []Kind{KindCategory, KindTopic, KindSubtopic, KindItem}

// Label returns the capitalised kind used in NOT_FOUND messages.
func (kind Kind) Label() string {
	if kind == "" {
		return ""
	}
	return strings.ToUpper(string(kind[:1])) + string(kind[1:])
}

// # Status

// Status is the lifecycle state of a node.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether status is one of the three lifecycle states.
func (status Status) Valid() bool {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// # Node

// Node is the shape shared by all four content kinds.
type Node struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	DisplayOrder int           `json:"display_order"`
	IsActive     bool          `json:"is_active"`
	Status       Status        `json:"status"`
	PublishedAt  *time.Time    `json:"published_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Translations []Translation `json:"translations"`
}

// Editable reports whether the node still accepts content edits.
func (node *Node) Editable() bool {
	return node.Status != StatusArchived
}

// # Translation

// Translation is one language's text block for a node.
type Translation struct {
	LanguageID     int    `json:"language_id"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle,omitempty"`
	Excerpt        string `json:"excerpt,omitempty"`
	Description    string `json:"description,omitempty"`
	SEOTitle       string `json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`
}

// LanguageKey implements [Localized].
func (translation Translation) LanguageKey() int { return translation.LanguageID }
