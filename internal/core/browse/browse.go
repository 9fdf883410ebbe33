// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browse is the public read surface of the catalog.

Only published, active content is visible. Every response is shaped for one
language: the requested one when it is active, else the default, else the
first translation a node has.
*/
package browse

import (
	"time"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
)

// # Menu

// MenuNode is a published node as loaded for the menu.
type MenuNode struct {
	Kind         content.Kind
	ID           string
	Slug         string
	ParentID     string
	Translations []content.Translation
}

// MenuEntry is one resolved level of the menu tree.
type MenuEntry struct {
	ID       string      `json:"id"`
	Slug     string      `json:"slug"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Children []MenuEntry `json:"children,omitempty"`
}

// # Item detail

// ItemDetail is the public view of one item.
type ItemDetail struct {
	ID             string       `json:"id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Subtitle       string       `json:"subtitle,omitempty"`
	Excerpt        string       `json:"excerpt,omitempty"`
	Description    string       `json:"description,omitempty"`
	SEOTitle       string       `json:"seo_title,omitempty"`
	SEODescription string       `json:"seo_description,omitempty"`
	ABV            *float64     `json:"abv,omitempty"`
	Vintage        *int         `json:"vintage,omitempty"`
	VolumeML       *int         `json:"volume_ml,omitempty"`
	Price          *float64     `json:"price,omitempty"`
	IsFeatured     bool         `json:"is_featured"`
	PublishedAt    *time.Time   `json:"published_at,omitempty"`
	Images         []ImageView  `json:"images"`
	Tasting        *TastingView `json:"tasting,omitempty"`
}

// ImageView is an item image with its alt text resolved.
type ImageView struct {
	Path         string `json:"path"`
	Alt          string `json:"alt,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsPrimary    bool   `json:"is_primary"`
}

// TastingView is the resolved tasting note of an item.
type TastingView struct {
	OverallScore float64     `json:"overall_score"`
	AromaScore   float64     `json:"aroma_score"`
	TasteScore   float64     `json:"taste_score"`
	FinishScore  float64     `json:"finish_score"`
	Intensity    int         `json:"intensity"`
	TastedAt     *time.Time  `json:"tasted_at,omitempty"`
	TasterName   string      `json:"taster_name,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Aroma        []FlavorTag `json:"aroma"`
	Taste        []FlavorTag `json:"taste"`
	Finish       []FlavorTag `json:"finish"`
}

// FlavorTag is a section entry with its flavor name resolved.
type FlavorTag struct {
	ID           int    `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	Icon         string `json:"icon,omitempty"`
	Intensity    int    `json:"intensity"`
	DisplayOrder int    `json:"display_order"`
}
