// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// # Create Inputs

// NodeInput carries the fields every kind accepts on creation. When Slug is
// empty it is derived from Title. A non-empty Title also becomes the initial
// default-language translation.
type NodeInput struct {
	Slug         string `json:"slug" validate:"omitempty,max=160"`
	Title        string `json:"title" validate:"omitempty,max=255"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type CategoryInput struct {
	NodeInput
}

type TopicInput struct {
	NodeInput
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

type SubtopicInput struct {
	NodeInput
	TopicID string `json:"topic_id" validate:"required,uuid"`
}

type ItemInput struct {
	NodeInput
	CategoryID string   `json:"category_id" validate:"required,uuid"`
	TopicID    string   `json:"topic_id" validate:"required,uuid"`
	SubtopicID *string  `json:"subtopic_id" validate:"omitempty,uuid"`
	ABV        *float64 `json:"abv"`
	Vintage    *int     `json:"vintage"`
	VolumeML   *int     `json:"volume_ml"`
	Price      *float64 `json:"price"`
	IsFeatured bool     `json:"is_featured"`
}

// # Patches
//
// A nil field leaves the stored value unchanged.

type NodePatch struct {
	Slug         *string `json:"slug" validate:"omitempty,max=160"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

type CategoryPatch struct {
	NodePatch
}

type TopicPatch struct {
	NodePatch
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
}

type SubtopicPatch struct {
	NodePatch
	TopicID *string `json:"topic_id" validate:"omitempty,uuid"`
}

// ItemPatch cannot move an item to another category or topic. An empty
// SubtopicID detaches the item from its subtopic.
type ItemPatch struct {
	NodePatch
	SubtopicID *string  `json:"subtopic_id"`
	ABV        *float64 `json:"abv"`
	Vintage    *int     `json:"vintage"`
	VolumeML   *int     `json:"volume_ml"`
	Price      *float64 `json:"price"`
	IsFeatured *bool    `json:"is_featured"`
}

// # Translations and Images

type TranslationInput struct {
	Title          string `json:"title" validate:"required,max=255"`
	Subtitle       string `json:"subtitle" validate:"max=255"`
	Excerpt        string `json:"excerpt"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seo_title" validate:"max=255"`
	SEODescription string `json:"seo_description" validate:"max=512"`
}

// ImageInput describes one image. AltTexts is keyed by language code.
type ImageInput struct {
	Path         string            `json:"path" validate:"required,max=512"`
	DisplayOrder int               `json:"display_order"`
	IsPrimary    bool              `json:"is_primary"`
	AltTexts     map[string]string `json:"alt_texts"`
}
