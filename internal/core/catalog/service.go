// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/internal/platform/audit"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/ctxutil"
	"github.com/jkamin61/wmm-sub000/internal/platform/validate"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/pointer"
	"github.com/jkamin61/wmm-sub000/pkg/slug"
	"github.com/jkamin61/wmm-sub000/pkg/uuid"
)

// Languages is the part of the language registry the catalog writes need.
type Languages interface {
	Lookup(context context.Context, code string) (*language.Language, error)
	Default(context context.Context) (*language.Language, error)
}

// # Service Layer

// Service orchestrates writes and admin reads for every content kind.
type Service struct {
	store     Store
	hierarchy *content.Hierarchy
	lifecycle *content.Lifecycle
	languages Languages
	recorder  audit.Recorder
}

// NewService constructs a [Service]. The hierarchy validator reads parents
// through store.
func NewService(store Store, lifecycle *content.Lifecycle, languages Languages, recorder audit.Recorder) *Service {
	return &Service{
		store:     store,
		hierarchy: content.NewHierarchy(store),
		lifecycle: lifecycle,
		languages: languages,
		recorder:  recorder,
	}
}

// # Creation

// CreateCategory creates a draft category.
func (service *Service) CreateCategory(context context.Context, input CategoryInput) (*Category, error) {
	category := &Category{}
	if err := service.create(context, category, input.NodeInput, nil); err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTopic creates a draft topic under an existing category.
func (service *Service) CreateTopic(context context.Context, input TopicInput) (*Topic, error) {
	topic := &Topic{CategoryID: input.CategoryID}
	err := service.create(context, topic, input.NodeInput, func() error {
		return service.hierarchy.CheckTopic(context, input.CategoryID)
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// CreateSubtopic creates a draft subtopic under an existing topic.
func (service *Service) CreateSubtopic(context context.Context, input SubtopicInput) (*Subtopic, error) {
	subtopic := &Subtopic{TopicID: input.TopicID}
	err := service.create(context, subtopic, input.NodeInput, func() error {
		return service.hierarchy.CheckSubtopic(context, input.TopicID)
	})
	if err != nil {
		return nil, err
	}
	return subtopic, nil
}

/*
CreateItem creates a draft item.

Description: The product attributes are validated first, then the category,
topic and optional subtopic are checked for existence and consistency. Nothing
is written when any check fails.

Parameters:
  - context: context.Context
  - input: ItemInput

Returns:
  - *Item: The persisted draft item
  - error: VALIDATION_ERROR, NOT_FOUND or persistence errors
*/
func (service *Service) CreateItem(context context.Context, input ItemInput) (*Item, error) {
	item := &Item{
		CategoryID: input.CategoryID,
		TopicID:    input.TopicID,
		SubtopicID: input.SubtopicID,
		ABV:        input.ABV,
		Vintage:    input.Vintage,
		VolumeML:   input.VolumeML,
		Price:      input.Price,
		IsFeatured: input.IsFeatured,
	}

	err := service.create(context, item, input.NodeInput, func() error {
		if err := validateAttributes(item); err != nil {
			return err
		}
		return service.hierarchy.CheckItem(context, item.CategoryID, item.TopicID, item.SubtopicID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (service *Service) create(context context.Context, record Record, input NodeInput, check func() error) error {
	node := record.Base()
	node.Slug = slug.Normalize(input.Slug)
	if node.Slug == "" {
		node.Slug = slug.From(input.Title)
	}
	node.DisplayOrder = input.DisplayOrder

	validator := &validate.Validator{}
	validator.Required("slug", node.Slug).
		MaxLen("slug", node.Slug, constants.MaxSlugLength).
		Slug("slug", node.Slug).
		MaxLen("title", input.Title, constants.MaxTitleLength).
		Custom("display_order", input.DisplayOrder < 0, "Must be greater than or equal to 0")
	if err := validator.Err(); err != nil {
		return err
	}

	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		fallback, err := service.languages.Default(context)
		if err != nil {
			return err
		}
		node.Translations = []content.Translation{{LanguageID: fallback.ID, Title: title}}
	}

	node.ID = uuid.New()
	node.Status = content.StatusDraft
	node.IsActive = true

	if err := service.store.Create(context, record); err != nil {
		return err
	}

	service.report(context, record.Kind(), node, audit.ActionCreate, "created "+node.Slug)
	return nil
}

// # Updates

// UpdateCategory applies patch to a category.
func (service *Service) UpdateCategory(context context.Context, id string, patch CategoryPatch) (*Category, error) {
	record, err := service.update(context, content.KindCategory, id, patch.NodePatch, nil)
	if err != nil {
		return nil, err
	}
	return record.(*Category), nil
}

// UpdateTopic applies patch to a topic. A new category is checked first, and
// a topic that still holds items cannot change category.
func (service *Service) UpdateTopic(context context.Context, id string, patch TopicPatch) (*Topic, error) {
	record, err := service.update(context, content.KindTopic, id, patch.NodePatch, func(record Record) error {
		topic := record.(*Topic)
		if patch.CategoryID == nil || *patch.CategoryID == topic.CategoryID {
			return nil
		}
		if err := service.hierarchy.CheckTopic(context, *patch.CategoryID); err != nil {
			return err
		}
		if err := service.requireNoItems(context, content.KindTopic, topic.ID, "category_id"); err != nil {
			return err
		}
		topic.CategoryID = *patch.CategoryID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record.(*Topic), nil
}

// UpdateSubtopic applies patch to a subtopic. A new topic is checked first, and
// a subtopic that still holds items cannot change topic.
func (service *Service) UpdateSubtopic(context context.Context, id string, patch SubtopicPatch) (*Subtopic, error) {
	record, err := service.update(context, content.KindSubtopic, id, patch.NodePatch, func(record Record) error {
		subtopic := record.(*Subtopic)
		if patch.TopicID == nil || *patch.TopicID == subtopic.TopicID {
			return nil
		}
		if err := service.hierarchy.CheckSubtopic(context, *patch.TopicID); err != nil {
			return err
		}
		if err := service.requireNoItems(context, content.KindSubtopic, subtopic.ID, "topic_id"); err != nil {
			return err
		}
		subtopic.TopicID = *patch.TopicID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record.(*Subtopic), nil
}

/*
UpdateItem applies patch to an item.

Description: A new subtopic is validated against the item's current topic.
Product attributes are validated after the patch is applied.

Parameters:
  - context: context.Context
  - id: string (Item UUID)
  - patch: ItemPatch

Returns:
  - *Item: The updated item
  - error: CONFLICT for archived items, VALIDATION_ERROR, NOT_FOUND
*/
func (service *Service) UpdateItem(context context.Context, id string, patch ItemPatch) (*Item, error) {
	record, err := service.update(context, content.KindItem, id, patch.NodePatch, func(record Record) error {
		item := record.(*Item)

		if patch.SubtopicID != nil {
			if *patch.SubtopicID == "" {
				item.SubtopicID = nil
			} else {
				if err := service.hierarchy.CheckItemSubtopic(context, item.TopicID, *patch.SubtopicID); err != nil {
					return err
				}
				subtopicID := *patch.SubtopicID
				item.SubtopicID = &subtopicID
			}
		}

		if patch.ABV != nil {
			item.ABV = patch.ABV
		}
		if patch.Vintage != nil {
			item.Vintage = patch.Vintage
		}
		if patch.VolumeML != nil {
			item.VolumeML = patch.VolumeML
		}
		if patch.Price != nil {
			item.Price = patch.Price
		}
		item.IsFeatured = pointer.Fallback(patch.IsFeatured, item.IsFeatured)

		return validateAttributes(item)
	})
	if err != nil {
		return nil, err
	}
	return record.(*Item), nil
}

func (service *Service) update(context context.Context, kind content.Kind, id string, patch NodePatch, mutate func(Record) error) (Record, error) {
	record, err := service.editable(context, kind, id)
	if err != nil {
		return nil, err
	}
	node := record.Base()

	if patch.Slug != nil {
		node.Slug = slug.Normalize(*patch.Slug)
	}
	node.DisplayOrder = pointer.Fallback(patch.DisplayOrder, node.DisplayOrder)

	validator := &validate.Validator{}
	validator.Required("slug", node.Slug).
		MaxLen("slug", node.Slug, constants.MaxSlugLength).
		Slug("slug", node.Slug).
		Custom("display_order", node.DisplayOrder < 0, "Must be greater than or equal to 0")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if mutate != nil {
		if err := mutate(record); err != nil {
			return nil, err
		}
	}

	if err := service.store.Update(context, record); err != nil {
		return nil, err
	}

	service.report(context, kind, node, audit.ActionUpdate, "updated "+node.Slug)
	return record, nil
}

// requireNoItems rejects moving a topic or subtopic while active items are
// placed under it, since items keep their category and topic for life.
func (service *Service) requireNoItems(context context.Context, kind content.Kind, id, field string) error {
	count, err := service.store.CountItems(context, kind, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return validate.Field(field, fmt.Sprintf("%s still holds %d item(s) and cannot be moved", kind, count))
	}
	return nil
}

// editable loads a node that still accepts edits.
func (service *Service) editable(context context.Context, kind content.Kind, id string) (Record, error) {
	record, err := service.store.Get(context, kind, id)
	if err != nil {
		return nil, err
	}
	node := record.Base()
	if !node.IsActive || !node.Editable() {
		return nil, apperr.Conflict(fmt.Sprintf("archived %s cannot be edited", kind))
	}
	return record, nil
}

// # Reads

// Get returns one node of any kind, including drafts.
func (service *Service) Get(context context.Context, kind content.Kind, id string) (Record, error) {
	return service.store.Get(context, kind, id)
}

// List returns a page of active nodes of kind.
func (service *Service) List(context context.Context, kind content.Kind, filter ListFilter, params pagination.Params) ([]Record, int, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, 0, validate.Field("status", "Must be one of: draft, published, archived")
	}
	return service.store.List(context, kind, filter, params.Limit, params.Offset())
}

// # Lifecycle

// Publish publishes a draft node and returns it reloaded. The title and
// description preconditions read the default language, so a missing default
// is a CONFIGURATION_ERROR rather than a failed precondition.
func (service *Service) Publish(context context.Context, kind content.Kind, id string) (Record, error) {
	if _, err := service.languages.Default(context); err != nil {
		return nil, err
	}
	return service.transition(context, kind, id, service.lifecycle.Publish)
}

// Unpublish returns a published node to draft.
func (service *Service) Unpublish(context context.Context, kind content.Kind, id string) (Record, error) {
	return service.transition(context, kind, id, service.lifecycle.Unpublish)
}

// Archive archives a draft or published node.
func (service *Service) Archive(context context.Context, kind content.Kind, id string) (Record, error) {
	return service.transition(context, kind, id, service.lifecycle.Archive)
}

// Delete soft-deletes a node.
func (service *Service) Delete(context context.Context, kind content.Kind, id string) error {
	_, err := service.lifecycle.Delete(context, kind, id)
	return err
}

type transitionFunc func(context.Context, content.Kind, string) (*content.State, error)

func (service *Service) transition(context context.Context, kind content.Kind, id string, apply transitionFunc) (Record, error) {
	if _, err := apply(context, kind, id); err != nil {
		return nil, err
	}
	return service.store.Get(context, kind, id)
}

// # Translations

/*
UpsertTranslation creates or replaces one language's text block of a node.

Parameters:
  - context: context.Context
  - kind: content.Kind
  - id: string (Node UUID)
  - code: string (Language code, must be active)
  - input: TranslationInput

Returns:
  - Record: The node with its translations reloaded
  - error: NOT_FOUND for the node or language, VALIDATION_ERROR, CONFLICT
*/
func (service *Service) UpsertTranslation(context context.Context, kind content.Kind, id, code string, input TranslationInput) (Record, error) {
	translation := content.Translation{
		Title:          strings.TrimSpace(input.Title),
		Subtitle:       strings.TrimSpace(input.Subtitle),
		Excerpt:        strings.TrimSpace(input.Excerpt),
		Description:    strings.TrimSpace(input.Description),
		SEOTitle:       strings.TrimSpace(input.SEOTitle),
		SEODescription: strings.TrimSpace(input.SEODescription),
	}

	validator := &validate.Validator{}
	validator.Required("title", translation.Title).
		MaxLen("title", translation.Title, constants.MaxTitleLength).
		MaxLen("subtitle", translation.Subtitle, constants.MaxTitleLength).
		MaxLen("seo_title", translation.SEOTitle, constants.MaxTitleLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record, err := service.editable(context, kind, id)
	if err != nil {
		return nil, err
	}

	lang, err := service.languages.Lookup(context, code)
	if err != nil {
		return nil, err
	}
	translation.LanguageID = lang.ID

	if err := service.store.UpsertTranslation(context, kind, id, translation); err != nil {
		return nil, err
	}

	service.report(context, kind, record.Base(), audit.ActionUpdate, "translation "+lang.Code+" saved")
	return service.store.Get(context, kind, id)
}

// DeleteTranslation removes one language's text block from a node.
func (service *Service) DeleteTranslation(context context.Context, kind content.Kind, id, code string) error {
	record, err := service.editable(context, kind, id)
	if err != nil {
		return err
	}

	lang, err := service.languages.Lookup(context, code)
	if err != nil {
		return err
	}

	if err := service.store.DeleteTranslation(context, kind, id, lang.ID); err != nil {
		return err
	}

	service.report(context, kind, record.Base(), audit.ActionUpdate, "translation "+lang.Code+" removed")
	return nil
}

// # Images

/*
ReplaceImages replaces the item's image list.

Description: Display orders are kept exactly as supplied. At most one image
may be primary. Alt texts are keyed by language code and every code must name
an active language.

Parameters:
  - context: context.Context
  - itemID: string
  - inputs: []ImageInput

Returns:
  - *Item: The item with its new images
  - error: VALIDATION_ERROR, NOT_FOUND, CONFLICT
*/
func (service *Service) ReplaceImages(context context.Context, itemID string, inputs []ImageInput) (*Item, error) {
	primaries := 0
	validator := &validate.Validator{}
	for i, input := range inputs {
		validator.Required(fmt.Sprintf("images[%d].path", i), strings.TrimSpace(input.Path))
		if input.IsPrimary {
			primaries++
		}
	}
	validator.Custom("images", primaries > 1, "At most one image can be primary")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record, err := service.editable(context, content.KindItem, itemID)
	if err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(inputs))
	for _, input := range inputs {
		image := Image{
			Path:         strings.TrimSpace(input.Path),
			DisplayOrder: input.DisplayOrder,
			IsPrimary:    input.IsPrimary,
		}
		for code, text := range input.AltTexts {
			lang, err := service.languages.Lookup(context, code)
			if err != nil {
				return nil, err
			}
			image.AltTexts = append(image.AltTexts, AltText{LanguageID: lang.ID, Text: strings.TrimSpace(text)})
		}
		sort.Slice(image.AltTexts, func(a, b int) bool {
			return image.AltTexts[a].LanguageID < image.AltTexts[b].LanguageID
		})
		images = append(images, image)
	}

	if err := service.store.ReplaceImages(context, itemID, images); err != nil {
		return nil, err
	}

	service.report(context, content.KindItem, record.Base(), audit.ActionUpdate, fmt.Sprintf("%d images set", len(images)))

	refreshed, err := service.store.Get(context, content.KindItem, itemID)
	if err != nil {
		return nil, err
	}
	return refreshed.(*Item), nil
}

// # Helpers

func validateAttributes(item *Item) error {
	validator := &validate.Validator{}
	if item.ABV != nil {
		validator.FloatRange("abv", *item.ABV, 0, 100)
	}
	validator.NonNegative("price", item.Price)
	if item.VolumeML != nil {
		validator.Custom("volume_ml", *item.VolumeML <= 0, "Must be greater than 0")
	}
	if item.Vintage != nil {
		validator.Range("vintage", *item.Vintage, 1800, 2100)
	}
	return validator.Err()
}

func (service *Service) report(context context.Context, kind content.Kind, node *content.Node, action, summary string) {
	ctxutil.GetLogger(context).Info(content.EventName(kind, action),
		slog.String("id", node.ID),
		slog.String("slug", node.Slug),
	)

	audit.Notify(context, service.recorder, audit.Entry{
		EntityType: string(kind),
		EntityID:   node.ID,
		Action:     action,
		Summary:    summary,
	})
}
