// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"

	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/core/search"
	"github.com/jkamin61/wmm-sub000/internal/core/tasting"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
	"github.com/jkamin61/wmm-sub000/pkg/pagination"
	"github.com/jkamin61/wmm-sub000/pkg/pointer"
	"github.com/jkamin61/wmm-sub000/pkg/slice"
	"github.com/jkamin61/wmm-sub000/pkg/slug"
)

// Languages resolves the requested language with fallback to the default.
type Languages interface {
	Resolve(context context.Context, code string) (*language.Language, error)
	Default(context context.Context) (*language.Language, error)
}

// Searcher runs item searches.
type Searcher interface {
	Search(context context.Context, criteria search.Criteria) (*search.Result, error)
}

// Service assembles the public views.
type Service struct {
	store     Store
	records   Records
	notes     Notes
	searcher  Searcher
	languages Languages
}

// NewService constructs a [Service].
func NewService(store Store, records Records, notes Notes, searcher Searcher, languages Languages) *Service {
	return &Service{store: store, records: records, notes: notes, searcher: searcher, languages: languages}
}

// locale is the pair of language ids every resolution needs.
type locale struct {
	requested int
	fallback  int
}

func (service *Service) locale(context context.Context, code string) (locale, error) {
	requested, err := service.languages.Resolve(context, code)
	if err != nil {
		return locale{}, err
	}
	fallback, err := service.languages.Default(context)
	if err != nil {
		return locale{}, err
	}
	return locale{requested: requested.ID, fallback: fallback.ID}, nil
}

/*
Menu returns the published category tree.

Description: Categories hold their topics and topics their subtopics. A
node whose parent is not published is left out together with its subtree.
*/
func (service *Service) Menu(context context.Context, code string) ([]MenuEntry, error) {
	loc, err := service.locale(context, code)
	if err != nil {
		return nil, err
	}

	nodes, err := service.store.MenuNodes(context)
	if err != nil {
		return nil, err
	}

	isRoot := func(node MenuNode) bool { return node.Kind == content.KindCategory }
	roots := slice.Filter(nodes, isRoot)
	children := slice.Index(
		slice.Filter(nodes, func(node MenuNode) bool { return !isRoot(node) }),
		func(node MenuNode) string { return node.ParentID },
	)

	var build func(node MenuNode) MenuEntry
	build = func(node MenuNode) MenuEntry {
		entry := MenuEntry{
			ID:    node.ID,
			Slug:  node.Slug,
			Title: content.Title(node.Translations, loc.requested, loc.fallback, node.Slug),
		}
		if translation, ok := content.Resolve(node.Translations, loc.requested, loc.fallback); ok {
			entry.Subtitle = translation.Subtitle
		}
		for _, child := range children[node.ID] {
			entry.Children = append(entry.Children, build(child))
		}
		return entry
	}

	menu := make([]MenuEntry, 0, len(roots))
	for _, root := range roots {
		menu = append(menu, build(root))
	}
	return menu, nil
}

// ItemsByTopic lists the published items of a published topic, newest first.
func (service *Service) ItemsByTopic(context context.Context, topicSlug, code string, params pagination.Params) (*search.Result, error) {
	topicID, err := service.store.PublishedID(context, content.KindTopic, slug.Normalize(topicSlug))
	if err != nil {
		return nil, err
	}

	return service.searcher.Search(context, search.Criteria{
		TopicID:  pointer.To(topicID),
		Language: code,
		Page:     params.Page,
		Size:     params.Limit,
	})
}

/*
ItemBySlug returns the detail view of a published item.

The slug is matched case-insensitively, as stored slugs are lowercase.

Description: Text fields, image alt texts, tasting notes and flavor names
are all resolved for the same language. An item without a tasting note has
no tasting block.

Returns:
  - *ItemDetail
  - error: NOT_FOUND when the item does not exist or is not published
*/
func (service *Service) ItemBySlug(context context.Context, itemSlug, code string) (*ItemDetail, error) {
	loc, err := service.locale(context, code)
	if err != nil {
		return nil, err
	}

	id, err := service.store.PublishedID(context, content.KindItem, slug.Normalize(itemSlug))
	if err != nil {
		return nil, err
	}

	record, err := service.records.Get(context, content.KindItem, id)
	if err != nil {
		return nil, err
	}
	item, ok := record.(*catalog.Item)
	if !ok {
		return nil, apperr.NotFound(content.KindItem.Label())
	}

	detail := &ItemDetail{
		ID:          item.ID,
		Slug:        item.Slug,
		Title:       content.Title(item.Translations, loc.requested, loc.fallback, item.Slug),
		ABV:         item.ABV,
		Vintage:     item.Vintage,
		VolumeML:    item.VolumeML,
		Price:       item.Price,
		IsFeatured:  item.IsFeatured,
		PublishedAt: item.PublishedAt,
		Images:      make([]ImageView, 0, len(item.Images)),
	}
	if translation, ok := content.Resolve(item.Translations, loc.requested, loc.fallback); ok {
		detail.Subtitle = translation.Subtitle
		detail.Excerpt = translation.Excerpt
		detail.Description = translation.Description
		detail.SEOTitle = translation.SEOTitle
		detail.SEODescription = translation.SEODescription
	}

	for _, image := range item.Images {
		view := ImageView{Path: image.Path, DisplayOrder: image.DisplayOrder, IsPrimary: image.IsPrimary}
		if alt, ok := content.Resolve(image.AltTexts, loc.requested, loc.fallback); ok {
			view.Alt = alt.Text
		}
		detail.Images = append(detail.Images, view)
	}

	detail.Tasting, err = service.tasting(context, item.ID, loc)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (service *Service) tasting(context context.Context, itemID string, loc locale) (*TastingView, error) {
	note, err := service.notes.GetNote(context, itemID)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	flavors, err := service.notes.ListFlavors(context)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*tasting.Flavor, len(flavors))
	for _, flavor := range flavors {
		byID[flavor.ID] = flavor
	}

	view := &TastingView{
		OverallScore: note.OverallScore,
		AromaScore:   note.AromaScore,
		TasteScore:   note.TasteScore,
		FinishScore:  note.FinishScore,
		Intensity:    note.Intensity,
		TastedAt:     note.TastedAt,
		TasterName:   note.TasterName,
	}
	if text, ok := content.Resolve(note.Notes, loc.requested, loc.fallback); ok {
		view.Notes = text.Text
	}

	tags := func(entries []tasting.Entry) []FlavorTag {
		out := make([]FlavorTag, 0, len(entries))
		for _, entry := range entries {
			flavor, ok := byID[entry.FlavorID]
			if !ok {
				continue
			}
			resolved := flavor.Localize(loc.requested, loc.fallback)
			out = append(out, FlavorTag{
				ID:           resolved.ID,
				Slug:         resolved.Slug,
				Name:         resolved.Name,
				Color:        resolved.Color,
				Icon:         resolved.Icon,
				Intensity:    entry.Intensity,
				DisplayOrder: entry.DisplayOrder,
			})
		}
		return out
	}
	view.Aroma = tags(note.Aroma)
	view.Taste = tags(note.Taste)
	view.Finish = tags(note.Finish)

	return view, nil
}
