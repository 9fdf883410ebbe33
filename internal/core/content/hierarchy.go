// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"

	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

// Ref identifies a node and the id of its direct parent.
type Ref struct {
	Kind     Kind
	ID       string
	Slug     string
	ParentID string
}

// RefLookup loads node references. A missing node is NOT_FOUND.
type RefLookup interface {
	Ref(context context.Context, kind Kind, id string) (*Ref, error)
}

// Hierarchy enforces parent/child consistency across the four levels.
// Every check is read-only and runs before the caller writes anything.
type Hierarchy struct {
	lookup RefLookup
}

// NewHierarchy constructs a [Hierarchy].
func NewHierarchy(lookup RefLookup) *Hierarchy {
	return &Hierarchy{lookup: lookup}
}

// CheckTopic validates the parent of a created or re-parented topic.
func (hierarchy *Hierarchy) CheckTopic(context context.Context, categoryID string) error {
	_, err := hierarchy.lookup.Ref(context, KindCategory, categoryID)
	return err
}

// CheckSubtopic validates the parent of a created or re-parented subtopic.
func (hierarchy *Hierarchy) CheckSubtopic(context context.Context, topicID string) error {
	_, err := hierarchy.lookup.Ref(context, KindTopic, topicID)
	return err
}

/*
CheckItem validates the three parent references of a new item.

Description: Category and topic must exist and the topic must belong to the
category. An optional subtopic must exist and belong to the topic. Mismatches
are VALIDATION_ERRORs naming both slugs.

Parameters:
  - context: context.Context
  - categoryID: string
  - topicID: string
  - subtopicID: *string (nil when the item sits directly under the topic)

Returns:
  - error: NOT_FOUND for a missing parent, VALIDATION_ERROR for a mismatch
*/
func (hierarchy *Hierarchy) CheckItem(context context.Context, categoryID, topicID string, subtopicID *string) error {
	category, err := hierarchy.lookup.Ref(context, KindCategory, categoryID)
	if err != nil {
		return err
	}

	topic, err := hierarchy.lookup.Ref(context, KindTopic, topicID)
	if err != nil {
		return err
	}

	if topic.ParentID != category.ID {
		return mismatch(topic, category)
	}

	if subtopicID == nil {
		return nil
	}
	return hierarchy.checkSubtopicOf(context, topic, *subtopicID)
}

// CheckItemSubtopic validates a new subtopic against the item's current
// topic. Items cannot move to another topic after creation.
func (hierarchy *Hierarchy) CheckItemSubtopic(context context.Context, topicID, subtopicID string) error {
	topic, err := hierarchy.lookup.Ref(context, KindTopic, topicID)
	if err != nil {
		return err
	}
	return hierarchy.checkSubtopicOf(context, topic, subtopicID)
}

func (hierarchy *Hierarchy) checkSubtopicOf(context context.Context, topic *Ref, subtopicID string) error {
	subtopic, err := hierarchy.lookup.Ref(context, KindSubtopic, subtopicID)
	if err != nil {
		return err
	}
	if subtopic.ParentID != topic.ID {
		return mismatch(subtopic, topic)
	}
	return nil
}

func mismatch(child, parent *Ref) error {
	message := fmt.Sprintf("%s %q does not belong to %s %q", child.Kind, child.Slug, parent.Kind, parent.Slug)
	return apperr.ValidationError(message, apperr.FieldError{
		Field:   string(child.Kind) + "_id",
		Message: message,
	})
}
