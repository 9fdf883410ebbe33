// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/core/content"
	"github.com/jkamin61/wmm-sub000/internal/platform/apperr"
)

type refTable map[string]*content.Ref

func (table refTable) Ref(_ context.Context, kind content.Kind, id string) (*content.Ref, error) {
	ref, ok := table[id]
	if !ok || ref.Kind != kind {
		return nil, apperr.NotFound(kind.Label())
	}
	return ref, nil
}

func tree() refTable {
	return refTable{
		"cat-whisky": {Kind: content.KindCategory, ID: "cat-whisky", Slug: "whisky"},
		"cat-rum":    {Kind: content.KindCategory, ID: "cat-rum", Slug: "rum"},
		"top-islay":  {Kind: content.KindTopic, ID: "top-islay", Slug: "islay", ParentID: "cat-whisky"},
		"top-cuba":   {Kind: content.KindTopic, ID: "top-cuba", Slug: "cuba", ParentID: "cat-rum"},
		"sub-peated": {Kind: content.KindSubtopic, ID: "sub-peated", Slug: "peated", ParentID: "top-islay"},
		"sub-aged":   {Kind: content.KindSubtopic, ID: "sub-aged", Slug: "aged", ParentID: "top-cuba"},
	}
}

func TestHierarchy_CheckItem(t *testing.T) {
	hierarchy := content.NewHierarchy(tree())
	peated := "sub-peated"
	aged := "sub-aged"
	missing := "sub-missing"

	tests := []struct {
		name        string
		category    string
		topic       string
		subtopic    *string
		wantCode    string
		wantMessage string
	}{
		{name: "consistent", category: "cat-whisky", topic: "top-islay"},
		{name: "consistent_with_subtopic", category: "cat-whisky", topic: "top-islay", subtopic: &peated},
		{name: "missing_category", category: "cat-gin", topic: "top-islay", wantCode: apperr.CodeNotFound},
		{name: "missing_topic", category: "cat-whisky", topic: "top-gone", wantCode: apperr.CodeNotFound},
		{
			name: "topic_in_other_category", category: "cat-whisky", topic: "top-cuba",
			wantCode: apperr.CodeValidation, wantMessage: `topic "cuba" does not belong to category "whisky"`,
		},
		{
			name: "subtopic_in_other_topic", category: "cat-whisky", topic: "top-islay", subtopic: &aged,
			wantCode: apperr.CodeValidation, wantMessage: `subtopic "aged" does not belong to topic "islay"`,
		},
		{name: "missing_subtopic", category: "cat-whisky", topic: "top-islay", subtopic: &missing, wantCode: apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hierarchy.CheckItem(context.Background(), tt.category, tt.topic, tt.subtopic)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}

func TestHierarchy_ParentsMustExist(t *testing.T) {
	hierarchy := content.NewHierarchy(tree())

	assert.NoError(t, hierarchy.CheckTopic(context.Background(), "cat-rum"))
	assert.True(t, apperr.IsNotFound(hierarchy.CheckTopic(context.Background(), "top-islay")))

	assert.NoError(t, hierarchy.CheckSubtopic(context.Background(), "top-cuba"))
	assert.True(t, apperr.IsNotFound(hierarchy.CheckSubtopic(context.Background(), "cat-rum")))
}

func TestHierarchy_CheckItemSubtopic(t *testing.T) {
	hierarchy := content.NewHierarchy(tree())

	assert.NoError(t, hierarchy.CheckItemSubtopic(context.Background(), "top-islay", "sub-peated"))

	err := hierarchy.CheckItemSubtopic(context.Background(), "top-islay", "sub-aged")
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), `"aged"`)
	assert.Contains(t, err.Error(), `"islay"`)
}
