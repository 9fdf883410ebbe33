// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkamin61/wmm-sub000/pkg/uuid"
)

func TestNew_IsTimeOrdered(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.True(t, uuid.Valid(first))
	assert.Equal(t, byte('7'), first[14])
	assert.Less(t, first, second)
}

func TestValid(t *testing.T) {
	assert.True(t, uuid.Valid("0190a6b4-8c1e-7d2a-9b3c-4d5e6f708192"))
	assert.False(t, uuid.Valid("talisker-10"))
	assert.False(t, uuid.Valid(""))
}
