// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkamin61/wmm-sub000/pkg/pointer"
)

func TestPointerHelpers(t *testing.T) {
	abv := pointer.To(45.8)
	assert.Equal(t, 45.8, *abv)

	assert.Equal(t, 45.8, pointer.Fallback(abv, 40.0))
	assert.Equal(t, 700, pointer.Fallback(nil, 700))
}
