// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://catalog:pw@db:5432/catalog":   "pgx5://catalog:pw@db:5432/catalog",
		"postgresql://catalog:pw@db:5432/catalog": "pgx5://catalog:pw@db:5432/catalog",
		"pgx5://catalog@db/catalog":               "pgx5://catalog@db/catalog",
		"host=db user=catalog":                    "host=db user=catalog",
	}

	for input, want := range tests {
		assert.Equal(t, want, convertToPgx5DSN(input), input)
	}
}
