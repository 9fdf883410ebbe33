// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkamin61/wmm-sub000/internal/platform/logging"
)

func TestNew_TeesIntoRotatedFile(t *testing.T) {
	var stdout bytes.Buffer
	path := filepath.Join(t.TempDir(), "catalog.log")

	logger, closer := logging.New(logging.Options{LogFile: path, Stdout: &stdout})
	logger.Info("item_published")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "item_published")
	assert.Contains(t, string(content), "item_published")
	assert.Contains(t, string(content), `"app":"catalog-api"`)
}

func TestNew_DebugLevel(t *testing.T) {
	var stdout bytes.Buffer

	quiet, _ := logging.New(logging.Options{Stdout: &stdout})
	quiet.Debug("hidden")
	assert.Empty(t, stdout.String())

	verbose, _ := logging.New(logging.Options{Debug: true, Stdout: &stdout})
	verbose.Debug("shown")
	assert.Contains(t, stdout.String(), "shown")
}
