// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name     string   `yaml:"name"`
	MaxLines int      `yaml:"max_lines"`
	Fonts    []string `yaml:"fonts"`
}

func TestSaveOpen(t *testing.T) {
	st := &testSettings{Name: "field", MaxLines: 3, Fonts: []string{"Go"}}
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, Save(st, fn))

	var got testSettings
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, *st, got)
}

func TestReadBytes(t *testing.T) {
	var got testSettings
	require.NoError(t, ReadBytes(&got, []byte("max_lines: 4\nfonts: [a, b]\n")))
	assert.Equal(t, 4, got.MaxLines)
	assert.Equal(t, []string{"a", "b"}, got.Fonts)
}
