// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name     string
	MaxLines int
	Fonts    []string
}

func TestSaveOpen(t *testing.T) {
	st := &testSettings{Name: "field", MaxLines: 3, Fonts: []string{"Go", "LM Roman 10"}}
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, Save(st, fn))

	var got testSettings
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, *st, got)
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testSettings{Name: "a"})
	require.NoError(t, err)
	assert.Contains(t, string(b), "Name = 'a'")

	var got testSettings
	require.NoError(t, ReadBytes(&got, []byte("MaxLines = 2\n")))
	assert.Equal(t, 2, got.MaxLines)
	assert.Error(t, ReadBytes(&got, []byte("MaxLines = \n")))
}

func TestOpenMissing(t *testing.T) {
	var got testSettings
	assert.Error(t, Open(&got, filepath.Join(t.TempDir(), "none.toml")))
}
