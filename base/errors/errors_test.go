// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("font missing")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
	assert.Equal(t, "ok", Log1("ok", nil))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Equal(t, 2, Must1(2, nil))
	assert.Equal(t, 5, Ignore1(5, New("ignored")))
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(info, "errors_test.go"), info)
}

func TestWrapped(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("loading settings: %w", base)
	assert.True(t, Is(err, base))
	assert.Equal(t, base, Unwrap(err))
	assert.True(t, Is(Join(err, New("other")), base))
}
