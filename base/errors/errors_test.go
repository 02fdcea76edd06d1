// Copyright (c) 2023, Cogent Core. All rights reserved.
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
	err := New("bad thing")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 4, Log1(4, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", New("bad")) })
	assert.Equal(t, 7, Ignore1(7, New("bad")))
}

func TestJoinIs(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("wrapped: %w", base)
	assert.True(t, Is(wrapped, base))
	joined := Join(nil, wrapped, New("other"))
	assert.True(t, Is(joined, base))
	assert.Nil(t, Join(nil, nil))
}

func TestCallerInfo(t *testing.T) {
	ci := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(ci, "errors_test.go"), ci)
}
