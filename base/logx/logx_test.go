// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelWarn))

	lg.Info("hidden message")
	assert.Empty(t, buf.String())

	lg.Warn("segment is degenerate", "a", 1)
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "segment is degenerate")
	assert.Contains(t, out, "a=1")
	assert.NotContains(t, out, "time=")
}
