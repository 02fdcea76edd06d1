// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	ep, err := ExpandPath("~/scene.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scene.toml"), ep)

	ep, err = ExpandPath("scene.toml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(ep))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "a.toml")
	require.NoError(t, os.WriteFile(fp, []byte("x = 1\n"), 0666))

	ok, err := FileExists(fp)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExists(filepath.Join(dir, "b.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)

	fsys, fname, err := DirFS(fp)
	require.NoError(t, err)
	assert.Equal(t, "a.toml", fname)
	ok, err = FileExistsFS(fsys, fname)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFileExistsMapFS(t *testing.T) {
	fsys := fstest.MapFS{"scenes/cube.yaml": {Data: []byte("planes: []\n")}}
	ok, err := FileExistsFS(fsys, "scenes/cube.yaml")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "scenes")
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExistsFS(fsys, "missing.yaml")
	assert.NoError(t, err)
	assert.False(t, ok)
}
