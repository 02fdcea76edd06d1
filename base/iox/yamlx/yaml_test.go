// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name   string     `yaml:"name"`
	Coeffs [4]float32 `yaml:"coeffs,flow"`
}

func TestRoundTrip(t *testing.T) {
	v := testStruct{Name: "floor", Coeffs: [4]float32{0, 0, 1, -2.5}}
	fn := filepath.Join(t.TempDir(), "v.yaml")
	require.NoError(t, Save(&v, fn))

	var o testStruct
	require.NoError(t, Open(&o, fn))
	assert.Equal(t, v, o)

	b, err := WriteBytes(&v)
	require.NoError(t, err)
	assert.Contains(t, string(b), "coeffs: [0, 0, 1, -2.5]")
}

func TestKnownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.yaml":  {Data: []byte("name: x\ncoeffs: [1, 2, 3, 4]\n")},
		"bad.yaml": {Data: []byte("name: x\ncolor: red\n")},
	}
	var o testStruct
	require.NoError(t, OpenFS(&o, fsys, "ok.yaml"))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, o.Coeffs)
	assert.Error(t, OpenFS(&o, fsys, "bad.yaml"))
}
