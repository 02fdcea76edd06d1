// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(4, 0, 0), Vec3(0, 4, 0))
	assert.Equal(t, float32(8), tri.Area())
	tolAssertEqualVector(t, standardTol, Vec3(4.0/3, 4.0/3, 0), tri.Midpoint())
	assert.Equal(t, Vec3(0, 0, 1), tri.Normal())
	assert.Equal(t, NewPlane(Vec3(0, 0, 16), 0), tri.Plane())
	assert.Equal(t, Vec3(1, 0, 0), tri.BarycoordFromPoint(Vec3(0, 0, 0)))
	assert.Equal(t, NewSegment(Vec3(4, 0, 0), Vec3(0, 4, 0)), tri.LongestEdge())
	assert.False(t, tri.IsDegenerate())
	assert.NoError(t, tri.Validate())
}

func TestTriangleContainsPoint(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(4, 0, 0), Vec3(0, 4, 0))
	tests := []struct {
		name string
		p    Vector3
		want bool
	}{
		{"interior", Vec3(1, 1, 0), true},
		{"vertex", Vec3(0, 0, 0), true},
		{"edge", Vec3(2, 0, 0), true},
		{"hypotenuse", Vec3(2, 2, 0), true},
		{"near plane", Vec3(1, 1, 0.000001), true},
		{"outside", Vec3(3, 3, 0), false},
		{"beyond vertex", Vec3(-0.1, 0, 0), false},
		{"above", Vec3(1, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tri.ContainsPoint(tt.p))
			assert.Equal(t, tt.want, ContainsPoint(tt.p, tri.A, tri.B, tri.C))
		})
	}

	reversed := NewTriangle(tri.C, tri.B, tri.A)
	assert.True(t, reversed.ContainsPoint(Vec3(1, 1, 0)))
	assert.False(t, reversed.ContainsPoint(Vec3(3, 3, 0)))
}

func TestTriangleDegenerate(t *testing.T) {
	collinear := NewTriangle(Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2))
	coincident := NewTriangle(Vec3(0, 0, 0), Vec3(0, 0, 0), Vec3(1, 0, 0))
	point := NewTriangle(Vec3(1, 2, 3), Vec3(1, 2, 3), Vec3(1, 2, 3))
	for _, tri := range []Triangle{collinear, coincident, point} {
		assert.True(t, tri.IsDegenerate(), tri)
		assert.ErrorIs(t, tri.Validate(), ErrDegenerateTriangle)
		assert.False(t, tri.ContainsPoint(tri.A), tri)
	}
	assert.Equal(t, NewSegment(Vec3(2, 2, 2), Vec3(0, 0, 0)), collinear.LongestEdge())
	assert.Equal(t, Vec3(-2, -1, -1), collinear.BarycoordFromPoint(Vec3(1, 1, 1)))
}
