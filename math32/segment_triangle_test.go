// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectsTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(1, 1, 1), Vec3(4, 2, 3), Vec3(5, 2, 0))
	s := NewSegment(Vec3(3, 3, 1), Vec3(6, 0, 1))
	assert.True(t, s.IntersectsTriangle(tri))
	kind, p := s.IntersectionPointTriangle(tri)
	assert.Equal(t, OneIntersection, kind)
	tolAssertEqualVector(t, 1.0e-4, Vec3(29.0/7, 13.0/7, 1), p)
	assert.True(t, tri.ContainsPoint(p))

	// endpoints at two of the vertices
	for _, s := range []Segment{{tri.A, tri.C}, {tri.C, tri.A}, {tri.B, tri.A}} {
		kind, p0, p1 := s.IntersectionPointsTriangle(tri)
		assert.Equal(t, TwoIntersections, kind, s)
		assert.Equal(t, s.A, p0)
		assert.Equal(t, s.B, p1)
	}
}

func TestIntersectionPointsTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(4, 0, 0), Vec3(0, 4, 0))
	tests := []struct {
		name   string
		s      Segment
		want   Intersections
		p0, p1 Vector3
	}{
		{"interior", NewSegment(Vec3(1, 1, -1), Vec3(1, 1, 1)), OneIntersection, Vec3(1, 1, 0), Vector3{}},
		{"edge", NewSegment(Vec3(2, 0, -1), Vec3(2, 0, 1)), OneIntersection, Vec3(2, 0, 0), Vector3{}},
		{"vertex", NewSegment(Vec3(0, 0, -1), Vec3(0, 0, 1)), OneIntersection, Vec3(0, 0, 0), Vector3{}},
		{"endpoint", NewSegment(Vec3(1, 1, 0), Vec3(1, 1, 5)), OneIntersection, Vec3(1, 1, 0), Vector3{}},
		{"oblique", NewSegment(Vec3(0, 0, 2), Vec3(2, 2, -2)), OneIntersection, Vec3(1, 1, 0), Vector3{}},
		{"outside", NewSegment(Vec3(3, 3, -1), Vec3(3, 3, 1)), NoIntersection, Vector3{}, Vector3{}},
		{"short", NewSegment(Vec3(1, 1, 1), Vec3(1, 1, 2)), NoIntersection, Vector3{}, Vector3{}},
		{"parallel", NewSegment(Vec3(1, 1, 1), Vec3(2, 1, 1)), NoIntersection, Vector3{}, Vector3{}},
		{"coplanar through", NewSegment(Vec3(-1, 1, 0), Vec3(5, 1, 0)), TwoIntersections, Vec3(0, 1, 0), Vec3(3, 1, 0)},
		{"coplanar along edge", NewSegment(Vec3(-1, 0, 0), Vec3(5, 0, 0)), TwoIntersections, Vec3(0, 0, 0), Vec3(4, 0, 0)},
		{"coplanar from inside", NewSegment(Vec3(1, 1, 0), Vec3(5, 1, 0)), InfiniteIntersections, Vec3(1, 1, 0), Vec3(3, 1, 0)},
		{"coplanar inside", NewSegment(Vec3(0.5, 0.5, 0), Vec3(1, 1, 0)), InfiniteIntersections, Vec3(0.5, 0.5, 0), Vec3(1, 1, 0)},
		{"coplanar vertex", NewSegment(Vec3(4, 0, 0), Vec3(6, -2, 0)), OneIntersection, Vec3(4, 0, 0), Vector3{}},
		{"coplanar corner", NewSegment(Vec3(-1, 1, 0), Vec3(1, -1, 0)), OneIntersection, Vec3(0, 0, 0), Vector3{}},
		{"coplanar outside", NewSegment(Vec3(5, 5, 0), Vec3(6, 6, 0)), NoIntersection, Vector3{}, Vector3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, p0, p1 := tt.s.IntersectionPointsTriangle(tri)
			assert.Equal(t, tt.want, kind)
			tolAssertEqualVector(t, 1.0e-4, tt.p0, p0)
			tolAssertEqualVector(t, 1.0e-4, tt.p1, p1)
			assert.Equal(t, tt.want != NoIntersection, tt.s.IntersectsTriangle(tri))

			rkind, rp0, rp1 := tt.s.Reversed().IntersectionPointsTriangle(tri)
			assert.Equal(t, kind, rkind)
			switch kind {
			case OneIntersection:
				assert.Equal(t, p0, rp0)
			case TwoIntersections, InfiniteIntersections:
				tolAssertEqualVector(t, 1.0e-4, p0, rp1)
				tolAssertEqualVector(t, 1.0e-4, p1, rp0)
			}
		})
	}
}

func TestIntersectionPointsTriangleDegenerate(t *testing.T) {
	setPreconditions(t, PreconditionsIgnore)
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(4, 0, 0), Vec3(0, 4, 0))

	kind, p0, _ := NewSegment(Vec3(1, 1, 0), Vec3(1, 1, 0)).IntersectionPointsTriangle(tri)
	assert.Equal(t, OneIntersection, kind)
	assert.Equal(t, Vec3(1, 1, 0), p0)
	kind, _, _ = NewSegment(Vec3(3, 3, 0), Vec3(3, 3, 0)).IntersectionPointsTriangle(tri)
	assert.Equal(t, NoIntersection, kind)

	line := NewTriangle(Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(4, 0, 0))
	kind, p0, _ = NewSegment(Vec3(1, -1, 0), Vec3(1, 1, 0)).IntersectionPointsTriangle(line)
	assert.Equal(t, OneIntersection, kind)
	tolAssertEqualVector(t, standardTol, Vec3(1, 0, 0), p0)
	kind, p0, p1 := NewSegment(Vec3(1, 0, 0), Vec3(3, 0, 0)).IntersectionPointsTriangle(line)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, standardTol, Vec3(1, 0, 0), p0)
	tolAssertEqualVector(t, standardTol, Vec3(3, 0, 0), p1)
	assert.False(t, NewSegment(Vec3(1, 1, 0), Vec3(3, 1, 0)).IntersectsTriangle(line))

	point := NewTriangle(Vec3(1, 0, 0), Vec3(1, 0, 0), Vec3(1, 0, 0))
	assert.True(t, NewSegment(Vec3(0, 0, 0), Vec3(2, 0, 0)).IntersectsTriangle(point))
	assert.False(t, NewSegment(Vec3(0, 1, 0), Vec3(2, 1, 0)).IntersectsTriangle(point))

	PreconditionMode = PreconditionsPanic
	assert.Panics(t, func() { NewSegment(Vec3(0, 0, 0), Vec3(2, 0, 0)).IntersectsTriangle(line) })
	assert.Panics(t, func() { NewSegment(Vec3(1, 1, 0), Vec3(1, 1, 0)).IntersectsTriangle(tri) })
}
