// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectionPointsHexahedron(t *testing.T) {
	h := testCube()
	s := NewSegment(Vec3(0, 3, 2), Vec3(2, 1, 2))
	kind, p0, p1 := s.IntersectionPointsHexahedron(h)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, standardTol, Vec3(1, 2, 2), p0)
	tolAssertEqualVector(t, standardTol, Vec3(2, 1, 2), p1)
	assert.True(t, s.IntersectsHexahedron(h))
	kind, p0 = s.IntersectionPointHexahedron(h)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, standardTol, Vec3(1, 2, 2), p0)
}

func TestIntersectionPointsHexahedronCases(t *testing.T) {
	h := testCube()
	tests := []struct {
		name   string
		s      Segment
		want   Intersections
		p0, p1 Vector3
	}{
		{"through", NewSegment(Vec3(0, 2, 2), Vec3(4, 2, 2)), TwoIntersections, Vec3(1, 2, 2), Vec3(3, 2, 2)},
		{"diagonal", NewSegment(Vec3(0, 0, 0), Vec3(4, 4, 4)), TwoIntersections, Vec3(1, 1, 1), Vec3(3, 3, 3)},
		{"exit", NewSegment(Vec3(2, 2, 2), Vec3(4, 2, 2)), OneIntersection, Vec3(3, 2, 2), Vector3{}},
		{"enter", NewSegment(Vec3(2, -2, 2), Vec3(2, 2, 2)), OneIntersection, Vec3(2, 1, 2), Vector3{}},
		{"vertex", NewSegment(Vec3(3, 3, 3), Vec3(4, 4, 4)), OneIntersection, Vec3(3, 3, 3), Vector3{}},
		{"edge", NewSegment(Vec3(0, 0, 2), Vec3(2, 2, 2)), OneIntersection, Vec3(1, 1, 2), Vector3{}},
		{"graze edge", NewSegment(Vec3(0, 2, 2), Vec3(2, 0, 2)), OneIntersection, Vec3(1, 1, 2), Vector3{}},
		{"inside", NewSegment(Vec3(1.5, 2, 2), Vec3(2.5, 2, 2)), InfiniteIntersections, Vec3(1.5, 2, 2), Vec3(2.5, 2, 2)},
		{"in face", NewSegment(Vec3(1, 1.5, 1.5), Vec3(1, 2.5, 2.5)), InfiniteIntersections, Vec3(1, 1.5, 1.5), Vec3(1, 2.5, 2.5)},
		{"across face", NewSegment(Vec3(1, 0, 2), Vec3(1, 4, 2)), InfiniteIntersections, Vec3(1, 1, 2), Vec3(1, 3, 2)},
		{"along edge", NewSegment(Vec3(1, 1, 0), Vec3(1, 1, 4)), InfiniteIntersections, Vec3(1, 1, 1), Vec3(1, 1, 3)},
		{"face plane outside", NewSegment(Vec3(1, 4, 0), Vec3(1, 4, 4)), NoIntersection, Vector3{}, Vector3{}},
		{"miss", NewSegment(Vec3(0, 0, 0), Vec3(0, 5, 0)), NoIntersection, Vector3{}, Vector3{}},
		{"short", NewSegment(Vec3(0, 2, 2), Vec3(0.5, 2, 2)), NoIntersection, Vector3{}, Vector3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, p0, p1 := tt.s.IntersectionPointsHexahedron(h)
			assert.Equal(t, tt.want, kind)
			tolAssertEqualVector(t, 1.0e-4, tt.p0, p0)
			tolAssertEqualVector(t, 1.0e-4, tt.p1, p1)
			assert.Equal(t, tt.want != NoIntersection, tt.s.IntersectsHexahedron(h))

			rkind, rp0, rp1 := tt.s.Reversed().IntersectionPointsHexahedron(h)
			assert.Equal(t, kind, rkind)
			switch kind {
			case OneIntersection:
				tolAssertEqualVector(t, 1.0e-4, p0, rp0)
			case TwoIntersections, InfiniteIntersections:
				tolAssertEqualVector(t, 1.0e-4, p0, rp1)
				tolAssertEqualVector(t, 1.0e-4, p1, rp0)
			}
		})
	}
}

func TestIntersectionPointsHexahedronGeneral(t *testing.T) {
	// square frustum, narrowing from z = 0 to z = 2
	h := NewHexahedron(
		Vec3(1, 1, 2), Vec3(3, 1, 2), Vec3(3, 3, 2), Vec3(1, 3, 2),
		Vec3(0, 0, 0), Vec3(0, 4, 0), Vec3(4, 4, 0), Vec3(4, 0, 0))

	kind, p0, p1 := NewSegment(Vec3(2, 2, -1), Vec3(2, 2, 3)).IntersectionPointsHexahedron(h)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, 1.0e-4, Vec3(2, 2, 0), p0)
	tolAssertEqualVector(t, 1.0e-4, Vec3(2, 2, 2), p1)

	kind, p0, p1 = NewSegment(Vec3(-1, 2, 1), Vec3(5, 2, 1)).IntersectionPointsHexahedron(h)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, 1.0e-4, Vec3(0.5, 2, 1), p0)
	tolAssertEqualVector(t, 1.0e-4, Vec3(3.5, 2, 1), p1)

	assert.False(t, NewSegment(Vec3(0.2, 2, 1.9), Vec3(0.2, 2, 3)).IntersectsHexahedron(h))

	// cube rotated by 45 degrees about z around its center
	q := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/4)
	rh := testCube().Translate(Vec3(-2, -2, -2)).MulQuat(q)
	kind, p0, p1 = NewSegment(Vec3(-3, 0, 0), Vec3(3, 0, 0)).IntersectionPointsHexahedron(rh)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, 1.0e-4, Vec3(-Sqrt(2), 0, 0), p0)
	tolAssertEqualVector(t, 1.0e-4, Vec3(Sqrt(2), 0, 0), p1)

	kind, p0, p1 = NewSegment(Vec3(0, -3, 0.5), Vec3(0, 3, 0.5)).IntersectionPointsHexahedron(rh)
	assert.Equal(t, TwoIntersections, kind)
	tolAssertEqualVector(t, 1.0e-4, Vec3(0, -Sqrt(2), 0.5), p0)
	tolAssertEqualVector(t, 1.0e-4, Vec3(0, Sqrt(2), 0.5), p1)
}

func TestIntersectionPointsHexahedronDegenerate(t *testing.T) {
	setPreconditions(t, PreconditionsIgnore)
	h := testCube()

	kind, p0, _ := NewSegment(Vec3(2, 2, 2), Vec3(2, 2, 2)).IntersectionPointsHexahedron(h)
	assert.Equal(t, OneIntersection, kind)
	assert.Equal(t, Vec3(2, 2, 2), p0)
	assert.True(t, NewSegment(Vec3(3, 3, 3), Vec3(3, 3, 3)).IntersectsHexahedron(h))
	assert.False(t, NewSegment(Vec3(5, 5, 5), Vec3(5, 5, 5)).IntersectsHexahedron(h))

	p := Vec3(1, 2, 3)
	ph := NewHexahedron(p, p, p, p, p, p, p, p)
	kind, p0, _ = NewSegment(Vec3(1, 2, 0), Vec3(1, 2, 5)).IntersectionPointsHexahedron(ph)
	assert.Equal(t, OneIntersection, kind)
	assert.Equal(t, p, p0)
	assert.False(t, NewSegment(Vec3(0, 0, 0), Vec3(1, 0, 0)).IntersectsHexahedron(ph))

	PreconditionMode = PreconditionsPanic
	assert.Panics(t, func() { NewSegment(Vec3(1, 2, 0), Vec3(1, 2, 5)).IntersectsHexahedron(ph) })
	assert.Panics(t, func() { NewSegment(p, p).IntersectsHexahedron(h) })
}
