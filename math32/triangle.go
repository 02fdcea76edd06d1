// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"

	"cogentcore.org/geom/base/errors"
)

// ErrDegenerateTriangle is reported for a triangle whose vertices
// coincide or are collinear.
var ErrDegenerateTriangle = errors.New("degenerate triangle (coincident or collinear vertices)")

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the triangle's normal.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// BarycoordFromPoint returns the barycentric coordinates for the specified point.
func BarycoordFromPoint(point, a, b, c Vector3) Vector3 {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := point.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01

	// colinear or singular triangle
	if denom == 0 {
		// arbitrary location outside of triangle
		return Vec3(-2, -1, -1)
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	// barycoordinates must always sum to 1
	return Vec3(1-u-v, v, u)
}

// ContainsPoint returns whether the closed triangle a, b, c contains a point,
// including its edges and vertices, within [Tolerance].
func ContainsPoint(point, a, b, c Vector3) bool {
	return NewTriangle(a, b, c).ContainsPoint(point)
}

// String returns the triangle vertices.
func (t Triangle) String() string {
	return fmt.Sprintf("Triangle[%v, %v, %v]", t.A, t.B, t.C)
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Vector3) {
	t.A = a
	t.B = b
	t.C = c
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	v0 := t.C.Sub(t.B)
	v1 := t.A.Sub(t.B)
	return v0.Cross(v1).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Plane returns a Plane object aligned with the triangle,
// with its normal oriented by the counter-clockwise order A, B, C.
func (t Triangle) Plane() Plane {
	pv := Plane{}
	pv.SetFromCoplanarPoints(t.A, t.B, t.C)
	return pv
}

// BarycoordFromPoint returns the barycentric coordinates for the specified point.
func (t Triangle) BarycoordFromPoint(point Vector3) Vector3 {
	return BarycoordFromPoint(point, t.A, t.B, t.C)
}

// ContainsPoint returns whether the closed triangle contains the point,
// within [Tolerance] of both its plane and its edges.
// A degenerate triangle contains no point.
func (t Triangle) ContainsPoint(point Vector3) bool {
	f := t.face()
	if !f.ok || !f.plane.ContainsPoint(point) {
		return false
	}
	in, _ := f.contains(point)
	return in
}

// Edges returns the three edges AB, BC and CA.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// LongestEdge returns the longest of the three edges.
func (t Triangle) LongestEdge() Segment {
	edges := t.Edges()
	best := edges[0]
	for _, e := range edges[1:] {
		if e.LengthSquared() > best.LengthSquared() {
			best = e
		}
	}
	return best
}

// IsDegenerate returns whether the vertices are all within [Tolerance]
// of a common line, which includes coincident vertices.
func (t Triangle) IsDegenerate() bool {
	longest := t.LongestEdge().Length()
	if longest <= Tolerance {
		return true
	}
	height := 2 * t.Area() / longest
	return height <= Tolerance
}

// Validate returns an error wrapping [ErrDegenerateTriangle] for a
// degenerate triangle, and nil otherwise.
func (t Triangle) Validate() error {
	if t.IsDegenerate() {
		return fmt.Errorf("math32.Triangle %v: %w", t, ErrDegenerateTriangle)
	}
	return nil
}

func (t Triangle) face() convexFace {
	return newConvexFace(t.A, t.B, t.C)
}
