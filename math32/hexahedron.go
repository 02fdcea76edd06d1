// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/geom/base/errors"
)

// ErrDegenerateHexahedron is reported for a hexahedron whose vertices
// all coincide.
var ErrDegenerateHexahedron = errors.New("degenerate hexahedron (coincident vertices)")

// Hexahedron represents a convex solid with six quadrilateral faces,
// which does not need to be axis-aligned. With ABCD the top face and
// EFGH the bottom face, the faces are ABCD, EFGH, ADFE, BCGH, DFGC and
// ABHE, and the vertical edges are AE, BH, CG and DF.
// See [Box3.Hexahedron] for the layout of an axis-aligned box.
type Hexahedron struct {
	A, B, C, D Vector3
	E, F, G, H Vector3
}

// NewHexahedron returns a new Hexahedron from its eight vertices.
func NewHexahedron(a, b, c, d, e, f, g, h Vector3) Hexahedron {
	return Hexahedron{a, b, c, d, e, f, g, h}
}

// String returns the hexahedron vertices.
func (h Hexahedron) String() string {
	return fmt.Sprintf("Hexahedron[%v, %v, %v, %v, %v, %v, %v, %v]", h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H)
}

// Vertices returns the eight vertices in A to H order.
func (h Hexahedron) Vertices() [8]Vector3 {
	return [8]Vector3{h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H}
}

// SetVertices sets the eight vertices in A to H order.
func (h *Hexahedron) SetVertices(v [8]Vector3) {
	h.A, h.B, h.C, h.D = v[0], v[1], v[2], v[3]
	h.E, h.F, h.G, h.H = v[4], v[5], v[6], v[7]
}

// Faces returns the vertices of the six faces ABCD, EFGH, ADFE, BCGH,
// DFGC and ABHE.
func (h Hexahedron) Faces() [6][4]Vector3 {
	return [6][4]Vector3{
		{h.A, h.B, h.C, h.D},
		{h.E, h.F, h.G, h.H},
		{h.A, h.D, h.F, h.E},
		{h.B, h.C, h.G, h.H},
		{h.D, h.F, h.G, h.C},
		{h.A, h.B, h.H, h.E},
	}
}

// Edges returns the twelve edges AB, BC, CD, DA, EF, FG, GH, HE,
// AE, BH, CG and DF.
func (h Hexahedron) Edges() [12]Segment {
	return [12]Segment{
		{h.A, h.B}, {h.B, h.C}, {h.C, h.D}, {h.D, h.A},
		{h.E, h.F}, {h.F, h.G}, {h.G, h.H}, {h.H, h.E},
		{h.A, h.E}, {h.B, h.H}, {h.C, h.G}, {h.D, h.F},
	}
}

// Center returns the centroid of the eight vertices.
func (h Hexahedron) Center() Vector3 {
	var c Vector3
	for _, v := range h.Vertices() {
		c.SetAdd(v)
	}
	return c.MulScalar(0.125)
}

// Bounds returns the axis-aligned box spanning the vertices.
func (h Hexahedron) Bounds() Box3 {
	vs := h.Vertices()
	b := Box3{}
	b.SetFromPoints(vs[:])
	return b
}

// IsDegenerate returns whether all vertices are within [Tolerance] of A.
func (h Hexahedron) IsDegenerate() bool {
	vs := h.Vertices()
	for _, v := range vs[1:] {
		if !v.IsEqualTol(h.A, Tolerance) {
			return false
		}
	}
	return true
}

// Validate returns an error wrapping [ErrDegenerateHexahedron] for a
// degenerate hexahedron, and nil otherwise.
func (h Hexahedron) Validate() error {
	if h.IsDegenerate() {
		return fmt.Errorf("math32.Hexahedron %v: %w", h, ErrDegenerateHexahedron)
	}
	return nil
}

// faces returns the faces that span a plane, oriented with
// their normals pointing out of the solid.
func (h Hexahedron) faces() []convexFace {
	ctr := h.Center()
	fs := make([]convexFace, 0, 6)
	for _, vs := range h.Faces() {
		f := newConvexFace(vs[:]...)
		if !f.ok {
			continue
		}
		if f.plane.SignedDistance(ctr) > 0 {
			f = f.flip()
		}
		fs = append(fs, f)
	}
	return fs
}

// ContainsPoint returns whether the closed solid contains the point,
// which is then within [Tolerance] of the inner side of every face plane.
// A degenerate hexahedron contains only the point A.
func (h Hexahedron) ContainsPoint(point Vector3) bool {
	if h.IsDegenerate() {
		return point.IsEqualTol(h.A, Tolerance)
	}
	for _, f := range h.faces() {
		if f.plane.SignedDistance(point) > Tolerance {
			return false
		}
	}
	return true
}

// Translate returns the hexahedron translated by the given offset.
func (h Hexahedron) Translate(offset Vector3) Hexahedron {
	return h.mapVertices(func(v Vector3) Vector3 { return v.Add(offset) })
}

// MulMatrix4 returns the hexahedron with every vertex transformed
// by the given matrix.
func (h Hexahedron) MulMatrix4(m *Matrix4) Hexahedron {
	return h.mapVertices(func(v Vector3) Vector3 { return v.MulMatrix4(m) })
}

// MulQuat returns the hexahedron with every vertex rotated
// by the given quaternion.
func (h Hexahedron) MulQuat(q Quat) Hexahedron {
	return h.mapVertices(func(v Vector3) Vector3 { return v.MulQuat(q) })
}

func (h Hexahedron) mapVertices(fun func(v Vector3) Vector3) Hexahedron {
	vs := h.Vertices()
	for i, v := range vs {
		vs[i] = fun(v)
	}
	nh := Hexahedron{}
	nh.SetVertices(vs)
	return nh
}
