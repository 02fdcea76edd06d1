// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides scene files naming planes, triangles, hexahedra
// and segments, and the queries that test the segments against the shapes.
// Scene files are TOML or YAML, and evaluating a scene gives a [Result]
// for each query.
package scene

import (
	"fmt"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/math32"
)

// Vec is a 3D point or vector as written in scene files.
type Vec [3]float32

// VecFrom returns the [Vec] for the given vector.
func VecFrom(v math32.Vector3) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// Vector3 returns the vector as a [math32.Vector3].
func (v Vec) Vector3() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Settings are the engine settings of a scene.
type Settings struct {

	// Tolerance is the distance within which points are considered
	// coincident or on a plane. Zero uses [math32.DefaultTolerance].
	Tolerance float32 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	// Preconditions is how degenerate inputs are handled.
	Preconditions math32.Preconditions `toml:"preconditions" yaml:"preconditions"`
}

// Apply sets [math32.Tolerance] and [math32.PreconditionMode] from
// the settings, replacing any values set by a previous scene.
// It must not be called concurrently with queries.
func (st *Settings) Apply() {
	math32.Tolerance = math32.DefaultTolerance
	if st.Tolerance > 0 {
		math32.Tolerance = st.Tolerance
	}
	math32.PreconditionMode = st.Preconditions
}

// Plane is a named plane ax + by + cz + d = 0 with Coeffs (a, b, c, d).
type Plane struct {
	Name   string     `toml:"name" yaml:"name"`
	Coeffs [4]float32 `toml:"coeffs" yaml:"coeffs,flow"`
}

// Plane returns the plane as a [math32.Plane].
func (p *Plane) Plane() math32.Plane {
	return math32.NewPlaneCoeffs(p.Coeffs[0], p.Coeffs[1], p.Coeffs[2], p.Coeffs[3])
}

// Triangle is a named triangle.
type Triangle struct {
	Name     string `toml:"name" yaml:"name"`
	Vertices [3]Vec `toml:"vertices" yaml:"vertices,flow"`
}

// Triangle returns the triangle as a [math32.Triangle].
func (t *Triangle) Triangle() math32.Triangle {
	return math32.NewTriangle(t.Vertices[0].Vector3(), t.Vertices[1].Vector3(), t.Vertices[2].Vector3())
}

// Box is an axis-aligned box given by its minimum and maximum corners.
type Box struct {
	Min Vec `toml:"min" yaml:"min,flow"`
	Max Vec `toml:"max" yaml:"max,flow"`
}

// Hexahedron is a named hexahedron, given either by its eight
// Vertices in A to H order or as a Box.
type Hexahedron struct {
	Name     string `toml:"name" yaml:"name"`
	Vertices []Vec  `toml:"vertices,omitempty" yaml:"vertices,omitempty,flow"`
	Box      *Box   `toml:"box,omitempty" yaml:"box,omitempty"`
}

// Hexahedron returns the hexahedron as a [math32.Hexahedron].
func (h *Hexahedron) Hexahedron() (math32.Hexahedron, error) {
	switch {
	case h.Box != nil && len(h.Vertices) > 0:
		return math32.Hexahedron{}, fmt.Errorf("hexahedron %q: both vertices and box given", h.Name)
	case h.Box != nil:
		return math32.Box3{Min: h.Box.Min.Vector3(), Max: h.Box.Max.Vector3()}.Hexahedron(), nil
	case len(h.Vertices) != 8:
		return math32.Hexahedron{}, fmt.Errorf("hexahedron %q: %d vertices instead of 8", h.Name, len(h.Vertices))
	}
	var vs [8]math32.Vector3
	for i, v := range h.Vertices {
		vs[i] = v.Vector3()
	}
	mh := math32.Hexahedron{}
	mh.SetVertices(vs)
	return mh, nil
}

// Transform is an affine transform applied to a segment.
type Transform struct {
	Op TransformOps `toml:"op" yaml:"op"`

	// Vector is the offset for [Translate], the factors for [Scale],
	// and the axis for [Rotate].
	Vector Vec `toml:"vector" yaml:"vector,flow"`

	// Angle is the rotation angle in degrees.
	Angle float32 `toml:"angle,omitempty" yaml:"angle,omitempty"`

	// Pivot is the fixed point of [Scale] and [Rotate].
	Pivot Vec `toml:"pivot,omitempty" yaml:"pivot,omitempty,flow"`
}

// Apply returns the segment with the transform applied.
func (tr *Transform) Apply(s math32.Segment) math32.Segment {
	v := tr.Vector.Vector3()
	pivot := tr.Pivot.Vector3()
	switch tr.Op {
	case Scale:
		return s.ScaleWithPivot(v, pivot)
	case Rotate:
		return s.RotateWithPivot(math32.NewQuatAxisAngle(v, math32.DegToRad(tr.Angle)), pivot)
	}
	return s.Translate(v)
}

// Segment is a named segment from A to B, with optional transforms
// applied in order.
type Segment struct {
	Name       string      `toml:"name" yaml:"name"`
	A          Vec         `toml:"a" yaml:"a,flow"`
	B          Vec         `toml:"b" yaml:"b,flow"`
	Transforms []Transform `toml:"transforms,omitempty" yaml:"transforms,omitempty"`
}

// Segment returns the segment as a [math32.Segment], with its
// transforms applied.
func (s *Segment) Segment() math32.Segment {
	ms := math32.NewSegment(s.A.Vector3(), s.B.Vector3())
	for i := range s.Transforms {
		ms = s.Transforms[i].Apply(ms)
	}
	return ms
}

// Query tests the named segment against the named shape.
type Query struct {
	Segment string `toml:"segment" yaml:"segment"`
	Shape   string `toml:"shape" yaml:"shape"`
}

// Scene is a set of named shapes and segments, with the queries
// to run on them. If there are no Queries, every segment is tested
// against every shape.
type Scene struct {

	// Version is the scene file format version, compatible with
	// [FormatVersion]. It is not checked when empty.
	Version string `toml:"version,omitempty" yaml:"version,omitempty"`

	Settings  Settings     `toml:"settings" yaml:"settings"`
	Planes    []Plane      `toml:"planes,omitempty" yaml:"planes,omitempty"`
	Triangles []Triangle   `toml:"triangles,omitempty" yaml:"triangles,omitempty"`
	Hexahedra []Hexahedron `toml:"hexahedra,omitempty" yaml:"hexahedra,omitempty"`
	Segments  []Segment    `toml:"segments,omitempty" yaml:"segments,omitempty"`
	Queries   []Query      `toml:"queries,omitempty" yaml:"queries,omitempty"`
}

// shape is a resolved shape of a scene.
type shape struct {
	name  string
	kind  Shapes
	plane math32.Plane
	tri   math32.Triangle
	hex   math32.Hexahedron
}

// shapes returns the shapes of the scene by name, in declaration order.
func (sc *Scene) shapes() (map[string]*shape, []string, error) {
	byName := map[string]*shape{}
	var order []string
	var errs []error
	add := func(sh *shape) {
		if _, has := byName[sh.name]; has {
			errs = append(errs, fmt.Errorf("duplicate shape name %q", sh.name))
			return
		}
		byName[sh.name] = sh
		order = append(order, sh.name)
	}
	for i := range sc.Planes {
		p := &sc.Planes[i]
		add(&shape{name: p.Name, kind: ShapePlane, plane: p.Plane()})
	}
	for i := range sc.Triangles {
		t := &sc.Triangles[i]
		add(&shape{name: t.Name, kind: ShapeTriangle, tri: t.Triangle()})
	}
	for i := range sc.Hexahedra {
		h := &sc.Hexahedra[i]
		mh, err := h.Hexahedron()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		add(&shape{name: h.Name, kind: ShapeHexahedron, hex: mh})
	}
	return byName, order, errors.Join(errs...)
}

// segments returns the segments of the scene by name, in declaration order.
func (sc *Scene) segments() (map[string]math32.Segment, []string, error) {
	byName := map[string]math32.Segment{}
	var order []string
	var errs []error
	for i := range sc.Segments {
		s := &sc.Segments[i]
		if _, has := byName[s.Name]; has {
			errs = append(errs, fmt.Errorf("duplicate segment name %q", s.Name))
			continue
		}
		byName[s.Name] = s.Segment()
		order = append(order, s.Name)
	}
	return byName, order, errors.Join(errs...)
}
