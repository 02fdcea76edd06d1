// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/math32"
	"github.com/Masterminds/semver/v3"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// FormatVersion is the version of the scene file format written by
// this package. Scene files with a different major version are rejected.
const FormatVersion = "1.0.0"

// Result is the outcome of testing a segment against a shape.
type Result struct {
	Segment string `toml:"segment" yaml:"segment"`
	Shape   string `toml:"shape" yaml:"shape"`
	Kind    Shapes `toml:"kind" yaml:"kind"`

	// Intersections is the number of points the segment shares
	// with the shape, and Points are those points, in order from A.
	Intersections math32.Intersections `toml:"intersections" yaml:"intersections"`
	Points        []Vec                `toml:"points,omitempty" yaml:"points,omitempty,flow"`

	// Relation, MinDistance, MaxDistance and Projection are only set for planes.
	Relation    *math32.SpaceRelations `toml:"relation,omitempty" yaml:"relation,omitempty"`
	MinDistance *float32               `toml:"min_distance,omitempty" yaml:"min_distance,omitempty"`
	MaxDistance *float32               `toml:"max_distance,omitempty" yaml:"max_distance,omitempty"`
	Projection  []Vec                  `toml:"projection,omitempty" yaml:"projection,omitempty,flow"`
}

// Results is the list of results of a scene, as written to files.
type Results struct {
	Results []Result `toml:"results" yaml:"results"`
}

// Evaluate runs the queries of the scene, or tests every segment
// against every shape if there are none, after applying its [Settings].
// Queries naming unknown segments or shapes are skipped and reported
// in the returned error.
func (sc *Scene) Evaluate() ([]Result, error) {
	if err := sc.checkVersion(); err != nil {
		return nil, err
	}
	sc.Settings.Apply()
	shapes, shapeOrder, serr := sc.shapes()
	segs, segOrder, gerr := sc.segments()
	errs := []error{serr, gerr}

	queries := sc.Queries
	if len(queries) == 0 {
		for _, sn := range segOrder {
			for _, hn := range shapeOrder {
				queries = append(queries, Query{Segment: sn, Shape: hn})
			}
		}
	}

	res := make([]Result, 0, len(queries))
	for _, q := range queries {
		s, ok := segs[q.Segment]
		if !ok {
			errs = append(errs, fmt.Errorf("query: unknown segment %q%s", q.Segment, suggest(q.Segment, segOrder)))
			continue
		}
		sh, ok := shapes[q.Shape]
		if !ok {
			errs = append(errs, fmt.Errorf("query: unknown shape %q%s", q.Shape, suggest(q.Shape, shapeOrder)))
			continue
		}
		r := evaluate(s, sh)
		r.Segment = q.Segment
		slog.Debug("evaluated", "segment", q.Segment, "shape", q.Shape, "intersections", r.Intersections)
		res = append(res, r)
	}
	return res, errors.Join(errs...)
}

// checkVersion returns an error if the scene file format version is
// not compatible with [FormatVersion]. An empty version is accepted.
func (sc *Scene) checkVersion() error {
	if sc.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(sc.Version)
	if err != nil {
		return fmt.Errorf("scene: invalid version %q: %w", sc.Version, err)
	}
	c := errors.Must1(semver.NewConstraint("^" + FormatVersion))
	if !c.Check(v) {
		return fmt.Errorf("scene: version %s is not compatible with %s", v, FormatVersion)
	}
	return nil
}

// suggest returns a hint naming the most similar of the given names,
// or "" if none of them is similar enough.
func suggest(name string, names []string) string {
	best, bestSim := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, n := range names {
		if sim := strutil.Similarity(name, n, lev); sim > bestSim {
			best, bestSim = n, sim
		}
	}
	if bestSim < 0.5 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// evaluate tests the segment against the shape.
func evaluate(s math32.Segment, sh *shape) Result {
	r := Result{Shape: sh.name, Kind: sh.kind}
	switch sh.kind {
	case ShapePlane:
		kind, p := s.IntersectionPointPlane(sh.plane)
		r.setPoints(kind, p)
		rel := s.SpaceRelation(sh.plane)
		minD, maxD := s.MinDistance(sh.plane), s.MaxDistance(sh.plane)
		ps := s.ProjectToPlane(sh.plane)
		r.Relation = &rel
		r.MinDistance = &minD
		r.MaxDistance = &maxD
		r.Projection = []Vec{VecFrom(ps.A), VecFrom(ps.B)}
	case ShapeTriangle:
		r.setPoints(s.IntersectionPointsTriangle(sh.tri))
	case ShapeHexahedron:
		r.setPoints(s.IntersectionPointsHexahedron(sh.hex))
	}
	return r
}

// setPoints sets the intersections and the points that are in use.
func (r *Result) setPoints(kind math32.Intersections, pts ...math32.Vector3) {
	r.Intersections = kind
	n := 0
	switch kind {
	case math32.OneIntersection:
		n = 1
	case math32.TwoIntersections, math32.InfiniteIntersections:
		n = 2
	}
	n = min(n, len(pts))
	for _, p := range pts[:n] {
		r.Points = append(r.Points, VecFrom(p))
	}
}
