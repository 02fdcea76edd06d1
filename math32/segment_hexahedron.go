// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"cmp"
	"slices"
)

// IntersectsHexahedron returns whether the segment touches the closed solid.
// See [Segment.IntersectionPointsHexahedron] for degenerate inputs.
func (s Segment) IntersectsHexahedron(h Hexahedron) bool {
	kind, _ := s.IntersectionPointHexahedron(h)
	return kind != NoIntersection
}

// IntersectionPointHexahedron returns the intersection of the segment with
// the closed solid and its first point from A.
// See [Segment.IntersectionPointsHexahedron] for details.
func (s Segment) IntersectionPointHexahedron(h Hexahedron) (Intersections, Vector3) {
	kind, p, _ := s.IntersectionPointsHexahedron(h)
	return kind, p
}

// IntersectionPointsHexahedron returns the intersection of the segment with
// the boundary of the closed solid and its points, ordered from A to B.
// Crossings within [Tolerance] of each other, such as those on an edge
// shared by two faces, count as one point. It gives:
//   - [TwoIntersections] and the first and last crossings when there are
//     two or more distinct crossings;
//   - [OneIntersection] and the crossing when there is only one, as for a
//     segment leaving the solid from an interior endpoint;
//   - [InfiniteIntersections] and the ends of the overlap for a segment
//     lying in a face, and A and B for a segment inside the solid;
//   - [NoIntersection] otherwise.
//
// Unused points are the zero vector.
//
// The segment and the hexahedron must not be degenerate. A degenerate
// segment is tested as the point A, giving [OneIntersection] at A if the
// solid contains it. A degenerate hexahedron is tested as its point A.
func (s Segment) IntersectionPointsHexahedron(h Hexahedron) (Intersections, Vector3, Vector3) {
	if preconditions(s.Validate(), h.Validate()) {
		if h.IsDegenerate() {
			return s.intersectionPointsSegment(Segment{h.A, h.A})
		}
		if h.ContainsPoint(s.A) {
			return OneIntersection, s.A, Vector3{}
		}
		return NoIntersection, Vector3{}, Vector3{}
	}

	var hits []Vector3
	add := func(p Vector3) {
		for _, hp := range hits {
			if hp.IsEqualTol(p, Tolerance) {
				return
			}
		}
		hits = append(hits, p)
	}
	for _, f := range h.faces() {
		if s.spaceRelation(f.plane) == Contained {
			kind, p0, p1 := f.overlap(s)
			switch kind {
			case TwoIntersections, InfiniteIntersections:
				return InfiniteIntersections, p0, p1
			case OneIntersection:
				add(p0)
			}
			continue
		}
		if kind, p := f.crossing(s); kind == OneIntersection {
			add(p)
		}
	}

	switch len(hits) {
	case 0:
		if h.ContainsPoint(s.A) {
			return InfiniteIntersections, s.A, s.B
		}
		return NoIntersection, Vector3{}, Vector3{}
	case 1:
		return OneIntersection, hits[0], Vector3{}
	}
	slices.SortFunc(hits, func(a, b Vector3) int {
		return cmp.Compare(s.ClosestParameterToPoint(a), s.ClosestParameterToPoint(b))
	})
	return TwoIntersections, hits[0], hits[len(hits)-1]
}
