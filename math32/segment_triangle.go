// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// IntersectsTriangle returns whether the segment touches the closed triangle,
// including its edges and vertices.
// See [Segment.IntersectionPointsTriangle] for degenerate inputs.
func (s Segment) IntersectsTriangle(t Triangle) bool {
	kind, _ := s.IntersectionPointTriangle(t)
	return kind != NoIntersection
}

// IntersectionPointTriangle returns the intersection of the segment with the
// closed triangle and its first point.
// See [Segment.IntersectionPointsTriangle] for details.
func (s Segment) IntersectionPointTriangle(t Triangle) (Intersections, Vector3) {
	kind, p, _ := s.IntersectionPointsTriangle(t)
	return kind, p
}

// IntersectionPointsTriangle returns the intersection of the segment with the
// closed triangle, including its edges and vertices, and its points.
//
// A segment crossing the plane of the triangle gives [OneIntersection] at
// the crossing point if that is in the triangle. A segment lying in the
// plane of the triangle gives:
//   - [InfiniteIntersections] and the ends of the overlap when the overlap
//     passes through the interior of the triangle;
//   - [TwoIntersections] and the ends of the overlap when the overlap runs
//     along an edge of the triangle;
//   - [OneIntersection] when the overlap is a single point.
//
// Otherwise it gives [NoIntersection]. Unused points are the zero vector.
//
// The segment and the triangle must not be degenerate. A degenerate
// segment is tested as the point A, giving [OneIntersection] at A if the
// triangle contains it. A degenerate triangle is intersected as its
// longest edge, which can be a single point.
func (s Segment) IntersectionPointsTriangle(t Triangle) (Intersections, Vector3, Vector3) {
	if preconditions(s.Validate(), t.Validate()) {
		if t.IsDegenerate() {
			return s.intersectionPointsSegment(t.LongestEdge())
		}
		if t.ContainsPoint(s.A) {
			return OneIntersection, s.A, Vector3{}
		}
		return NoIntersection, Vector3{}, Vector3{}
	}
	f := t.face()
	if s.spaceRelation(f.plane) == Contained {
		return f.overlap(s)
	}
	kind, p := f.crossing(s)
	return kind, p, Vector3{}
}
