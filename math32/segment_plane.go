// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// endpointSides returns the signed metric distances of the endpoints
// from the plane, and their sides as given by [SignTol].
func (s Segment) endpointSides(p Plane) (da, db float32, sa, sb int) {
	da = p.SignedDistance(s.A)
	db = p.SignedDistance(s.B)
	return da, db, SignTol(da), SignTol(db)
}

// IntersectsPlane returns whether the segment touches the plane: its endpoints
// are on opposite sides of it, or at least one of them is within [Tolerance]
// of it. The segment must not be degenerate and the plane must not be null.
//
// A degenerate segment is tested as the point A. A null plane with a zero
// offset is the whole space, and with a non-zero offset the empty set.
func (s Segment) IntersectsPlane(p Plane) bool {
	preconditions(s.Validate(), p.Validate())
	_, _, sa, sb := s.endpointSides(p)
	return sa*sb <= 0
}

// IntersectionPointPlane returns the intersection of the segment with the
// plane and its point. It returns [OneIntersection] with the crossing point
// A + t(B - A) for t in [0, 1], where an endpoint on the plane is returned
// as is. It returns [InfiniteIntersections] and A when the whole segment
// lies in the plane, and [NoIntersection] and the zero vector otherwise,
// including for a segment parallel to the plane.
// The segment must not be degenerate and the plane must not be null.
//
// A degenerate segment gives [OneIntersection] at A if A is on the plane
// and [NoIntersection] otherwise. A null plane with a zero offset contains
// the whole segment, and with a non-zero offset nothing.
func (s Segment) IntersectionPointPlane(p Plane) (Intersections, Vector3) {
	preconditions(s.Validate(), p.Validate())
	return s.intersectionPointPlane(p)
}

func (s Segment) intersectionPointPlane(p Plane) (Intersections, Vector3) {
	da, db, sa, sb := s.endpointSides(p)
	switch {
	case s.IsDegenerate():
		if sa == 0 {
			return OneIntersection, s.A
		}
		return NoIntersection, Vector3{}
	case sa == 0 && sb == 0:
		return InfiniteIntersections, s.A
	case sa == 0:
		return OneIntersection, s.A
	case sb == 0:
		return OneIntersection, s.B
	case sa == sb:
		return NoIntersection, Vector3{}
	}
	// solve from a canonical endpoint so that the point
	// does not depend on the direction of the segment
	a, b := s.A, s.B
	if b.Less(a) {
		a, b = b, a
		da, db = db, da
	}
	t := da / (da - db)
	return OneIntersection, a.Lerp(b, t)
}

// MaxDistance returns the larger of the metric distances of the endpoints
// from the plane, which does not need to be normalized.
// The plane must not be null; a null plane gives 0 if its offset is 0
// and +Inf otherwise.
func (s Segment) MaxDistance(p Plane) float32 {
	precondition(p.Validate())
	da, db, _, _ := s.endpointSides(p)
	return Max(Abs(da), Abs(db))
}

// MinDistance returns the smaller of the metric distances of the endpoints
// from the plane, or 0 if the segment intersects the plane.
// The plane must not be null; a null plane gives 0 if its offset is 0
// and +Inf otherwise.
func (s Segment) MinDistance(p Plane) float32 {
	precondition(p.Validate())
	da, db, sa, sb := s.endpointSides(p)
	if sa*sb <= 0 {
		return 0
	}
	return Min(Abs(da), Abs(db))
}

// ProjectToPlane returns the segment with both endpoints projected
// orthogonally onto the plane.
// The plane must not be null; a null plane returns the segment unchanged.
func (s Segment) ProjectToPlane(p Plane) Segment {
	precondition(p.Validate())
	return Segment{p.ProjectPoint(s.A), p.ProjectPoint(s.B)}
}

// SpaceRelation returns the position of the segment relative to the plane:
// [Contained] if both endpoints are on the plane, [BothSides] if they are
// strictly on opposite sides, and otherwise the side of the endpoint that
// is not on the plane.
// The segment must not be degenerate and the plane must not be null.
//
// A degenerate segment gives the relation of the point A. A null plane
// with a zero offset contains the segment, and with a non-zero offset
// gives the side of the sign of the offset.
func (s Segment) SpaceRelation(p Plane) SpaceRelations {
	preconditions(s.Validate(), p.Validate())
	return s.spaceRelation(p)
}

func (s Segment) spaceRelation(p Plane) SpaceRelations {
	_, _, sa, sb := s.endpointSides(p)
	switch {
	case sa == 0 && sb == 0:
		return Contained
	case sa*sb < 0:
		return BothSides
	case sa+sb > 0:
		return PositiveSide
	}
	return NegativeSide
}
