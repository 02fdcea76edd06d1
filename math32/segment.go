// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/geom/base/errors"
)

// ErrDegenerateSegment is reported for a segment whose endpoints coincide
// where a directed segment is required.
var ErrDegenerateSegment = errors.New("degenerate segment (coincident endpoints)")

// Segment represents a finite 3D line segment from point A to point B.
// A segment with coincident endpoints is degenerate, and is handled by
// the intersection methods as the single point A.
type Segment struct {
	A Vector3
	B Vector3
}

// NewSegment creates and returns a new Segment with the
// specified start and end points.
func NewSegment(a, b Vector3) Segment {
	return Segment{a, b}
}

// Set sets this segment start and end points.
func (s *Segment) Set(a, b Vector3) {
	s.A = a
	s.B = b
}

// String returns the segment endpoints.
func (s Segment) String() string {
	return fmt.Sprintf("Segment[%v, %v]", s.A, s.B)
}

// Center calculates this segment center point.
func (s Segment) Center() Vector3 {
	return s.A.Add(s.B).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this segment.
func (s Segment) Delta() Vector3 {
	return s.B.Sub(s.A)
}

// LengthSquared returns the square of the distance from the start point to the end point.
func (s Segment) LengthSquared() float32 {
	return s.A.DistanceToSquared(s.B)
}

// Length returns the length from the start point to the end point.
func (s Segment) Length() float32 {
	return s.A.DistanceTo(s.B)
}

// Lerp returns the point A + t(B - A). t is not clamped, so values
// outside [0, 1] give points on the supporting line beyond the endpoints.
func (s Segment) Lerp(t float32) Vector3 {
	return s.A.Lerp(s.B, t)
}

// pointAt is [Segment.Lerp] returning the endpoints verbatim for 0 and 1.
func (s Segment) pointAt(t float32) Vector3 {
	switch t {
	case 0:
		return s.A
	case 1:
		return s.B
	}
	return s.Lerp(t)
}

// Reversed returns the segment from B to A.
func (s Segment) Reversed() Segment {
	return Segment{s.B, s.A}
}

// IsEqualTol returns whether both endpoints are within the given
// distance of the corresponding endpoints of other.
func (s Segment) IsEqualTol(other Segment, tol float32) bool {
	return s.A.IsEqualTol(other.A, tol) && s.B.IsEqualTol(other.B, tol)
}

// IsDegenerate returns whether the endpoints are within [Tolerance]
// of each other.
func (s Segment) IsDegenerate() bool {
	return s.A.IsEqualTol(s.B, Tolerance)
}

// Validate returns an error wrapping [ErrDegenerateSegment] for a
// degenerate segment, and nil otherwise.
func (s Segment) Validate() error {
	if s.IsDegenerate() {
		return fmt.Errorf("math32.%v: %w", s, ErrDegenerateSegment)
	}
	return nil
}

// note: ClosestPointToPoint is adapted from https://math.stackexchange.com/questions/2193720/find-a-point-on-a-line-segment-which-is-the-closest-to-other-point-not-on-the-li

// ClosestParameterToPoint returns the parameter t in [0, 1] of the point
// of the segment that is closest to the given point.
func (s Segment) ClosestParameterToPoint(point Vector3) float32 {
	v := s.Delta()
	ds := v.LengthSquared()
	if ds == 0 {
		return 0
	}
	return Clamp(v.Dot(point.Sub(s.A))/ds, 0, 1)
}

// ClosestPointToPoint returns the point of the segment that is
// closest to the given point.
func (s Segment) ClosestPointToPoint(point Vector3) Vector3 {
	return s.pointAt(s.ClosestParameterToPoint(point))
}

// lineDistance returns the distance of the point from the infinite
// line through A and B, which must not coincide.
func (s Segment) lineDistance(point Vector3) float32 {
	d := s.Delta()
	return point.Sub(s.A).Cross(d).Length() / d.Length()
}

// containsPoint returns whether the point is within [Tolerance] of the segment.
func (s Segment) containsPoint(point Vector3) bool {
	return s.ClosestPointToPoint(point).IsEqualTol(point, Tolerance)
}

// closestParameters returns the parameters of the closest pair of points
// of two non-degenerate segments.
func (s Segment) closestParameters(o Segment) (ts, to float32) {
	d1 := s.Delta()
	d2 := o.Delta()
	r := s.A.Sub(o.A)
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d1.Dot(r)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	// parallel lines have no unique pair: start from A
	if denom := a*e - b*b; denom > 0 {
		ts = Clamp((b*f-c*e)/denom, 0, 1)
	}
	to = (b*ts + f) / e
	switch {
	case to < 0:
		to = 0
		ts = Clamp(-c/a, 0, 1)
	case to > 1:
		to = 1
		ts = Clamp((b-c)/a, 0, 1)
	}
	return ts, to
}

// intersectionPointsSegment intersects the segment with another one,
// either of which may be degenerate. Collinear segments that overlap
// along a stretch give [TwoIntersections] at the ends of the overlap.
func (s Segment) intersectionPointsSegment(o Segment) (Intersections, Vector3, Vector3) {
	switch {
	case s.IsDegenerate() && o.IsDegenerate():
		if s.A.IsEqualTol(o.A, Tolerance) {
			return OneIntersection, s.A, Vector3{}
		}
		return NoIntersection, Vector3{}, Vector3{}
	case s.IsDegenerate():
		if o.containsPoint(s.A) {
			return OneIntersection, s.A, Vector3{}
		}
		return NoIntersection, Vector3{}, Vector3{}
	case o.IsDegenerate():
		if s.containsPoint(o.A) {
			return OneIntersection, o.A, Vector3{}
		}
		return NoIntersection, Vector3{}, Vector3{}
	}

	if s.lineDistance(o.A) <= Tolerance && s.lineDistance(o.B) <= Tolerance {
		d := s.Delta()
		ds := d.LengthSquared()
		t0 := d.Dot(o.A.Sub(s.A)) / ds
		t1 := d.Dot(o.B.Sub(s.A)) / ds
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		t0, t1 = Max(t0, 0), Min(t1, 1)
		if t0 > t1 {
			if (t0-t1)*Sqrt(ds) > Tolerance {
				return NoIntersection, Vector3{}, Vector3{}
			}
			t0 = Clamp((t0+t1)/2, 0, 1)
			t1 = t0
		}
		p0, p1 := s.pointAt(t0), s.pointAt(t1)
		if p0.IsEqualTol(p1, Tolerance) {
			return OneIntersection, p0, Vector3{}
		}
		return TwoIntersections, p0, p1
	}

	ts, to := s.closestParameters(o)
	ps := s.pointAt(ts)
	if ps.IsEqualTol(o.pointAt(to), Tolerance) {
		return OneIntersection, ps, Vector3{}
	}
	return NoIntersection, Vector3{}, Vector3{}
}
