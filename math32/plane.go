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

// ErrNullPlane is reported for a plane whose normal is the zero vector.
var ErrNullPlane = errors.New("math32.Plane: null plane (zero normal)")

// Plane represents a plane in 3D space by its normal vector and a constant offset,
// such that points P on the plane satisfy Norm·P + Off = 0, i.e. the coefficients
// (a, b, c, d) of ax + by + cz + d = 0 are (Norm.X, Norm.Y, Norm.Z, Off).
// The normal vector does not need to be normalized; metric distances divide
// by its length, and sign tests are scale invariant.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and a offset.
func NewPlane(normal Vector3, offset float32) Plane {
	return Plane{normal, offset}
}

// NewPlaneCoeffs returns the plane ax + by + cz + d = 0.
func NewPlaneCoeffs(a, b, c, d float32) Plane {
	return Plane{Vec3(a, b, c), d}
}

// String returns the plane equation coefficients.
func (p Plane) String() string {
	return fmt.Sprintf("Plane(%gx + %gy + %gz + %g = 0)", p.Norm.X, p.Norm.Y, p.Norm.Z, p.Off)
}

// Set sets this plane normal vector and offset.
func (p *Plane) Set(normal Vector3, offset float32) {
	p.Norm = normal
	p.Off = offset
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// SetFromCoplanarPoints sets this plane from three coplanar points,
// with the normal oriented by the counter-clockwise order a, b, c.
// The normal is not normalized, and is zero for collinear points.
func (p *Plane) SetFromCoplanarPoints(a, b, c Vector3) {
	p.SetFromNormalAndCoplanarPoint(b.Sub(a).Cross(c.Sub(a)), a)
}

// IsNull returns whether the plane normal is the zero vector,
// in which case the plane equation does not describe a plane.
func (p Plane) IsNull() bool {
	return p.Norm.IsNil()
}

// Validate returns [ErrNullPlane] for a null plane, and nil otherwise.
func (p Plane) Validate() error {
	if p.IsNull() {
		return ErrNullPlane
	}
	return nil
}

// Normalize returns the equivalent plane with a unit length normal.
// A null plane is returned unchanged.
func (p Plane) Normalize() Plane {
	l := p.Norm.Length()
	if l == 0 {
		return p
	}
	inv := 1 / l
	return Plane{p.Norm.MulScalar(inv), p.Off * inv}
}

// Negate returns the plane with the same points and the opposite orientation.
func (p Plane) Negate() Plane {
	return Plane{p.Norm.Negate(), -p.Off}
}

// DistanceToPoint returns the value of the plane equation at the given point:
// Norm·point + Off. It is the signed distance only when the plane is normalized.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// SignedDistance returns the signed metric distance from the plane to the point,
// positive on the side the normal points to.
// For a null plane, which contains every point when Off is 0 and none
// otherwise, it returns 0 or an infinity with the sign of Off.
func (p Plane) SignedDistance(point Vector3) float32 {
	l := p.Norm.Length()
	if l == 0 {
		if p.Off == 0 {
			return 0
		}
		return Inf(int(Sign(p.Off)))
	}
	return p.DistanceToPoint(point) / l
}

// PointDistance returns the unsigned metric distance from the plane to the point.
func (p Plane) PointDistance(point Vector3) float32 {
	return Abs(p.SignedDistance(point))
}

// Side returns +1 if the point is on the positive side of the plane,
// -1 if it is on the negative side, and 0 if it is within [Tolerance]
// of the plane.
func (p Plane) Side(point Vector3) int {
	return SignTol(p.SignedDistance(point))
}

// ContainsPoint returns whether the point is within [Tolerance] of the plane.
func (p Plane) ContainsPoint(point Vector3) bool {
	return p.Side(point) == 0
}

// ProjectPoint returns the orthogonal projection of the point onto the plane.
// A null plane returns the point unchanged.
func (p Plane) ProjectPoint(point Vector3) Vector3 {
	lsq := p.Norm.LengthSquared()
	if lsq == 0 {
		return point
	}
	return point.Sub(p.Norm.MulScalar(p.DistanceToPoint(point) / lsq))
}

// CoplanarPoint returns the point of the plane closest to the origin.
func (p Plane) CoplanarPoint() Vector3 {
	lsq := p.Norm.LengthSquared()
	if lsq == 0 {
		return Vector3{}
	}
	return p.Norm.MulScalar(-p.Off / lsq)
}
