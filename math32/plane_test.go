// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestPlane(t *testing.T) {
	p := NewPlaneCoeffs(1, 2, 3, -4)
	assert.Equal(t, NewPlane(Vec3(1, 2, 3), -4), p)
	assert.Equal(t, "Plane(1x + 2y + 3z + -4 = 0)", p.String())
	assert.NoError(t, p.Validate())

	assert.Equal(t, float32(-4), p.DistanceToPoint(Vector3{}))
	tolassert.EqualTol(t, -4/Sqrt(14), p.SignedDistance(Vector3{}), standardTol)
	tolassert.EqualTol(t, 4/Sqrt(14), p.PointDistance(Vector3{}), standardTol)
	assert.Equal(t, -1, p.Side(Vector3{}))
	assert.Equal(t, 1, p.Side(Vec3(4, 4, 4)))
	assert.True(t, p.ContainsPoint(Vec3(4, 0, 0)))

	n := p.Normalize()
	tolassert.EqualTol(t, 1, n.Norm.Length(), standardTol)
	tolassert.EqualTol(t, p.SignedDistance(Vec3(7, -2, 5)), n.DistanceToPoint(Vec3(7, -2, 5)), standardTol)

	neg := p.Negate()
	assert.Equal(t, 1, neg.Side(Vector3{}))
	tolassert.EqualTol(t, -p.SignedDistance(Vec3(7, -2, 5)), neg.SignedDistance(Vec3(7, -2, 5)), standardTol)
}

func TestPlaneFromPoints(t *testing.T) {
	p := Plane{}
	p.SetFromCoplanarPoints(Vec3(0, 0, 1), Vec3(1, 0, 1), Vec3(0, 1, 1))
	assert.Equal(t, Vec3(0, 0, 1), p.Norm)
	assert.Equal(t, float32(-1), p.Off)
	assert.Equal(t, 1, p.Side(Vec3(5, 5, 2)))

	p.SetFromNormalAndCoplanarPoint(Vec3(0, 0, 2), Vec3(3, 3, 1))
	assert.Equal(t, NewPlaneCoeffs(0, 0, 2, -2), p)

	p.SetFromCoplanarPoints(Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2))
	assert.True(t, p.IsNull())
}

func TestPlaneProject(t *testing.T) {
	p := NewPlaneCoeffs(0, 0, 2, -2)
	assert.Equal(t, Vec3(3, 4, 1), p.ProjectPoint(Vec3(3, 4, 5)))
	assert.Equal(t, Vec3(0, 0, 1), p.CoplanarPoint())

	q := NewPlaneCoeffs(1, 2, 3, -4)
	pp := q.ProjectPoint(Vec3(5, 6, 7))
	assert.True(t, q.ContainsPoint(pp))
	tolAssertEqualVector(t, standardTol, pp, q.ProjectPoint(pp))
}

func TestNullPlane(t *testing.T) {
	whole := NewPlaneCoeffs(0, 0, 0, 0)
	empty := NewPlaneCoeffs(0, 0, 0, 3)
	assert.True(t, whole.IsNull())
	assert.ErrorIs(t, whole.Validate(), ErrNullPlane)

	assert.Equal(t, float32(0), whole.SignedDistance(Vec3(1, 2, 3)))
	assert.True(t, whole.ContainsPoint(Vec3(1, 2, 3)))
	assert.True(t, IsInf(empty.SignedDistance(Vec3(1, 2, 3)), 1))
	assert.True(t, IsInf(empty.Negate().SignedDistance(Vec3(1, 2, 3)), -1))
	assert.False(t, empty.ContainsPoint(Vec3(1, 2, 3)))

	assert.Equal(t, Vec3(1, 2, 3), empty.ProjectPoint(Vec3(1, 2, 3)))
	assert.Equal(t, Vector3{}, empty.CoplanarPoint())
	assert.Equal(t, empty, empty.Normalize())
}
