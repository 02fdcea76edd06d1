// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// convexFace is a planar convex polygon (a triangle or a hexahedron face)
// prepared for point containment and segment overlap tests.
type convexFace struct {
	verts []Vector3

	// norm is the unit normal, counter-clockwise with respect to verts.
	norm Vector3

	// plane is the supporting plane through the vertex centroid.
	plane Plane

	// ok is false when the vertices do not span a plane.
	ok bool
}

// newConvexFace returns the face with the given vertices in order.
// The normal is computed with Newell's method, which is robust for
// slightly non-planar quads and for faces with coincident vertices.
func newConvexFace(verts ...Vector3) convexFace {
	f := convexFace{verts: verts}
	var n, ctr Vector3
	nv := len(verts)
	for i, cur := range verts {
		nxt := verts[(i+1)%nv]
		n.X += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		n.Y += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		n.Z += (cur.X - nxt.X) * (cur.Y + nxt.Y)
		ctr.SetAdd(cur)
	}
	ctr = ctr.MulScalar(1 / float32(nv))
	l := n.Length()
	if l == 0 {
		return f
	}
	f.norm = n.MulScalar(1 / l)
	f.plane.SetFromNormalAndCoplanarPoint(f.norm, ctr)
	f.ok = true
	return f
}

// flip reverses the orientation of the face.
func (f convexFace) flip() convexFace {
	nv := len(f.verts)
	rev := make([]Vector3, nv)
	for i, v := range f.verts {
		rev[nv-1-i] = v
	}
	f.verts = rev
	f.norm = f.norm.Negate()
	f.plane = f.plane.Negate()
	return f
}

// edgeDistance returns the signed in-plane distance of the point from
// edge i, positive towards the inside of the face. It returns +Inf for
// an edge whose endpoints coincide, which then constrains nothing.
func (f convexFace) edgeDistance(i int, p Vector3) float32 {
	v0 := f.verts[i]
	e := f.verts[(i+1)%len(f.verts)].Sub(v0)
	el := e.Length()
	if el <= Tolerance {
		return Infinity
	}
	return f.norm.Cross(e).Dot(p.Sub(v0)) / el
}

// minEdgeDistance returns the smallest [convexFace.edgeDistance] over all edges.
func (f convexFace) minEdgeDistance(p Vector3) float32 {
	md := Infinity
	for i := range f.verts {
		md = Min(md, f.edgeDistance(i, p))
	}
	return md
}

// contains returns whether a point of the face plane lies inside the
// closed face, and whether it lies on its boundary, within [Tolerance].
func (f convexFace) contains(p Vector3) (inside, boundary bool) {
	md := f.minEdgeDistance(p)
	if md < -Tolerance {
		return false, false
	}
	return true, md <= Tolerance
}

// clip returns the parameter range [t0, t1] of the part of the segment,
// assumed to lie in the face plane, that is inside the closed face.
// ok is false when they do not overlap. A range shorter than [Tolerance]
// is collapsed to a single parameter.
func (f convexFace) clip(s Segment) (t0, t1 float32, ok bool) {
	t0, t1 = 0, 1
	for i := range f.verts {
		fa := f.edgeDistance(i, s.A)
		fb := f.edgeDistance(i, s.B)
		if IsInf(fa, 1) {
			continue
		}
		aIn, bIn := fa >= -Tolerance, fb >= -Tolerance
		switch {
		case aIn && bIn:
			continue
		case !aIn && !bIn:
			return 0, 0, false
		}
		t := fa / (fa - fb)
		if aIn {
			t1 = Min(t1, t)
		} else {
			t0 = Max(t0, t)
		}
	}
	if t0 > t1 {
		if (t0-t1)*s.Length() > Tolerance {
			return 0, 0, false
		}
		t0 = (t0 + t1) / 2
		t1 = t0
	}
	t0 = Clamp(t0, 0, 1)
	t1 = Clamp(t1, 0, 1)
	return t0, t1, true
}

// overlap intersects a segment lying in the face plane with the face,
// reporting [TwoIntersections] when the overlap is a stretch bounded by
// two boundary points and [InfiniteIntersections] when the overlap
// reaches into the interior of the face.
func (f convexFace) overlap(s Segment) (Intersections, Vector3, Vector3) {
	t0, t1, ok := f.clip(s)
	if !ok {
		return NoIntersection, Vector3{}, Vector3{}
	}
	p0, p1 := s.pointAt(t0), s.pointAt(t1)
	if p0.IsEqualTol(p1, Tolerance) {
		return OneIntersection, p0, Vector3{}
	}
	_, on0 := f.contains(p0)
	_, on1 := f.contains(p1)
	if on0 && on1 {
		return TwoIntersections, p0, p1
	}
	return InfiniteIntersections, p0, p1
}

// crossing intersects a segment that does not lie in the face plane
// with the closed face.
func (f convexFace) crossing(s Segment) (Intersections, Vector3) {
	kind, p := s.intersectionPointPlane(f.plane)
	if kind != OneIntersection {
		return NoIntersection, Vector3{}
	}
	if in, _ := f.contains(p); !in {
		return NoIntersection, Vector3{}
	}
	return OneIntersection, p
}
