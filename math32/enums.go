// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Intersections is the number of points in which a [Segment]
// meets a shape, as reported by the IntersectionPoint methods.
type Intersections int32 //enums:enum

const (
	// NoIntersection means that the segment and the shape share no point.
	NoIntersection Intersections = iota

	// OneIntersection means that they meet in exactly one point.
	OneIntersection

	// TwoIntersections means that they meet in two distinct points.
	TwoIntersections

	// InfiniteIntersections means that they share a continuous
	// stretch of points, such as a segment lying in a plane.
	InfiniteIntersections
)

// SpaceRelations is the position of a [Segment] relative to a [Plane].
type SpaceRelations int32 //enums:enum

const (
	// NegativeSide means that both endpoints are on the negative side
	// of the plane, or one is on the plane and the other on the negative side.
	NegativeSide SpaceRelations = iota

	// PositiveSide means that both endpoints are on the positive side
	// of the plane, or one is on the plane and the other on the positive side.
	PositiveSide

	// BothSides means that the endpoints are strictly on opposite sides.
	BothSides

	// Contained means that both endpoints lie on the plane.
	Contained
)

// Preconditions selects how a precondition violation, such as a degenerate
// segment or a null plane, is handled at the call boundary.
type Preconditions int32 //enums:enum -trim-prefix Preconditions

const (
	// PreconditionsLog logs the violation and returns the documented
	// fallback result.
	PreconditionsLog Preconditions = iota

	// PreconditionsPanic panics with the violation error.
	PreconditionsPanic

	// PreconditionsIgnore silently returns the documented fallback result.
	PreconditionsIgnore
)
