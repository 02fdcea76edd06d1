// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Translate returns the segment translated by the given offset.
func (s Segment) Translate(offset Vector3) Segment {
	return Segment{s.A.Add(offset), s.B.Add(offset)}
}

// Scale returns the segment with both endpoints scaled component-wise
// about the origin.
func (s Segment) Scale(scale Vector3) Segment {
	return Segment{s.A.Mul(scale), s.B.Mul(scale)}
}

// Rotate returns the segment with both endpoints rotated about the origin
// by the given quaternion.
func (s Segment) Rotate(q Quat) Segment {
	return Segment{s.A.MulQuat(q), s.B.MulQuat(q)}
}

// Transform returns the segment with both endpoints transformed
// as points by the given matrix.
func (s Segment) Transform(m *Matrix4) Segment {
	return Segment{s.A.MulMatrix4(m), s.B.MulMatrix4(m)}
}

// ScaleWithPivot is [Segment.Scale] about the given pivot point.
func (s Segment) ScaleWithPivot(scale, pivot Vector3) Segment {
	return s.Translate(pivot.Negate()).Scale(scale).Translate(pivot)
}

// RotateWithPivot is [Segment.Rotate] about the given pivot point.
func (s Segment) RotateWithPivot(q Quat, pivot Vector3) Segment {
	return s.Translate(pivot.Negate()).Rotate(q).Translate(pivot)
}

// TransformWithPivot is [Segment.Transform] relative to the given pivot
// point, which is subtracted before the transform and added back after it.
func (s Segment) TransformWithPivot(m *Matrix4, pivot Vector3) Segment {
	return s.Translate(pivot.Negate()).Transform(m).Translate(pivot)
}
