// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

// Formats are the supported file and output formats.
type Formats int32 //enums:enum -trim-prefix Format -accept-lower

const (
	// FormatTOML is the TOML format, used for files ending in .toml.
	FormatTOML Formats = iota

	// FormatYAML is the YAML format, used for files ending in .yaml or .yml.
	FormatYAML

	// FormatText is a plain text listing, only available for results.
	FormatText
)

// TransformOps are the affine transforms that can be applied to a segment.
type TransformOps int32 //enums:enum -accept-lower

const (
	// Translate moves the segment by [Transform.Vector].
	Translate TransformOps = iota

	// Scale scales the segment component-wise by [Transform.Vector]
	// about [Transform.Pivot].
	Scale

	// Rotate rotates the segment by [Transform.Angle] degrees about
	// the axis [Transform.Vector] through [Transform.Pivot].
	Rotate
)

// Shapes are the kinds of shape a segment can be tested against.
type Shapes int32 //enums:enum -trim-prefix Shape -accept-lower

const (
	ShapePlane Shapes = iota
	ShapeTriangle
	ShapeHexahedron
)
