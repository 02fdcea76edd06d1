// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/geom/base/fsx"
	"cogentcore.org/geom/base/iox/tomlx"
	"cogentcore.org/geom/base/iox/yamlx"
)

// FormatFromFilename returns the format of the given scene file
// based on its extension.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatTOML, fmt.Errorf("scene: unsupported file extension in %q", filename)
}

// Open reads the scene from the given file, with the format given by
// its extension. A leading ~ is expanded to the user's home directory.
func (sc *Scene) Open(filename string) error {
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		return err
	}
	return sc.OpenFS(fsys, fname)
}

// OpenFS reads the scene from the given file in the given filesystem,
// with the format given by its extension.
func (sc *Scene) OpenFS(fsys fs.FS, filename string) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if format == FormatYAML {
		err = yamlx.OpenFS(sc, fsys, filename)
	} else {
		err = tomlx.OpenFS(sc, fsys, filename)
	}
	if err != nil {
		return fmt.Errorf("scene: reading %q: %w", filename, err)
	}
	return nil
}

// Read reads the scene from the given reader in the given format.
func (sc *Scene) Read(r io.Reader, format Formats) error {
	switch format {
	case FormatTOML:
		return tomlx.Read(sc, r)
	case FormatYAML:
		return yamlx.Read(sc, r)
	}
	return fmt.Errorf("scene: cannot read scenes in %v format", format)
}

// Save writes the scene to the given file, with the format given by
// its extension.
func (sc *Scene) Save(filename string) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	fname, err := fsx.ExpandPath(filename)
	if err != nil {
		return err
	}
	if format == FormatYAML {
		return yamlx.Save(sc, fname)
	}
	return tomlx.Save(sc, fname)
}

// Write writes the scene to the given writer in the given format.
func (sc *Scene) Write(w io.Writer, format Formats) error {
	switch format {
	case FormatTOML:
		return tomlx.Write(sc, w)
	case FormatYAML:
		return yamlx.Write(sc, w)
	}
	return fmt.Errorf("scene: cannot write scenes in %v format", format)
}

// String returns the vector as (x, y, z).
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s: %v", r.Segment, strings.ToLower(r.Kind.String()), r.Shape, r.Intersections)
	for _, p := range r.Points {
		b.WriteString(" ")
		b.WriteString(p.String())
	}
	if r.Relation != nil {
		fmt.Fprintf(&b, " relation=%v", *r.Relation)
	}
	if r.MinDistance != nil && r.MaxDistance != nil {
		fmt.Fprintf(&b, " distance=[%g, %g]", *r.MinDistance, *r.MaxDistance)
	}
	if len(r.Projection) == 2 {
		fmt.Fprintf(&b, " projection=%v-%v", r.Projection[0], r.Projection[1])
	}
	return b.String()
}

// WriteResults writes the results to the given writer in the given
// format, with one line per result for [FormatText].
func WriteResults(w io.Writer, results []Result, format Formats) error {
	switch format {
	case FormatTOML:
		return tomlx.Write(&Results{Results: results}, w)
	case FormatYAML:
		return yamlx.Write(&Results{Results: results}, w)
	}
	for i := range results {
		if _, err := fmt.Fprintln(w, results[i].String()); err != nil {
			return err
		}
	}
	return nil
}
