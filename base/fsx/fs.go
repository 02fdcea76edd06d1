// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/geom/base/errors"
	"github.com/mitchellh/go-homedir"
)

// ExpandPath returns the given path with a leading ~ expanded to the
// user's home directory, made absolute.
func ExpandPath(fpath string) (string, error) {
	ep, err := homedir.Expand(fpath)
	if err != nil {
		return "", err
	}
	return filepath.Abs(ep)
}

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
// A leading ~ in the path is expanded to the user's home directory.
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := ExpandPath(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs := os.DirFS(dir)
	return dfs, fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(fpath string) (bool, error) {
	fsys, fname, err := DirFS(fpath)
	if err != nil {
		return false, err
	}
	return FileExistsFS(fsys, fname)
}
