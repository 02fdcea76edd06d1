// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// watch evaluates the given scene file, and again every time it is
// written, until the context is done. The directory of the file is
// watched so that editors that replace the file are also followed.
func (o *options) watch(ctx context.Context, w io.Writer, filename string) error {
	fpath, err := fsx.ExpandPath(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fpath)); err != nil {
		return err
	}
	slog.Info("watching", "file", fpath)
	errors.Log(o.eval(w, fpath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fpath || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("scene changed", "event", ev.String())
			errors.Log(o.eval(w, fpath))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching scene", "file", fpath, "err", err)
		}
	}
}
