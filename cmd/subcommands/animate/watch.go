// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package animate

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/Lexer747/linechart/chartfile"
	"github.com/Lexer747/linechart/utils/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the chart file at path whenever it is written, each successfully decoded file is sent on the
// returned channel. The watcher stops when ctx is done. Files which fail to decode are logged and skipped.
func Watch(ctx context.Context, path string) (<-chan *chartfile.File, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed creating file watcher")
	}
	// Editors commonly replace the file rather than write it in place, watching the directory sees both.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %q", path)
	}
	target := filepath.Clean(path)
	files := make(chan *chartfile.File)
	go func() {
		defer close(files)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("file watcher error", "path", path, "err", err)
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				f, err := chartfile.LoadFile(path)
				if err != nil {
					slog.Warn("ignoring chart file change", "path", path, "err", err)
					continue
				}
				slog.Debug("chart file changed", "path", path, "series", len(f.Series))
				select {
				case files <- f:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return files, nil
}

// Reload swaps the series being shown for those of f, the engine config stays as it was when the animation
// started. If any series of f doesn't fit the chart the error is returned and the current chart is kept.
func (a *Animation) Reload(f *chartfile.File) error {
	if err := f.Check(a.engine.Config().BaseLineCount); err != nil {
		return errors.Wrap(err, "chart file not reloaded")
	}
	a.file = f
	a.tapped = -1
	a.engine.ClearSeries()
	_, err := a.file.AddSeries(a.engine)
	return err
}
