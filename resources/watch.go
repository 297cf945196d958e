// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resources

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch returns a channel that receives the name of each of the given
// resources whenever it is written, created or renamed into place.
// The directories of the names are watched rather than the files so
// that editors which replace files on save are handled.
// The channel is closed when ctx is done.
//
// Sends never block: if the receiver is busy the change is dropped,
// which is fine for consumers that reload everything on any change.
func (r *Resources) Watch(ctx context.Context, names ...string) (<-chan string, error) {
	if r.root == "" {
		return nil, ErrNotDir
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("resources.Watch: %w", err)
	}
	byPath := make(map[string]string, len(names))
	dirs := make(map[string]bool)
	for _, n := range names {
		p := filepath.Clean(r.Path(n))
		byPath[p] = n
		dirs[r.Path(path.Dir(n))] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, fmt.Errorf("resources.Watch %s: %w", d, err)
		}
	}

	ch := make(chan string, len(names))
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				name, ok := byPath[filepath.Clean(ev.Name)]
				if !ok {
					continue
				}
				select {
				case ch <- name:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("resources.Watch", "root", r.root, "err", err)
			}
		}
	}()
	return ch, nil
}
