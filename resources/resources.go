// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resources locates the asset directory of the program
// and loads named resources from it.
//
// Resource names always use "/" separators, independent of the
// operating system, e.g. "shaders/triangle.vert".
package resources

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/triangle/base/errors"
)

var (
	// ErrExePath is returned when the path of the running executable
	// cannot be determined.
	ErrExePath = errors.New("resources: failed to get executable path")

	// ErrNotFound is returned by [Find] when no candidate directory exists.
	ErrNotFound = errors.New("resources: asset directory not found")

	// ErrInvalidName is returned for resource names that are not
	// valid slash-separated relative paths.
	ErrInvalidName = errors.New("resources: invalid resource name")

	// ErrContainsNil is returned by [Resources.LoadString] when
	// the file contains a NUL byte.
	ErrContainsNil = errors.New("resources: file contains nil byte")

	// ErrNotDir is returned by [Resources.Watch] for resources that
	// are not backed by a directory on disk.
	ErrNotDir = errors.New("resources: not backed by a directory")
)

// Resources provides access to named resources under a root.
type Resources struct {
	// root directory on disk; empty for resources made with [FromFS].
	root string

	fsys fs.FS
}

// executable is os.Executable, replaced in tests.
var executable = os.Executable

// FromRelativeExePath returns the resources located at rel,
// relative to the directory of the running executable.
// The directory is not required to exist.
func FromRelativeExePath(rel string) (*Resources, error) {
	dir, err := exeDir()
	if err != nil {
		return nil, err
	}
	return FromDir(filepath.Join(dir, rel)), nil
}

// Find returns the resources at rel, looking next to the executable first
// and then in the current working directory. The first candidate that is
// an existing directory is used. This supports both installed binaries
// and go run, whose executable lives in a temporary build directory.
func Find(rel string) (*Resources, error) {
	if filepath.IsAbs(rel) {
		if isDir(rel) {
			return FromDir(rel), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rel)
	}
	var candidates []string
	if dir, err := exeDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, rel))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, rel))
	}
	for _, c := range candidates {
		if isDir(c) {
			return FromDir(c), nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(candidates, ", "))
}

// FromDir returns the resources rooted at the given directory.
func FromDir(dir string) *Resources {
	return &Resources{root: dir, fsys: os.DirFS(dir)}
}

// FromFS returns the resources provided by fsys.
// Resources made this way can not be watched.
func FromFS(fsys fs.FS) *Resources {
	return &Resources{fsys: fsys}
}

// Root returns the root directory, or "" if the resources
// are not backed by a directory.
func (r *Resources) Root() string {
	return r.root
}

// FS returns the file system the resources are read from.
func (r *Resources) FS() fs.FS {
	return r.fsys
}

// Path returns the operating system path of the named resource.
func (r *Resources) Path(name string) string {
	return filepath.Join(r.root, filepath.FromSlash(name))
}

// Load returns the contents of the named resource.
func (r *Resources) Load(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	b, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load resource %q: %w", name, err)
	}
	return b, nil
}

// LoadString returns the contents of the named resource as a string
// suitable for handing to C APIs that expect NUL-terminated text.
func (r *Resources) LoadString(name string) (string, error) {
	b, err := r.Load(name)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return "", fmt.Errorf("%w: %q at offset %d", ErrContainsNil, name, i)
	}
	return string(b), nil
}

// Exists reports whether the named resource exists and is a regular file.
func (r *Resources) Exists(name string) (bool, error) {
	if !fs.ValidPath(name) {
		return false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	info, err := fs.Stat(r.fsys, name)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func exeDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
