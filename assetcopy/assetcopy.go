// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assetcopy installs the asset directory, and on Windows the
// SDL2 runtime libraries, next to a built executable so that the
// resources package finds them at run time.
package assetcopy

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/triangle/base/errors"
)

// ErrNotFound is returned by [LocateDir] when no matching directory exists.
var ErrNotFound = errors.New("assetcopy: directory not found")

// ErrInside is returned by [Copy] when the destination is the source
// directory or lies below it.
var ErrInside = errors.New("assetcopy: destination inside source")

// Copy recursively copies the directory tree at from into to,
// creating directories as needed and overwriting existing files.
// It returns the number of files copied.
func Copy(from, to string) (int, error) {
	if within(from, to) {
		return 0, fmt.Errorf("%w: %s is inside %s", ErrInside, to, from)
	}
	n := 0
	err := filepath.WalkDir(from, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			slog.Warn("assetcopy.Copy skipping non-regular file", "path", path)
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("assetcopy.Copy %s: %w", from, err)
	}
	return n, nil
}

// CopyDLLs copies the *.dll files found directly in dir into to,
// returning their names.
func CopyDLLs(dir, to string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assetcopy.CopyDLLs: %w", err)
	}
	if err := os.MkdirAll(to, 0o755); err != nil {
		return nil, fmt.Errorf("assetcopy.CopyDLLs: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".dll") {
			continue
		}
		if err := copyFile(filepath.Join(dir, e.Name()), filepath.Join(to, e.Name())); err != nil {
			return names, fmt.Errorf("assetcopy.CopyDLLs: %w", err)
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// LocateDir walks up from start, returning the first directory whose
// base name is name, start itself included.
func LocateDir(start, name string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if filepath.Base(dir) == name {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %q above %s", ErrNotFound, name, start)
		}
		dir = parent
	}
}

// DLLDir returns the directory holding the SDL2 libraries for the given
// toolchain and architecture below root, following the layout
// root/{msvc,gnu-mingw}/dll/{64,32}.
func DLLDir(root string, msvc bool, arch string) string {
	tc := "gnu-mingw"
	if msvc {
		tc = "msvc"
	}
	bits := "32"
	if strings.Contains(arch, "64") {
		bits = "64"
	}
	return filepath.Join(root, tc, "dll", bits)
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	ad, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	ap, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(ad, ap)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return err
	}
	dst, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
