// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a native window with an OpenGL core profile
// context and translates its events. Exactly one backend is compiled
// in: glfw by default, or SDL2 when building with the sdl tag.
//
// All functions must be called from the main OS thread; callers
// should runtime.LockOSThread in an init function.
package window

import (
	"fmt"
	"image"
)

// Options configure a new window and its context.
type Options struct {
	Title string

	// Size of the window in screen coordinates.
	Size image.Point

	// GLMajor and GLMinor are the requested OpenGL core profile version.
	GLMajor int
	GLMinor int

	Resizable bool

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

// DefaultOptions returns the options for a 900x700 resizable window
// with an OpenGL 4.1 core profile context.
func DefaultOptions() Options {
	return Options{
		Title:     "Game",
		Size:      image.Point{900, 700},
		GLMajor:   4,
		GLMinor:   1,
		Resizable: true,
		VSync:     true,
	}
}

// Validate checks that the options can be used to open a window.
func (o *Options) Validate() error {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		return fmt.Errorf("window: invalid size %v", o.Size)
	}
	if o.GLMajor < 3 || (o.GLMajor == 3 && o.GLMinor < 2) {
		return fmt.Errorf("window: core profile needs OpenGL 3.2 or later, got %d.%d", o.GLMajor, o.GLMinor)
	}
	return nil
}

// Window is an open native window whose OpenGL context is current
// on the calling thread.
type Window interface {
	// PollEvents processes pending native events and returns them.
	PollEvents() []Event

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// FramebufferSize returns the size of the drawable in pixels,
	// which differs from the window size on high density displays.
	FramebufferSize() image.Point

	// Release destroys the context and the window and shuts down
	// the windowing library.
	Release()
}

// Backend returns the name of the compiled-in windowing library.
func Backend() string {
	return backend
}
