// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build sdl

package window

import (
	"fmt"
	"image"

	"cogentcore.org/triangle/base/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const backend = "sdl"

type sdlWindow struct {
	win    *sdl.Window
	ctx    sdl.GLContext
	events []Event
}

// New opens a window using SDL2. It initializes the SDL video
// subsystem, which is shut down again by Release.
func New(opts Options) (Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("window: sdl init: %w", err)
	}
	errors.Log(sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE))
	errors.Log(sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG))
	errors.Log(sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, opts.GLMajor))
	errors.Log(sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, opts.GLMinor))

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	win, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Size.X), int32(opts.Size.Y), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: sdl create window: %w", err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("window: sdl create context: %w", err)
	}
	interval := 0
	if opts.VSync {
		interval = 1
	}
	errors.Log(sdl.GLSetSwapInterval(interval))
	return &sdlWindow{win: win, ctx: ctx}, nil
}

func (w *sdlWindow) PollEvents() []Event {
	w.events = w.events[:0]
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, Event{Type: Quit})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.events = append(w.events, Event{Type: Resize, Size: w.FramebufferSize()})
			}
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			w.events = append(w.events, Event{Type: KeyDown, Key: sdlKeyName(e.Keysym.Sym)})
		}
	}
	return w.events
}

func (w *sdlWindow) SwapBuffers() {
	w.win.GLSwap()
}

func (w *sdlWindow) FramebufferSize() image.Point {
	width, height := w.win.GLGetDrawableSize()
	return image.Point{int(width), int(height)}
}

func (w *sdlWindow) Release() {
	if w.win == nil {
		return
	}
	sdl.GLDeleteContext(w.ctx)
	w.win.Destroy()
	w.win = nil
	sdl.Quit()
}

func sdlKeyName(key sdl.Keycode) string {
	if key == sdl.K_ESCAPE {
		return KeyEscape
	}
	return sdl.GetKeyName(key)
}
