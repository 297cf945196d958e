// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sdl

package window

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const backend = "glfw"

type glfwWindow struct {
	win    *glfw.Window
	events []Event
}

// New opens a window using glfw. It initializes glfw, which is
// terminated again by Release.
func New(opts Options) (Window, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))

	win, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{win: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, Event{Type: Resize, Size: image.Point{width, height}})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		w.events = append(w.events, Event{Type: KeyDown, Key: glfwKeyName(key)})
	})
	return w, nil
}

func (w *glfwWindow) PollEvents() []Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	if w.win.ShouldClose() {
		w.events = append(w.events, Event{Type: Quit})
	}
	return w.events
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() image.Point {
	width, height := w.win.GetFramebufferSize()
	return image.Point{width, height}
}

func (w *glfwWindow) Release() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func glfwKeyName(key glfw.Key) string {
	if key == glfw.KeyEscape {
		return KeyEscape
	}
	if name := glfw.GetKeyName(key, 0); name != "" {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(key))
}
