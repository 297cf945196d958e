// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the triangle demo: it opens the window, builds
// the renderer and drives the event/draw/swap loop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/render/glcore"
	"cogentcore.org/triangle/resources"
	"cogentcore.org/triangle/window"
)

// WindowOptions returns the window options for the config.
func WindowOptions(cfg *config.Config) window.Options {
	return window.Options{
		Title:     cfg.Title,
		Size:      cfg.Size(),
		GLMajor:   cfg.GLMajor,
		GLMinor:   cfg.GLMinor,
		Resizable: cfg.Resizable,
		VSync:     cfg.VSync,
	}
}

// Run runs the demo until the window is closed, the escape key is
// pressed or ctx is cancelled. It must be called on the main OS thread.
func Run(ctx context.Context, cfg *config.Config) error {
	res, err := resources.Find(cfg.Assets)
	if err != nil {
		return err
	}
	bg, err := cfg.ClearRGBA()
	if err != nil {
		return err
	}
	win, err := window.New(WindowOptions(cfg))
	if err != nil {
		return err
	}
	defer win.Release()

	gl, err := glcore.Init()
	if err != nil {
		return err
	}
	vendor, renderer, version, glsl := render.DriverInfo(gl)
	slog.Info("app.Run", "backend", window.Backend(), "vendor", vendor, "renderer", renderer, "version", version, "glsl", glsl)

	r, err := NewRenderer(gl, res, cfg.Shader, bg, win.FramebufferSize())
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer r.Release()

	var changes <-chan string
	if cfg.Watch {
		// without a watcher the demo still works, just without reloading
		changes = errors.Log1(res.Watch(ctx, ShaderNames(cfg.Shader)...))
	}
	return Loop(ctx, win, r, changes, cfg.Screenshot)
}

// Loop polls events, draws and swaps until the window asks to quit, the
// escape key is pressed or ctx is done. A name received on changes
// reloads the shader program. If screenshot is not empty, the first
// frame is saved to that file and Loop returns without swapping.
func Loop(ctx context.Context, win window.Window, r *Renderer, changes <-chan string, screenshot string) error {
	fps := newFPSCounter(time.Now())
	for {
		if ctx.Err() != nil {
			return nil
		}
		for _, ev := range win.PollEvents() {
			switch ev.Type {
			case window.Quit:
				return nil
			case window.KeyDown:
				if ev.Key == window.KeyEscape {
					return nil
				}
			case window.Resize:
				r.Resize(ev.Size)
			}
		}

		select {
		case name, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			slog.Info("app.Loop shader changed", "name", name)
			errors.Log(r.Reload())
		default:
		}

		if err := r.Frame(); err != nil {
			slog.Error("app.Loop Frame", "err", err)
		}
		if screenshot != "" {
			return r.Screenshot(screenshot)
		}
		win.SwapBuffers()

		if rate, ok := fps.frame(time.Now()); ok {
			slog.Debug("app.Loop", "fps", fmt.Sprintf("%.0f", rate))
		}
	}
}
