// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the triangle
// demo and its loading from defaults, files and flags.
package config

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
)

// Config is the main config struct of the triangle demo.
// Values are set, in increasing priority, from the `default:` tags,
// the config file named by File, and the command line flags.
type Config struct {

	// the TOML or YAML config file to load, applied before the flags
	File string `toml:"-" yaml:"-" desc:"the TOML or YAML config file to load"`

	// the title of the window
	Title string `toml:"title" yaml:"title" default:"Game" desc:"the title of the window"`

	// the initial width of the window
	Width int `toml:"width" yaml:"width" default:"900" desc:"the initial width of the window"`

	// the initial height of the window
	Height int `toml:"height" yaml:"height" default:"700" desc:"the initial height of the window"`

	// the requested OpenGL core profile major version
	GLMajor int `toml:"gl_major" yaml:"gl_major" default:"4" desc:"the requested OpenGL core profile major version"`

	// the requested OpenGL core profile minor version
	GLMinor int `toml:"gl_minor" yaml:"gl_minor" default:"1" desc:"the requested OpenGL core profile minor version"`

	// whether the window can be resized
	Resizable bool `toml:"resizable" yaml:"resizable" default:"true" desc:"whether the window can be resized"`

	// whether to synchronize buffer swaps with the display refresh
	VSync bool `toml:"vsync" yaml:"vsync" default:"true" desc:"whether to synchronize buffer swaps with the display refresh"`

	// the asset directory, relative to the executable or the working directory
	Assets string `toml:"assets" yaml:"assets" default:"assets" desc:"the asset directory, relative to the executable or the working directory"`

	// the resource name of the shader program, without extension
	Shader string `toml:"shader" yaml:"shader" default:"shaders/triangle" desc:"the resource name of the shader program, without extension"`

	// the background color as #rrggbb
	ClearColor string `toml:"clear_color" yaml:"clear_color" default:"#4d4d80" desc:"the background color as #rrggbb"`

	// the background opacity, clamped to [0, 1]
	ClearAlpha float32 `toml:"clear_alpha" yaml:"clear_alpha" default:"1" desc:"the background opacity, clamped to [0, 1]"`

	// whether to reload the shaders when their files change
	Watch bool `toml:"watch" yaml:"watch" desc:"whether to reload the shaders when their files change"`

	// save the first frame to this PNG file and exit
	Screenshot string `toml:"screenshot" yaml:"screenshot" desc:"save the first frame to this PNG file and exit"`

	// print debug messages
	VeryVerbose bool `toml:"-" yaml:"-" desc:"print debug messages"`

	// print informational messages
	Verbose bool `toml:"-" yaml:"-" desc:"print informational messages"`

	// only print errors
	Quiet bool `toml:"-" yaml:"-" desc:"only print errors"`
}

// New returns a new config with all defaults applied.
func New() *Config {
	c := &Config{}
	SetFromDefaults(c)
	return c
}

// Size returns the window size.
func (c *Config) Size() image.Point {
	return image.Point{c.Width, c.Height}
}

// Validate checks the values and expands home directory
// references in paths.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Shader == "" {
		return fmt.Errorf("config: no shader given")
	}
	var err error
	if c.Assets, err = homedir.Expand(c.Assets); err != nil {
		return fmt.Errorf("config: assets: %w", err)
	}
	if c.Screenshot, err = homedir.Expand(c.Screenshot); err != nil {
		return fmt.Errorf("config: screenshot: %w", err)
	}
	if _, err := c.ClearRGBA(); err != nil {
		return err
	}
	return nil
}

// ClearRGBA returns the background color.
func (c *Config) ClearRGBA() (mgl32.Vec4, error) {
	return ParseColor(c.ClearColor, c.ClearAlpha)
}
