// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/pflag"
)

// FlagSet returns a flag set bound to the fields of c,
// using their current values as defaults.
func (c *Config) FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&c.File, "config", "c", c.File, "the TOML or YAML config file to load")
	fs.StringVar(&c.Title, "title", c.Title, "the title of the window")
	fs.IntVar(&c.Width, "width", c.Width, "the initial width of the window")
	fs.IntVar(&c.Height, "height", c.Height, "the initial height of the window")
	fs.IntVar(&c.GLMajor, "gl-major", c.GLMajor, "the requested OpenGL core profile major version")
	fs.IntVar(&c.GLMinor, "gl-minor", c.GLMinor, "the requested OpenGL core profile minor version")
	fs.BoolVar(&c.Resizable, "resizable", c.Resizable, "whether the window can be resized")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "whether to synchronize buffer swaps with the display refresh")
	fs.StringVar(&c.Assets, "assets", c.Assets, "the asset directory, relative to the executable or the working directory")
	fs.StringVar(&c.Shader, "shader", c.Shader, "the resource name of the shader program, without extension")
	fs.StringVar(&c.ClearColor, "clear-color", c.ClearColor, "the background color as #rrggbb")
	fs.Float32Var(&c.ClearAlpha, "clear-alpha", c.ClearAlpha, "the background opacity, clamped to [0, 1]")
	fs.BoolVarP(&c.Watch, "watch", "w", c.Watch, "reload the shaders when their files change")
	fs.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "save the first frame to this PNG file and exit")
	fs.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "print debug messages")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "print informational messages")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "only print errors")
	return fs
}

// Load returns the config for the given command line arguments
// (without the program name): defaults, then the config file given
// by --config, if any, then the flags again so that they override
// the file. The returned config is validated. [pflag.ErrHelp] is
// returned as is when help was requested.
func Load(name string, args []string) (*Config, error) {
	c := New()
	if err := c.FlagSet(name).Parse(args); err != nil {
		return nil, err
	}
	if c.File != "" {
		if err := Open(c, c.File); err != nil {
			return nil, err
		}
		if err := c.FlagSet(name).Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
