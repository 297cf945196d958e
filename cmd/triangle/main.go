// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a colored triangle
// until the window is closed.
//
// Build with -tags sdl to use SDL2 instead of glfw for the window.
// The assets directory must be next to the executable or in the
// working directory; see cmd/copyassets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/triangle/app"
	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func init() {
	// must lock main thread for the window and the gl context!
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprint(os.Stderr, logx.Report(termenv.NewOutput(os.Stderr), err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("triangle", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	logx.UserLevel.Set(logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
	logx.Init(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx, cfg)
}
