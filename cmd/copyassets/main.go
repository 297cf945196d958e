// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command copyassets installs the asset directory next to a built
// triangle executable, and on Windows the SDL2 libraries too:
//
//	go build -o bin/ ./cmd/triangle && go run ./cmd/copyassets --dst bin
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/triangle/assetcopy"
	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprint(os.Stderr, logx.Report(termenv.NewOutput(os.Stderr), err))
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("copyassets", pflag.ContinueOnError)
	src := fs.String("src", "assets", "the asset directory to copy")
	dst := fs.String("dst", "bin", "the directory holding the executable")
	locate := fs.String("locate", "", "walk up from --dst to the first directory with this name and use it instead")
	dlls := fs.String("dlls", "", "the SDL2 library root with {msvc,gnu-mingw}/dll/{64,32} below it; only used on windows")
	msvc := fs.Bool("msvc", true, "use the msvc rather than the gnu-mingw libraries")
	verbose := fs.BoolP("verbose", "v", false, "print informational messages")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	logx.UserLevel.Set(logx.LevelFromFlags(false, *verbose, false))
	logx.Init(os.Stderr)

	to := *dst
	if *locate != "" {
		dir, err := assetcopy.LocateDir(to, *locate)
		if err != nil {
			return err
		}
		to = dir
	}
	n, err := assetcopy.Copy(*src, filepath.Join(to, filepath.Base(*src)))
	if err != nil {
		return err
	}
	slog.Info("copyassets", "files", n, "from", *src, "to", to)

	if *dlls != "" && runtime.GOOS == "windows" {
		names, err := assetcopy.CopyDLLs(assetcopy.DLLDir(*dlls, *msvc, runtime.GOARCH), to)
		if err != nil {
			return err
		}
		slog.Info("copyassets", "dlls", names)
	}
	return nil
}
