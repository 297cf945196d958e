// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with a user-controlled
// level and terminal-colored level names.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level for logging that the user has set.
// It is applied by [Init] and can be changed at any time after that.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(defaultUserLevel)
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the order vv, v, q, so
// asking for very verbose output wins over quiet.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init installs a text handler writing to w as the default [slog] logger,
// filtered at [UserLevel]. Level names are colored when w is a terminal
// that supports it. The returned logger is the new default.
func Init(w io.Writer) *slog.Logger {
	return InitOutput(termenv.NewOutput(w))
}

// InitOutput is [Init] for an explicit termenv output, which
// determines the color profile.
func InitOutput(o *termenv.Output) *slog.Logger {
	h := slog.NewTextHandler(o, &slog.HandlerOptions{
		Level:       UserLevel,
		ReplaceAttr: levelColorer(o),
	})
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}

// levelColorer returns a ReplaceAttr function that styles the
// top-level level attribute for the given output.
func levelColorer(o *termenv.Output) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 || a.Key != slog.LevelKey {
			return a
		}
		lvl, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		a.Value = slog.StringValue(LevelString(o, lvl))
		return a
	}
}

// LevelString returns the name of the level, colored for the output.
func LevelString(o *termenv.Output, lvl slog.Level) string {
	s := o.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(o.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(o.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(o.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
