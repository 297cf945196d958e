// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"strings"

	"cogentcore.org/triangle/base/errors"
	"github.com/muesli/termenv"
)

// Report returns the [errors.Report] of err for printing on o, with the
// root cause highlighted and the separator lines dimmed.
func Report(o *termenv.Output, err error) string {
	lines := strings.Split(strings.TrimSuffix(errors.Report(err), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	var sb strings.Builder
	for i, ln := range lines {
		s := o.String(ln)
		switch {
		case ln == errors.CausedSeparator:
			s = s.Faint()
		case i == 0:
			s = s.Foreground(o.Color("1")).Bold()
		}
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
