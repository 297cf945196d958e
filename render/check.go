// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// maxErrors bounds the error queue drain in [CheckError]; a lost
// context can keep reporting errors.
const maxErrors = 16

var errorNames = map[uint32]string{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0503: "GL_STACK_OVERFLOW",
	0x0504: "GL_STACK_UNDERFLOW",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x0507: "GL_CONTEXT_LOST",
}

// ErrorName returns the symbolic name of a driver error code.
func ErrorName(code uint32) string {
	if n, ok := errorNames[code]; ok {
		return n
	}
	return fmt.Sprintf("GL_ERROR(%#x)", code)
}

// DriverError holds the error codes reported by the driver.
type DriverError struct {
	Codes []uint32
}

func (e *DriverError) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = ErrorName(c)
	}
	return "render: driver error: " + strings.Join(names, ", ")
}

// CheckError drains the driver error queue, returning a [*DriverError]
// with all pending codes, or nil if there were none.
func CheckError(gl GL) error {
	var codes []uint32
	for range maxErrors {
		c := gl.GetError()
		if c == NoError {
			break
		}
		codes = append(codes, c)
	}
	if len(codes) == 0 {
		return nil
	}
	return &DriverError{Codes: codes}
}
