// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/triangle/resources"
)

// LinkError is returned when a program fails to link.
type LinkError struct {
	// Name of the program.
	Name string

	// Log is the driver info log.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("render: linking program %q: %s", e.Name, strings.TrimSpace(e.Log))
}

// Program is a linked shader program.
type Program struct {
	gl GL
	id uint32

	// Name of the program, for logging and errors.
	Name string
}

// ProgramStages are the shader stages loaded by [ProgramFromRes],
// in attach order.
var ProgramStages = []ShaderTypes{VertexShader, FragmentShader}

// NewProgram links the given compiled shaders into a program.
// The shaders are detached after linking and can be released
// by the caller. On failure the program object is deleted and a
// [*LinkError] is returned.
func NewProgram(gl GL, name string, shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(id, sh.id)
	}
	gl.LinkProgram(id)
	for _, sh := range shaders {
		gl.DetachShader(id, sh.id)
	}
	if gl.GetProgramiv(id, LinkStatus) == 0 {
		log := gl.GetProgramInfoLog(id)
		gl.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: log}
	}
	slog.Debug("render.Program linked", "name", name, "shaders", len(shaders))
	return &Program{gl: gl, id: id, Name: name}, nil
}

// ProgramFromRes compiles the resources name+".vert" and name+".frag"
// and links them into a program called name.
func ProgramFromRes(gl GL, res *resources.Resources, name string) (*Program, error) {
	var shaders []*Shader
	defer func() {
		for _, sh := range shaders {
			sh.Release()
		}
	}()
	for _, st := range ProgramStages {
		sh, err := ShaderFromRes(gl, res, name+st.Extension())
		if err != nil {
			return nil, fmt.Errorf("render.ProgramFromRes %q: %w", name, err)
		}
		shaders = append(shaders, sh)
	}
	return NewProgram(gl, name, shaders...)
}

// ID returns the driver handle, 0 after Release.
func (pr *Program) ID() uint32 {
	return pr.id
}

// Use makes the program part of the current rendering state.
func (pr *Program) Use() {
	pr.gl.UseProgram(pr.id)
}

// Release deletes the program object. It is safe to call more than once.
func (pr *Program) Release() {
	if pr.id == 0 {
		return
	}
	pr.gl.DeleteProgram(pr.id)
	pr.id = 0
}
