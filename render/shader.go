// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"cogentcore.org/triangle/base/errors"
	"cogentcore.org/triangle/resources"
)

// ErrUnknownShaderType is returned by [ShaderFromRes] for resource
// names whose extension does not name a shader stage.
var ErrUnknownShaderType = errors.New("render: unknown shader type")

// CompileError is returned when a shader fails to compile.
type CompileError struct {
	// Name of the shader, typically its resource name.
	Name string

	Type ShaderTypes

	// Log is the driver info log.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("render: compiling %s shader %q: %s", e.Type, e.Name, strings.TrimSpace(e.Log))
}

// Shader is a compiled shader object.
type Shader struct {
	gl GL
	id uint32

	// Name of the shader, for logging and errors.
	Name string

	Type ShaderTypes
}

// NewShader creates and compiles a shader of the given type from source.
// On failure the shader object is deleted and a [*CompileError] is returned.
func NewShader(gl GL, name string, typ ShaderTypes, source string) (*Shader, error) {
	id := gl.CreateShader(uint32(typ))
	gl.ShaderSource(id, source)
	gl.CompileShader(id)
	if gl.GetShaderiv(id, CompileStatus) == 0 {
		log := gl.GetShaderInfoLog(id)
		gl.DeleteShader(id)
		return nil, &CompileError{Name: name, Type: typ, Log: log}
	}
	slog.Debug("render.Shader compiled", "name", name, "type", typ)
	return &Shader{gl: gl, id: id, Name: name, Type: typ}, nil
}

// ShaderFromRes loads the named resource and compiles it, choosing the
// shader type from the file extension: ".vert" or ".frag".
func ShaderFromRes(gl GL, res *resources.Resources, name string) (*Shader, error) {
	typ, ok := ShaderTypeFromExtension(path.Ext(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShaderType, name)
	}
	src, err := res.LoadString(name)
	if err != nil {
		return nil, err
	}
	return NewShader(gl, name, typ, src)
}

// ID returns the driver handle, 0 after Release.
func (sh *Shader) ID() uint32 {
	return sh.id
}

// Release deletes the shader object. It is safe to call more than once.
func (sh *Shader) Release() {
	if sh.id == 0 {
		return
	}
	sh.gl.DeleteShader(sh.id)
	sh.id = 0
}
