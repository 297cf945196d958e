// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [render.GL] on top of the OpenGL 4.1
// core profile bindings of go-gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/triangle/render"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Context is the OpenGL 4.1 core implementation of [render.GL].
// It is stateless: all state lives in the context that is
// current on the calling thread.
type Context struct{}

var _ render.GL = Context{}

// Init loads the OpenGL function pointers through the current context.
// A context must be current on the calling thread.
func Init() (Context, error) {
	if err := gl.Init(); err != nil {
		return Context{}, fmt.Errorf("glcore: loading OpenGL functions: %w", err)
	}
	return Context{}, nil
}

func (Context) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Context) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (Context) BindBuffer(target uint32, id uint32) {
	gl.BindBuffer(target, id)
}

func (Context) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (Context) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Context) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (Context) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (Context) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (Context) ShaderSource(id uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(id, 1, csrc, &length)
}

func (Context) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (Context) GetShaderiv(id uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(id, pname, &v)
	return v
}

func (c Context) GetShaderInfoLog(id uint32) string {
	n := c.GetShaderiv(id, render.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(id, n, nil, &buf[0])
	return cString(buf)
}

func (Context) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Context) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (Context) GetProgramiv(id uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(id, pname, &v)
	return v
}

func (c Context) GetProgramInfoLog(id uint32) string {
	n := c.GetProgramiv(id, render.InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(id, n, nil, &buf[0])
	return cString(buf)
}

func (Context) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (Context) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Context) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Context) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.ReadPixels(x, y, width, height, format, xtype, pixels)
}

func (Context) GetError() uint32 {
	return gl.GetError()
}

func (Context) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

// cString returns the text of a NUL-terminated info log buffer.
func cString(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
