// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides a recording implementation of
// [render.GL] for tests that run without a graphics context.
package rendertest

import (
	"strings"
	"unsafe"

	"cogentcore.org/triangle/render"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

// GL records every call made through it and simulates just enough
// object state for the render wrappers: handle allocation, shader
// compile and program link status, buffer contents and the error queue.
type GL struct {
	Calls []Call

	// CompileFail makes compilation fail for shader sources
	// containing this text, if non-empty.
	CompileFail string

	// LinkFail makes every link fail with this info log, if non-empty.
	LinkFail string

	// Errors is the pending driver error queue returned by GetError.
	Errors []uint32

	// Strings are returned by GetString.
	Strings map[uint32]string

	// Pixels fills ReadPixels output, cycling if shorter.
	Pixels []byte

	// Live holds the kind of every object that has not been deleted.
	Live map[uint32]string

	// BufferContents holds the last data uploaded to each buffer.
	BufferContents map[uint32][]byte

	next     uint32
	bound    map[uint32]uint32
	sources  map[uint32]string
	compiled map[uint32]bool
}

var _ render.GL = (*GL)(nil)

// New returns a new recording GL.
func New() *GL {
	return &GL{
		Strings:        map[uint32]string{},
		Live:           map[uint32]string{},
		BufferContents: map[uint32][]byte{},
		bound:          map[uint32]uint32{},
		sources:        map[uint32]string{},
		compiled:       map[uint32]bool{},
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) alloc(kind string) uint32 {
	g.next++
	g.Live[g.next] = kind
	return g.next
}

// Names returns the names of all recorded calls, in order.
func (g *GL) Names() []string {
	names := make([]string, len(g.Calls))
	for i, c := range g.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times the named call was made.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns all recorded calls with the given name.
func (g *GL) Find(name string) []Call {
	var cs []Call
	for _, c := range g.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset forgets the recorded calls, keeping object state.
func (g *GL) Reset() {
	g.Calls = nil
}

// LiveCount returns the number of live objects of the given kind:
// "buffer", "vertexarray", "shader" or "program".
func (g *GL) LiveCount(kind string) int {
	n := 0
	for _, k := range g.Live {
		if k == kind {
			n++
		}
	}
	return n
}

// Bound returns the object bound to the given target; vertex arrays
// are reported under target 0 and the current program under target 1.
func (g *GL) Bound(target uint32) uint32 {
	return g.bound[target]
}

func (g *GL) GenBuffer() uint32 {
	id := g.alloc("buffer")
	g.record("GenBuffer", id)
	return id
}

func (g *GL) DeleteBuffer(id uint32) {
	g.record("DeleteBuffer", id)
	delete(g.Live, id)
}

func (g *GL) BindBuffer(target uint32, id uint32) {
	g.record("BindBuffer", target, id)
	g.bound[target] = id
}

func (g *GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	g.record("BufferData", target, size, usage)
	var b []byte
	if data != nil && size > 0 {
		b = append(b, unsafe.Slice((*byte)(data), size)...)
	}
	g.BufferContents[g.bound[target]] = b
}

func (g *GL) GenVertexArray() uint32 {
	id := g.alloc("vertexarray")
	g.record("GenVertexArray", id)
	return id
}

func (g *GL) DeleteVertexArray(id uint32) {
	g.record("DeleteVertexArray", id)
	delete(g.Live, id)
}

func (g *GL) BindVertexArray(id uint32) {
	g.record("BindVertexArray", id)
	g.bound[0] = id
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	id := g.alloc("shader")
	g.record("CreateShader", xtype, id)
	return id
}

func (g *GL) ShaderSource(id uint32, source string) {
	g.record("ShaderSource", id)
	g.sources[id] = source
}

func (g *GL) CompileShader(id uint32) {
	g.record("CompileShader", id)
	g.compiled[id] = g.CompileFail == "" || !strings.Contains(g.sources[id], g.CompileFail)
}

func (g *GL) GetShaderiv(id uint32, pname uint32) int32 {
	g.record("GetShaderiv", id, pname)
	if pname == render.CompileStatus && g.compiled[id] {
		return 1
	}
	return 0
}

func (g *GL) GetShaderInfoLog(id uint32) string {
	g.record("GetShaderInfoLog", id)
	if g.compiled[id] {
		return ""
	}
	return "0:1(1): error: syntax error near " + g.CompileFail
}

func (g *GL) DeleteShader(id uint32) {
	g.record("DeleteShader", id)
	delete(g.Live, id)
}

func (g *GL) CreateProgram() uint32 {
	id := g.alloc("program")
	g.record("CreateProgram", id)
	return id
}

func (g *GL) AttachShader(program, shader uint32) {
	g.record("AttachShader", program, shader)
}

func (g *GL) DetachShader(program, shader uint32) {
	g.record("DetachShader", program, shader)
}

func (g *GL) LinkProgram(id uint32) {
	g.record("LinkProgram", id)
}

func (g *GL) GetProgramiv(id uint32, pname uint32) int32 {
	g.record("GetProgramiv", id, pname)
	if pname == render.LinkStatus && g.LinkFail == "" {
		return 1
	}
	return 0
}

func (g *GL) GetProgramInfoLog(id uint32) string {
	g.record("GetProgramInfoLog", id)
	return g.LinkFail
}

func (g *GL) UseProgram(id uint32) {
	g.record("UseProgram", id)
	g.bound[1] = id
}

func (g *GL) DeleteProgram(id uint32) {
	g.record("DeleteProgram", id)
	delete(g.Live, id)
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.record("Viewport", x, y, width, height)
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.record("ClearColor", r, gr, b, a)
}

func (g *GL) Clear(mask uint32) {
	g.record("Clear", mask)
}

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	g.record("DrawArrays", mode, first, count)
}

func (g *GL) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	g.record("ReadPixels", x, y, width, height, format, xtype)
	n := int(width) * int(height) * 4
	if len(g.Pixels) == 0 || n == 0 {
		return
	}
	out := unsafe.Slice((*byte)(pixels), n)
	for i := range out {
		out[i] = g.Pixels[i%len(g.Pixels)]
	}
}

func (g *GL) GetError() uint32 {
	if len(g.Errors) == 0 {
		return render.NoError
	}
	c := g.Errors[0]
	g.Errors = g.Errors[1:]
	return c
}

func (g *GL) GetString(name uint32) string {
	return g.Strings[name]
}
