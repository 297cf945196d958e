// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides thin typed wrappers around OpenGL buffer,
// vertex array, shader and program objects. The wrappers enforce
// bind/unbind pairing and check compile and link status, turning
// driver info logs into Go errors.
//
// All calls go through the [GL] interface, so that everything above
// the raw driver can be exercised without a context. The OpenGL 4.1
// core implementation is in the glcore subpackage.
package render

import "unsafe"

// GL is the subset of the OpenGL API used by this package.
// Method names and argument order follow the C API.
// All methods must be called on the thread that owns the context.
type GL interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target uint32, id uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(xtype uint32) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	GetShaderiv(id uint32, pname uint32) int32
	GetShaderInfoLog(id uint32) string
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(id uint32)
	GetProgramiv(id uint32, pname uint32) int32
	GetProgramInfoLog(id uint32) string
	UseProgram(id uint32)
	DeleteProgram(id uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)

	GetError() uint32
	GetString(name uint32) string
}

// OpenGL enumerant values used by this package.
// They are identical to the values in the official headers.
const (
	NoError = 0

	Triangles      = 0x0004
	ColorBufferBit = 0x00004000

	UnsignedByte = 0x1401
	Float        = 0x1406
	RGBA         = 0x1908

	Vendor             = 0x1F00
	Renderer           = 0x1F01
	Version            = 0x1F02
	ShadingLangVersion = 0x8B8C

	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82
	InfoLogLength = 0x8B84
)

// DriverInfo returns the vendor, renderer and version strings
// of the current context, for logging.
func DriverInfo(gl GL) (vendor, renderer, version, glsl string) {
	return gl.GetString(Vendor), gl.GetString(Renderer), gl.GetString(Version), gl.GetString(ShadingLangVersion)
}
