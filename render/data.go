// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/go-gl/mathgl/mgl32"

// AttribFormat describes how the driver reads one vertex attribute.
type AttribFormat struct {
	// Components is the number of components, 1 to 4.
	Components int32

	// Type is the component type, e.g. [Float].
	Type uint32

	// Normalized maps integer components to [0, 1] or [-1, 1].
	Normalized bool
}

// Attribute is implemented by types that can be stored in a vertex
// buffer and fed to a shader input location.
type Attribute interface {
	AttribFormat() AttribFormat
}

// VertexAttribPointer enables the attribute at location and describes
// its data in the currently bound array buffer: stride bytes between
// consecutive vertices, starting offset bytes into the buffer.
func VertexAttribPointer(gl GL, format AttribFormat, location uint32, stride int32, offset uintptr) {
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointer(location, format.Components, format.Type, format.Normalized, stride, offset)
}

// F32 is a single float attribute.
type F32 float32

func (F32) AttribFormat() AttribFormat { return AttribFormat{1, Float, false} }

// F32x2 is a two component float attribute.
type F32x2 struct {
	D0, D1 float32
}

func (F32x2) AttribFormat() AttribFormat { return AttribFormat{2, Float, false} }

// F32x3 is a three component float attribute, used for
// positions and RGB colors.
type F32x3 struct {
	D0, D1, D2 float32
}

// NewF32x3 returns a new F32x3.
func NewF32x3(d0, d1, d2 float32) F32x3 {
	return F32x3{d0, d1, d2}
}

// F32x3FromVec converts a mathgl vector.
func F32x3FromVec(v mgl32.Vec3) F32x3 {
	return F32x3{v[0], v[1], v[2]}
}

// Vec returns the value as a mathgl vector.
func (v F32x3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.D0, v.D1, v.D2}
}

func (F32x3) AttribFormat() AttribFormat { return AttribFormat{3, Float, false} }

// F32x4 is a four component float attribute, used for RGBA colors.
type F32x4 struct {
	D0, D1, D2, D3 float32
}

// F32x4FromVec converts a mathgl vector.
func F32x4FromVec(v mgl32.Vec4) F32x4 {
	return F32x4{v[0], v[1], v[2], v[3]}
}

func (F32x4) AttribFormat() AttribFormat { return AttribFormat{4, Float, false} }

// U8x4Norm is four normalized unsigned bytes, a compact RGBA color.
type U8x4Norm struct {
	D0, D1, D2, D3 uint8
}

func (U8x4Norm) AttribFormat() AttribFormat { return AttribFormat{4, UnsignedByte, true} }
