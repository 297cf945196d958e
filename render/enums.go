// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "fmt"

// BufferTargets are the binding points (targets) of a [Buffer].
type BufferTargets uint32

const (
	// ArrayBuffer holds vertex attributes, such as vertex coordinates,
	// texture coordinate data, or vertex color data.
	ArrayBuffer BufferTargets = 0x8892

	// ElementArrayBuffer holds element indices.
	ElementArrayBuffer BufferTargets = 0x8893
)

func (bt BufferTargets) String() string {
	switch bt {
	case ArrayBuffer:
		return "ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "ELEMENT_ARRAY_BUFFER"
	}
	return fmt.Sprintf("INVALID_BUFFER_TARGET(%#x)", uint32(bt))
}

// BufferUsages are the expected usage patterns of buffer data.
type BufferUsages uint32

const (
	// StaticDraw contents are written once and used often.
	StaticDraw BufferUsages = 0x88E4

	// DynamicDraw contents are written often and used often.
	DynamicDraw BufferUsages = 0x88E8

	// StreamDraw contents are written once and used a few times.
	StreamDraw BufferUsages = 0x88E0
)

func (bu BufferUsages) String() string {
	switch bu {
	case StaticDraw:
		return "STATIC_DRAW"
	case DynamicDraw:
		return "DYNAMIC_DRAW"
	case StreamDraw:
		return "STREAM_DRAW"
	}
	return fmt.Sprintf("INVALID_BUFFER_USAGE(%#x)", uint32(bu))
}

// ShaderTypes are the shader stages.
type ShaderTypes uint32

const (
	VertexShader   ShaderTypes = 0x8B31
	FragmentShader ShaderTypes = 0x8B30
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("INVALID_SHADER_TYPE(%#x)", uint32(st))
}

// Extension returns the resource file extension used for the shader type.
func (st ShaderTypes) Extension() string {
	switch st {
	case VertexShader:
		return ".vert"
	case FragmentShader:
		return ".frag"
	}
	return ""
}

// ShaderTypeFromExtension returns the shader type for a resource
// file extension (including the dot).
func ShaderTypeFromExtension(ext string) (ShaderTypes, bool) {
	switch ext {
	case ".vert":
		return VertexShader, true
	case ".frag":
		return FragmentShader, true
	}
	return 0, false
}
