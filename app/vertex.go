// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/triangle/render"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the vertex format of the triangle shaders.
type Vertex struct {
	Pos render.F32x3 `location:"0"`
	Clr render.F32x3 `location:"1"`
}

// TriangleVertices returns the three corners of the triangle,
// each with a primary color.
func TriangleVertices() []Vertex {
	return []Vertex{
		{ // bottom right
			Pos: render.F32x3FromVec(mgl32.Vec3{0.5, -0.5, 0}),
			Clr: render.F32x3FromVec(mgl32.Vec3{1, 0, 0}),
		},
		{ // bottom left
			Pos: render.F32x3FromVec(mgl32.Vec3{-0.5, -0.5, 0}),
			Clr: render.F32x3FromVec(mgl32.Vec3{0, 1, 0}),
		},
		{ // top
			Pos: render.F32x3FromVec(mgl32.Vec3{0, 0.5, 0}),
			Clr: render.F32x3FromVec(mgl32.Vec3{0, 0, 1}),
		},
	}
}
