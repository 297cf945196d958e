// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// VertexArray is a vertex array object, which records the attribute
// layout and the array buffer bindings made while it is bound.
type VertexArray struct {
	gl GL
	id uint32
}

// NewVertexArray generates a new vertex array object.
func NewVertexArray(gl GL) *VertexArray {
	return &VertexArray{gl: gl, id: gl.GenVertexArray()}
}

// ID returns the driver handle, 0 after Release.
func (va *VertexArray) ID() uint32 {
	return va.id
}

func (va *VertexArray) Bind() {
	va.gl.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	va.gl.BindVertexArray(0)
}

// Release deletes the vertex array object. It is safe to call more than once.
func (va *VertexArray) Release() {
	if va.id == 0 {
		return
	}
	va.gl.DeleteVertexArray(va.id)
	va.id = 0
}
