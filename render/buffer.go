// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"unsafe"
)

// Buffer is a buffer object bound to a fixed target.
type Buffer struct {
	gl GL
	id uint32

	// Target is the binding point used by Bind and Unbind.
	Target BufferTargets
}

// NewBuffer generates a new buffer object for the given target.
func NewBuffer(gl GL, target BufferTargets) *Buffer {
	return &Buffer{gl: gl, id: gl.GenBuffer(), Target: target}
}

// NewArrayBuffer generates a new buffer object for vertex attributes.
func NewArrayBuffer(gl GL) *Buffer {
	return NewBuffer(gl, ArrayBuffer)
}

// NewElementArrayBuffer generates a new buffer object for element indices.
func NewElementArrayBuffer(gl GL) *Buffer {
	return NewBuffer(gl, ElementArrayBuffer)
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(id:%d target:%v)", b.id, b.Target)
}

// ID returns the driver handle, 0 after Release.
func (b *Buffer) ID() uint32 {
	return b.id
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	b.gl.BindBuffer(uint32(b.Target), b.id)
}

// Unbind resets the binding of the buffer's target.
func (b *Buffer) Unbind() {
	b.gl.BindBuffer(uint32(b.Target), 0)
}

// Release deletes the buffer object. It is safe to call more than once.
func (b *Buffer) Release() {
	if b.id == 0 {
		return
	}
	b.gl.DeleteBuffer(b.id)
	b.id = 0
}

// BufferData creates the data store of the buffer, which must be bound,
// and copies data into it. The store holds len(data) elements of the
// in-memory size of T, so T must be a plain value type without pointers.
// An empty slice creates an empty store.
func BufferData[T any](b *Buffer, data []T, usage BufferUsages) {
	var ptr unsafe.Pointer
	size := 0
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
		size = len(data) * int(unsafe.Sizeof(data[0]))
	}
	b.gl.BufferData(uint32(b.Target), size, ptr, uint32(usage))
}

// StaticDrawData is [BufferData] with [StaticDraw] usage.
func StaticDrawData[T any](b *Buffer, data []T) {
	BufferData(b, data, StaticDraw)
}
