// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"image"
	"path/filepath"
	"testing"
	"testing/fstest"
	"unsafe"

	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/render/rendertest"
	"cogentcore.org/triangle/resources"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertex struct {
	Pos render.F32x3 `location:"0"`
	Clr render.F32x3 `location:"1"`
}

const (
	vertSrc = "#version 330 core\nlayout (location = 0) in vec3 Position;\nvoid main() {}\n"
	fragSrc = "#version 330 core\nout vec4 Color;\nvoid main() {}\n"
)

func testRes() *resources.Resources {
	return resources.FromFS(fstest.MapFS{
		"shaders/triangle.vert": {Data: []byte(vertSrc)},
		"shaders/triangle.frag": {Data: []byte(fragSrc)},
		"shaders/triangle.geom": {Data: []byte("geom")},
	})
}

func TestBufferBindAndData(t *testing.T) {
	gl := rendertest.New()
	vbo := render.NewArrayBuffer(gl)
	assert.NotZero(t, vbo.ID())
	assert.Equal(t, render.ArrayBuffer, vbo.Target)

	verts := []vertex{
		{render.NewF32x3(0.5, -0.5, 0), render.NewF32x3(1, 0, 0)},
		{render.NewF32x3(-0.5, -0.5, 0), render.NewF32x3(0, 1, 0)},
		{render.NewF32x3(0, 0.5, 0), render.NewF32x3(0, 0, 1)},
	}
	vbo.Bind()
	assert.Equal(t, vbo.ID(), gl.Bound(uint32(render.ArrayBuffer)))
	render.StaticDrawData(vbo, verts)
	vbo.Unbind()
	assert.Zero(t, gl.Bound(uint32(render.ArrayBuffer)))

	bd := gl.Find("BufferData")
	require.Len(t, bd, 1)
	assert.Equal(t, []any{uint32(render.ArrayBuffer), 3 * 24, uint32(render.StaticDraw)}, bd[0].Args)

	data := gl.BufferContents[vbo.ID()]
	require.Len(t, data, 72)
	got := unsafe.Slice((*vertex)(unsafe.Pointer(&data[0])), 3)
	assert.Equal(t, verts, got)

	vbo.Bind()
	render.BufferData(vbo, []vertex{}, render.DynamicDraw)
	bd = gl.Find("BufferData")
	assert.Equal(t, []any{uint32(render.ArrayBuffer), 0, uint32(render.DynamicDraw)}, bd[1].Args)

	vbo.Release()
	vbo.Release()
	assert.Equal(t, 1, gl.Count("DeleteBuffer"))
	assert.Zero(t, vbo.ID())
	assert.Zero(t, gl.LiveCount("buffer"))
}

func TestElementArrayBuffer(t *testing.T) {
	gl := rendertest.New()
	ibo := render.NewElementArrayBuffer(gl)
	ibo.Bind()
	render.StaticDrawData(ibo, []uint32{0, 1, 2})
	assert.Equal(t, []any{uint32(render.ElementArrayBuffer), 12, uint32(render.StaticDraw)}, gl.Find("BufferData")[0].Args)
	assert.Contains(t, ibo.String(), "ELEMENT_ARRAY_BUFFER")
}

func TestVertexArray(t *testing.T) {
	gl := rendertest.New()
	vao := render.NewVertexArray(gl)
	vao.Bind()
	assert.Equal(t, vao.ID(), gl.Bound(0))
	vao.Unbind()
	assert.Zero(t, gl.Bound(0))
	vao.Release()
	vao.Release()
	assert.Equal(t, 1, gl.Count("DeleteVertexArray"))
}

func TestLayoutOf(t *testing.T) {
	ly, err := render.LayoutOf[vertex]()
	require.NoError(t, err)
	assert.Equal(t, int32(24), ly.Stride)
	require.Len(t, ly.Attribs, 2)
	assert.Equal(t, render.Attrib{Name: "Pos", Location: 0, Offset: 0, Format: render.AttribFormat{Components: 3, Type: render.Float}}, ly.Attribs[0])
	assert.Equal(t, render.Attrib{Name: "Clr", Location: 1, Offset: 12, Format: render.AttribFormat{Components: 3, Type: render.Float}}, ly.Attribs[1])

	gl := rendertest.New()
	ly.Apply(gl)
	assert.Equal(t, []string{
		"EnableVertexAttribArray", "VertexAttribPointer",
		"EnableVertexAttribArray", "VertexAttribPointer",
	}, gl.Names())
	ptrs := gl.Find("VertexAttribPointer")
	assert.Equal(t, []any{uint32(0), int32(3), uint32(render.Float), false, int32(24), uintptr(0)}, ptrs[0].Args)
	assert.Equal(t, []any{uint32(1), int32(3), uint32(render.Float), false, int32(24), uintptr(12)}, ptrs[1].Args)
}

func TestLayoutOfMixed(t *testing.T) {
	type mixed struct {
		UV    render.F32x2    `location:"2"`
		Color render.U8x4Norm `location:"0"`
		W     render.F32      `location:"1"`
	}
	ly, err := render.LayoutOf[mixed]()
	require.NoError(t, err)
	assert.Equal(t, int32(16), ly.Stride)
	assert.Equal(t, uint32(2), ly.Attribs[0].Location)
	assert.Equal(t, render.AttribFormat{Components: 4, Type: render.UnsignedByte, Normalized: true}, ly.Attribs[1].Format)
	assert.Equal(t, uintptr(12), ly.Attribs[2].Offset)
}

func TestLayoutOfErrors(t *testing.T) {
	type missing struct {
		Pos render.F32x3 `location:"0"`
		Clr render.F32x3
	}
	type dup struct {
		Pos render.F32x3 `location:"0"`
		Clr render.F32x3 `location:"0"`
	}
	type bad struct {
		Pos render.F32x3 `location:"zero"`
	}
	type notAttr struct {
		Pos [3]float32 `location:"0"`
	}
	type iface struct {
		Pos render.Attribute `location:"0"`
	}
	type ptr struct {
		Pos *render.F32x3 `location:"0"`
	}
	_, err := render.LayoutOf[missing]()
	assert.ErrorIs(t, err, render.ErrLayout)
	assert.Contains(t, err.Error(), "Clr")
	_, err = render.LayoutOf[dup]()
	assert.ErrorIs(t, err, render.ErrLayout)
	_, err = render.LayoutOf[bad]()
	assert.ErrorIs(t, err, render.ErrLayout)
	_, err = render.LayoutOf[notAttr]()
	assert.ErrorIs(t, err, render.ErrLayout)
	_, err = render.LayoutOf[iface]()
	assert.ErrorIs(t, err, render.ErrLayout)
	_, err = render.LayoutOf[ptr]()
	assert.ErrorIs(t, err, render.ErrLayout)
	assert.Contains(t, err.Error(), "*render.F32x3")
	_, err = render.LayoutOf[float32]()
	assert.ErrorIs(t, err, render.ErrLayout)
}

func TestF32x3Vec(t *testing.T) {
	v := render.F32x3FromVec(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, render.NewF32x3(1, 2, 3), v)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Vec())
	assert.Equal(t, render.F32x4{D0: 1, D1: 2, D2: 3, D3: 4}, render.F32x4FromVec(mgl32.Vec4{1, 2, 3, 4}))
}

func TestShaderCompile(t *testing.T) {
	gl := rendertest.New()
	sh, err := render.NewShader(gl, "tri.vert", render.VertexShader, vertSrc)
	require.NoError(t, err)
	assert.Equal(t, render.VertexShader, sh.Type)
	assert.Equal(t, []any{uint32(render.VertexShader), sh.ID()}, gl.Find("CreateShader")[0].Args)
	sh.Release()
	sh.Release()
	assert.Equal(t, 1, gl.Count("DeleteShader"))

	gl.CompileFail = "oops"
	_, err = render.NewShader(gl, "broken.frag", render.FragmentShader, "oops")
	var ce *render.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "broken.frag", ce.Name)
	assert.Equal(t, render.FragmentShader, ce.Type)
	assert.Contains(t, ce.Log, "syntax error")
	assert.Contains(t, err.Error(), `fragment shader "broken.frag"`)
	assert.Zero(t, gl.LiveCount("shader"))
}

func TestShaderFromRes(t *testing.T) {
	gl := rendertest.New()
	res := testRes()
	sh, err := render.ShaderFromRes(gl, res, "shaders/triangle.frag")
	require.NoError(t, err)
	assert.Equal(t, render.FragmentShader, sh.Type)

	_, err = render.ShaderFromRes(gl, res, "shaders/triangle.geom")
	assert.ErrorIs(t, err, render.ErrUnknownShaderType)

	_, err = render.ShaderFromRes(gl, res, "shaders/none.vert")
	assert.Error(t, err)
}

func TestProgramFromRes(t *testing.T) {
	gl := rendertest.New()
	pr, err := render.ProgramFromRes(gl, testRes(), "shaders/triangle")
	require.NoError(t, err)
	assert.Equal(t, "shaders/triangle", pr.Name)
	assert.Equal(t, 2, gl.Count("AttachShader"))
	assert.Equal(t, 2, gl.Count("DetachShader"))
	// shaders are released once linked
	assert.Zero(t, gl.LiveCount("shader"))
	assert.Equal(t, 1, gl.LiveCount("program"))

	pr.Use()
	assert.Equal(t, pr.ID(), gl.Bound(1))
	pr.Release()
	pr.Release()
	assert.Zero(t, gl.LiveCount("program"))
}

func TestProgramErrors(t *testing.T) {
	gl := rendertest.New()
	gl.LinkFail = "error: vertex output Color not written\n"
	_, err := render.ProgramFromRes(gl, testRes(), "shaders/triangle")
	var le *render.LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "render: linking program \"shaders/triangle\": error: vertex output Color not written", err.Error())
	assert.Zero(t, gl.LiveCount("program"))
	assert.Zero(t, gl.LiveCount("shader"))

	gl = rendertest.New()
	gl.CompileFail = "out vec4"
	_, err = render.ProgramFromRes(gl, testRes(), "shaders/triangle")
	var ce *render.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "shaders/triangle.frag", ce.Name)
	// the vertex shader compiled before the failure is released too
	assert.Zero(t, gl.LiveCount("shader"))
	assert.Zero(t, gl.Count("CreateProgram"))
}

func TestCheckError(t *testing.T) {
	gl := rendertest.New()
	assert.NoError(t, render.CheckError(gl))

	gl.Errors = []uint32{0x0500, 0x0502, 0x9999}
	err := render.CheckError(gl)
	var de *render.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []uint32{0x0500, 0x0502, 0x9999}, de.Codes)
	assert.Equal(t, "render: driver error: GL_INVALID_ENUM, GL_INVALID_OPERATION, GL_ERROR(0x9999)", err.Error())
	assert.NoError(t, render.CheckError(gl))

	gl.Errors = make([]uint32, 100)
	for i := range gl.Errors {
		gl.Errors[i] = 0x0507
	}
	require.ErrorAs(t, render.CheckError(gl), &de)
	assert.Len(t, de.Codes, 16)
}

func TestReadPixels(t *testing.T) {
	gl := rendertest.New()
	// 1x2 image: bottom row red, top row blue, as the driver delivers it
	gl.Pixels = []byte{255, 0, 0, 255, 0, 0, 255, 255}
	img := render.ReadPixels(gl, image.Point{1, 2})
	assert.Equal(t, image.Rect(0, 0, 1, 2), img.Bounds())
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pix[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[4:8])

	empty := render.ReadPixels(gl, image.Point{})
	assert.True(t, empty.Bounds().Empty())
	assert.Equal(t, 1, gl.Count("ReadPixels"))

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, render.SavePNG(path, img))
	assert.FileExists(t, path)
}

func TestDriverInfo(t *testing.T) {
	gl := rendertest.New()
	gl.Strings[render.Version] = "4.1 Mesa"
	gl.Strings[render.Renderer] = "llvmpipe"
	_, rn, ver, _ := render.DriverInfo(gl)
	assert.Equal(t, "llvmpipe", rn)
	assert.Equal(t, "4.1 Mesa", ver)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ARRAY_BUFFER", render.ArrayBuffer.String())
	assert.Equal(t, "STATIC_DRAW", render.StaticDraw.String())
	assert.Equal(t, "STREAM_DRAW", render.StreamDraw.String())
	assert.Equal(t, "vertex", render.VertexShader.String())
	assert.Equal(t, ".frag", render.FragmentShader.Extension())
	assert.Contains(t, render.BufferUsages(1).String(), "INVALID")
	_, ok := render.ShaderTypeFromExtension(".glsl")
	assert.False(t, ok)
}
