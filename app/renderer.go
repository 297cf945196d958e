// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/resources"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the driver objects of the triangle and draws it.
type Renderer struct {
	gl  render.GL
	res *resources.Resources

	// shader is the resource name of the program, without extension.
	shader string

	program *render.Program
	vbo     *render.Buffer
	vao     *render.VertexArray

	nverts int32
	size   image.Point
}

// NewRenderer builds the shader program named shader from res, uploads
// the triangle and sets up the viewport for the given framebuffer size
// and the background color bg. The context of gl must be current.
func NewRenderer(gl render.GL, res *resources.Resources, shader string, bg mgl32.Vec4, size image.Point) (*Renderer, error) {
	layout, err := render.LayoutOf[Vertex]()
	if err != nil {
		return nil, err
	}
	program, err := render.ProgramFromRes(gl, res, shader)
	if err != nil {
		return nil, err
	}
	r := &Renderer{gl: gl, res: res, shader: shader, program: program}

	verts := TriangleVertices()
	r.nverts = int32(len(verts))
	r.vbo = render.NewArrayBuffer(gl)
	r.vbo.Bind()
	render.StaticDrawData(r.vbo, verts)
	r.vbo.Unbind()

	r.vao = render.NewVertexArray(gl)
	r.vao.Bind()
	r.vbo.Bind()
	layout.Apply(gl)
	r.vbo.Unbind()
	r.vao.Unbind()

	r.Resize(size)
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	if err := render.CheckError(gl); err != nil {
		r.Release()
		return nil, fmt.Errorf("app.NewRenderer: %w", err)
	}
	return r, nil
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() image.Point {
	return r.size
}

// Resize sets the viewport to cover a framebuffer of the given size.
func (r *Renderer) Resize(size image.Point) {
	r.size = size
	r.gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// Frame clears the framebuffer and draws the triangle. It returns
// any errors reported by the driver while doing so.
func (r *Renderer) Frame() error {
	r.gl.Clear(render.ColorBufferBit)
	r.program.Use()
	r.vao.Bind()
	r.gl.DrawArrays(render.Triangles, 0, r.nverts)
	return render.CheckError(r.gl)
}

// Reload rebuilds the shader program from its resources. If that fails
// the current program stays in use and the error is returned.
func (r *Renderer) Reload() error {
	program, err := render.ProgramFromRes(r.gl, r.res, r.shader)
	if err != nil {
		return err
	}
	r.program.Release()
	r.program = program
	slog.Info("app.Renderer Reload", "shader", r.shader)
	return nil
}

// Screenshot saves the current framebuffer contents as a PNG file.
// It must be called after Frame and before the buffers are swapped.
func (r *Renderer) Screenshot(path string) error {
	img := render.ReadPixels(r.gl, r.size)
	if err := render.CheckError(r.gl); err != nil {
		return fmt.Errorf("app.Renderer Screenshot: %w", err)
	}
	if err := render.SavePNG(path, img); err != nil {
		return fmt.Errorf("app.Renderer Screenshot: %w", err)
	}
	slog.Info("app.Renderer Screenshot", "path", path, "size", r.size)
	return nil
}

// Release deletes all driver objects. It is safe to call more than once.
func (r *Renderer) Release() {
	if r.vao != nil {
		r.vao.Release()
	}
	if r.vbo != nil {
		r.vbo.Release()
	}
	if r.program != nil {
		r.program.Release()
	}
}

// ShaderNames returns the resource names of the stages of the named program.
func ShaderNames(shader string) []string {
	names := make([]string, len(render.ProgramStages))
	for i, st := range render.ProgramStages {
		names[i] = shader + st.Extension()
	}
	return names
}
