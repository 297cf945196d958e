// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/render/rendertest"
	"cogentcore.org/triangle/resources"
	"cogentcore.org/triangle/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays one batch of events per PollEvents call
// and asks to quit once they run out.
type fakeWindow struct {
	batches [][]window.Event
	polls   int
	swaps   int
	onPoll  func(poll int)
}

func (w *fakeWindow) PollEvents() []window.Event {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
	if len(w.batches) == 0 {
		return []window.Event{{Type: window.Quit}}
	}
	b := w.batches[0]
	w.batches = w.batches[1:]
	return b
}

func (w *fakeWindow) SwapBuffers()                 { w.swaps++ }
func (w *fakeWindow) FramebufferSize() image.Point { return image.Point{900, 700} }
func (w *fakeWindow) Release()                     {}

// assetRes returns the shaders shipped in the repository.
func assetRes(t *testing.T) *resources.Resources {
	t.Helper()
	res := resources.FromDir(filepath.Join("..", "assets"))
	for _, n := range ShaderNames("shaders/triangle") {
		ok, err := res.Exists(n)
		require.NoError(t, err)
		require.True(t, ok, n)
	}
	return res
}

func newTestRenderer(t *testing.T, gl *rendertest.GL) *Renderer {
	t.Helper()
	r, err := NewRenderer(gl, assetRes(t), "shaders/triangle", mgl32.Vec4{0.3, 0.3, 0.5, 1}, image.Point{900, 700})
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

func TestTriangleVertices(t *testing.T) {
	vs := TriangleVertices()
	require.Len(t, vs, 3)
	assert.Equal(t, render.NewF32x3(0.5, -0.5, 0), vs[0].Pos)
	assert.Equal(t, render.NewF32x3(1, 0, 0), vs[0].Clr)
	assert.Equal(t, render.NewF32x3(-0.5, -0.5, 0), vs[1].Pos)
	assert.Equal(t, render.NewF32x3(0, 1, 0), vs[1].Clr)
	assert.Equal(t, render.NewF32x3(0, 0.5, 0), vs[2].Pos)
	assert.Equal(t, render.NewF32x3(0, 0, 1), vs[2].Clr)

	ly, err := render.LayoutOf[Vertex]()
	require.NoError(t, err)
	assert.Equal(t, int32(24), ly.Stride)
}

func TestNewRenderer(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)

	// buffer upload, then the vertex array records the layout
	names := gl.Names()
	start := indexOf(names, "GenBuffer")
	require.GreaterOrEqual(t, start, 0)
	assert.Equal(t, []string{
		"GenBuffer", "BindBuffer", "BufferData", "BindBuffer",
		"GenVertexArray", "BindVertexArray", "BindBuffer",
		"EnableVertexAttribArray", "VertexAttribPointer",
		"EnableVertexAttribArray", "VertexAttribPointer",
		"BindBuffer", "BindVertexArray",
		"Viewport", "ClearColor",
	}, names[start:])
	assert.Len(t, gl.BufferContents[r.vbo.ID()], 72)
	assert.Equal(t, []any{int32(0), int32(0), int32(900), int32(700)}, gl.Find("Viewport")[0].Args)
	assert.Equal(t, []any{float32(0.3), float32(0.3), float32(0.5), float32(1)}, gl.Find("ClearColor")[0].Args)
	assert.Equal(t, image.Point{900, 700}, r.Size())

	r.Release()
	r.Release()
	assert.Zero(t, gl.LiveCount("buffer"))
	assert.Zero(t, gl.LiveCount("vertexarray"))
	assert.Zero(t, gl.LiveCount("program"))
}

func TestNewRendererErrors(t *testing.T) {
	gl := rendertest.New()
	gl.CompileFail = "gl_Position"
	_, err := NewRenderer(gl, assetRes(t), "shaders/triangle", mgl32.Vec4{}, image.Point{1, 1})
	var ce *render.CompileError
	assert.ErrorAs(t, err, &ce)

	gl = rendertest.New()
	_, err = NewRenderer(gl, assetRes(t), "shaders/missing", mgl32.Vec4{}, image.Point{1, 1})
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)
	gl.Reset()

	require.NoError(t, r.Frame())
	assert.Equal(t, []string{"Clear", "UseProgram", "BindVertexArray", "DrawArrays"}, gl.Names())
	assert.Equal(t, []any{uint32(render.ColorBufferBit)}, gl.Calls[0].Args)
	assert.Equal(t, []any{uint32(render.Triangles), int32(0), int32(3)}, gl.Calls[3].Args)

	gl.Errors = []uint32{0x0502}
	var de *render.DriverError
	assert.ErrorAs(t, r.Frame(), &de)
}

func TestReload(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)
	old := r.program.ID()

	require.NoError(t, r.Reload())
	assert.NotEqual(t, old, r.program.ID())
	assert.Equal(t, 1, gl.LiveCount("program"))

	cur := r.program.ID()
	gl.CompileFail = "gl_Position"
	assert.Error(t, r.Reload())
	assert.Equal(t, cur, r.program.ID())
	assert.Equal(t, 1, gl.LiveCount("program"))
}

func TestLoopEvents(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)
	win := &fakeWindow{batches: [][]window.Event{
		nil,
		{{Type: window.Resize, Size: image.Point{640, 480}}},
		{{Type: window.KeyDown, Key: "a"}},
	}}
	require.NoError(t, Loop(context.Background(), win, r, nil, ""))
	assert.Equal(t, 3, win.swaps)
	assert.Equal(t, 3, gl.Count("DrawArrays"))
	assert.Equal(t, image.Point{640, 480}, r.Size())

	win = &fakeWindow{batches: [][]window.Event{nil, {{Type: window.KeyDown, Key: window.KeyEscape}}}}
	require.NoError(t, Loop(context.Background(), win, r, nil, ""))
	assert.Equal(t, 1, win.swaps)
}

func TestLoopCancel(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)
	ctx, cancel := context.WithCancel(context.Background())
	win := &fakeWindow{batches: make([][]window.Event, 100)}
	win.onPoll = func(poll int) {
		if poll == 5 {
			cancel()
		}
	}
	require.NoError(t, Loop(ctx, win, r, nil, ""))
	assert.Equal(t, 5, win.swaps)
}

func TestLoopReload(t *testing.T) {
	gl := rendertest.New()
	r := newTestRenderer(t, gl)
	old := r.program.ID()

	changes := make(chan string, 1)
	changes <- "shaders/triangle.frag"
	win := &fakeWindow{batches: [][]window.Event{nil, nil}}
	win.onPoll = func(poll int) {
		if poll == 2 {
			close(changes)
		}
	}
	require.NoError(t, Loop(context.Background(), win, r, changes, ""))
	assert.NotEqual(t, old, r.program.ID())
	assert.Equal(t, 2, win.swaps)
}

func TestLoopScreenshot(t *testing.T) {
	gl := rendertest.New()
	gl.Pixels = []byte{77, 77, 128, 255}
	r := newTestRenderer(t, gl)
	r.Resize(image.Point{4, 3})

	path := filepath.Join(t.TempDir(), "frame.png")
	win := &fakeWindow{batches: make([][]window.Event, 10)}
	require.NoError(t, Loop(context.Background(), win, r, nil, path))
	assert.Zero(t, win.swaps)
	assert.Equal(t, 1, gl.Count("DrawArrays"))
	assert.FileExists(t, path)
	assert.Equal(t, []any{int32(0), int32(0), int32(4), int32(3), uint32(render.RGBA), uint32(render.UnsignedByte)}, gl.Find("ReadPixels")[0].Args)
}

func TestFPSCounter(t *testing.T) {
	t0 := time.Unix(0, 0)
	fc := newFPSCounter(t0)
	for i := 1; i < 600; i++ {
		_, ok := fc.frame(t0.Add(time.Duration(i) * 16 * time.Millisecond))
		assert.False(t, ok)
	}
	rate, ok := fc.frame(t0.Add(10 * time.Second))
	assert.True(t, ok)
	assert.InDelta(t, 60, rate, 0.001)
	assert.Zero(t, fc.frames)
}

func TestWindowOptions(t *testing.T) {
	cfg := config.New()
	cfg.Width = 320
	opts := WindowOptions(cfg)
	assert.Equal(t, "Game", opts.Title)
	assert.Equal(t, image.Point{320, 700}, opts.Size)
	assert.Equal(t, 4, opts.GLMajor)
	assert.Equal(t, 1, opts.GLMinor)
	assert.True(t, opts.VSync)
	assert.NoError(t, opts.Validate())
	assert.Equal(t, []string{"shaders/triangle.vert", "shaders/triangle.frag"}, ShaderNames("shaders/triangle"))
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
