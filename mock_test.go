// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "errors"

// mockDriver implements Driver in memory, recording enough to assert on
// resource lifetime and per-frame draw calls.
type mockDriver struct {
	geometriesCreated int
	imagesCreated     int
	framesBegun       int
	resizeWidth       int
	resizeHeight      int
	resizeCalls       int

	failCreateGeometry bool
	failCreateImage    bool
	failBeginFrame     bool

	// onBeginFrame, when set, runs on each new frame before it is
	// returned. Tests use it to arm per-frame hooks.
	onBeginFrame func(*mockFrame)

	frames []*mockFrame
}

var _ Driver = (*mockDriver)(nil)

var errMockFail = errors.New("mock: forced failure")

func (d *mockDriver) CreateGeometry() (Geometry, error) {
	if d.failCreateGeometry {
		return nil, errMockFail
	}
	d.geometriesCreated++
	return &mockGeometry{}, nil
}

func (d *mockDriver) CreateImage(width, height int, pix []byte) (Image, error) {
	if d.failCreateImage {
		return nil, errMockFail
	}
	d.imagesCreated++
	img := &mockImage{}
	img.Upload(width, height, pix)
	return img, nil
}

func (d *mockDriver) BeginFrame(clear RGBA) (Frame, error) {
	if d.failBeginFrame {
		return nil, errMockFail
	}
	d.framesBegun++
	f := &mockFrame{clear: clear}
	if d.onBeginFrame != nil {
		d.onBeginFrame(f)
	}
	d.frames = append(d.frames, f)
	return f, nil
}

func (d *mockDriver) Resize(width, height int) {
	d.resizeWidth = width
	d.resizeHeight = height
	d.resizeCalls++
}

// lastFrame returns the most recently begun frame.
func (d *mockDriver) lastFrame() *mockFrame {
	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}

// mockGeometry records the last uploaded arrays.
type mockGeometry struct {
	vertices  []float32
	secondary []byte
	indices   []uint16
	uploads   int
	released  bool
}

func (g *mockGeometry) Upload(vertices []float32, secondary []byte, indices []uint16) {
	g.vertices = append(g.vertices[:0], vertices...)
	g.secondary = append(g.secondary[:0], secondary...)
	g.indices = append(g.indices[:0], indices...)
	g.uploads++
}

func (g *mockGeometry) Release() { g.released = true }

// mockImage records the last uploaded pixels.
type mockImage struct {
	width    int
	height   int
	pix      []byte
	uploads  int
	released bool
}

func (i *mockImage) Upload(width, height int, pix []byte) {
	i.width = width
	i.height = height
	i.pix = append(i.pix[:0], pix...)
	i.uploads++
}

func (i *mockImage) Size() (int, int) { return i.width, i.height }

func (i *mockImage) Release() { i.released = true }

// mockDraw is one recorded draw call.
type mockDraw struct {
	geo        Geometry
	kind       PrimitiveKind
	transform  Mat4
	texture    Image
	indexCount int
}

// mockFrame records draw calls in issue order.
type mockFrame struct {
	clear  RGBA
	draws  []mockDraw
	ended  bool
	endErr error

	// onDraw, when set, runs before each draw is recorded. Used to
	// mutate stores mid-pass in snapshot tests.
	onDraw func()
}

func (f *mockFrame) Draw(geo Geometry, kind PrimitiveKind, transform Mat4, texture Image, indexCount int) {
	if f.onDraw != nil {
		f.onDraw()
	}
	f.draws = append(f.draws, mockDraw{
		geo:        geo,
		kind:       kind,
		transform:  transform,
		texture:    texture,
		indexCount: indexCount,
	})
}

func (f *mockFrame) End() error {
	f.ended = true
	return f.endErr
}
