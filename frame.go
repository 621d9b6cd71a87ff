// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "errors"

// ErrFrameInProgress is returned by Draw when a draw pass is already
// running, which can only happen if a resize callback re-enters Draw.
var ErrFrameInProgress = errors.New("blit: draw pass already in progress")

type frameState int32

const (
	stateIdle frameState = iota
	stateDrawing
)

// FrameExecutor runs one render pass per Draw call: clear, walk the paint
// order, one indexed draw per visible buffer. It does not schedule
// itself; the host triggers Draw once per display refresh.
type FrameExecutor struct {
	driver   Driver
	buffers  *BufferStore
	textures *TextureStore

	projection Mat4
	clear      RGBA
	state      frameState
	scratch    []BufferID
}

// NewFrameExecutor creates an executor over the given stores. The
// projection starts as identity and the clear color as transparent black.
func NewFrameExecutor(driver Driver, buffers *BufferStore, textures *TextureStore) *FrameExecutor {
	return &FrameExecutor{
		driver:     driver,
		buffers:    buffers,
		textures:   textures,
		projection: Identity(),
	}
}

// SetProjection replaces the global projection matrix, composed with
// every buffer's transform on subsequent draws.
func (e *FrameExecutor) SetProjection(m Mat4) {
	e.projection = m
}

// SetClearColor sets the color the pass clears to.
func (e *FrameExecutor) SetClearColor(c RGBA) {
	e.clear = c
}

// Draw runs one full render pass.
//
// The pass iterates a snapshot of the paint order taken at pass start, so
// structural changes made by a callback during the pass are not observed
// until the next one. Invisible buffers keep their slot in the order but
// issue no draw call. A buffer without a texture, or whose texture handle
// no longer resolves, binds the 1x1 fallback image.
func (e *FrameExecutor) Draw() error {
	if e.state != stateIdle {
		return ErrFrameInProgress
	}
	e.state = stateDrawing
	defer func() { e.state = stateIdle }()

	e.scratch = e.buffers.order.snapshot(e.scratch)

	frame, err := e.driver.BeginFrame(e.clear)
	if err != nil {
		return err
	}
	for _, id := range e.scratch {
		buf, ok := e.buffers.table.get(id)
		if !ok || !buf.visible || buf.indexCount == 0 {
			continue
		}
		m := e.projection.Mul(buf.transform)
		frame.Draw(buf.geo, buf.kind, m, e.textures.resolve(buf.texture), buf.indexCount)
	}
	return frame.End()
}
