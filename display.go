// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "time"

// Options configures a Display. The zero value is usable.
type Options struct {
	// ClearColor is the color every frame clears to. The zero value
	// clears to transparent black.
	ClearColor RGBA

	// OnResize is called after a resize has been applied to the driver,
	// before the forced draw pass runs. Hosts typically recompute and set
	// the projection matrix here.
	OnResize func(width, height int)

	// OnAdvance is called from Advance after pending texture loads have
	// been applied. elapsed is the time since the previous Advance, as
	// reported by the host.
	OnAdvance func(elapsed time.Duration)
}

// Display owns the stores, frame executor, and viewport controller, and
// exposes the handle-based contract the host's logic driver programs
// against. It does not schedule itself: the host calls Advance once per
// update period and Draw once per display refresh.
//
// All methods except SetLogger-driven logging must be called from a
// single goroutine. See TextureStore for the one asynchronous exception.
type Display struct {
	driver    Driver
	buffers   *BufferStore
	textures  *TextureStore
	executor  *FrameExecutor
	viewport  *ViewportController
	onAdvance func(elapsed time.Duration)
}

// New creates a Display over the given driver. An error here means the
// driver cannot allocate the fallback texture and setup cannot continue.
// opts may be nil.
func New(driver Driver, opts *Options) (*Display, error) {
	if opts == nil {
		opts = &Options{}
	}

	textures, err := NewTextureStore(driver)
	if err != nil {
		return nil, err
	}
	buffers := NewBufferStore(driver, textures)
	executor := NewFrameExecutor(driver, buffers, textures)
	executor.SetClearColor(opts.ClearColor)

	return &Display{
		driver:    driver,
		buffers:   buffers,
		textures:  textures,
		executor:  executor,
		viewport:  NewViewportController(driver, executor, opts.OnResize),
		onAdvance: opts.OnAdvance,
	}, nil
}

// Buffers returns the buffer store.
func (d *Display) Buffers() *BufferStore { return d.buffers }

// Textures returns the texture store.
func (d *Display) Textures() *TextureStore { return d.textures }

// CreateBuffer allocates a draw buffer of the given kind, appended to the
// end of the paint order.
func (d *Display) CreateBuffer(kind PrimitiveKind) BufferID {
	return d.buffers.Create(kind)
}

// DeleteBuffer removes a buffer. Returns false if id is unknown.
func (d *Display) DeleteBuffer(id BufferID) bool {
	return d.buffers.Delete(id)
}

// SetBufferContent replaces a buffer's geometry. See BufferStore.SetContent.
func (d *Display) SetBufferContent(id BufferID, vertices []float32, secondary []byte, indices []uint16) bool {
	return d.buffers.SetContent(id, vertices, secondary, indices)
}

// SetBufferTransform replaces a buffer's model transform.
func (d *Display) SetBufferTransform(id BufferID, m Mat4) bool {
	return d.buffers.SetTransform(id, m)
}

// SetBufferVisibility shows or hides a buffer.
func (d *Display) SetBufferVisibility(id BufferID, visible bool) bool {
	return d.buffers.SetVisible(id, visible)
}

// SetBufferTexture binds a texture to a buffer. See BufferStore.SetTexture.
func (d *Display) SetBufferTexture(id BufferID, tex TextureID) bool {
	return d.buffers.SetTexture(id, tex)
}

// CreateTexture allocates a texture holding the 1x1 placeholder.
func (d *Display) CreateTexture() TextureID {
	return d.textures.Create()
}

// DeleteTexture removes a texture. Returns false if id is unknown.
func (d *Display) DeleteTexture(id TextureID) bool {
	return d.textures.Delete(id)
}

// SetTextureFromSource begins an asynchronous load of src into id.
// See TextureStore.SetFromSource.
func (d *Display) SetTextureFromSource(id TextureID, src Source) bool {
	return d.textures.SetFromSource(id, src)
}

// SetProjection replaces the global projection matrix.
func (d *Display) SetProjection(m Mat4) {
	d.executor.SetProjection(m)
}

// Resize applies a new canvas size. See ViewportController.Resize.
func (d *Display) Resize(width, height int) {
	d.viewport.Resize(width, height)
}

// Size returns the last applied canvas size.
func (d *Display) Size() (width, height int) {
	return d.viewport.Size()
}

// Advance runs one update tick: pending texture loads apply, then the
// host's OnAdvance callback runs with the elapsed time it supplied.
func (d *Display) Advance(elapsed time.Duration) {
	d.textures.Apply()
	if d.onAdvance != nil {
		d.onAdvance(elapsed)
	}
}

// Draw runs one render pass over the current paint order. Pending texture
// loads apply first so a frame never renders a stale placeholder for a
// load that has already finished.
func (d *Display) Draw() error {
	d.textures.Apply()
	return d.executor.Draw()
}

// Close releases every native GPU object the display owns. The display
// must not be used afterwards.
func (d *Display) Close() {
	d.buffers.close()
	d.textures.close()
}
