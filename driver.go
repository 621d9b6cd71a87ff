// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

// Driver is the narrow GPU abstraction the stores and frame executor are
// written against.
//
// The key principle, shared with the rest of the gogpu ecosystem: blit
// RECEIVES GPU access from the host, it does not create a device. The
// backend/wgpu package implements Driver on top of wgpu/hal; tests
// implement it in memory.
//
// All methods are called from the single goroutine that drives
// Advance/Draw. Implementations do not need internal locking for
// correctness of the blit semantics.
type Driver interface {
	// CreateGeometry allocates an empty native geometry object (vertex,
	// secondary-attribute, and index storage). The object carries no data
	// until Upload is called.
	CreateGeometry() (Geometry, error)

	// CreateImage allocates a native texture object holding the given
	// RGBA8 pixel data. len(pix) must be width*height*4.
	CreateImage(width, height int, pix []byte) (Image, error)

	// BeginFrame starts a render pass, clearing color and depth targets to
	// the fixed defaults. It returns a Frame that records one draw per
	// visible buffer and presents on End.
	BeginFrame(clear RGBA) (Frame, error)

	// Resize applies a new viewport size in pixels. Backends recreate any
	// size-dependent targets (depth attachment).
	Resize(width, height int)
}

// Geometry is a native GPU geometry object owned by a BufferStore.
// Deleted buffer handles return their Geometry to a recycling pool; the
// object is reused (and re-uploaded) by a later create.
type Geometry interface {
	// Upload replaces the geometry's contents as a single atomic update.
	// The secondary attribute is 4 bytes per vertex: RGBA8 for
	// Solid/Lines, two uint16 texel coordinates for Textured.
	Upload(vertices []float32, secondary []byte, indices []uint16)

	// Release frees the native object. Called only when the owning store
	// is closed, never during normal recycling.
	Release()
}

// Image is a native GPU texture object owned by a TextureStore.
type Image interface {
	// Upload replaces the pixel data and dimensions.
	// len(pix) must be width*height*4 (RGBA8).
	Upload(width, height int, pix []byte)

	// Size returns the current pixel dimensions.
	Size() (width, height int)

	// Release frees the native object. Called only on store close.
	Release()
}

// Frame records the draw calls of a single render pass.
type Frame interface {
	// Draw issues one indexed draw. transform is the full per-object
	// matrix (projection already composed in by the executor). texture is
	// never nil; buffers without a texture receive the fallback image.
	Draw(geo Geometry, kind PrimitiveKind, transform Mat4, texture Image, indexCount int)

	// End finishes the pass and submits it.
	End() error
}
