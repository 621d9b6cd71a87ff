// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

// PrimitiveKind selects the GPU topology of a draw buffer and the
// interpretation of its secondary vertex attribute.
type PrimitiveKind int32

const (
	// Solid draws filled triangles; the secondary attribute is a
	// normalized RGBA8 color.
	Solid PrimitiveKind = iota

	// Lines draws line segments; the secondary attribute is a normalized
	// RGBA8 color.
	Lines

	// Textured draws triangles sampled from a bound texture; the
	// secondary attribute is a pair of uint16 texel coordinates.
	Textured
)

// String returns the kind name for logging.
func (k PrimitiveKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Lines:
		return "lines"
	case Textured:
		return "textured"
	default:
		return "unknown"
	}
}

// drawBuffer is the CPU-side record behind one buffer handle. The native
// geometry object is recycled across delete/create; everything else is
// reset on reuse so a fresh handle never observes stale state.
type drawBuffer struct {
	geo        Geometry
	kind       PrimitiveKind
	indexCount int
	transform  Mat4
	visible    bool
	texture    TextureID
}

// BufferStore owns the draw buffers and their paint order. All access is
// through handles; the native geometry objects never leave the store.
//
// Mutating operations return false on an unknown handle with no side
// effects. That is an expected caller race (a late mutation after a
// delete), not an error, so it is not logged.
type BufferStore struct {
	driver   Driver
	textures *TextureStore
	table    table[BufferID, drawBuffer]
	order    drawOrder
}

// NewBufferStore creates an empty store. textures is consulted by
// SetTexture to validate texture handles.
func NewBufferStore(driver Driver, textures *TextureStore) *BufferStore {
	return &BufferStore{
		driver:   driver,
		textures: textures,
		table:    newTable[BufferID, drawBuffer](),
	}
}

// Create allocates a buffer of the given kind and appends it to the end
// of the paint order. A recycled native object is scrubbed to empty
// geometry and identity transform. Returns InvalidBuffer if the driver
// cannot allocate a geometry object.
func (s *BufferStore) Create(kind PrimitiveKind) BufferID {
	fresh := func() (*drawBuffer, error) {
		geo, err := s.driver.CreateGeometry()
		if err != nil {
			return nil, err
		}
		return &drawBuffer{geo: geo}, nil
	}
	reset := func(b *drawBuffer) error {
		b.indexCount = 0
		return nil
	}

	id, buf, err := s.table.create(fresh, reset)
	if err != nil {
		Logger().Warn("blit: create buffer failed", "kind", kind, "error", err)
		return InvalidBuffer
	}
	buf.kind = kind
	buf.transform = Identity()
	buf.visible = true
	buf.texture = InvalidTexture

	s.order.append(id)
	return id
}

// Delete removes id from the store and the paint order, returning its
// native object to the recycle pool. Returns false if id is unknown.
func (s *BufferStore) Delete(id BufferID) bool {
	if _, ok := s.table.remove(id); !ok {
		return false
	}
	s.order.remove(id)
	return true
}

// SetContent replaces the buffer's geometry in a single atomic update.
// The index count becomes the buffer's render count.
//
// vertices holds three floats per vertex. secondary holds four bytes per
// vertex, interpreted per the buffer's kind. Every index must be less
// than the vertex count and the index count must match the kind's
// topology (a multiple of 3 for triangles, 2 for lines); this is a
// caller contract, not checked here.
func (s *BufferStore) SetContent(id BufferID, vertices []float32, secondary []byte, indices []uint16) bool {
	buf, ok := s.table.get(id)
	if !ok {
		return false
	}
	buf.geo.Upload(vertices, secondary, indices)
	buf.indexCount = len(indices)
	return true
}

// SetTransform replaces the buffer's model transform.
func (s *BufferStore) SetTransform(id BufferID, m Mat4) bool {
	buf, ok := s.table.get(id)
	if !ok {
		return false
	}
	buf.transform = m
	return true
}

// SetVisible shows or hides the buffer. A hidden buffer keeps its slot
// in the paint order but issues no draw call.
func (s *BufferStore) SetVisible(id BufferID, visible bool) bool {
	buf, ok := s.table.get(id)
	if !ok {
		return false
	}
	buf.visible = visible
	return true
}

// SetTexture binds a texture handle to the buffer. Pass InvalidTexture
// to unbind; the buffer then renders with the fallback image. Returns
// false if the buffer is unknown or tex is a non-zero unknown handle.
func (s *BufferStore) SetTexture(id BufferID, tex TextureID) bool {
	buf, ok := s.table.get(id)
	if !ok {
		return false
	}
	if tex != InvalidTexture && !s.textures.Live(tex) {
		return false
	}
	buf.texture = tex
	return true
}

// Live reports whether id is a currently live handle.
func (s *BufferStore) Live(id BufferID) bool {
	_, ok := s.table.get(id)
	return ok
}

// Count returns the number of live buffers.
func (s *BufferStore) Count() int {
	return s.table.count()
}

// close releases every native geometry object, live and pooled.
func (s *BufferStore) close() {
	s.order.ids = nil
	s.table.drain(func(b *drawBuffer) {
		b.geo.Release()
	})
}
