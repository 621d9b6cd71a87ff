// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "sync"

// fallbackPixel is the 1x1 placeholder content: opaque magenta, chosen to
// be visually obvious when a buffer renders before its image arrives.
var fallbackPixel = []byte{0xFF, 0x00, 0xFF, 0xFF}

// texture is the CPU-side record behind one texture handle.
type texture struct {
	img Image
}

// completion is one finished asynchronous load, queued by the loader
// goroutine and applied on the next tick.
type completion struct {
	id     TextureID
	name   string
	width  int
	height int
	pix    []byte
	err    error
}

// TextureStore owns the textures and the fallback image. Every texture
// starts as a 1x1 magenta placeholder, so a buffer referencing it before
// a load completes renders deterministically rather than undefined.
//
// Loads started by SetFromSource run on their own goroutines; their
// results queue up and are applied in completion order by Apply, which
// the Display calls at the start of every Advance and Draw. All other
// methods must be called from the single goroutine driving the Display.
type TextureStore struct {
	driver   Driver
	table    table[TextureID, texture]
	fallback Image

	mu   sync.Mutex
	done []completion
}

// NewTextureStore creates the store and its fallback image. An error here
// means the driver cannot allocate textures at all and is fatal to setup.
func NewTextureStore(driver Driver) (*TextureStore, error) {
	fallback, err := driver.CreateImage(1, 1, fallbackPixel)
	if err != nil {
		return nil, err
	}
	return &TextureStore{
		driver:   driver,
		table:    newTable[TextureID, texture](),
		fallback: fallback,
	}, nil
}

// Create allocates a texture holding the 1x1 placeholder. A recycled
// native object is re-uploaded with the placeholder so a fresh handle
// never shows a previous texture's pixels. Returns InvalidTexture if the
// driver cannot allocate an image object.
func (s *TextureStore) Create() TextureID {
	fresh := func() (*texture, error) {
		img, err := s.driver.CreateImage(1, 1, fallbackPixel)
		if err != nil {
			return nil, err
		}
		return &texture{img: img}, nil
	}
	reset := func(t *texture) error {
		t.img.Upload(1, 1, fallbackPixel)
		return nil
	}

	id, _, err := s.table.create(fresh, reset)
	if err != nil {
		Logger().Warn("blit: create texture failed", "error", err)
		return InvalidTexture
	}
	return id
}

// Delete removes id, returning its native object to the recycle pool.
// Returns false if id is unknown. A load still in flight for id is left
// to finish; its result is discarded when it completes.
func (s *TextureStore) Delete(id TextureID) bool {
	_, ok := s.table.remove(id)
	return ok
}

// SetFromSource begins an asynchronous load of src into id. Returns false
// if id is unknown; the load itself reports nothing to the caller.
//
// On completion the texture's pixels and dimensions swap atomically at
// the next tick. A handle deleted before then discards the result. When
// two loads race for the same handle, the last to complete wins
// (completion order, not start order). A failed load is logged and the
// texture keeps its previous pixels.
func (s *TextureStore) SetFromSource(id TextureID, src Source) bool {
	if _, ok := s.table.get(id); !ok {
		return false
	}
	go func() {
		img, err := src.Fetch()
		c := completion{id: id, name: src.Name(), err: err}
		if err == nil {
			b := img.Bounds()
			c.width = b.Dx()
			c.height = b.Dy()
			c.pix = img.Pix
		}
		s.mu.Lock()
		s.done = append(s.done, c)
		s.mu.Unlock()
	}()
	return true
}

// Apply drains the completed-load queue, uploading each result to its
// texture. Results for deleted handles are dropped; handles are never
// reissued, so a result can never land on the wrong texture.
func (s *TextureStore) Apply() {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()

	for _, c := range done {
		if c.err != nil {
			Logger().Warn("blit: texture load failed", "source", c.name, "error", c.err)
			continue
		}
		t, ok := s.table.get(c.id)
		if !ok {
			continue
		}
		t.img.Upload(c.width, c.height, c.pix)
	}
}

// resolve returns the image to bind for id: the texture's image when id
// is live, the fallback otherwise. Never returns nil.
func (s *TextureStore) resolve(id TextureID) Image {
	if t, ok := s.table.get(id); ok {
		return t.img
	}
	return s.fallback
}

// Size returns the current pixel dimensions of id's image, or the
// fallback's 1x1 if id is unknown.
func (s *TextureStore) Size(id TextureID) (width, height int) {
	return s.resolve(id).Size()
}

// Live reports whether id is a currently live handle.
func (s *TextureStore) Live(id TextureID) bool {
	_, ok := s.table.get(id)
	return ok
}

// Count returns the number of live textures.
func (s *TextureStore) Count() int {
	return s.table.count()
}

// close releases every native image, live and pooled, plus the fallback.
func (s *TextureStore) close() {
	s.table.drain(func(t *texture) {
		t.img.Release()
	})
	s.fallback.Release()
}
