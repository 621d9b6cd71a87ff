// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

// BufferID identifies a draw buffer. Zero is never a valid handle.
type BufferID int32

// TextureID identifies a texture. Zero is never a valid handle; a buffer
// whose texture is zero renders with the fallback image.
type TextureID int32

// InvalidBuffer is the reserved "no buffer" handle.
const InvalidBuffer BufferID = 0

// InvalidTexture is the reserved "no texture" handle.
const InvalidTexture TextureID = 0

// table manages handle allocation and native-object recycling for one
// resource kind. Handles are allocated from a monotonic counter starting at
// 1 and are never reissued; the native object behind a deleted handle goes
// to a free pool and is reused by a later create under a new handle.
//
// The free pool keeps native GPU objects alive across delete/create churn
// so the underlying API allocates each object at most a handful of times
// per process.
type table[H ~int32, T any] struct {
	next H
	live map[H]*T
	pool []*T
}

func newTable[H ~int32, T any]() table[H, T] {
	return table[H, T]{
		next: 1,
		live: make(map[H]*T),
	}
}

// create allocates the next handle. A recycled native object is popped
// from the pool and passed through reset; otherwise fresh constructs one.
// reset may be nil when recycled objects need no scrubbing.
func (t *table[H, T]) create(fresh func() (*T, error), reset func(*T) error) (H, *T, error) {
	var res *T
	if n := len(t.pool); n > 0 {
		res = t.pool[n-1]
		t.pool[n-1] = nil
		t.pool = t.pool[:n-1]
		if reset != nil {
			if err := reset(res); err != nil {
				return 0, nil, err
			}
		}
	} else {
		var err error
		res, err = fresh()
		if err != nil {
			return 0, nil, err
		}
	}

	h := t.next
	t.next++
	t.live[h] = res
	return h, res, nil
}

// remove unregisters h and pushes its native object into the recycle pool.
// Returns false if h is unknown (already deleted or never issued); this is
// an expected caller race, not an error.
func (t *table[H, T]) remove(h H) (*T, bool) {
	res, ok := t.live[h]
	if !ok {
		return nil, false
	}
	delete(t.live, h)
	t.pool = append(t.pool, res)
	return res, true
}

// get looks up a live handle.
func (t *table[H, T]) get(h H) (*T, bool) {
	res, ok := t.live[h]
	return res, ok
}

// count returns the number of live handles.
func (t *table[H, T]) count() int {
	return len(t.live)
}

// drain releases every live and pooled object through free. Used only on
// store close.
func (t *table[H, T]) drain(free func(*T)) {
	for h, res := range t.live {
		free(res)
		delete(t.live, h)
	}
	for i, res := range t.pool {
		free(res)
		t.pool[i] = nil
	}
	t.pool = t.pool[:0]
}
