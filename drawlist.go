// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

// drawOrder is the paint-order list of live buffer handles. Insertion
// order is paint order: later entries draw over earlier ones. Deletion
// keeps the relative order of the remaining entries, and new handles
// always append at the end rather than filling a deleted slot.
type drawOrder struct {
	ids []BufferID
}

func (o *drawOrder) append(id BufferID) {
	o.ids = append(o.ids, id)
}

// remove deletes id from the list, preserving the order of the rest.
// No-op if id is not present.
func (o *drawOrder) remove(id BufferID) {
	for i, v := range o.ids {
		if v == id {
			o.ids = append(o.ids[:i], o.ids[i+1:]...)
			return
		}
	}
}

// snapshot copies the current order into dst (reusing its capacity).
// The frame executor iterates the copy so the pass observes a single
// consistent draw list even if a callback mutates the store mid-pass.
func (o *drawOrder) snapshot(dst []BufferID) []BufferID {
	return append(dst[:0], o.ids...)
}
