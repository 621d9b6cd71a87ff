// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "testing"

func newTestStores(t *testing.T) (*mockDriver, *BufferStore, *TextureStore) {
	t.Helper()
	d := &mockDriver{}
	textures, err := NewTextureStore(d)
	if err != nil {
		t.Fatalf("NewTextureStore() error = %v", err)
	}
	return d, NewBufferStore(d, textures), textures
}

func TestBufferStoreCreateDelete(t *testing.T) {
	_, buffers, _ := newTestStores(t)

	a := buffers.Create(Solid)
	b := buffers.Create(Lines)
	if a == InvalidBuffer || b == InvalidBuffer {
		t.Fatalf("Create() = %d, %d, want valid handles", a, b)
	}
	if a == b {
		t.Fatalf("Create() returned duplicate handle %d", a)
	}
	if got, want := buffers.Count(), 2; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}

	if !buffers.Delete(a) {
		t.Errorf("Delete(%d) = false, want true", a)
	}
	if buffers.Delete(a) {
		t.Errorf("Delete(%d) second call = true, want false", a)
	}
	if got, want := buffers.Count(), 1; got != want {
		t.Errorf("Count() after delete = %d, want %d", got, want)
	}
}

func TestBufferStoreCreateDriverFailure(t *testing.T) {
	d, buffers, _ := newTestStores(t)
	d.failCreateGeometry = true

	if id := buffers.Create(Solid); id != InvalidBuffer {
		t.Errorf("Create() with failing driver = %d, want InvalidBuffer", id)
	}
	if got := buffers.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestBufferStoreRecycleResetsState(t *testing.T) {
	d, buffers, _ := newTestStores(t)

	a := buffers.Create(Solid)
	buffers.SetContent(a, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, make([]byte, 12), []uint16{0, 1, 2})
	buffers.SetVisible(a, false)
	m := Identity()
	m.TranslateBefore(Vec3{X: 5})
	buffers.SetTransform(a, m)
	buffers.Delete(a)

	b := buffers.Create(Lines)
	if b == a {
		t.Fatalf("Create() reissued handle %d", a)
	}
	if got := d.geometriesCreated; got != 1 {
		t.Errorf("driver geometry allocations = %d, want 1 (recycled)", got)
	}

	buf, ok := buffers.table.get(b)
	if !ok {
		t.Fatalf("recycled buffer %d not live", b)
	}
	if buf.indexCount != 0 {
		t.Errorf("recycled indexCount = %d, want 0", buf.indexCount)
	}
	if buf.transform != Identity() {
		t.Errorf("recycled transform = %v, want identity", buf.transform)
	}
	if !buf.visible {
		t.Error("recycled buffer not visible")
	}
	if buf.texture != InvalidTexture {
		t.Errorf("recycled texture ref = %d, want InvalidTexture", buf.texture)
	}
	if buf.kind != Lines {
		t.Errorf("recycled kind = %v, want Lines", buf.kind)
	}
}

func TestBufferStoreMutatorsOnUnknownHandle(t *testing.T) {
	_, buffers, _ := newTestStores(t)

	const unknown BufferID = 42
	if buffers.SetContent(unknown, nil, nil, nil) {
		t.Error("SetContent(unknown) = true, want false")
	}
	if buffers.SetTransform(unknown, Identity()) {
		t.Error("SetTransform(unknown) = true, want false")
	}
	if buffers.SetVisible(unknown, false) {
		t.Error("SetVisible(unknown) = true, want false")
	}
	if buffers.SetTexture(unknown, InvalidTexture) {
		t.Error("SetTexture(unknown) = true, want false")
	}
}

func TestBufferStoreSetContent(t *testing.T) {
	_, buffers, _ := newTestStores(t)

	id := buffers.Create(Solid)
	vertices := []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	secondary := make([]byte, 16)
	indices := []uint16{0, 1, 2, 0, 2, 3}
	if !buffers.SetContent(id, vertices, secondary, indices) {
		t.Fatal("SetContent() = false, want true")
	}

	buf, _ := buffers.table.get(id)
	if got, want := buf.indexCount, 6; got != want {
		t.Errorf("indexCount = %d, want %d", got, want)
	}
	geo := buf.geo.(*mockGeometry)
	if geo.uploads != 1 {
		t.Errorf("uploads = %d, want 1", geo.uploads)
	}
	if len(geo.vertices) != len(vertices) || len(geo.indices) != len(indices) {
		t.Errorf("uploaded %d vertices, %d indices, want %d, %d",
			len(geo.vertices), len(geo.indices), len(vertices), len(indices))
	}
}

func TestBufferStoreSetTexture(t *testing.T) {
	_, buffers, textures := newTestStores(t)

	id := buffers.Create(Textured)
	tex := textures.Create()

	if !buffers.SetTexture(id, tex) {
		t.Error("SetTexture(live, live) = false, want true")
	}
	if buffers.SetTexture(id, tex+100) {
		t.Error("SetTexture(live, unknown) = true, want false")
	}
	if !buffers.SetTexture(id, InvalidTexture) {
		t.Error("SetTexture(live, InvalidTexture) = false, want true (unbind)")
	}

	textures.Delete(tex)
	if buffers.SetTexture(id, tex) {
		t.Error("SetTexture(live, deleted) = true, want false")
	}
}

func TestDrawOrderFollowsCreationOrder(t *testing.T) {
	_, buffers, _ := newTestStores(t)

	a := buffers.Create(Solid)
	b := buffers.Create(Solid)
	c := buffers.Create(Solid)

	buffers.Delete(b)
	d := buffers.Create(Solid)

	want := []BufferID{a, c, d}
	got := buffers.order.ids
	if len(got) != len(want) {
		t.Fatalf("draw order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", got, want)
		}
	}
}

func TestBufferStoreCloseReleasesAll(t *testing.T) {
	_, buffers, _ := newTestStores(t)

	a := buffers.Create(Solid)
	buffers.Create(Solid)
	bufA, _ := buffers.table.get(a)
	buffers.Delete(a) // pooled

	buffers.close()
	if !bufA.geo.(*mockGeometry).released {
		t.Error("pooled geometry not released on close")
	}
	if buffers.Count() != 0 {
		t.Errorf("Count() after close = %d, want 0", buffers.Count())
	}
}
