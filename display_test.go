// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"testing"
	"time"
)

func TestNewDisplayFatalWithoutFallback(t *testing.T) {
	d := &mockDriver{failCreateImage: true}
	if _, err := New(d, nil); err == nil {
		t.Fatal("New() with failing driver, want error")
	}
}

func TestDisplayAdvanceAppliesLoadsAndTicks(t *testing.T) {
	d := &mockDriver{}
	var elapsed time.Duration
	display, err := New(d, &Options{
		OnAdvance: func(e time.Duration) { elapsed = e },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tex := display.CreateTexture()
	display.SetTextureFromSource(tex, &stubSource{name: "atlas", img: solidImage(64, 32, 1, 1, 1, 255)})
	waitForCompletions(t, display.Textures(), 1)

	display.Advance(33 * time.Millisecond)

	if elapsed != 33*time.Millisecond {
		t.Errorf("OnAdvance elapsed = %v, want 33ms", elapsed)
	}
	if w, h := display.Textures().Size(tex); w != 64 || h != 32 {
		t.Errorf("texture size after Advance = %dx%d, want 64x32", w, h)
	}
}

func TestDisplayDrawAppliesPendingLoads(t *testing.T) {
	d := &mockDriver{}
	display, err := New(d, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	buf := display.CreateBuffer(Textured)
	display.SetBufferContent(buf, quadContent())
	tex := display.CreateTexture()
	display.SetBufferTexture(buf, tex)
	display.SetTextureFromSource(tex, &stubSource{name: "sprite", img: solidImage(64, 32, 1, 1, 1, 255)})
	waitForCompletions(t, display.Textures(), 1)

	if err := display.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	img := d.lastFrame().draws[0].texture.(*mockImage)
	if img.width != 64 || img.height != 32 {
		t.Errorf("drawn texture = %dx%d, want 64x32", img.width, img.height)
	}
}

func TestDisplayClearColorOption(t *testing.T) {
	d := &mockDriver{}
	display, err := New(d, &Options{ClearColor: RGB(0, 0, 40)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := display.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got, want := d.lastFrame().clear, RGB(0, 0, 40); got != want {
		t.Errorf("clear color = %v, want %v", got, want)
	}
}

func TestDisplayResizeForcesDraw(t *testing.T) {
	d := &mockDriver{}
	recomputed := false
	display, err := New(d, &Options{
		OnResize: func(w, h int) { recomputed = true },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	display.Resize(1024, 768)
	if !recomputed {
		t.Error("OnResize not called")
	}
	if d.framesBegun != 1 {
		t.Errorf("frames after resize = %d, want 1", d.framesBegun)
	}
	if w, h := display.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d, want 1024x768", w, h)
	}
}

func TestDisplayCloseReleasesEverything(t *testing.T) {
	d := &mockDriver{}
	display, err := New(d, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	buf := display.CreateBuffer(Solid)
	tex := display.CreateTexture()
	geo, _ := display.Buffers().table.get(buf)
	img, _ := display.Textures().table.get(tex)
	fallback := display.Textures().fallback.(*mockImage)

	display.Close()

	if !geo.geo.(*mockGeometry).released {
		t.Error("geometry not released on Close")
	}
	if !img.img.(*mockImage).released {
		t.Error("texture image not released on Close")
	}
	if !fallback.released {
		t.Error("fallback image not released on Close")
	}
}
