// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"fmt"
	"image"
	"net/http"
	"os"

	// Register the common decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Source supplies image data for TextureStore.SetFromSource. Fetch runs on
// a loader goroutine and must be safe to call off the display goroutine.
type Source interface {
	// Name identifies the source in log output.
	Name() string

	// Fetch returns the decoded image in RGBA form.
	Fetch() (*image.RGBA, error)
}

// FileSource loads an image from a file path.
type FileSource string

// Name implements Source.
func (s FileSource) Name() string { return string(s) }

// Fetch implements Source.
func (s FileSource) Fetch() (*image.RGBA, error) {
	f, err := os.Open(string(s))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s, err)
	}
	return toRGBA(img), nil
}

// URLSource loads an image over HTTP(S).
type URLSource string

// Name implements Source.
func (s URLSource) Name() string { return string(s) }

// Fetch implements Source.
func (s URLSource) Fetch() (*image.RGBA, error) {
	resp, err := http.Get(string(s))
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", s, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s, err)
	}
	return toRGBA(img), nil
}

// ImageSource wraps an already-decoded image.
type ImageSource struct {
	// Label identifies the source in log output.
	Label string

	Image image.Image
}

// Name implements Source.
func (s ImageSource) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "image"
}

// Fetch implements Source.
func (s ImageSource) Fetch() (*image.RGBA, error) {
	if s.Image == nil {
		return nil, fmt.Errorf("image source %q: nil image", s.Name())
	}
	return toRGBA(s.Image), nil
}

// toRGBA converts any decoded image to a zero-origin RGBA image, the one
// pixel layout the drivers upload.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}
