// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// texture implements blit.Image: an RGBA8 hal.Texture plus its view.
// Upload with a new size recreates the native texture; same-size uploads
// are a WriteTexture only. The object survives handle recycling.
type texture struct {
	d *Driver

	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int
}

// newTexture creates a texture holding the given pixels.
func newTexture(d *Driver, width, height int, pix []byte) (*texture, error) {
	t := &texture{d: d}
	if err := t.upload(width, height, pix); err != nil {
		return nil, err
	}
	return t, nil
}

// Upload implements blit.Image. A driver failure mid-upload keeps the
// previous pixels and logs; the frame executor then keeps rendering the
// old content, which beats blanking the buffer.
func (t *texture) Upload(width, height int, pix []byte) {
	if err := t.upload(width, height, pix); err != nil {
		logger().Warn("wgpu: texture upload failed",
			"width", width, "height", height, "error", err)
	}
}

func (t *texture) upload(width, height int, pix []byte) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("pixel data is %d bytes, want %d", len(pix), width*height*4)
	}

	if t.tex == nil || width != t.width || height != t.height {
		tex, err := t.d.device.CreateTexture(&hal.TextureDescriptor{
			Label: "blit_image",
			Size: hal.Extent3D{
				Width:              uint32(width),  //nolint:gosec // G115: image dimensions fit uint32
				Height:             uint32(height), //nolint:gosec // G115: image dimensions fit uint32
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create texture %dx%d: %w", width, height, err)
		}
		view, err := t.d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
			Label: "blit_image_view",
		})
		if err != nil {
			t.d.device.DestroyTexture(tex)
			return fmt.Errorf("create texture view: %w", err)
		}

		t.release()
		t.tex = tex
		t.view = view
		t.width = width
		t.height = height
	}

	t.d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
			Aspect:   gputypes.TextureAspectAll,
		},
		pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width * 4), //nolint:gosec // G115: image dimensions fit uint32
			RowsPerImage: uint32(height),    //nolint:gosec // G115: image dimensions fit uint32
		},
		&hal.Extent3D{
			Width:              uint32(width),  //nolint:gosec // G115: image dimensions fit uint32
			Height:             uint32(height), //nolint:gosec // G115: image dimensions fit uint32
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// Size implements blit.Image.
func (t *texture) Size() (width, height int) {
	return t.width, t.height
}

// Release implements blit.Image.
func (t *texture) Release() {
	t.release()
	t.width, t.height = 0, 0
}

func (t *texture) release() {
	if t.view != nil {
		t.d.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.d.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}
