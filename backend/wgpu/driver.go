// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blit"
)

var (
	// ErrNilDevice is returned by New when Config.Device or Config.Queue
	// is nil.
	ErrNilDevice = errors.New("wgpu: Config.Device and Config.Queue are required")

	// ErrNilProvider is returned by FromProvider when provider is nil.
	ErrNilProvider = errors.New("wgpu: provider is nil")
)

// Config configures a Driver. Device and Queue are required; the driver
// shares them with the host and never destroys them.
type Config struct {
	// Device is the hal device all GPU objects are created on.
	Device hal.Device

	// Queue is the submission queue.
	Queue hal.Queue

	// Format is the color target format. Zero means BGRA8Unorm, the
	// common surface format.
	Format gputypes.TextureFormat

	// AcquireView returns the color target view for the next frame,
	// typically the surface's current swapchain view. When nil the
	// driver renders into an internal offscreen texture sized to the
	// viewport, which suits headless use.
	AcquireView func() (hal.TextureView, error)

	// Width, Height set the initial viewport size in pixels. Zero values
	// default to 1.
	Width  int
	Height int
}

// Driver implements blit.Driver on the wgpu hardware abstraction layer.
// Create one with New or FromProvider and hand it to blit.New.
//
// Not safe for concurrent use; all calls must come from the goroutine
// driving the blit.Display.
type Driver struct {
	device  hal.Device
	queue   hal.Queue
	format  gputypes.TextureFormat
	acquire func() (hal.TextureView, error)

	pipelines *pipelineSet

	width  uint32
	height uint32

	// targetWidth/targetHeight are the size the current render targets
	// were created for; a mismatch with width/height triggers recreation.
	targetWidth  uint32
	targetHeight uint32

	depthTex  hal.Texture
	depthView hal.TextureView

	// Offscreen color target, used only when acquire is nil.
	colorTex  hal.Texture
	colorView hal.TextureView
}

var _ blit.Driver = (*Driver)(nil)

// New creates a driver over an existing device and queue. Shader
// compilation and pipeline creation happen here; an error is fatal to
// setup, there is no fallback path without a working pipeline.
func New(cfg *Config) (*Driver, error) {
	if cfg == nil || cfg.Device == nil || cfg.Queue == nil {
		return nil, ErrNilDevice
	}

	format := cfg.Format
	if format == 0 {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	pipelines, err := newPipelineSet(cfg.Device, format)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		device:    cfg.Device,
		queue:     cfg.Queue,
		format:    format,
		acquire:   cfg.AcquireView,
		pipelines: pipelines,
		width:     uint32(width),  //nolint:gosec // G115: viewport dimensions fit uint32
		height:    uint32(height), //nolint:gosec // G115: viewport dimensions fit uint32
	}
	logger().Info("wgpu: driver ready", "format", format, "width", width, "height", height)
	return d, nil
}

// FromProvider creates a driver from a gpucontext.DeviceProvider, the
// handle gogpu hosts expose for device sharing. The provider must also
// implement HalDevice() any and HalQueue() any returning the underlying
// hal.Device and hal.Queue. The surface format is taken from the
// provider; acquireView may be nil for offscreen rendering.
func FromProvider(provider gpucontext.DeviceProvider, acquireView func() (hal.TextureView, error), width, height int) (*Driver, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider %T does not expose HAL types", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	return New(&Config{
		Device:      device,
		Queue:       queue,
		Format:      provider.SurfaceFormat(),
		AcquireView: acquireView,
		Width:       width,
		Height:      height,
	})
}

// CreateGeometry implements blit.Driver. The native buffers are allocated
// lazily on first upload.
func (d *Driver) CreateGeometry() (blit.Geometry, error) {
	return &geometry{d: d}, nil
}

// CreateImage implements blit.Driver.
func (d *Driver) CreateImage(width, height int, pix []byte) (blit.Image, error) {
	return newTexture(d, width, height, pix)
}

// Resize implements blit.Driver. Size-dependent targets are recreated
// lazily by the next BeginFrame.
func (d *Driver) Resize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	d.width = uint32(width)   //nolint:gosec // G115: viewport dimensions fit uint32
	d.height = uint32(height) //nolint:gosec // G115: viewport dimensions fit uint32
}

// BeginFrame implements blit.Driver.
func (d *Driver) BeginFrame(clear blit.RGBA) (blit.Frame, error) {
	if err := d.ensureTargets(); err != nil {
		return nil, err
	}

	colorView := d.colorView
	if d.acquire != nil {
		view, err := d.acquire()
		if err != nil {
			return nil, fmt.Errorf("wgpu: acquire frame view: %w", err)
		}
		colorView = view
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit_frame"); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blit_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    colorView,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(clear.R) / 255,
				G: float64(clear.G) / 255,
				B: float64(clear.B) / 255,
				A: float64(clear.A) / 255,
			},
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              d.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		},
	})

	return &frame{d: d, encoder: encoder, pass: pass}, nil
}

// ensureTargets (re)creates the depth target, and the offscreen color
// target when no AcquireView is configured, whenever the viewport size
// changed.
func (d *Driver) ensureTargets() error {
	current := d.depthTex != nil && d.targetWidth == d.width && d.targetHeight == d.height
	if current {
		return nil
	}
	d.destroyTargets()

	size := hal.Extent3D{Width: d.width, Height: d.height, DepthOrArrayLayers: 1}

	depthTex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create depth texture: %w", err)
	}
	d.depthTex = depthTex

	depthView, err := d.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "blit_depth_view",
	})
	if err != nil {
		d.destroyTargets()
		return fmt.Errorf("wgpu: create depth view: %w", err)
	}
	d.depthView = depthView

	if d.acquire == nil {
		colorTex, err := d.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "blit_color",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        d.format,
			Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			d.destroyTargets()
			return fmt.Errorf("wgpu: create color texture: %w", err)
		}
		d.colorTex = colorTex

		colorView, err := d.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
			Label: "blit_color_view",
		})
		if err != nil {
			d.destroyTargets()
			return fmt.Errorf("wgpu: create color view: %w", err)
		}
		d.colorView = colorView
	}

	d.targetWidth = d.width
	d.targetHeight = d.height
	return nil
}

func (d *Driver) destroyTargets() {
	if d.colorView != nil {
		d.device.DestroyTextureView(d.colorView)
		d.colorView = nil
	}
	if d.colorTex != nil {
		d.device.DestroyTexture(d.colorTex)
		d.colorTex = nil
	}
	if d.depthView != nil {
		d.device.DestroyTextureView(d.depthView)
		d.depthView = nil
	}
	if d.depthTex != nil {
		d.device.DestroyTexture(d.depthTex)
		d.depthTex = nil
	}
	d.targetWidth, d.targetHeight = 0, 0
}

// Close releases the pipelines and render targets. The shared device and
// queue are left untouched; the host owns them.
func (d *Driver) Close() {
	d.destroyTargets()
	if d.pipelines != nil {
		d.pipelines.destroy(d.device)
		d.pipelines = nil
	}
}
