// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

// ViewportController applies canvas size changes: it resizes the driver's
// render targets, notifies the host's resize handler, then forces one
// immediate draw pass so the new size is visible without a one-frame
// flash of stale content.
type ViewportController struct {
	driver   Driver
	executor *FrameExecutor
	onResize func(width, height int)

	width  int
	height int
}

// NewViewportController creates a controller. onResize may be nil.
func NewViewportController(driver Driver, executor *FrameExecutor, onResize func(width, height int)) *ViewportController {
	return &ViewportController{
		driver:   driver,
		executor: executor,
		onResize: onResize,
	}
}

// Resize applies a new canvas size in pixels. The projection matrix is
// host-supplied, not derived here; hosts typically recompute it in the
// resize callback before the forced draw runs.
func (v *ViewportController) Resize(width, height int) {
	v.width, v.height = width, height
	v.driver.Resize(width, height)
	if v.onResize != nil {
		v.onResize(width, height)
	}
	if err := v.executor.Draw(); err != nil {
		Logger().Warn("blit: resize draw failed", "width", width, "height", height, "error", err)
	}
}

// Size returns the last applied canvas size.
func (v *ViewportController) Size() (width, height int) {
	return v.width, v.height
}
