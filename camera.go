// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "github.com/chewxy/math32"

// trackMargin is the fraction of the screen reserved around the edges;
// a tracked position is kept out of it by panning the camera.
const trackMargin = 0.5

// Camera produces the global projection matrix for a pixel-unit 2D world:
// one world unit maps to one screen pixel, with the camera center in the
// middle of the screen. It also pans to keep a tracked position inside
// the central region of the screen.
//
// The camera does not push its matrix anywhere; hosts call Projection
// after Resize or TrackPosition reports a change and hand the result to
// Display.SetProjection.
type Camera struct {
	// Center is the world position at the middle of the screen.
	Center Vec3

	width  int
	height int
}

// NewCamera creates a camera for a 1x1 screen centered on the origin.
func NewCamera() *Camera {
	return &Camera{width: 1, height: 1}
}

// Resize records a new screen size in pixels.
func (c *Camera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Size returns the current screen size.
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// Projection returns the projection matrix for the current size and
// center. Odd dimensions get a half-pixel correction so geometry on
// integer coordinates stays pixel-aligned.
func (c *Camera) Projection() Mat4 {
	translation := c.Center.Scale(-1)
	if c.width%2 == 1 {
		translation.X -= 0.5
	}
	if c.height%2 == 1 {
		translation.Y -= 0.5
	}

	m := Identity()
	m.ScaleBefore(Vec3{
		X: 2 / float32(c.width),
		Y: 2 / float32(c.height),
		Z: 1,
	}).TranslateBefore(translation)
	return m
}

// ToGameSpace converts a screen position (origin top-left, y down) to a
// world position at the camera's depth.
func (c *Camera) ToGameSpace(screen Vec3) Vec3 {
	return Vec3{
		X: screen.X - float32(c.width/2) + c.Center.X,
		Y: -screen.Y + float32(c.height/2) + c.Center.Y,
		Z: c.Center.Z,
	}
}

// TrackPosition pans the camera the minimum amount needed to keep the
// world position (x, y) out of the screen's margin band. The center is
// floored to whole pixels to keep rendering pixel-aligned. Reports
// whether the center moved, in which case the projection must be
// re-applied.
func (c *Camera) TrackPosition(x, y float32) bool {
	percent := float32((1 - trackMargin) / 2)
	maxX := float32(c.width) * percent
	maxY := float32(c.height) * percent

	changed := false
	if math32.Abs(c.Center.X-x) > maxX {
		if c.Center.X < x {
			c.Center.X = x - maxX
		} else {
			c.Center.X = x + maxX
		}
		c.Center.X = math32.Floor(c.Center.X)
		changed = true
	}
	if math32.Abs(c.Center.Y-y) > maxY {
		if c.Center.Y < y {
			c.Center.Y = y - maxY
		} else {
			c.Center.Y = y + maxY
		}
		c.Center.Y = math32.Floor(c.Center.Y)
		changed = true
	}
	return changed
}
