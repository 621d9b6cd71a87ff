// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "testing"

func TestCameraProjectionCentersWorld(t *testing.T) {
	c := NewCamera()
	c.Resize(100, 100)
	c.Center = Vec3{X: 10, Y: 20}

	m := c.Projection()
	if got := m.Apply(Vec3{X: 10, Y: 20}); !vecNear(got, Vec3{}) {
		t.Errorf("camera center maps to %v, want origin", got)
	}
	// Half a screen to the right of center lands on the clip edge.
	if got := m.Apply(Vec3{X: 60, Y: 20}); !vecNear(got, Vec3{X: 1}) {
		t.Errorf("right edge maps to %v, want (1, 0, 0)", got)
	}
}

func TestCameraProjectionOddDimensionOffset(t *testing.T) {
	c := NewCamera()
	c.Resize(101, 99)

	// With odd dimensions the half-pixel correction puts (0.5, 0.5) at
	// the exact middle of the screen.
	got := c.Projection().Apply(Vec3{X: 0.5, Y: 0.5})
	if !vecNear(got, Vec3{}) {
		t.Errorf("(0.5, 0.5) maps to %v, want origin", got)
	}
}

func TestCameraToGameSpace(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)
	c.Center = Vec3{X: 100, Y: 50}

	// Screen origin is the top-left corner with y growing downward.
	if got, want := c.ToGameSpace(Vec3{}), (Vec3{X: -300, Y: 350}); !vecNear(got, want) {
		t.Errorf("ToGameSpace(0, 0) = %v, want %v", got, want)
	}
	if got, want := c.ToGameSpace(Vec3{X: 400, Y: 300}), (Vec3{X: 100, Y: 50}); !vecNear(got, want) {
		t.Errorf("ToGameSpace(middle) = %v, want %v", got, want)
	}
}

func TestCameraTrackPositionInsideRegion(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)

	if c.TrackPosition(100, 100) {
		t.Error("TrackPosition inside the central region moved the camera")
	}
	if !vecNear(c.Center, Vec3{}) {
		t.Errorf("Center = %v, want origin", c.Center)
	}
}

func TestCameraTrackPositionPansMinimally(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)

	// maxX is a quarter of the width: 200 pixels.
	if !c.TrackPosition(300, 0) {
		t.Fatal("TrackPosition outside the central region reported no change")
	}
	if !vecNear(c.Center, Vec3{X: 100}) {
		t.Errorf("Center = %v, want (100, 0, 0)", c.Center)
	}
}

func TestCameraTrackPositionFloorsCenter(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)
	c.Center = Vec3{X: 100}

	if !c.TrackPosition(-250.5, 200) {
		t.Fatal("TrackPosition reported no change")
	}
	if !vecNear(c.Center, Vec3{X: -51, Y: 50}) {
		t.Errorf("Center = %v, want (-51, 50, 0)", c.Center)
	}
}
