// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blit is a thin retained-mode draw-buffer layer for 2D
// sprite/line/solid rendering over WebGPU.
//
// # Overview
//
// blit sits between game or simulation logic and the GPU. The logic side
// describes geometry, textures, and transforms through opaque integer
// handles; blit owns the native GPU objects behind those handles and
// replays every live, visible buffer once per frame in creation order.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/blit"
//	    "github.com/gogpu/blit/backend/wgpu"
//	)
//
//	drv, err := wgpu.New(&wgpu.Config{Device: device, Queue: queue, AcquireView: acquire})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := blit.New(drv, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := d.CreateBuffer(blit.Solid)
//	mesh := blit.NewMeshBuilder(blit.Solid)
//	mesh.AddCircle(blit.Vec3{}, 40, 32, blit.RGB(255, 0, 0))
//	d.SetBufferContent(buf, mesh.Vertices(), mesh.Secondary(), mesh.Indices())
//
//	// Driven externally: one Advance per update tick, one Draw per refresh.
//	d.Advance(dt)
//	d.Draw()
//
// # Handles
//
// Buffer and texture handles are monotonically increasing integers that are
// never reissued. Deleting a handle returns its native GPU object to a
// per-kind recycling pool; the next create reuses the native object under a
// brand-new handle. Operations on a deleted handle fail softly by returning
// false; the caller may legitimately race a delete against a late texture
// load.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Display, BufferStore, TextureStore, MeshBuilder, Camera
//   - Driver interface: narrow GPU abstraction implemented by backends
//   - Backend: backend/wgpu on github.com/gogpu/wgpu/hal
package blit
