// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// geometry implements blit.Geometry: one hal.Buffer per vertex stream
// (positions, secondary attribute, indices). Buffers are allocated on
// first upload and grown geometrically, so steady-state content updates
// are a WriteBuffer with no reallocation. The object survives handle
// recycling; only Release frees it.
type geometry struct {
	d *Driver

	positions    hal.Buffer
	positionsCap uint64
	secondary    hal.Buffer
	secondaryCap uint64
	indices      hal.Buffer
	indicesCap   uint64
}

// Upload implements blit.Geometry.
func (g *geometry) Upload(vertices []float32, secondary []byte, indices []uint16) {
	posData := make([]byte, len(vertices)*4)
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(posData[i*4:], math.Float32bits(v))
	}
	idxData := make([]byte, len(indices)*2)
	for i, v := range indices {
		binary.LittleEndian.PutUint16(idxData[i*2:], v)
	}

	if err := g.write(&g.positions, &g.positionsCap, posData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, "blit_positions"); err != nil {
		logger().Warn("wgpu: upload positions failed", "error", err)
		return
	}
	if err := g.write(&g.secondary, &g.secondaryCap, secondary,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, "blit_secondary"); err != nil {
		logger().Warn("wgpu: upload secondary failed", "error", err)
		return
	}
	if err := g.write(&g.indices, &g.indicesCap, idxData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst, "blit_indices"); err != nil {
		logger().Warn("wgpu: upload indices failed", "error", err)
	}
}

// write ensures *buf has capacity for data and writes it. Growth doubles
// the old capacity so repeated content updates settle quickly.
func (g *geometry) write(buf *hal.Buffer, capacity *uint64, data []byte, usage gputypes.BufferUsage, label string) error {
	need := uint64(len(data))
	if need == 0 {
		return nil
	}
	if *buf == nil || *capacity < need {
		if *buf != nil {
			g.d.device.DestroyBuffer(*buf)
			*buf = nil
		}
		newCap := *capacity * 2
		if newCap < need {
			newCap = need
		}
		b, err := g.d.device.CreateBuffer(&hal.BufferDescriptor{
			Label: label,
			Size:  newCap,
			Usage: usage,
		})
		if err != nil {
			*capacity = 0
			return fmt.Errorf("create %s buffer (%d bytes): %w", label, newCap, err)
		}
		*buf = b
		*capacity = newCap
	}
	g.d.queue.WriteBuffer(*buf, 0, data)
	return nil
}

// ready reports whether the geometry has all three streams uploaded.
func (g *geometry) ready() bool {
	return g.positions != nil && g.secondary != nil && g.indices != nil
}

// Release implements blit.Geometry.
func (g *geometry) Release() {
	if g.positions != nil {
		g.d.device.DestroyBuffer(g.positions)
		g.positions = nil
	}
	if g.secondary != nil {
		g.d.device.DestroyBuffer(g.secondary)
		g.secondary = nil
	}
	if g.indices != nil {
		g.d.device.DestroyBuffer(g.indices)
		g.indices = nil
	}
	g.positionsCap, g.secondaryCap, g.indicesCap = 0, 0, 0
}
