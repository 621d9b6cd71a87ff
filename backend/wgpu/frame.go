// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blit"
)

// submitTimeout bounds the fence wait after frame submission.
const submitTimeout = 5 * time.Second

// frame implements blit.Frame: one render pass, one indexed draw per
// visible buffer. Each draw gets its own 64-byte uniform buffer and bind
// group, created on the fly and destroyed after the submission fence
// signals in End.
type frame struct {
	d       *Driver
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder

	uniforms   []hal.Buffer
	bindGroups []hal.BindGroup

	// err records the first per-draw resource failure; End reports it
	// after the pass is torn down.
	err error
}

// Draw implements blit.Frame.
func (f *frame) Draw(geo blit.Geometry, kind blit.PrimitiveKind, transform blit.Mat4, img blit.Image, indexCount int) {
	if f.err != nil {
		return
	}
	g, ok := geo.(*geometry)
	if !ok || !g.ready() {
		return
	}
	t, ok := img.(*texture)
	if !ok || t.view == nil {
		return
	}

	uniformBuf, bindGroup, err := f.drawResources(transform, t)
	if err != nil {
		f.err = err
		return
	}
	f.uniforms = append(f.uniforms, uniformBuf)
	f.bindGroups = append(f.bindGroups, bindGroup)

	f.pass.SetPipeline(f.d.pipelines.forKind(kind))
	f.pass.SetBindGroup(0, bindGroup, nil)
	f.pass.SetVertexBuffer(0, g.positions, 0)
	f.pass.SetVertexBuffer(1, g.secondary, 0)
	f.pass.SetIndexBuffer(g.indices, gputypes.IndexFormatUint16, 0)
	f.pass.DrawIndexed(uint32(indexCount), 1, 0, 0, 0) //nolint:gosec // G115: uint16 indices cap the count
}

// drawResources creates the per-draw uniform buffer and bind group.
func (f *frame) drawResources(transform blit.Mat4, t *texture) (hal.Buffer, hal.BindGroup, error) {
	exported := transform.Export()
	data := make([]byte, uniformSize)
	for i, v := range exported {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}

	uniformBuf, err := f.d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_draw_uniform",
		Size:  uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wgpu: create draw uniform: %w", err)
	}
	f.d.queue.WriteBuffer(uniformBuf, 0, data)

	bindGroup, err := f.d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "blit_draw_bind",
		Layout: f.d.pipelines.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: t.view.NativeHandle(),
			}},
		},
	})
	if err != nil {
		f.d.device.DestroyBuffer(uniformBuf)
		return nil, nil, fmt.Errorf("wgpu: create draw bind group: %w", err)
	}
	return uniformBuf, bindGroup, nil
}

// End implements blit.Frame: close the pass, submit, wait, release the
// per-draw resources.
func (f *frame) End() error {
	f.pass.End()

	cmdBuf, err := f.encoder.EndEncoding()
	if err != nil {
		f.releaseDrawResources()
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer f.d.device.FreeCommandBuffer(cmdBuf)

	fence, err := f.d.device.CreateFence()
	if err != nil {
		f.releaseDrawResources()
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer f.d.device.DestroyFence(fence)

	if err := f.d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		f.releaseDrawResources()
		return fmt.Errorf("wgpu: submit frame: %w", err)
	}
	ok, err := f.d.device.Wait(fence, 1, submitTimeout)
	f.releaseDrawResources()
	if err != nil {
		return fmt.Errorf("wgpu: wait for frame: %w", err)
	}
	if !ok {
		return fmt.Errorf("wgpu: frame fence timed out after %v", submitTimeout)
	}
	return f.err
}

func (f *frame) releaseDrawResources() {
	for _, bg := range f.bindGroups {
		f.d.device.DestroyBindGroup(bg)
	}
	f.bindGroups = nil
	for _, buf := range f.uniforms {
		f.d.device.DestroyBuffer(buf)
	}
	f.uniforms = nil
}
