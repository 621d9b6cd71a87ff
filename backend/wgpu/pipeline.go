// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blit"
)

//go:embed shaders/blit.wgsl
var blitShaderWGSL string

const (
	// positionStride is the byte stride of the position vertex buffer
	// (vec3<f32>).
	positionStride = 12

	// secondaryStride is the byte stride of the secondary vertex buffer:
	// RGBA8 for solid/lines, 2x uint16 texel coordinates for textured.
	secondaryStride = 4

	// uniformSize is the byte size of the per-draw uniform block
	// (one mat4x4<f32>).
	uniformSize = 64

	// depthFormat is the depth/stencil attachment format. The stencil
	// aspect is unused but the combined format is the one universally
	// supported across hal backends.
	depthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// pipelineSet holds the shader module, layouts, and the three render
// pipelines, one per primitive kind. Built once at driver creation; a
// failure here is fatal since nothing can render without a pipeline.
type pipelineSet struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	solid      hal.RenderPipeline
	lines      hal.RenderPipeline
	textured   hal.RenderPipeline
}

// forKind returns the pipeline for the given primitive kind.
func (p *pipelineSet) forKind(kind blit.PrimitiveKind) hal.RenderPipeline {
	switch kind {
	case blit.Lines:
		return p.lines
	case blit.Textured:
		return p.textured
	default:
		return p.solid
	}
}

func newPipelineSet(device hal.Device, format gputypes.TextureFormat) (*pipelineSet, error) {
	spirvBytes, err := naga.Compile(blitShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile blit shader: %w", err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p := &pipelineSet{}
	p.shader, err = device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "blit_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create blit shader module: %w", err)
	}

	// Bind group layout, shared by all three pipelines:
	//   Binding 0: per-draw uniforms (transform), vertex
	//   Binding 1: texture (fragment; the color pipelines leave it unread)
	p.bindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "blit_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("wgpu: create blit bind group layout: %w", err)
	}

	p.pipeLayout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "blit_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("wgpu: create blit pipeline layout: %w", err)
	}

	p.solid, err = p.createPipeline(device, "blit_solid_pipeline", format,
		"vs_color", "fs_color", gputypes.VertexFormatUnorm8x4,
		gputypes.PrimitiveTopologyTriangleList)
	if err != nil {
		p.destroy(device)
		return nil, err
	}
	p.lines, err = p.createPipeline(device, "blit_lines_pipeline", format,
		"vs_color", "fs_color", gputypes.VertexFormatUnorm8x4,
		gputypes.PrimitiveTopologyLineList)
	if err != nil {
		p.destroy(device)
		return nil, err
	}
	p.textured, err = p.createPipeline(device, "blit_textured_pipeline", format,
		"vs_tex", "fs_tex", gputypes.VertexFormatUint16x2,
		gputypes.PrimitiveTopologyTriangleList)
	if err != nil {
		p.destroy(device)
		return nil, err
	}
	return p, nil
}

func (p *pipelineSet) createPipeline(
	device hal.Device,
	label string,
	format gputypes.TextureFormat,
	vsEntry, fsEntry string,
	secondaryFormat gputypes.VertexFormat,
	topology gputypes.PrimitiveTopology,
) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vsEntry,
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: positionStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					},
				},
				{
					ArrayStride: secondaryStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: secondaryFormat, Offset: 0, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fsEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLessEqual,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: topology,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %s: %w", label, err)
	}
	return pipeline, nil
}

// destroy releases everything the set holds. Safe on a partially built set.
func (p *pipelineSet) destroy(device hal.Device) {
	if p.textured != nil {
		device.DestroyRenderPipeline(p.textured)
		p.textured = nil
	}
	if p.lines != nil {
		device.DestroyRenderPipeline(p.lines)
		p.lines = nil
	}
	if p.solid != nil {
		device.DestroyRenderPipeline(p.solid)
		p.solid = nil
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
