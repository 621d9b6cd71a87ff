// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"
)

// MeshBuilder accumulates CPU-side geometry in the exact layout
// BufferStore.SetContent takes: three floats per vertex, four secondary
// bytes per vertex, uint16 indices. A builder is created for one
// primitive kind and panics when a method is used with the wrong kind;
// that is a programming error, not a runtime condition.
type MeshBuilder struct {
	kind      PrimitiveKind
	vertices  []float32
	secondary []byte
	indices   []uint16
}

// NewMeshBuilder creates an empty builder for the given kind.
func NewMeshBuilder(kind PrimitiveKind) *MeshBuilder {
	return &MeshBuilder{kind: kind}
}

// Kind returns the primitive kind the builder emits.
func (b *MeshBuilder) Kind() PrimitiveKind { return b.kind }

// Clear drops all accumulated geometry, keeping capacity.
func (b *MeshBuilder) Clear() {
	b.vertices = b.vertices[:0]
	b.secondary = b.secondary[:0]
	b.indices = b.indices[:0]
}

// Vertices returns the accumulated vertex positions.
func (b *MeshBuilder) Vertices() []float32 { return b.vertices }

// Secondary returns the accumulated secondary attribute bytes.
func (b *MeshBuilder) Secondary() []byte { return b.secondary }

// Indices returns the accumulated indices.
func (b *MeshBuilder) Indices() []uint16 { return b.indices }

// VertexCount returns the number of accumulated vertices.
func (b *MeshBuilder) VertexCount() int { return len(b.vertices) / 3 }

// colorVertex stores one position with an RGBA secondary attribute and
// returns its index.
func (b *MeshBuilder) colorVertex(p Vec3, c RGBA) uint16 {
	i := uint16(len(b.vertices) / 3) //nolint:gosec // G115: callers stay under the uint16 index space
	b.vertices = append(b.vertices, p.X, p.Y, p.Z)
	b.secondary = append(b.secondary, c.R, c.G, c.B, c.A)
	return i
}

// texelVertex stores one position with a texel-coordinate secondary
// attribute and returns its index.
func (b *MeshBuilder) texelVertex(p Vec3, tx, ty uint16) uint16 {
	i := uint16(len(b.vertices) / 3) //nolint:gosec // G115: callers stay under the uint16 index space
	b.vertices = append(b.vertices, p.X, p.Y, p.Z)
	b.secondary = binary.LittleEndian.AppendUint16(b.secondary, tx)
	b.secondary = binary.LittleEndian.AppendUint16(b.secondary, ty)
	return i
}

func (b *MeshBuilder) mustKind(op string, kinds ...PrimitiveKind) {
	for _, k := range kinds {
		if b.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("blit: %s on a %s MeshBuilder", op, b.kind))
}

// AddTriangle appends one filled triangle. Solid builders only.
func (b *MeshBuilder) AddTriangle(points [3]Vec3, c RGBA) {
	b.mustKind("AddTriangle", Solid)
	for _, p := range points {
		b.indices = append(b.indices, b.colorVertex(p, c))
	}
}

// AddPolygon appends a polygon: a triangle fan around the first point on
// a Solid builder (convex polygons fill correctly), a closed line loop on
// a Lines builder.
func (b *MeshBuilder) AddPolygon(points []Vec3, c RGBA) {
	b.mustKind("AddPolygon", Solid, Lines)
	if len(points) < 2 {
		return
	}

	start := uint16(len(b.vertices) / 3) //nolint:gosec // G115: callers stay under the uint16 index space
	for _, p := range points {
		b.colorVertex(p, c)
	}

	n := uint16(len(points)) //nolint:gosec // G115: callers stay under the uint16 index space
	switch b.kind {
	case Solid:
		for i := uint16(2); i < n; i++ {
			b.indices = append(b.indices, start, start+i-1, start+i)
		}
	case Lines:
		for i := uint16(0); i < n-1; i++ {
			b.indices = append(b.indices, start+i, start+i+1)
		}
		b.indices = append(b.indices, start+n-1, start)
	}
}

// AddCircle appends a circle on the x-y plane approximated by segments
// points: filled on a Solid builder, outlined on a Lines builder.
func (b *MeshBuilder) AddCircle(center Vec3, radius float32, segments int, c RGBA) {
	b.mustKind("AddCircle", Solid, Lines)
	step := 2 * math32.Pi / float32(segments)
	points := make([]Vec3, segments)
	for i := range points {
		a := float32(i) * step
		points[i] = Vec3{
			X: center.X + math32.Cos(a)*radius,
			Y: center.Y + math32.Sin(a)*radius,
			Z: center.Z,
		}
	}
	b.AddPolygon(points, c)
}

// AddLines appends an open polyline through points. Lines builders only.
func (b *MeshBuilder) AddLines(points []Vec3, c RGBA) {
	b.mustKind("AddLines", Lines)
	if len(points) == 0 {
		return
	}
	prev := b.colorVertex(points[0], c)
	for _, p := range points[1:] {
		next := b.colorVertex(p, c)
		b.indices = append(b.indices, prev, next)
		prev = next
	}
}

// AddTile appends an axis-aligned textured quad. Textured builders only.
//
// position is the quad's lower-left corner and width/height its extent in
// draw units. texX, texY address the top-left texel of the source
// rectangle in the bound texture, texW, texH its size; texel coordinates
// grow rightward and downward from the image's top-left corner.
func (b *MeshBuilder) AddTile(position Vec3, width, height float32, texX, texY, texW, texH uint16) {
	b.mustKind("AddTile", Textured)

	ll := b.texelVertex(position, texX, texY+texH)
	lr := b.texelVertex(Vec3{X: position.X + width, Y: position.Y, Z: position.Z}, texX+texW, texY+texH)
	ur := b.texelVertex(Vec3{X: position.X + width, Y: position.Y + height, Z: position.Z}, texX+texW, texY)
	ul := b.texelVertex(Vec3{X: position.X, Y: position.Y + height, Z: position.Z}, texX, texY)

	b.indices = append(b.indices, ll, lr, ur, ll, ur, ul)
}
