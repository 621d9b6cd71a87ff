// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import "github.com/chewxy/math32"

// Vec3 is a 3D position in draw coordinates.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mat4 is a 4x4 transform matrix stored row-major. Export produces the
// column-major layout the GPU consumes; everything else in the package
// works in the row-major convention.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MakeIdentity resets m to identity.
func (m *Mat4) MakeIdentity() *Mat4 {
	*m = Identity()
	return m
}

// TranslateBefore composes a translation that applies before the transform
// currently stored in m.
func (m *Mat4) TranslateBefore(t Vec3) *Mat4 {
	m[3] = m[0]*t.X + m[1]*t.Y + m[2]*t.Z + m[3]
	m[7] = m[4]*t.X + m[5]*t.Y + m[6]*t.Z + m[7]
	m[11] = m[8]*t.X + m[9]*t.Y + m[10]*t.Z + m[11]
	return m
}

// ScaleBefore composes a scale that applies before the transform currently
// stored in m.
func (m *Mat4) ScaleBefore(f Vec3) *Mat4 {
	m[0] *= f.X
	m[1] *= f.Y
	m[2] *= f.Z
	m[4] *= f.X
	m[5] *= f.Y
	m[6] *= f.Z
	m[8] *= f.X
	m[9] *= f.Y
	m[10] *= f.Z
	m[12] *= f.X
	m[13] *= f.Y
	m[14] *= f.Z
	return m
}

// RotateZBefore composes a rotation about the z axis (radians) that applies
// before the transform currently stored in m.
func (m *Mat4) RotateZBefore(radians float32) *Mat4 {
	sin := math32.Sin(radians)
	cos := math32.Cos(radians)
	for _, row := range [4]int{0, 4, 8, 12} {
		x := m[row]*cos + m[row+1]*sin
		y := m[row]*-sin + m[row+1]*cos
		m[row], m[row+1] = x, y
	}
	return m
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * o[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Apply transforms the point v by m (w assumed 1, no perspective divide).
func (m Mat4) Apply(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0] + v.Y*m[1] + v.Z*m[2] + m[3],
		Y: v.X*m[4] + v.Y*m[5] + v.Z*m[6] + m[7],
		Z: v.X*m[8] + v.Y*m[9] + v.Z*m[10] + m[11],
	}
}

// Export returns the matrix transposed into the column-major element order
// GPU APIs expect for a mat4x4 uniform.
func (m Mat4) Export() [16]float32 {
	return [16]float32{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}
