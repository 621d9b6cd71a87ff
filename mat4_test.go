// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecNear(a, b Vec3) bool {
	const eps = 1e-5
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestIdentityApply(t *testing.T) {
	m := Identity()
	v := Vec3{X: 3, Y: -2, Z: 7}
	if got := m.Apply(v); got != v {
		t.Errorf("Identity().Apply(%v) = %v, want unchanged", v, got)
	}
}

func TestTranslateBefore(t *testing.T) {
	m := Identity()
	m.TranslateBefore(Vec3{X: 10, Y: 20, Z: 30})
	got := m.Apply(Vec3{X: 1, Y: 2, Z: 3})
	want := Vec3{X: 11, Y: 22, Z: 33}
	if !vecNear(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestScaleBefore(t *testing.T) {
	m := Identity()
	m.ScaleBefore(Vec3{X: 2, Y: 3, Z: 4})
	got := m.Apply(Vec3{X: 1, Y: 1, Z: 1})
	want := Vec3{X: 2, Y: 3, Z: 4}
	if !vecNear(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestRotateZBefore(t *testing.T) {
	m := Identity()
	m.RotateZBefore(math32.Pi / 2)
	got := m.Apply(Vec3{X: 1, Y: 0, Z: 0})
	want := Vec3{X: 0, Y: 1, Z: 0}
	if !vecNear(got, want) {
		t.Errorf("Apply() after 90° rotation = %v, want %v", got, want)
	}
}

func TestBeforeOperationsComposeInnermost(t *testing.T) {
	// Scale then translate-before: the translation applies in the
	// unscaled frame, so it is scaled on the way out.
	m := Identity()
	m.ScaleBefore(Vec3{X: 2, Y: 2, Z: 1}).TranslateBefore(Vec3{X: 5, Y: 0, Z: 0})
	got := m.Apply(Vec3{})
	want := Vec3{X: 10, Y: 0, Z: 0}
	if !vecNear(got, want) {
		t.Errorf("Apply(origin) = %v, want %v", got, want)
	}
}

func TestMulMatchesSequentialApply(t *testing.T) {
	a := Identity()
	a.TranslateBefore(Vec3{X: 1, Y: 2, Z: 3})
	b := Identity()
	b.ScaleBefore(Vec3{X: 2, Y: 2, Z: 2})

	v := Vec3{X: 5, Y: -1, Z: 0}
	got := a.Mul(b).Apply(v)
	want := a.Apply(b.Apply(v))
	if !vecNear(got, want) {
		t.Errorf("a.Mul(b).Apply(v) = %v, want %v", got, want)
	}
}

func TestExportTransposes(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i)
	}
	e := m.Export()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if e[c*4+r] != m[r*4+c] {
				t.Fatalf("Export()[%d] = %v, want %v", c*4+r, e[c*4+r], m[r*4+c])
			}
		}
	}
}

func TestMakeIdentityResets(t *testing.T) {
	m := Identity()
	m.TranslateBefore(Vec3{X: 9})
	m.MakeIdentity()
	if m != Identity() {
		t.Errorf("MakeIdentity() = %v, want identity", m)
	}
}
