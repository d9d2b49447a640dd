package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuatRotateVec3(t *testing.T) {
	// 90 degrees around Y: +X maps to -Z
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	got := q.RotateVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if got.Distance(want) > 1e-5 {
		t.Errorf("RotateVec3 = %v, want %v", got, want)
	}
}

func TestQuatMulIdentity(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 0.7)
	got := q.Mul(QuatIdentity())
	if got != q {
		t.Errorf("q * identity = %v, want %v", got, q)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)

	s0 := a.Slerp(b, 0)
	if s0.Dot(a) < 0.999 {
		t.Errorf("Slerp(0) = %v, want %v", s0, a)
	}
	s1 := a.Slerp(b, 1)
	if s1.Dot(b) < 0.999 {
		t.Errorf("Slerp(1) = %v, want %v", s1, b)
	}
}
