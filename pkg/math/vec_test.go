package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3ProjectOnPlane(t *testing.T) {
	v := Vec3{1, 2, 3}
	n := Vec3{0, 1, 0}
	got := v.ProjectOnPlane(n)
	want := Vec3{1, 0, 3}
	if got != want {
		t.Errorf("Vec3.ProjectOnPlane() = %v, want %v", got, want)
	}
}

func TestVec3Reflect(t *testing.T) {
	v := Vec3{1, -1, 0}
	n := Vec3{0, 1, 0}
	got := v.Reflect(n)
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Vec3.Reflect() = %v, want %v", got, want)
	}
}

func TestVec3AddScaled(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 2, 3}
	got := a.AddScaled(b, 2)
	want := Vec3{3, 5, 7}
	if got != want {
		t.Errorf("Vec3.AddScaled() = %v, want %v", got, want)
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(1, 3, 0.5); got != 2 {
		t.Errorf("Lerp(1,3,0.5) = %v, want 2", got)
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
}
