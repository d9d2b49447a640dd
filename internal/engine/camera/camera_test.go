package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/scene"
	"github.com/Faultbox/molmesh/pkg/math"
)

func TestPositionRespectsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 10, Y: 5, Z: -3}
	c.Distance = 42

	got := c.Position().Distance(c.Center)
	if math32.Abs(got-42) > 1e-3 {
		t.Errorf("|position - center| = %v, want 42", got)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance after zooming in = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance after zooming out = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 10000; i++ {
		c.HandleDrag(0, 10)
	}
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}
}

func TestFitToSphereFramesStructure(t *testing.T) {
	c := NewOrbitCamera()
	s := scene.Sphere{Center: math.Vec3{X: 20, Y: -4, Z: 7}, Radius: 30}
	c.FitToSphere(s)

	if c.Center != s.Center {
		t.Errorf("camera center = %+v, want sphere center %+v", c.Center, s.Center)
	}
	if c.Distance <= s.Radius {
		t.Errorf("distance %v puts the camera inside the sphere (radius %v)", c.Distance, s.Radius)
	}

	// The framed center lands at the middle of the screen
	ndc := c.ViewProjection(16.0 / 9.0).TransformPoint(s.Center)
	if math32.Abs(ndc.X) > 1e-3 || math32.Abs(ndc.Y) > 1e-3 {
		t.Errorf("sphere center projects to ndc (%v, %v), want (0, 0)", ndc.X, ndc.Y)
	}
}
