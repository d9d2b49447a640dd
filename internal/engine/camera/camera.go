// Package camera provides the orbit camera used to view molecular structures.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/scene"
	"github.com/Faultbox/molmesh/pkg/math"
)

// OrbitCamera orbits a center point, typically the centroid of the loaded
// structure. Distances are in the structure's own units (angstroms).
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates around Center
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FovY float32
	Near float32
	Far  float32
}

// NewOrbitCamera creates an orbit camera scaled for typical protein sizes.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        80,
		Pitch:           0.3,
		MinDistance:     5,
		MaxDistance:     2000,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            math32.Pi / 4,
		Near:            0.1,
		Far:             5000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cp * math32.Cos(c.Yaw),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ViewProjection returns the combined view-projection matrix for the given
// viewport aspect ratio. Its inverse feeds pick-ray construction.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far).Mul(c.ViewMatrix())
}

// HandleDrag updates orientation from a mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)
}

// HandleZoom updates distance from a scroll wheel delta. Zoom speed scales
// with distance so large complexes and single ligands feel the same.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center point in the camera's view plane, speed scaled
// with distance.
func (c *OrbitCamera) HandlePan(right, up float32) {
	speed := c.Distance * 0.01

	rightDir := math.Vec3{X: math32.Cos(c.Yaw), Z: -math32.Sin(c.Yaw)}
	c.Center = c.Center.
		AddScaled(rightDir, right*speed).
		AddScaled(math.Vec3{Y: 1}, up*speed)
}

// FitToSphere frames a bounding sphere: center on it and back off far enough
// that the sphere fills the vertical field of view.
func (c *OrbitCamera) FitToSphere(s scene.Sphere) {
	c.Center = s.Center

	d := s.Radius / math32.Sin(c.FovY/2)
	c.Distance = math.Clamp(d*1.1, c.MinDistance, c.MaxDistance)
}
