// Package picking resolves screen-space clicks to chains and residues. The
// CPU side casts a ray against chain bounding spheres for a coarse hit; exact
// per-residue picking reads the residue index the renderer wrote into an
// offscreen ID buffer, retrieved asynchronously so the frame loop never
// stalls on the GPU.
package picking

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/scene"
	"github.com/Faultbox/molmesh/pkg/math"
)

// Ray is a world-space ray with unit direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray by unprojecting
// the near and far plane points through the inverse view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen Y grows downward

	near := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	dir := far.Sub(near).Normalize()
	if dir.IsZero() {
		dir = math.Vec3{Z: -1}
	}
	return Ray{Origin: near, Direction: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.AddScaled(r.Direction, t)
}

// IntersectSphere returns the nearest non-negative ray parameter at which the
// ray enters the sphere. Rays starting inside hit at t=0.
func (r Ray) IntersectSphere(s scene.Sphere) (t float32, hit bool) {
	if s.Contains(r.Origin) {
		return 0, true
	}
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	disc := b*b - (oc.LengthSq() - s.Radius*s.Radius)
	if disc < 0 || b > 0 {
		return 0, false
	}
	t = -b - math32.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}

// ChainHit is one chain whose bounding sphere the pick ray crossed.
type ChainHit struct {
	EntityID     uint64
	ChainIndex   int
	FirstResidue int
	ResidueCount int
	Distance     float32
}

// PickChains casts the ray against every chain bounding sphere and returns
// the hits nearest-first. A hit is a candidate, not a confirmed pick; the
// exact residue comes from the ID buffer readback.
func PickChains(ray Ray, ranges []scene.ChainRange) []ChainHit {
	var hits []ChainHit
	for i := range ranges {
		cr := &ranges[i]
		t, ok := ray.IntersectSphere(cr.Bounds)
		if !ok {
			continue
		}
		hits = append(hits, ChainHit{
			EntityID:     cr.EntityID,
			ChainIndex:   cr.ChainIndex,
			FirstResidue: cr.FirstResidue,
			ResidueCount: cr.ResidueCount,
			Distance:     t,
		})
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	return hits
}

// ResolveResidue maps a scene-global residue index, as read back from the ID
// buffer, to its owning entity and entity-local residue. Returns false when
// the index falls outside every entity range.
func ResolveResidue(residue int, ranges []scene.EntityRange) (entityID uint64, local int, ok bool) {
	for i := range ranges {
		er := &ranges[i]
		if residue >= er.FirstResidue && residue < er.FirstResidue+er.ResidueCount {
			return er.EntityID, residue - er.FirstResidue, true
		}
	}
	return 0, 0, false
}
