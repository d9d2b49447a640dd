package extrude

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/curve"
	"github.com/Faultbox/molmesh/internal/engine/profile"
	"github.com/Faultbox/molmesh/pkg/math"
)

// sqrt2 scales the unit circle out to the circumscribed square.
const sqrt2 = 1.41421356

// Extrude sweeps the per-sample profiles along the framed samples, emitting
// one ring of ringVerts vertices per sample plus connecting triangles and end
// caps. Samples and profiles must be parallel. Empty input yields nil.
func Extrude(pts []curve.SplinePoint, profiles []profile.Profile, ringVerts int) *Mesh {
	if len(pts) < 2 || ringVerts < 3 || len(profiles) != len(pts) {
		return nil
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, len(pts)*ringVerts),
	}

	ring := make([]math.Vec3, ringVerts)
	for k := range pts {
		emitRing(m, &pts[k], &profiles[k], ring)
	}

	// Connect adjacent rings, partitioning per segment: a segment is round
	// (tube) only when both bracketing samples are predominantly round.
	for k := 0; k < len(pts)-1; k++ {
		indices := &m.RibbonIndices
		if profiles[k].Roundness > 0.5 && profiles[k+1].Roundness > 0.5 {
			indices = &m.TubeIndices
		}
		a0 := uint32(k * ringVerts)
		b0 := uint32((k + 1) * ringVerts)
		for v := 0; v < ringVerts; v++ {
			v1 := uint32((v + 1) % ringVerts)
			a, av1 := a0+uint32(v), a0+v1
			b, bv1 := b0+uint32(v), b0+v1
			*indices = append(*indices, a, av1, b, av1, bv1, b)
		}
	}

	emitCap(m, profiles, 0, ringVerts, false)
	emitCap(m, profiles, len(pts)-1, ringVerts, true)

	return m
}

// emitRing appends one cross-section ring. Each ring point interpolates
// between the inscribed ellipse and the circumscribed rectangle by roundness;
// because roundness itself is interpolated along the curve, cross-sections
// morph continuously at structure transitions instead of switching shape.
func emitRing(m *Mesh, p *curve.SplinePoint, prof *profile.Profile, ring []math.Vec3) {
	ringVerts := len(ring)
	hw := prof.Width / 2
	ht := prof.Thickness / 2

	for v := 0; v < ringVerts; v++ {
		theta := 2 * math32.Pi * float32(v) / float32(ringVerts)
		c, s := math32.Cos(theta), math32.Sin(theta)

		ex, ey := c, s
		rx := math.Clamp(c*sqrt2, -1, 1)
		ry := math.Clamp(s*sqrt2, -1, 1)

		x := math.Lerp(rx, ex, prof.Roundness) * hw
		y := math.Lerp(ry, ey, prof.Roundness) * ht

		ring[v] = p.Position.
			AddScaled(p.Normal, x).
			AddScaled(p.Binormal, y)
	}

	for v := 0; v < ringVerts; v++ {
		prev := ring[(v-1+ringVerts)%ringVerts]
		next := ring[(v+1)%ringVerts]
		outward := next.Sub(prev).Cross(p.Tangent).Normalize()
		if outward.IsZero() {
			// Degenerate ring (zero-area profile): fall back to the radial
			// direction, then to the frame normal
			outward = ring[v].Sub(p.Position).Normalize()
			if outward.IsZero() {
				outward = p.Normal
			}
		}

		m.Vertices = append(m.Vertices, Vertex{
			Position:     ring[v].Array(),
			Normal:       outward.Array(),
			Color:        prof.Color,
			CenterPos:    p.Position.Array(),
			ResidueIndex: uint32(prof.ResidueIndex),
		})
	}
}

// emitCap closes one end of the swept surface with a triangle fan over the
// existing ring vertices, oriented along -tangent at the start and +tangent
// at the end. Cap triangles join the partition of the adjacent segment.
func emitCap(m *Mesh, profiles []profile.Profile, sample, ringVerts int, last bool) {
	if ringVerts < 3 {
		return
	}

	segment := sample
	if last {
		segment = sample - 1
	}
	indices := &m.RibbonIndices
	if profiles[segment].Roundness > 0.5 && profiles[segment+1].Roundness > 0.5 {
		indices = &m.TubeIndices
	}

	base := uint32(sample * ringVerts)
	for v := 1; v < ringVerts-1; v++ {
		a, b, c := base, base+uint32(v), base+uint32(v+1)
		if last {
			// Flip winding so the fan faces along +tangent
			*indices = append(*indices, a, b, c)
		} else {
			*indices = append(*indices, a, c, b)
		}
	}
}

// IndexCount returns the deterministic index count produced for a sample and
// ring vertex count: 6 per quad per connecting segment, plus two fans.
func IndexCount(sampleCount, ringVerts int) int {
	if sampleCount < 2 || ringVerts < 3 {
		return 0
	}
	return (sampleCount-1)*ringVerts*6 + 2*3*(ringVerts-2)
}
