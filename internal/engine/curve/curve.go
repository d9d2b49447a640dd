// Package curve builds smooth space curves through backbone control points
// and propagates consistent local frames along them. Protein chains use
// rotation-minimizing frames; nucleic acid chains use a cheaper Frenet-style
// propagation.
package curve

import (
	"github.com/Faultbox/molmesh/pkg/math"
)

// SplinePoint is one curve sample with its propagated local frame.
// Frames are carried forward from sample to sample, never recomputed
// independently; recomputing per sample twists the extruded surface.
type SplinePoint struct {
	Position math.Vec3
	Tangent  math.Vec3
	Normal   math.Vec3
	Binormal math.Vec3
}

// coincidentSq is the squared distance below which two consecutive samples
// are treated as coincident and the previous frame is copied unchanged.
const coincidentSq = 1e-10

// Sample interpolates a cubic Hermite curve through the control points using
// Catmull-Rom tangents and returns segments*(len(points)-1)+1 samples with
// unit tangents. Fewer than 2 control points yields nil: an empty curve is
// a normal "nothing to draw" state, not an error.
func Sample(points []math.Vec3, segments int) []SplinePoint {
	n := len(points)
	if n < 2 || segments < 1 {
		return nil
	}

	tangents := controlTangents(points)

	out := make([]SplinePoint, 0, segments*(n-1)+1)
	for seg := 0; seg < n-1; seg++ {
		p0, p1 := points[seg], points[seg+1]
		m0, m1 := tangents[seg], tangents[seg+1]
		for s := 0; s < segments; s++ {
			t := float32(s) / float32(segments)
			out = append(out, hermitePoint(p0, p1, m0, m1, t))
		}
	}
	// Closing sample at t=1 of the final segment
	last := hermitePoint(points[n-2], points[n-1], tangents[n-2], tangents[n-1], 1)
	out = append(out, last)

	fixDegenerateTangents(out)
	return out
}

// controlTangents computes Catmull-Rom tangents: single difference at the
// endpoints, centered difference scaled by 0.5 in the interior.
func controlTangents(points []math.Vec3) []math.Vec3 {
	n := len(points)
	tangents := make([]math.Vec3, n)
	tangents[0] = points[1].Sub(points[0])
	tangents[n-1] = points[n-1].Sub(points[n-2])
	for i := 1; i < n-1; i++ {
		tangents[i] = points[i+1].Sub(points[i-1]).Scale(0.5)
	}
	return tangents
}

// hermitePoint evaluates position and unit tangent of the cubic Hermite
// segment (p0, m0) -> (p1, m1) at parameter t.
func hermitePoint(p0, p1, m0, m1 math.Vec3, t float32) SplinePoint {
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	pos := p0.Scale(h00).
		Add(m0.Scale(h10)).
		Add(p1.Scale(h01)).
		Add(m1.Scale(h11))

	d00 := 6*t2 - 6*t
	d10 := 3*t2 - 4*t + 1
	d01 := -6*t2 + 6*t
	d11 := 3*t2 - 2*t

	tan := p0.Scale(d00).
		Add(m0.Scale(d10)).
		Add(p1.Scale(d01)).
		Add(m1.Scale(d11))

	return SplinePoint{Position: pos, Tangent: tan.Normalize()}
}

// fixDegenerateTangents replaces zero tangents (coincident control points)
// with the nearest valid neighbor so frame propagation never stalls.
func fixDegenerateTangents(pts []SplinePoint) {
	for i := range pts {
		if !pts[i].Tangent.IsZero() {
			continue
		}
		if i > 0 {
			pts[i].Tangent = pts[i-1].Tangent
		} else {
			for j := i + 1; j < len(pts); j++ {
				if !pts[j].Tangent.IsZero() {
					pts[i].Tangent = pts[j].Tangent
					break
				}
			}
		}
		if pts[i].Tangent.IsZero() {
			pts[i].Tangent = math.Vec3{X: 1}
		}
	}
}

// Positions extracts the positions of a sampled curve, used for the coarse
// helix-axis curve where frames are not needed.
func Positions(pts []SplinePoint) []math.Vec3 {
	out := make([]math.Vec3, len(pts))
	for i := range pts {
		out[i] = pts[i].Position
	}
	return out
}
