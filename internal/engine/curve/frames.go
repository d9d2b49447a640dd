package curve

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/pkg/math"
)

// seedFrame initializes the first frame from any vector non-parallel to the
// tangent, projected into the tangent's normal plane.
func seedFrame(p *SplinePoint) {
	ref := math.Vec3{Y: 1}
	if math32.Abs(p.Tangent.Dot(ref)) > 0.9 {
		ref = math.Vec3{X: 1}
	}
	p.Normal = ref.ProjectOnPlane(p.Tangent).Normalize()
	p.Binormal = p.Tangent.Cross(p.Normal)
}

// PropagateRMF fills in rotation-minimizing frames along sampled points using
// the double reflection method: the previous normal is reflected across the
// plane bisecting consecutive positions, then across the plane bisecting
// consecutive tangents. Near-coincident samples copy the previous frame.
func PropagateRMF(pts []SplinePoint) {
	if len(pts) == 0 {
		return
	}
	seedFrame(&pts[0])

	for i := 1; i < len(pts); i++ {
		prev := &pts[i-1]
		cur := &pts[i]

		v1 := cur.Position.Sub(prev.Position)
		c1 := v1.LengthSq()
		if c1 < coincidentSq {
			cur.Tangent = prev.Tangent
			cur.Normal = prev.Normal
			cur.Binormal = prev.Binormal
			continue
		}

		// First reflection: across the plane bisecting the two positions
		rL := prev.Normal.Sub(v1.Scale(2 / c1 * v1.Dot(prev.Normal)))
		tL := prev.Tangent.Sub(v1.Scale(2 / c1 * v1.Dot(prev.Tangent)))

		// Second reflection: across the plane bisecting the two tangents
		v2 := cur.Tangent.Sub(tL)
		c2 := v2.LengthSq()
		if c2 > coincidentSq {
			rL = rL.Sub(v2.Scale(2 / c2 * v2.Dot(rL)))
		}

		cur.Normal = rL.ProjectOnPlane(cur.Tangent).Normalize()
		if cur.Normal.IsZero() {
			cur.Normal = prev.Normal
		}
		cur.Binormal = cur.Tangent.Cross(cur.Normal)
	}
}

// PropagateFrenet fills in frames by carrying the previous normal forward and
// re-projecting it perpendicular to each new tangent, without the double
// reflection correction. Nucleic acid backbones tolerate the residual twist.
func PropagateFrenet(pts []SplinePoint) {
	if len(pts) == 0 {
		return
	}
	seedFrame(&pts[0])

	for i := 1; i < len(pts); i++ {
		prev := &pts[i-1]
		cur := &pts[i]

		if cur.Position.DistanceSq(prev.Position) < coincidentSq {
			cur.Tangent = prev.Tangent
			cur.Normal = prev.Normal
			cur.Binormal = prev.Binormal
			continue
		}

		cur.Normal = prev.Normal.ProjectOnPlane(cur.Tangent).Normalize()
		if cur.Normal.IsZero() {
			seedFrame(cur)
			continue
		}
		cur.Binormal = cur.Tangent.Cross(cur.Normal)
	}
}
