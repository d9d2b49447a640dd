package profile

import (
	"github.com/Faultbox/molmesh/internal/engine/curve"
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

// BlendNormals rewrites the frame normals of sampled points according to the
// per-sample profiles:
//
//   - start from the propagated frame normal;
//   - if the profile has a radial blend weight, blend toward the direction
//     from the matching helix-axis sample, projected perpendicular to the
//     tangent;
//   - if the sample's residue is a sheet residue and a nonzero sheet normal
//     exists, the sheet normal (projected perpendicular to the tangent)
//     overrides the blend entirely.
//
// Binormals are recomputed after any change so frames stay orthonormal.
// axisSamples and sheetNormals may be nil; ss is indexed by the profiles'
// local residue positions via residueBase (profiles may carry entity-global
// residue ids).
func BlendNormals(pts []curve.SplinePoint, axisSamples []math.Vec3, profiles []Profile, ss []mol.SecondaryStructure, sheetNormals []math.Vec3, residueBase int) {
	for i := range pts {
		p := &pts[i]
		n := p.Normal
		changed := false

		if profiles[i].RadialBlend > 0 && axisSamples != nil {
			radial := p.Position.Sub(axisSamples[i]).ProjectOnPlane(p.Tangent).Normalize()
			if !radial.IsZero() {
				// Keep the blend stable when the radial direction lands on
				// the opposite side of the propagated normal
				if radial.Dot(n) < 0 {
					radial = radial.Negate()
				}
				n = n.Lerp(radial, profiles[i].RadialBlend).Normalize()
				if n.IsZero() {
					n = p.Normal
				}
				changed = true
			}
		}

		local := profiles[i].ResidueIndex - residueBase
		if ss != nil && local >= 0 && local < len(ss) && ss[local] == mol.Sheet &&
			sheetNormals != nil && !sheetNormals[i].IsZero() {
			sheetN := sheetNormals[i].ProjectOnPlane(p.Tangent).Normalize()
			if !sheetN.IsZero() {
				// Sheets always win over blending
				n = sheetN
				changed = true
			}
		}

		if changed {
			p.Normal = n
			p.Binormal = p.Tangent.Cross(p.Normal)
		}
	}
}
