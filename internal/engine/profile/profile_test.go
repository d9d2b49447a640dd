package profile

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/curve"
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

var white = [4]float32{1, 1, 1, 1}

func TestResolveTable(t *testing.T) {
	coil := Resolve(mol.Coil, 0, white)
	if coil.Roundness != 1.0 {
		t.Errorf("coil roundness = %v, want 1.0", coil.Roundness)
	}
	helix := Resolve(mol.Helix, 0, white)
	if helix.Roundness != 0 || helix.RadialBlend != 1.0 {
		t.Errorf("helix = %+v, want flat with full radial blend", helix)
	}
	sheet := Resolve(mol.Sheet, 0, white)
	if sheet.Width <= coil.Width {
		t.Errorf("sheet width %v should exceed coil width %v", sheet.Width, coil.Width)
	}
}

func TestInterpolateUniformIsConstant(t *testing.T) {
	profiles := make([]Profile, 10)
	for i := range profiles {
		profiles[i] = Resolve(mol.Coil, i, white)
	}
	out := Interpolate(profiles, 37)
	if len(out) != 37 {
		t.Fatalf("got %d samples, want 37", len(out))
	}
	for i, p := range out {
		if p.Roundness != 1.0 {
			t.Errorf("sample %d roundness = %v, want 1.0", i, p.Roundness)
		}
		if p.ResidueIndex < 0 || p.ResidueIndex > 9 {
			t.Errorf("sample %d residue index = %d, out of [0,9]", i, p.ResidueIndex)
		}
	}
}

func TestInterpolateResidueIndexSnaps(t *testing.T) {
	profiles := []Profile{
		Resolve(mol.Coil, 0, white),
		Resolve(mol.Helix, 1, white),
	}
	out := Interpolate(profiles, 9)
	// Samples 0..3 map to t<0.5 (residue 0), samples 5..8 to t>0.5 (residue 1)
	for i := 0; i < 4; i++ {
		if out[i].ResidueIndex != 0 {
			t.Errorf("sample %d residue = %d, want 0", i, out[i].ResidueIndex)
		}
	}
	for i := 5; i < 9; i++ {
		if out[i].ResidueIndex != 1 {
			t.Errorf("sample %d residue = %d, want 1", i, out[i].ResidueIndex)
		}
	}
	for i, p := range out {
		if p.ResidueIndex != 0 && p.ResidueIndex != 1 {
			t.Errorf("sample %d residue index blended: %d", i, p.ResidueIndex)
		}
	}
}

func TestInterpolateMonotonicAcrossTransition(t *testing.T) {
	// Residues 0-4 coil, 5-9 helix: roundness must change strictly
	// monotonically across the transition window and stay constant elsewhere.
	profiles := make([]Profile, 10)
	for i := range profiles {
		ss := mol.Coil
		if i >= 5 {
			ss = mol.Helix
		}
		profiles[i] = Resolve(ss, i, white)
	}
	const samples = 91 // 10 samples per residue span
	out := Interpolate(profiles, samples)

	for i := 1; i < samples; i++ {
		prev, cur := out[i-1].Roundness, out[i].Roundness
		f := float32(i) * 9.0 / float32(samples-1)
		switch {
		case f <= 4.0:
			if cur != 1.0 {
				t.Errorf("sample %d (f=%v): roundness %v, want constant 1.0", i, f, cur)
			}
		case f >= 5.0:
			if cur != 0.0 {
				t.Errorf("sample %d (f=%v): roundness %v, want constant 0.0", i, f, cur)
			}
		default:
			if cur >= prev {
				t.Errorf("sample %d (f=%v): roundness %v -> %v, want strictly decreasing", i, f, prev, cur)
			}
		}
	}
}

func TestInterpolateSingleResidue(t *testing.T) {
	out := Interpolate([]Profile{Resolve(mol.Helix, 7, white)}, 5)
	for i, p := range out {
		if p.ResidueIndex != 7 {
			t.Errorf("sample %d residue = %d, want 7", i, p.ResidueIndex)
		}
	}
}

func TestBlendNormalsSheetOverride(t *testing.T) {
	pts := curve.Sample([]math.Vec3{{X: 0}, {X: 3.8}, {X: 7.6}}, 4)
	curve.PropagateRMF(pts)

	ss := []mol.SecondaryStructure{mol.Sheet, mol.Sheet, mol.Sheet}
	profiles := make([]Profile, 3)
	for i := range profiles {
		profiles[i] = Resolve(mol.Sheet, i, white)
	}
	samples := Interpolate(profiles, len(pts))

	sheetNormal := math.Vec3{Y: 0.7, Z: 0.7} // not unit, not perpendicular
	sheetNormals := make([]math.Vec3, len(pts))
	for i := range sheetNormals {
		sheetNormals[i] = sheetNormal
	}

	BlendNormals(pts, nil, samples, ss, sheetNormals, 0)

	want := sheetNormal.Normalize()
	for i, p := range pts {
		if p.Normal.Distance(want) > 1e-4 {
			t.Errorf("sample %d normal = %v, want sheet normal %v", i, p.Normal, want)
		}
		if p.Binormal.Distance(p.Tangent.Cross(p.Normal)) > 1e-4 {
			t.Errorf("sample %d binormal not recomputed", i)
		}
	}
}

func TestBlendNormalsRadial(t *testing.T) {
	// A circle in the XZ plane with the axis at the origin: the radial
	// normal should point away from the axis.
	n := 12
	control := make([]math.Vec3, n)
	axis := make([]math.Vec3, n)
	for i := range control {
		a := float32(i) * 0.4
		control[i] = math.Vec3{X: 5 * math32.Cos(a), Z: 5 * math32.Sin(a)}
		axis[i] = math.Vec3{}
	}
	pts := curve.Sample(control, 3)
	curve.PropagateRMF(pts)
	axisSamples := curve.SampleAxis(axis, 3)

	ss := make([]mol.SecondaryStructure, n)
	profiles := make([]Profile, n)
	for i := range profiles {
		ss[i] = mol.Helix
		profiles[i] = Resolve(mol.Helix, i, white)
	}
	samples := Interpolate(profiles, len(pts))

	BlendNormals(pts, axisSamples, samples, ss, nil, 0)

	for i, p := range pts {
		radial := p.Position.Sub(axisSamples[i]).ProjectOnPlane(p.Tangent).Normalize()
		if math32.Abs(p.Normal.Dot(radial)) < 0.99 {
			t.Errorf("sample %d normal %v not aligned with radial %v", i, p.Normal, radial)
		}
	}
}

func TestBlendNormalsKeepsOrthonormal(t *testing.T) {
	control := []math.Vec3{{X: 0}, {X: 4, Y: 1}, {X: 8}, {X: 12, Y: -1}}
	pts := curve.Sample(control, 5)
	curve.PropagateRMF(pts)
	axisSamples := curve.SampleAxis(curve.HelixAxisPoints(control), 5)

	ss := []mol.SecondaryStructure{mol.Helix, mol.Helix, mol.Sheet, mol.Coil}
	profiles := make([]Profile, 4)
	for i := range profiles {
		profiles[i] = Resolve(ss[i], i, white)
	}
	samples := Interpolate(profiles, len(pts))
	sheetNormals := make([]math.Vec3, len(pts))
	for i := range sheetNormals {
		sheetNormals[i] = math.Vec3{Y: 1}
	}

	BlendNormals(pts, axisSamples, samples, ss, sheetNormals, 0)

	for i, p := range pts {
		if math32.Abs(p.Normal.Length()-1) > 1e-4 {
			t.Errorf("sample %d |normal| = %v, want 1", i, p.Normal.Length())
		}
		if math32.Abs(p.Normal.Dot(p.Tangent)) > 1e-4 {
			t.Errorf("sample %d normal not perpendicular to tangent", i)
		}
	}
}
