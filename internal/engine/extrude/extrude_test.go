package extrude

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/engine/curve"
	"github.com/Faultbox/molmesh/internal/engine/profile"
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

var white = [4]float32{1, 1, 1, 1}

func buildChain(t *testing.T, residues, segments, ringVerts int, ss mol.SecondaryStructure) *Mesh {
	t.Helper()
	control := make([]math.Vec3, residues)
	for i := range control {
		control[i] = math.Vec3{X: float32(i) * 3.8}
	}
	pts := curve.Sample(control, segments)
	curve.PropagateRMF(pts)

	profiles := make([]profile.Profile, residues)
	for i := range profiles {
		profiles[i] = profile.Resolve(ss, i, white)
	}
	samples := profile.Interpolate(profiles, len(pts))

	m := Extrude(pts, samples, ringVerts)
	if m == nil {
		t.Fatal("Extrude returned nil")
	}
	return m
}

func TestStraightCoilScenario(t *testing.T) {
	// 10 residues, 4 segments/residue, 8 ring vertices:
	// (9*4+1)=37 rings of 8 vertices = 296
	m := buildChain(t, 10, 4, 8, mol.Coil)

	if len(m.Vertices) != 296 {
		t.Errorf("vertex count = %d, want 296", len(m.Vertices))
	}

	for i, v := range m.Vertices {
		n := math.FromArray(v.Normal)
		if math32.Abs(n.Length()-1) > 1e-4 {
			t.Errorf("vertex %d: |normal| = %v, want 1", i, n.Length())
		}
		if v.ResidueIndex > 9 {
			t.Errorf("vertex %d: residue index %d out of [0,9]", i, v.ResidueIndex)
		}
	}
}

func TestVertexCountFormula(t *testing.T) {
	cases := []struct{ residues, segments, ringVerts int }{
		{2, 1, 3},
		{5, 4, 8},
		{10, 8, 16},
	}
	for _, c := range cases {
		m := buildChain(t, c.residues, c.segments, c.ringVerts, mol.Coil)
		samples := c.segments*(c.residues-1) + 1
		if len(m.Vertices) != samples*c.ringVerts {
			t.Errorf("(%d,%d,%d): vertices = %d, want %d",
				c.residues, c.segments, c.ringVerts, len(m.Vertices), samples*c.ringVerts)
		}
		if got := len(m.TubeIndices) + len(m.RibbonIndices); got != IndexCount(samples, c.ringVerts) {
			t.Errorf("(%d,%d,%d): indices = %d, want %d",
				c.residues, c.segments, c.ringVerts, got, IndexCount(samples, c.ringVerts))
		}
	}
}

func TestUniformPartitionNoOverlap(t *testing.T) {
	// Uniform coil (roundness 1): everything lands in the tube list
	m := buildChain(t, 6, 4, 8, mol.Coil)
	if len(m.RibbonIndices) != 0 {
		t.Errorf("coil chain produced %d ribbon indices, want 0", len(m.RibbonIndices))
	}
	if len(m.TubeIndices) == 0 {
		t.Error("coil chain produced no tube indices")
	}

	// Uniform sheet (roundness 0): everything lands in the ribbon list
	m = buildChain(t, 6, 4, 8, mol.Sheet)
	if len(m.TubeIndices) != 0 {
		t.Errorf("sheet chain produced %d tube indices, want 0", len(m.TubeIndices))
	}
	if len(m.RibbonIndices) == 0 {
		t.Error("sheet chain produced no ribbon indices")
	}
}

func TestMixedPartitionCoversAllSegments(t *testing.T) {
	control := make([]math.Vec3, 10)
	for i := range control {
		control[i] = math.Vec3{X: float32(i) * 3.8}
	}
	pts := curve.Sample(control, 4)
	curve.PropagateRMF(pts)

	profiles := make([]profile.Profile, 10)
	for i := range profiles {
		ss := mol.Coil
		if i >= 5 {
			ss = mol.Sheet
		}
		profiles[i] = profile.Resolve(ss, i, white)
	}
	samples := profile.Interpolate(profiles, len(pts))
	m := Extrude(pts, samples, 8)

	want := IndexCount(len(pts), 8)
	if got := len(m.TubeIndices) + len(m.RibbonIndices); got != want {
		t.Errorf("total indices = %d, want %d (no gap, no overlap)", got, want)
	}
	if len(m.TubeIndices) == 0 || len(m.RibbonIndices) == 0 {
		t.Errorf("mixed chain should fill both partitions: tube=%d ribbon=%d",
			len(m.TubeIndices), len(m.RibbonIndices))
	}
}

func TestIndicesInRange(t *testing.T) {
	m := buildChain(t, 5, 3, 6, mol.Helix)
	limit := uint32(len(m.Vertices))
	for _, idx := range append(append([]uint32{}, m.TubeIndices...), m.RibbonIndices...) {
		if idx >= limit {
			t.Fatalf("index %d out of range (%d vertices)", idx, limit)
		}
	}
}

func TestRoundRingIsCircular(t *testing.T) {
	m := buildChain(t, 4, 2, 12, mol.Coil)

	// First ring: all vertices equidistant from the center point
	center := math.FromArray(m.Vertices[0].CenterPos)
	want := math.FromArray(m.Vertices[0].Position).Distance(center)
	for v := 1; v < 12; v++ {
		got := math.FromArray(m.Vertices[v].Position).Distance(center)
		if math32.Abs(got-want) > 1e-4 {
			t.Errorf("ring vertex %d radius %v, want %v", v, got, want)
		}
	}
}

func TestFlatRingIsWiderThanThick(t *testing.T) {
	m := buildChain(t, 4, 2, 16, mol.Sheet)

	center := math.FromArray(m.Vertices[0].CenterPos)
	var maxR, minR float32 = 0, 1e10
	for v := 0; v < 16; v++ {
		r := math.FromArray(m.Vertices[v].Position).Distance(center)
		if r > maxR {
			maxR = r
		}
		if r < minR {
			minR = r
		}
	}
	if maxR/minR < 2 {
		t.Errorf("sheet ring aspect %v, want clearly flattened", maxR/minR)
	}
}

func TestExtrudeDegenerateInput(t *testing.T) {
	if m := Extrude(nil, nil, 8); m != nil {
		t.Errorf("Extrude(nil) = %v, want nil", m)
	}
}

func TestMergeRebasesIndices(t *testing.T) {
	a := buildChain(t, 3, 2, 6, mol.Coil)
	b := buildChain(t, 3, 2, 6, mol.Coil)

	aVerts := len(a.Vertices)
	aTube := len(a.TubeIndices)
	a.Merge(b)

	if len(a.Vertices) != 2*aVerts {
		t.Errorf("merged vertices = %d, want %d", len(a.Vertices), 2*aVerts)
	}
	for _, idx := range a.TubeIndices[aTube:] {
		if idx < uint32(aVerts) {
			t.Fatalf("merged index %d not rebased past %d", idx, aVerts)
		}
	}
}
