package sheet

import (
	"testing"

	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

// pleated builds a zigzag strand in the XY plane: points alternate above and
// below the x axis the way Cα positions pleat in a real sheet.
func pleated(n int) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		y := float32(0.8)
		if i%2 == 1 {
			y = -0.8
		}
		pts[i] = math.Vec3{X: float32(i) * 3.3, Y: y}
	}
	return pts
}

func allSheet(n int) []mol.SecondaryStructure {
	ss := make([]mol.SecondaryStructure, n)
	for i := range ss {
		ss[i] = mol.Sheet
	}
	return ss
}

func TestFlattenReducesPleat(t *testing.T) {
	control := pleated(8)
	flattened, offsets, _ := Flatten(control, allSheet(8))

	for i := 1; i < 7; i++ {
		if flattened[i].Y == control[i].Y {
			t.Errorf("residue %d not displaced", i)
		}
		// Halfway pull on a +-0.8 pleat: |y| goes from 0.8 to 0.0
		if y := flattened[i].Y; y < -1e-4 || y > 1e-4 {
			t.Errorf("residue %d flattened y = %v, want ~0", i, y)
		}
		if _, ok := offsets[i]; !ok {
			t.Errorf("residue %d missing from offset map", i)
		}
	}
}

func TestFlattenNonSheetUntouched(t *testing.T) {
	control := pleated(10)
	ss := allSheet(10)
	ss[0], ss[1], ss[2] = mol.Coil, mol.Coil, mol.Helix

	flattened, offsets, normals := Flatten(control, ss)

	for i := 0; i < 3; i++ {
		if flattened[i] != control[i] {
			t.Errorf("non-sheet residue %d displaced", i)
		}
		if _, ok := offsets[i]; ok {
			t.Errorf("non-sheet residue %d present in offset map", i)
		}
		if !normals[i].IsZero() {
			t.Errorf("non-sheet residue %d has sheet normal %v", i, normals[i])
		}
	}
}

func TestFlattenNormalsConsistent(t *testing.T) {
	control := pleated(8)
	_, _, normals := Flatten(control, allSheet(8))

	// Interior normals must be unit length and all on the same side
	for i := 2; i < 7; i++ {
		l := normals[i].Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("residue %d normal length %v, want 1", i, l)
		}
		if normals[i].Dot(normals[i-1]) < 0 {
			t.Errorf("residue %d normal flipped against neighbor", i)
		}
	}
}

func TestFlattenStructureLengthMismatch(t *testing.T) {
	control := pleated(5)
	flattened, offsets, _ := Flatten(control, allSheet(3))
	for i := range control {
		if flattened[i] != control[i] {
			t.Errorf("residue %d displaced despite length mismatch", i)
		}
	}
	if len(offsets) != 0 {
		t.Errorf("offset map not empty: %v", offsets)
	}
}

func TestSampleNormalsDensity(t *testing.T) {
	_, _, normals := Flatten(pleated(6), allSheet(6))
	out := SampleNormals(normals, 21)
	if len(out) != 21 {
		t.Fatalf("got %d sample normals, want 21", len(out))
	}
	for i, n := range out {
		if n.IsZero() {
			continue
		}
		l := n.Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("sample %d normal length %v, want 1", i, l)
		}
	}
}

func TestApply(t *testing.T) {
	offsets := Offsets{3: {X: 0, Y: 1, Z: 0}}

	shifted := offsets.Apply(3, math.Vec3{X: 5})
	if shifted != (math.Vec3{X: 5, Y: 1}) {
		t.Errorf("Apply(3) = %v, want displaced", shifted)
	}

	unshifted := offsets.Apply(4, math.Vec3{X: 5})
	if unshifted != (math.Vec3{X: 5}) {
		t.Errorf("Apply(4) = %v, want unshifted", unshifted)
	}
}

func TestShift(t *testing.T) {
	offsets := Offsets{0: {Y: 1}, 2: {Y: 2}}
	shifted := offsets.Shift(10)
	if _, ok := shifted[0]; ok {
		t.Error("original key survived shift")
	}
	if shifted[10] != (math.Vec3{Y: 1}) || shifted[12] != (math.Vec3{Y: 2}) {
		t.Errorf("Shift(10) = %v", shifted)
	}
}
