// Package sheet computes the planarizing correction applied to beta-sheet
// backbone residues. Real pleated sheets zigzag around a common plane; pulling
// the control points toward that plane keeps the extruded ribbon flat. The
// per-residue displacement map is shared with sidechain geometry so atoms
// built from raw positions move together with the flattened backbone.
package sheet

import (
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

// Offsets maps residue index to the displacement applied to that residue's
// backbone control point. Residues outside sheet runs are absent.
type Offsets map[int]math.Vec3

// pull is the fraction of the distance toward the neighbor midpoint that a
// sheet residue is displaced. 0.5 halves the pleat amplitude per pass, which
// reads as flat at typical ribbon widths without collapsing strand twist.
const pull = 0.5

// Flatten identifies maximal contiguous sheet runs and computes a planarizing
// displacement for each residue in them. It returns the adjusted control
// points, the sparse displacement map, and one sheet normal per residue
// (zero for non-sheet residues) for the extruder's normal override.
func Flatten(control []math.Vec3, ss []mol.SecondaryStructure) ([]math.Vec3, Offsets, []math.Vec3) {
	n := len(control)
	flattened := make([]math.Vec3, n)
	copy(flattened, control)
	offsets := make(Offsets)
	normals := make([]math.Vec3, n)

	if n == 0 || len(ss) != n {
		return flattened, offsets, normals
	}

	for start := 0; start < n; {
		if ss[start] != mol.Sheet {
			start++
			continue
		}
		end := start
		for end+1 < n && ss[end+1] == mol.Sheet {
			end++
		}
		flattenRun(control, flattened, offsets, normals, start, end)
		start = end + 1
	}

	return flattened, offsets, normals
}

// flattenRun processes one contiguous sheet run [start, end].
func flattenRun(control, flattened []math.Vec3, offsets Offsets, normals []math.Vec3, start, end int) {
	n := len(control)

	for i := start; i <= end; i++ {
		lo := i - 1
		if lo < 0 {
			lo = 0
		}
		hi := i + 1
		if hi > n-1 {
			hi = n - 1
		}

		// Displace toward the neighbor midpoint; endpoints of the whole
		// chain have only one neighbor and keep zero displacement.
		var d math.Vec3
		if lo != i && hi != i {
			mid := control[lo].Add(control[hi]).Scale(0.5)
			d = mid.Sub(control[i]).Scale(pull)
		}
		flattened[i] = control[i].Add(d)
		offsets[i] = d

		// The pleat bisector doubles as the sheet plane normal
		normals[i] = control[lo].Sub(control[i]).Add(control[hi].Sub(control[i])).Normalize()
	}

	// Keep normals pointing to one side of the strand; the raw bisector
	// alternates with the pleat.
	for i := start + 1; i <= end; i++ {
		if normals[i].Dot(normals[i-1]) < 0 {
			normals[i] = normals[i].Negate()
		}
	}
}

// SampleNormals expands per-residue sheet normals to per-sample normals at
// the curve sampling density, blending between bracketing residues.
func SampleNormals(residueNormals []math.Vec3, sampleCount int) []math.Vec3 {
	rc := len(residueNormals)
	if rc == 0 || sampleCount <= 0 {
		return nil
	}
	out := make([]math.Vec3, sampleCount)
	if rc == 1 || sampleCount == 1 {
		for i := range out {
			out[i] = residueNormals[0]
		}
		return out
	}

	for s := 0; s < sampleCount; s++ {
		f := float32(s) * float32(rc-1) / float32(sampleCount-1)
		i0 := int(f)
		if i0 > rc-2 {
			i0 = rc - 2
		}
		t := f - float32(i0)
		blended := residueNormals[i0].Lerp(residueNormals[i0+1], t)
		if !blended.IsZero() {
			blended = blended.Normalize()
		}
		out[s] = blended
	}
	return out
}

// Apply shifts a position by the displacement of its residue, if any.
// Sidechain and bond geometry must use this for residues in the map or they
// visually detach from the flattened backbone.
func (o Offsets) Apply(residueIndex int, pos math.Vec3) math.Vec3 {
	if d, ok := o[residueIndex]; ok {
		return pos.Add(d)
	}
	return pos
}

// Shift returns a copy of the map with all residue keys moved by base,
// used when concatenating chains into entity-local residue indexing.
func (o Offsets) Shift(base int) Offsets {
	if base == 0 {
		return o
	}
	out := make(Offsets, len(o))
	for k, v := range o {
		out[k+base] = v
	}
	return out
}
