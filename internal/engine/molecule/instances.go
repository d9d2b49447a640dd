// Package molecule builds the instanced auxiliary geometry around the ribbon:
// sidechain capsules, small-molecule balls and sticks, and nucleic acid base
// sticks. Instances are plain records a renderer expands on the GPU; no
// triangle geometry is generated here.
package molecule

import (
	"github.com/Faultbox/molmesh/internal/engine/sheet"
	"github.com/Faultbox/molmesh/internal/mol"
)

// CapsuleInstance is one capsule (cylinder with hemispherical ends) between
// two points, used for sidechain bonds and molecule sticks.
type CapsuleInstance struct {
	Start        [3]float32
	End          [3]float32
	Radius       float32
	Color        [4]float32
	ResidueIndex uint32
}

// SphereInstance is one ball, used for small-molecule atoms.
type SphereInstance struct {
	Center       [3]float32
	Radius       float32
	Color        [4]float32
	ResidueIndex uint32
}

// Byte layouts of encoded instances, little-endian float32/uint32.
const (
	CapsuleStride        = 48
	CapsuleResidueOffset = 44
	SphereStride         = 36
	SphereResidueOffset  = 32
)

// Default radii.
const (
	sidechainRadius = 0.25
	stickRadius     = 0.18
	baseStickRadius = 0.3
)

// SidechainCapsules builds one capsule per sidechain bond. Atom positions are
// shifted by the sheet displacement of their residue so sidechains stay
// attached to the flattened backbone. Colors split by hydrophobicity.
func SidechainCapsules(atoms []mol.SidechainAtom, bonds []mol.Bond, offsets sheet.Offsets, hydrophobic, polar [4]float32) []CapsuleInstance {
	out := make([]CapsuleInstance, 0, len(bonds))
	for _, b := range bonds {
		if b.A < 0 || b.B < 0 || b.A >= len(atoms) || b.B >= len(atoms) {
			continue
		}
		a, c := atoms[b.A], atoms[b.B]

		color := polar
		if a.Hydrophobic {
			color = hydrophobic
		}

		out = append(out, CapsuleInstance{
			Start:        offsets.Apply(a.ResidueIndex, a.Position).Array(),
			End:          offsets.Apply(c.ResidueIndex, c.Position).Array(),
			Radius:       sidechainRadius,
			Color:        color,
			ResidueIndex: uint32(a.ResidueIndex),
		})
	}
	return out
}

// BallsAndSticks builds sphere instances for a small molecule's atoms and
// capsule instances for its bonds. Stick colors take the first atom's color.
func BallsAndSticks(sm *mol.SmallMolecule) ([]SphereInstance, []CapsuleInstance) {
	balls := make([]SphereInstance, 0, len(sm.Atoms))
	for _, a := range sm.Atoms {
		balls = append(balls, SphereInstance{
			Center:       a.Position.Array(),
			Radius:       a.Radius,
			Color:        a.Color,
			ResidueIndex: uint32(a.ResidueIndex),
		})
	}

	sticks := make([]CapsuleInstance, 0, len(sm.Bonds))
	for _, b := range sm.Bonds {
		if b.A < 0 || b.B < 0 || b.A >= len(sm.Atoms) || b.B >= len(sm.Atoms) {
			continue
		}
		a, c := sm.Atoms[b.A], sm.Atoms[b.B]
		sticks = append(sticks, CapsuleInstance{
			Start:        a.Position.Array(),
			End:          c.Position.Array(),
			Radius:       stickRadius,
			Color:        a.Color,
			ResidueIndex: uint32(a.ResidueIndex),
		})
	}
	return balls, sticks
}

// BaseSticks builds the nucleic acid base ladder: one capsule per base from
// its backbone attachment point to the ring centroid.
func BaseSticks(rings []mol.NucleicRing, color [4]float32) []CapsuleInstance {
	out := make([]CapsuleInstance, 0, len(rings))
	for _, r := range rings {
		out = append(out, CapsuleInstance{
			Start:        r.BackboneAttach.Array(),
			End:          r.Centroid.Array(),
			Radius:       baseStickRadius,
			Color:        color,
			ResidueIndex: uint32(r.ResidueIndex),
		})
	}
	return out
}
