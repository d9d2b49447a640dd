package mol

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/pkg/math"
)

// Synthetic structure generators for benchmarks and tests.

// caSpacing is the canonical Cα-Cα distance in a protein chain.
const caSpacing = 3.8

// StraightChain builds a straight protein chain of n residues along +X
// with Cα points spaced 3.8 units apart and the given uniform structure.
func StraightChain(n int, ss SecondaryStructure) BackboneChain {
	residues := make([]BackboneResidue, n)
	types := make([]SecondaryStructure, n)
	for i := range residues {
		ca := math.Vec3{X: float32(i) * caSpacing}
		residues[i] = BackboneResidue{
			N:  ca.Add(math.Vec3{X: -1.2, Y: 0.4}),
			CA: ca,
			C:  ca.Add(math.Vec3{X: 1.2, Y: 0.4}),
		}
		types[i] = ss
	}
	return BackboneChain{Kind: Protein, Residues: residues, SS: types}
}

// HelicalChain builds an idealized alpha-helical protein chain of n residues:
// 100 degrees of turn and 1.5 units of rise per residue on a 2.3 unit radius.
func HelicalChain(n int) BackboneChain {
	const (
		radius   = 2.3
		risePer  = 1.5
		anglePer = 100.0 * math32.Pi / 180.0
	)
	residues := make([]BackboneResidue, n)
	types := make([]SecondaryStructure, n)
	for i := range residues {
		a := float32(i) * anglePer
		ca := math.Vec3{
			X: radius * math32.Cos(a),
			Y: float32(i) * risePer,
			Z: radius * math32.Sin(a),
		}
		out := math.Vec3{X: math32.Cos(a), Z: math32.Sin(a)}
		residues[i] = BackboneResidue{
			N:  ca.AddScaled(out, -0.5),
			CA: ca,
			C:  ca.AddScaled(out, 0.5),
		}
		types[i] = Helix
	}
	return BackboneChain{Kind: Protein, Residues: residues, SS: types}
}

// phosphateSpacing is the canonical P-P distance along a nucleic acid strand.
const phosphateSpacing = 6.5

// NucleicChain builds a straight single-strand nucleic acid backbone of n
// residues along +X, phosphorus positions in CA.
func NucleicChain(n int) BackboneChain {
	residues := make([]BackboneResidue, n)
	for i := range residues {
		residues[i] = BackboneResidue{CA: math.Vec3{X: float32(i) * phosphateSpacing}}
	}
	return BackboneChain{Kind: NucleicAcid, Residues: residues}
}

// SyntheticNucleicEntity builds an entity with one nucleic acid chain and one
// base ring per residue.
func SyntheticNucleicEntity(id, version uint64, residues int) Entity {
	chain := NucleicChain(residues)
	rings := make([]NucleicRing, residues)
	for i := range rings {
		attach := chain.Residues[i].CA
		rings[i] = NucleicRing{
			ResidueIndex:   i,
			BackboneAttach: attach,
			Centroid:       attach.Add(math.Vec3{Y: 4.5}),
		}
	}
	return Entity{
		ID:           id,
		Version:      version,
		Chains:       []BackboneChain{chain},
		NucleicRings: rings,
	}
}

// SyntheticEntity builds an entity with one mixed-structure chain and a
// sidechain stub per residue, useful for exercising the full pipeline.
func SyntheticEntity(id, version uint64, residues int) Entity {
	chain := StraightChain(residues, Coil)
	for i := range chain.SS {
		switch {
		case i%10 < 4:
			chain.SS[i] = Helix
		case i%10 < 7:
			chain.SS[i] = Sheet
		}
	}

	atoms := make([]SidechainAtom, 0, residues)
	bonds := make([]Bond, 0, residues)
	for i := range chain.Residues {
		atoms = append(atoms, SidechainAtom{
			Position:     chain.Residues[i].CA.Add(math.Vec3{Y: 1.5}),
			Hydrophobic:  i%2 == 0,
			ResidueIndex: i,
			Name:         "CB",
		})
		if i > 0 {
			bonds = append(bonds, Bond{A: i - 1, B: i})
		}
	}

	return Entity{
		ID:             id,
		Version:        version,
		Chains:         []BackboneChain{chain},
		Sidechains:     atoms,
		SidechainBonds: bonds,
	}
}
