// Package mol defines the structural data model consumed by the geometry engine:
// backbone chains, secondary structure, sidechain atoms, bonds, small molecules
// and nucleic acid descriptors. All types are plain data; parsing and secondary
// structure detection happen upstream.
package mol

import (
	"github.com/Faultbox/molmesh/pkg/math"
)

// SecondaryStructure classifies one residue of a protein chain.
type SecondaryStructure uint8

// Secondary structure types.
const (
	Coil SecondaryStructure = iota
	Helix
	Sheet
)

// String returns the name of the secondary structure type.
func (s SecondaryStructure) String() string {
	switch s {
	case Helix:
		return "helix"
	case Sheet:
		return "sheet"
	default:
		return "coil"
	}
}

// ChainKind distinguishes protein from nucleic acid backbones.
type ChainKind uint8

// Chain kinds.
const (
	Protein ChainKind = iota
	NucleicAcid
)

// BackboneResidue holds the backbone atom positions of one residue.
// For protein chains all three atoms are set; for nucleic acid chains
// CA holds the phosphorus position and N/C are unused.
type BackboneResidue struct {
	N  math.Vec3
	CA math.Vec3
	C  math.Vec3
}

// BackboneChain is an immutable snapshot of one chain's backbone.
// SS, when non-nil, must have one entry per residue; a nil SS means
// no classification was supplied and every residue is treated as coil.
type BackboneChain struct {
	Kind     ChainKind
	Residues []BackboneResidue
	SS       []SecondaryStructure
}

// ControlPoints returns the spline control points of the chain:
// Cα positions for proteins, phosphorus positions for nucleic acids.
func (c *BackboneChain) ControlPoints() []math.Vec3 {
	pts := make([]math.Vec3, len(c.Residues))
	for i, r := range c.Residues {
		pts[i] = r.CA
	}
	return pts
}

// Structure returns the per-residue secondary structure, substituting
// all-coil when none was supplied.
func (c *BackboneChain) Structure() []SecondaryStructure {
	if c.SS != nil {
		return c.SS
	}
	return make([]SecondaryStructure, len(c.Residues))
}

// SidechainAtom is one non-backbone atom attached to a residue.
// ResidueIndex is entity-local, counting residues across chains in order.
type SidechainAtom struct {
	Position     math.Vec3
	Hydrophobic  bool
	ResidueIndex int
	Name         string
}

// Bond connects two atoms by index into the owning atom list.
type Bond struct {
	A, B int
}

// SmallMoleculeAtom is one atom of a ligand or other small molecule.
type SmallMoleculeAtom struct {
	Position     math.Vec3
	Radius       float32
	Color        [4]float32
	ResidueIndex int
}

// SmallMolecule is a ligand rendered as balls and sticks.
type SmallMolecule struct {
	Atoms []SmallMoleculeAtom
	Bonds []Bond
}

// NucleicRing describes one nucleic acid base for ladder-stick geometry:
// a stick is drawn from the backbone attachment point to the ring centroid.
type NucleicRing struct {
	ResidueIndex   int
	BackboneAttach math.Vec3
	Centroid       math.Vec3
}

// Entity is one independently versioned unit of renderable content.
// The version counter is bumped by the owner whenever any contained
// data changes; the mesh cache regenerates on version mismatch.
type Entity struct {
	ID      uint64
	Version uint64

	Chains         []BackboneChain
	Sidechains     []SidechainAtom
	SidechainBonds []Bond
	SmallMolecules []SmallMolecule
	NucleicRings   []NucleicRing
}

// ResidueCount returns the total residue count across all chains.
func (e *Entity) ResidueCount() int {
	n := 0
	for i := range e.Chains {
		n += len(e.Chains[i].Residues)
	}
	return n
}
