package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/molmesh/internal/config"
	"github.com/Faultbox/molmesh/internal/engine/curve"
	"github.com/Faultbox/molmesh/internal/engine/extrude"
	"github.com/Faultbox/molmesh/internal/engine/molecule"
	"github.com/Faultbox/molmesh/internal/engine/profile"
	"github.com/Faultbox/molmesh/internal/engine/sheet"
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

// entityMesh is one entity's fully generated geometry in entity-local
// indexing: residue indices start at 0, mesh indices at vertex 0, chain
// ranges at residue 0. Concatenation rebases copies into scene space, so a
// cached entityMesh is immutable once built.
type entityMesh struct {
	vertexData    []byte
	vertexCount   int
	tubeIndices   []uint32
	ribbonIndices []uint32

	sidechainData []byte
	ballData      []byte
	stickData     []byte

	chainRanges  []ChainRange
	residueCount int
	sheetOffsets sheet.Offsets
}

// buildEntity runs the full geometry pipeline for one entity. With animOnly
// set, only the animating geometry (backbone ribbon and sidechains) is
// produced; small molecules and base sticks are skipped.
func buildEntity(e *mol.Entity, opts Options, animOnly bool) *entityMesh {
	em := &entityMesh{sheetOffsets: make(sheet.Offsets)}
	mesh := &extrude.Mesh{}

	residueBase := 0
	for ci := range e.Chains {
		chain := &e.Chains[ci]
		n := len(chain.Residues)
		if n == 0 {
			continue
		}

		var chainMesh *extrude.Mesh
		var pts []curve.SplinePoint
		if chain.Kind == mol.NucleicAcid {
			if opts.ShowNucleicAcids {
				chainMesh, pts = buildNucleicChain(chain, opts, residueBase)
			}
		} else {
			chainMesh, pts = buildProteinChain(chain, opts, residueBase, em.sheetOffsets)
		}

		if chainMesh != nil {
			em.chainRanges = append(em.chainRanges, ChainRange{
				EntityID:     e.ID,
				ChainIndex:   ci,
				FirstResidue: residueBase,
				ResidueCount: n,
				Bounds:       boundingSphere(pts),
			})
			mesh.Merge(chainMesh)
		}
		residueBase += n
	}
	em.residueCount = residueBase

	em.vertexData = encodeVertices(mesh.Vertices)
	em.vertexCount = len(mesh.Vertices)
	em.tubeIndices = mesh.TubeIndices
	em.ribbonIndices = mesh.RibbonIndices

	if opts.ShowSidechains && len(e.SidechainBonds) > 0 {
		caps := molecule.SidechainCapsules(e.Sidechains, e.SidechainBonds,
			em.sheetOffsets, opts.Palette.Hydrophobic, opts.Palette.Polar)
		em.sidechainData = encodeCapsules(caps)
	}

	if !animOnly && opts.ShowSmallMolecules {
		var balls []molecule.SphereInstance
		var sticks []molecule.CapsuleInstance
		for i := range e.SmallMolecules {
			b, s := molecule.BallsAndSticks(&e.SmallMolecules[i])
			balls = append(balls, b...)
			sticks = append(sticks, s...)
		}
		em.ballData = encodeSpheres(balls)
		em.stickData = encodeCapsules(sticks)
	}

	if !animOnly && opts.ShowNucleicAcids && len(e.NucleicRings) > 0 {
		sticks := molecule.BaseSticks(e.NucleicRings, opts.Palette.NucleicAcid)
		em.stickData = append(em.stickData, encodeCapsules(sticks)...)
	}

	return em
}

// buildProteinChain generates the ribbon mesh of one protein chain: sheet
// flattening, spline sampling with rotation-minimizing frames, helix-axis
// radial blending and sheet normal override, then extrusion. Sheet
// displacements are merged into offsets under entity-local residue keys.
func buildProteinChain(chain *mol.BackboneChain, opts Options, residueBase int, offsets sheet.Offsets) (*extrude.Mesh, []curve.SplinePoint) {
	control := chain.ControlPoints()
	ss := chain.Structure()

	flattened, chainOffsets, residueNormals := sheet.Flatten(control, ss)
	for k, v := range chainOffsets.Shift(residueBase) {
		offsets[k] = v
	}

	pts := curve.Sample(flattened, opts.SegmentsPerResidue)
	if pts == nil {
		return nil, nil
	}
	curve.PropagateRMF(pts)

	axis := curve.SampleAxis(curve.HelixAxisPoints(flattened), opts.SegmentsPerResidue)

	profiles := make([]profile.Profile, len(control))
	for i := range profiles {
		profiles[i] = profile.Resolve(ss[i], residueBase+i, structureColor(ss[i], opts.Palette))
	}
	samples := profile.Interpolate(profiles, len(pts))

	sheetNormals := sheet.SampleNormals(residueNormals, len(pts))
	profile.BlendNormals(pts, axis, samples, ss, sheetNormals, residueBase)

	return extrude.Extrude(pts, samples, opts.RingVertices), pts
}

// buildNucleicChain generates the backbone ribbon of one nucleic acid chain
// with the cheaper Frenet frame propagation and the fixed nucleic profile.
func buildNucleicChain(chain *mol.BackboneChain, opts Options, residueBase int) (*extrude.Mesh, []curve.SplinePoint) {
	control := chain.ControlPoints()

	pts := curve.Sample(control, opts.SegmentsPerResidue)
	if pts == nil {
		return nil, nil
	}
	curve.PropagateFrenet(pts)

	profiles := make([]profile.Profile, len(control))
	for i := range profiles {
		profiles[i] = profile.ResolveNucleic(residueBase+i, opts.Palette.NucleicAcid)
	}
	samples := profile.Interpolate(profiles, len(pts))

	return extrude.Extrude(pts, samples, opts.RingVertices), pts
}

// structureColor maps a secondary structure type to its palette color.
func structureColor(ss mol.SecondaryStructure, pal config.Palette) [4]float32 {
	switch ss {
	case mol.Helix:
		return pal.Helix
	case mol.Sheet:
		return pal.Sheet
	default:
		return pal.Coil
	}
}

// maxProfilePad is the widest cross-section half-width, added to bounding
// radii so the extruded surface never pokes out of its sphere.
const maxProfilePad = 1.2

// boundingSphere bounds the sampled curve: centroid center, max-distance
// radius, padded by the widest cross-section half-width.
func boundingSphere(pts []curve.SplinePoint) Sphere {
	if len(pts) == 0 {
		return Sphere{}
	}
	var center math.Vec3
	for i := range pts {
		center = center.Add(pts[i].Position)
	}
	center = center.Scale(1 / float32(len(pts)))

	var maxSq float32
	for i := range pts {
		if d := center.DistanceSq(pts[i].Position); d > maxSq {
			maxSq = d
		}
	}
	return Sphere{Center: center, Radius: math32.Sqrt(maxSq) + maxProfilePad}
}
