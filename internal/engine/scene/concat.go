package scene

import (
	"github.com/Faultbox/molmesh/internal/engine/extrude"
	"github.com/Faultbox/molmesh/internal/engine/molecule"
	"github.com/Faultbox/molmesh/internal/engine/sheet"
)

// entityResult pairs an entity ID with its generated geometry, in request
// order.
type entityResult struct {
	id   uint64
	mesh *entityMesh
}

// concatScene joins entity meshes into one scene in request order, rebasing
// mesh indices past preceding vertices and residue indices past preceding
// residues. Entity buffers are copied, never mutated, so cached geometry
// stays valid for the next rebuild. The output is deterministic: the same
// inputs in the same order produce byte-identical buffers.
func concatScene(results []entityResult) *PreparedScene {
	ps := &PreparedScene{
		SheetOffsets: make(map[uint64]sheet.Offsets, len(results)),
	}

	var vertexBase uint32
	var residueBase uint32
	for _, r := range results {
		em := r.mesh

		ps.VertexData = appendRebased(ps.VertexData, em.vertexData,
			extrude.VertexStride, extrude.VertexResidueOffset, residueBase)
		ps.TubeIndices = appendRebasedIndices(ps.TubeIndices, em.tubeIndices, vertexBase)
		ps.RibbonIndices = appendRebasedIndices(ps.RibbonIndices, em.ribbonIndices, vertexBase)

		ps.SidechainData = appendRebased(ps.SidechainData, em.sidechainData,
			molecule.CapsuleStride, molecule.CapsuleResidueOffset, residueBase)
		ps.BallData = appendRebased(ps.BallData, em.ballData,
			molecule.SphereStride, molecule.SphereResidueOffset, residueBase)
		ps.StickData = appendRebased(ps.StickData, em.stickData,
			molecule.CapsuleStride, molecule.CapsuleResidueOffset, residueBase)

		for _, cr := range em.chainRanges {
			cr.FirstResidue += int(residueBase)
			ps.ChainRanges = append(ps.ChainRanges, cr)
		}
		ps.EntityRanges = append(ps.EntityRanges, EntityRange{
			EntityID:     r.id,
			FirstResidue: int(residueBase),
			ResidueCount: em.residueCount,
		})
		ps.SheetOffsets[r.id] = em.sheetOffsets

		ps.VertexCount += em.vertexCount
		vertexBase += uint32(em.vertexCount)
		residueBase += uint32(em.residueCount)
	}

	return ps
}

// concatFrame joins the animating geometry of entity meshes the same way,
// dropping the static extras a full scene carries.
func concatFrame(meshes []*entityMesh) *PreparedAnimationFrame {
	pf := &PreparedAnimationFrame{}

	var vertexBase uint32
	var residueBase uint32
	for _, em := range meshes {
		pf.VertexData = appendRebased(pf.VertexData, em.vertexData,
			extrude.VertexStride, extrude.VertexResidueOffset, residueBase)
		pf.TubeIndices = appendRebasedIndices(pf.TubeIndices, em.tubeIndices, vertexBase)
		pf.RibbonIndices = appendRebasedIndices(pf.RibbonIndices, em.ribbonIndices, vertexBase)
		pf.SidechainData = appendRebased(pf.SidechainData, em.sidechainData,
			molecule.CapsuleStride, molecule.CapsuleResidueOffset, residueBase)

		pf.VertexCount += em.vertexCount
		vertexBase += uint32(em.vertexCount)
		residueBase += uint32(em.residueCount)
	}

	return pf
}
