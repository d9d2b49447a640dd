// Package scene owns the background geometry pipeline: a worker goroutine
// that turns entity snapshots into concatenated GPU-ready buffers, a
// per-entity mesh cache keyed by version, and lock-free triple-buffered
// handoff of finished scenes back to the render thread.
package scene

import (
	"github.com/Faultbox/molmesh/internal/config"
	"github.com/Faultbox/molmesh/internal/engine/sheet"
	"github.com/Faultbox/molmesh/pkg/math"
)

// Options are the generation settings a request was built under. The struct
// is comparable; any change between consecutive rebuilds flushes the mesh
// cache, since cached buffers bake the old settings in.
type Options struct {
	SegmentsPerResidue int
	RingVertices       int
	ShowSidechains     bool
	ShowSmallMolecules bool
	ShowNucleicAcids   bool
	Palette            config.Palette
}

// OptionsFromConfig derives generation options from the loaded configuration,
// applying the LOD tier for the given total residue count.
func OptionsFromConfig(cfg *config.Config, residueCount int) Options {
	segments, ringVerts := cfg.Geometry.TierFor(residueCount)
	return Options{
		SegmentsPerResidue: segments,
		RingVertices:       ringVerts,
		ShowSidechains:     cfg.Display.ShowSidechains,
		ShowSmallMolecules: cfg.Display.ShowSmallMolecules,
		ShowNucleicAcids:   cfg.Display.ShowNucleicAcids,
		Palette:            cfg.Colors.ResolvePalette(),
	}
}

// Sphere bounds a chain for picking and culling.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Contains reports whether a point lies inside the sphere.
func (s Sphere) Contains(p math.Vec3) bool {
	return s.Center.DistanceSq(p) <= s.Radius*s.Radius
}

// ChainRange locates one chain's residues inside the concatenated scene.
// FirstResidue is a scene-global residue index after concatenation.
type ChainRange struct {
	EntityID     uint64
	ChainIndex   int
	FirstResidue int
	ResidueCount int
	Bounds       Sphere
}

// EntityRange locates one entity's residue block inside the concatenated
// scene, in request order.
type EntityRange struct {
	EntityID     uint64
	FirstResidue int
	ResidueCount int
}

// PreparedScene is one complete generation result, ready for upload. All
// buffers are little-endian encoded at the documented strides; indices are
// scene-global. The receiving side owns the buffers outright.
type PreparedScene struct {
	Revision uint64

	VertexData    []byte
	VertexCount   int
	TubeIndices   []uint32
	RibbonIndices []uint32

	SidechainData []byte
	BallData      []byte
	StickData     []byte

	ChainRanges  []ChainRange
	EntityRanges []EntityRange

	// SheetOffsets carries each entity's sheet displacement map (keyed by
	// entity-local residue index) so callers placing extra geometry at raw
	// atom positions can stay attached to the flattened backbone.
	SheetOffsets map[uint64]sheet.Offsets
}

// PreparedAnimationFrame is the reduced per-frame result for animating
// structures: backbone mesh and sidechains only, no cache involvement.
type PreparedAnimationFrame struct {
	Revision uint64

	VertexData    []byte
	VertexCount   int
	TubeIndices   []uint32
	RibbonIndices []uint32

	SidechainData []byte
}
