// Package extrude sweeps interpolated cross-section profiles along framed
// curve samples, producing vertex and index buffers ready for upload. Indices
// are partitioned into a round "tube" list drawn back-face culled and a flat
// "ribbon" list drawn double-sided, sharing one vertex buffer.
package extrude

// Vertex is one extruded surface vertex. CenterPos stores the curve point the
// vertex was extruded from, letting a renderer reconstruct a pure cylindrical
// normal for round sections independent of the stored surface normal.
type Vertex struct {
	Position     [3]float32
	Normal       [3]float32
	Color        [4]float32
	CenterPos    [3]float32
	ResidueIndex uint32
}

// Byte layout of an encoded Vertex, little-endian float32/uint32.
const (
	VertexStride        = 56
	VertexResidueOffset = 52
)

// Mesh is the extruded geometry of one or more chains.
type Mesh struct {
	Vertices      []Vertex
	TubeIndices   []uint32
	RibbonIndices []uint32
}

// Merge appends other's geometry, rebasing its indices past the existing
// vertices. Residue indices are left untouched; callers bake chain-local
// residue bases into the profiles before extruding.
func (m *Mesh) Merge(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.TubeIndices {
		m.TubeIndices = append(m.TubeIndices, idx+base)
	}
	for _, idx := range other.RibbonIndices {
		m.RibbonIndices = append(m.RibbonIndices, idx+base)
	}
}
