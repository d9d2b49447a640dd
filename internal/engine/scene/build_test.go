package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/molmesh/internal/engine/molecule"
	"github.com/Faultbox/molmesh/internal/mol"
)

func TestBuildEntityNucleicChain(t *testing.T) {
	e := mol.SyntheticNucleicEntity(1, 1, 8)
	opts := testOptions()

	em := buildEntity(&e, opts, false)

	samples := opts.SegmentsPerResidue*(8-1) + 1
	require.Equal(t, samples*opts.RingVertices, em.vertexCount, "nucleic ribbon missing or wrong size")
	require.Len(t, em.chainRanges, 1)
	assert.Equal(t, 8, em.chainRanges[0].ResidueCount)

	// The flat nucleic profile lands entirely in the ribbon partition
	assert.Empty(t, em.tubeIndices)
	assert.NotEmpty(t, em.ribbonIndices)

	// One base stick per ring, carrying its residue index
	require.Equal(t, 8*molecule.CapsuleStride, len(em.stickData))
	got := residueAt(em.stickData, 3, molecule.CapsuleStride, molecule.CapsuleResidueOffset)
	assert.Equal(t, uint32(3), got)
}

func TestBuildEntityNucleicToggleOff(t *testing.T) {
	e := mol.SyntheticNucleicEntity(1, 1, 8)
	opts := testOptions()
	opts.ShowNucleicAcids = false

	em := buildEntity(&e, opts, false)

	assert.Zero(t, em.vertexCount, "hidden nucleic chain still produced a ribbon")
	assert.Empty(t, em.chainRanges)
	assert.Empty(t, em.stickData, "hidden nucleic chain still produced base sticks")
}

func TestBuildEntityAnimationSkipsBaseSticks(t *testing.T) {
	e := mol.SyntheticNucleicEntity(1, 1, 8)
	opts := testOptions()

	em := buildEntity(&e, opts, true)

	assert.Positive(t, em.vertexCount, "backbone ribbon must animate")
	assert.Empty(t, em.stickData)
	assert.Empty(t, em.ballData)
}
