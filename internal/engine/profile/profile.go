// Package profile maps secondary structure classification to cross-section
// shape descriptors and interpolates them along the sampled curve, producing
// the seamless blending between helix, sheet and coil geometry.
package profile

import (
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

// Profile describes the cross-section swept at one residue or sample.
// All numeric fields interpolate smoothly between residues; ResidueIndex
// snaps at the halfway point so every vertex belongs to exactly one residue.
type Profile struct {
	Width        float32
	Thickness    float32
	Roundness    float32 // 1 = ellipse, 0 = flat rectangle
	RadialBlend  float32 // blend weight toward the helix-axis radial normal
	Color        [4]float32
	ResidueIndex int
}

// shape holds the constant cross-section parameters for one structure type.
type shape struct {
	width, thickness, roundness, radialBlend float32
}

// Per-type constants. The variant set is closed; dispatch is a switch over
// the enum plus this table.
var (
	coilShape    = shape{width: 0.5, thickness: 0.5, roundness: 1.0, radialBlend: 0}
	helixShape   = shape{width: 2.2, thickness: 0.6, roundness: 0, radialBlend: 1.0}
	sheetShape   = shape{width: 2.4, thickness: 0.6, roundness: 0, radialBlend: 0}
	nucleicShape = shape{width: 1.8, thickness: 0.5, roundness: 0, radialBlend: 0}
)

// Resolve returns the cross-section profile for one residue.
func Resolve(ss mol.SecondaryStructure, residueIndex int, color [4]float32) Profile {
	var s shape
	switch ss {
	case mol.Helix:
		s = helixShape
	case mol.Sheet:
		s = sheetShape
	default:
		s = coilShape
	}
	return Profile{
		Width:        s.width,
		Thickness:    s.thickness,
		Roundness:    s.roundness,
		RadialBlend:  s.radialBlend,
		Color:        color,
		ResidueIndex: residueIndex,
	}
}

// ResolveNucleic returns the fixed ribbon profile for a nucleic acid residue.
func ResolveNucleic(residueIndex int, color [4]float32) Profile {
	return Profile{
		Width:        nucleicShape.width,
		Thickness:    nucleicShape.thickness,
		Roundness:    nucleicShape.roundness,
		RadialBlend:  nucleicShape.radialBlend,
		Color:        color,
		ResidueIndex: residueIndex,
	}
}

// Interpolate maps each of sampleCount curve samples to a fractional residue
// position and blends the numeric fields of the bracketing residue profiles.
// ResidueIndex snaps at the t=0.5 boundary instead of blending.
func Interpolate(profiles []Profile, sampleCount int) []Profile {
	rc := len(profiles)
	if rc == 0 || sampleCount <= 0 {
		return nil
	}

	out := make([]Profile, sampleCount)
	if rc == 1 || sampleCount == 1 {
		for i := range out {
			out[i] = profiles[0]
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
		a, b := profiles[i0], profiles[i0+1]

		p := Profile{
			Width:       math.Lerp(a.Width, b.Width, t),
			Thickness:   math.Lerp(a.Thickness, b.Thickness, t),
			Roundness:   math.Lerp(a.Roundness, b.Roundness, t),
			RadialBlend: math.Lerp(a.RadialBlend, b.RadialBlend, t),
		}
		for c := 0; c < 4; c++ {
			p.Color[c] = math.Lerp(a.Color[c], b.Color[c], t)
		}
		if t < 0.5 {
			p.ResidueIndex = a.ResidueIndex
		} else {
			p.ResidueIndex = b.ResidueIndex
		}
		out[s] = p
	}
	return out
}
