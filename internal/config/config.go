// Package config handles visualization engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Display  DisplayConfig  `yaml:"display"`
	Colors   ColorConfig    `yaml:"colors"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GeometryConfig holds mesh generation quality settings.
type GeometryConfig struct {
	// SegmentsPerResidue is the spline sample multiplier per residue.
	SegmentsPerResidue int `yaml:"segments_per_residue"`
	// RingVertices is the number of vertices per cross-section ring.
	RingVertices int `yaml:"ring_vertices"`
	// LODTiers optionally scale quality by structure size.
	// The first tier whose max_residues is >= the residue count wins;
	// structures larger than every tier use the global settings.
	LODTiers []LODTier `yaml:"lod_tiers"`
}

// LODTier is one discrete quality level keyed by structure size.
type LODTier struct {
	MaxResidues        int `yaml:"max_residues"`
	SegmentsPerResidue int `yaml:"segments_per_residue"`
	RingVertices       int `yaml:"ring_vertices"`
}

// DisplayConfig holds geometry visibility toggles.
type DisplayConfig struct {
	ShowSidechains     bool `yaml:"show_sidechains"`
	ShowSmallMolecules bool `yaml:"show_small_molecules"`
	ShowNucleicAcids   bool `yaml:"show_nucleic_acids"`
}

// ColorConfig holds the per-secondary-structure color palette as hex strings.
type ColorConfig struct {
	Helix       string `yaml:"helix"`
	Sheet       string `yaml:"sheet"`
	Coil        string `yaml:"coil"`
	NucleicAcid string `yaml:"nucleic_acid"`
	Hydrophobic string `yaml:"hydrophobic"`
	Polar       string `yaml:"polar"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{
			SegmentsPerResidue: 8,
			RingVertices:       16,
			LODTiers: []LODTier{
				{MaxResidues: 1000, SegmentsPerResidue: 8, RingVertices: 16},
				{MaxResidues: 5000, SegmentsPerResidue: 6, RingVertices: 12},
				{MaxResidues: 20000, SegmentsPerResidue: 4, RingVertices: 8},
			},
		},
		Display: DisplayConfig{
			ShowSidechains:     true,
			ShowSmallMolecules: true,
			ShowNucleicAcids:   true,
		},
		Colors: ColorConfig{
			Helix:       "#e060a0",
			Sheet:       "#e8c040",
			Coil:        "#40b0e8",
			NucleicAcid: "#50c878",
			Hydrophobic: "#c0c0c0",
			Polar:       "#60d0d0",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// TierFor returns the effective quality settings for a structure of the given
// residue count, falling back to the global settings when no tier matches.
func (g GeometryConfig) TierFor(residueCount int) (segments, ringVertices int) {
	for _, tier := range g.LODTiers {
		if residueCount <= tier.MaxResidues {
			return tier.SegmentsPerResidue, tier.RingVertices
		}
	}
	return g.SegmentsPerResidue, g.RingVertices
}
