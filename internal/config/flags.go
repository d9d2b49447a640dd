package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSegments   = flag.Int("segments", 0, "Spline segments per residue")
	flagRingVerts  = flag.Int("ring-verts", 0, "Vertices per cross-section ring")
	flagSidechains = flag.Bool("no-sidechains", false, "Disable sidechain geometry")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSegments > 0 {
		cfg.Geometry.SegmentsPerResidue = *flagSegments
		cfg.Geometry.LODTiers = nil
	}
	if *flagRingVerts > 0 {
		cfg.Geometry.RingVertices = *flagRingVerts
		cfg.Geometry.LODTiers = nil
	}
	if *flagSidechains {
		cfg.Display.ShowSidechains = false
	}
}
