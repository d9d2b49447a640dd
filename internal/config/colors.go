package config

import (
	"fmt"
	"strconv"
)

// RGBA is a normalized float color, packed straight into vertex buffers.
type RGBA = [4]float32

// ParseHexColor parses a "#rrggbb" or "#rrggbbaa" hex string.
func ParseHexColor(s string) (RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("color %q: missing # prefix", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// Palette is the resolved per-type color table handed to the geometry core.
type Palette struct {
	Helix       RGBA
	Sheet       RGBA
	Coil        RGBA
	NucleicAcid RGBA
	Hydrophobic RGBA
	Polar       RGBA
}

// ResolvePalette parses all configured colors. Invalid entries fall back to
// the corresponding default.
func (c ColorConfig) ResolvePalette() Palette {
	def := Default().Colors
	parse := func(s, fallback string) RGBA {
		if col, err := ParseHexColor(s); err == nil {
			return col
		}
		col, _ := ParseHexColor(fallback)
		return col
	}
	return Palette{
		Helix:       parse(c.Helix, def.Helix),
		Sheet:       parse(c.Sheet, def.Sheet),
		Coil:        parse(c.Coil, def.Coil),
		NucleicAcid: parse(c.NucleicAcid, def.NucleicAcid),
		Hydrophobic: parse(c.Hydrophobic, def.Hydrophobic),
		Polar:       parse(c.Polar, def.Polar),
	}
}
