package manim

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Defaults carries the construction-time constants that shapes fall
// back to when no per-shape option overrides them.
type Defaults struct {
	TipLength                   float64 `toml:"tip_length"`
	DotRadius                   float64 `toml:"dot_radius"`
	SmallDotRadius              float64 `toml:"small_dot_radius"`
	DashLength                  float64 `toml:"dash_length"`
	StrokeWidth                 float64 `toml:"stroke_width"`
	ArrowStrokeWidth            float64 `toml:"arrow_stroke_width"`
	ArrowBuff                   float64 `toml:"arrow_buff"`
	MaxTipLengthToLengthRatio   float64 `toml:"max_tip_length_to_length_ratio"`
	MaxStrokeWidthToLengthRatio float64 `toml:"max_stroke_width_to_length_ratio"`
	ArcComponents               int     `toml:"arc_components"`
}

// Config holds the active defaults. Shape construction is a
// single-threaded pipeline, so plain assignment is fine; callers that
// construct shapes concurrently must not reconfigure at the same time.
var Config = DefaultConfig()

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Defaults {
	return Defaults{
		TipLength:                   0.35,
		DotRadius:                   0.08,
		SmallDotRadius:              0.04,
		DashLength:                  0.05,
		StrokeWidth:                 4,
		ArrowStrokeWidth:            6,
		ArrowBuff:                   MedSmallBuff,
		MaxTipLengthToLengthRatio:   0.25,
		MaxStrokeWidthToLengthRatio: 5,
		ArcComponents:               9,
	}
}

// LoadConfig overlays TOML-encoded overrides from r onto the active
// defaults. The merged result is validated before it replaces Config,
// so a bad document leaves the previous configuration in effect.
func LoadConfig(r io.Reader) error {
	d := Config
	if err := toml.NewDecoder(r).Decode(&d); err != nil {
		return fmt.Errorf("manim: decoding config: %w", err)
	}
	if err := d.validate(); err != nil {
		return err
	}
	Config = d
	return nil
}

func (d Defaults) validate() error {
	if d.ArcComponents < 2 {
		return fmt.Errorf("manim: arc_components must be at least 2, got %d", d.ArcComponents)
	}
	for name, v := range map[string]float64{
		"tip_length":                       d.TipLength,
		"dot_radius":                       d.DotRadius,
		"small_dot_radius":                 d.SmallDotRadius,
		"dash_length":                      d.DashLength,
		"max_tip_length_to_length_ratio":   d.MaxTipLengthToLengthRatio,
		"max_stroke_width_to_length_ratio": d.MaxStrokeWidthToLengthRatio,
	} {
		if v <= 0 {
			return fmt.Errorf("manim: %s must be positive, got %g", name, v)
		}
	}
	if d.StrokeWidth < 0 || d.ArrowStrokeWidth < 0 || d.ArrowBuff < 0 {
		return fmt.Errorf("manim: widths and buffers must not be negative")
	}
	return nil
}
