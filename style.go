package manim

import "github.com/lucasb-eyer/go-colorful"

// Style holds the stroke and fill attributes a renderer reads off a
// shape. The engine only derives style values (stroke width from
// length, tip colors from the parent curve); interpreting them is the
// renderer's job.
type Style struct {
	StrokeColor   colorful.Color
	StrokeWidth   float64
	StrokeOpacity float64
	FillColor     colorful.Color
	FillOpacity   float64
}

// Default palette.
var (
	White  = hex("#FFFFFF")
	Black  = hex("#000000")
	Red    = hex("#FC6255")
	Blue   = hex("#58C4DD")
	Green  = hex("#83C167")
	Yellow = hex("#FFFF00")
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("manim: bad palette constant " + s)
	}
	return c
}

// DefaultStyle returns the style every shape starts from: white stroke
// of the configured width, no fill.
func DefaultStyle() Style {
	return Style{
		StrokeColor:   White,
		StrokeWidth:   Config.StrokeWidth,
		StrokeOpacity: 1,
		FillColor:     White,
		FillOpacity:   0,
	}
}
