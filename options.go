package manim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Option customizes shape construction. Every constructor applies the
// options it understands to an immutable per-shape configuration before
// generating any geometry; options a shape has no use for are ignored.
type Option func(*shapeConfig)

type shapeConfig struct {
	buff           float64
	pathArc        float64
	radius         float64
	hasRadius      bool
	angle          float64
	hasAngle       bool
	startAngle     float64
	hasStartAngle  bool
	arcCenter      mgl64.Vec3
	numComponents  int
	tipLength      float64
	strokeWidth    float64
	hasStrokeWidth bool
	color          colorful.Color
	hasColor       bool
	maxTipRatio    float64
	maxStrokeRatio float64
	dashLength     float64
	dashSpaceRatio float64
}

func makeConfig(opts []Option) shapeConfig {
	cfg := shapeConfig{
		numComponents:  Config.ArcComponents,
		tipLength:      Config.TipLength,
		radius:         1,
		maxTipRatio:    Config.MaxTipLengthToLengthRatio,
		maxStrokeRatio: Config.MaxStrokeWidthToLengthRatio,
		dashLength:     Config.DashLength,
		dashSpaceRatio: 0.5,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBuff insets the curve by a fixed length from both endpoints.
func WithBuff(buff float64) Option {
	return func(c *shapeConfig) { c.buff = buff }
}

// WithPathArc bends a line's body into an arc with the given sweep
// angle.
func WithPathArc(angle float64) Option {
	return func(c *shapeConfig) { c.pathArc = angle }
}

// WithRadius sets an arc or circle radius. For arcs between points a
// negative radius bows the arc the other way.
func WithRadius(radius float64) Option {
	return func(c *shapeConfig) { c.radius = radius; c.hasRadius = true }
}

// WithAngle sets an arc's sweep angle.
func WithAngle(angle float64) Option {
	return func(c *shapeConfig) { c.angle = angle; c.hasAngle = true }
}

// WithStartAngle sets the angle a regular polygon's first vertex (or an
// arc's first anchor) starts from.
func WithStartAngle(angle float64) Option {
	return func(c *shapeConfig) { c.startAngle = angle; c.hasStartAngle = true }
}

// WithArcCenter positions an arc or circle's center.
func WithArcCenter(center mgl64.Vec3) Option {
	return func(c *shapeConfig) { c.arcCenter = center }
}

// WithNumComponents sets the inclusive angular sample count of arc
// generation. Wider sweeps need more components; fewer than two produce
// a degenerate empty path.
func WithNumComponents(n int) Option {
	return func(c *shapeConfig) { c.numComponents = n }
}

// WithTipLength sets the arrowhead length of tip-bearing curves.
func WithTipLength(length float64) Option {
	return func(c *shapeConfig) { c.tipLength = length }
}

// WithStrokeWidth sets the initial stroke width.
func WithStrokeWidth(width float64) Option {
	return func(c *shapeConfig) { c.strokeWidth = width; c.hasStrokeWidth = true }
}

// WithColor sets the stroke color (and fill color where the shape is
// filled).
func WithColor(color colorful.Color) Option {
	return func(c *shapeConfig) { c.color = color; c.hasColor = true }
}

// WithMaxTipRatio caps the tip length at the given fraction of the
// curve length.
func WithMaxTipRatio(ratio float64) Option {
	return func(c *shapeConfig) { c.maxTipRatio = ratio }
}

// WithMaxStrokeRatio caps the stroke width at the given fraction of the
// curve length.
func WithMaxStrokeRatio(ratio float64) Option {
	return func(c *shapeConfig) { c.maxStrokeRatio = ratio }
}

// WithDashLength sets the dash length of dashed lines.
func WithDashLength(length float64) Option {
	return func(c *shapeConfig) { c.dashLength = length }
}

// WithDashSpaceRatio sets the drawn fraction of each dash period, in
// (0, 1].
func WithDashSpaceRatio(ratio float64) Option {
	return func(c *shapeConfig) { c.dashSpaceRatio = ratio }
}
