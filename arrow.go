package manim

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ArrowTip is the triangular decoration spliced onto the directional
// end of an open curve. Its first anchor is the apex (the tip point);
// Base is the midpoint of the opposite side, where the curve body
// attaches.
type ArrowTip struct {
	Polygon
}

// NewArrowTip returns an unoriented tip of the given length, pointing
// left (start angle π), filled and strokeless. A zero length uses the
// configured default.
func NewArrowTip(length float64) *ArrowTip {
	if length == 0 {
		length = Config.TipLength
	}
	t := &ArrowTip{}
	t.initPolygon(CompassDirections(3, Left))
	t.style.FillOpacity = 1
	t.style.StrokeWidth = 0
	t.SetWidth(length, false)
	t.SetHeight(length, true)
	return t
}

// Base returns the tip's attachment point, halfway along its outline:
// the midpoint of the side opposite the apex.
func (t *ArrowTip) Base() mgl64.Vec3 {
	return t.points.PointFromProportion(0.5)
}

// TipPoint returns the apex, the tip's first anchor.
func (t *ArrowTip) TipPoint() mgl64.Vec3 {
	return t.points.Start()
}

// Vector returns the apex relative to the base.
func (t *ArrowTip) Vector() mgl64.Vec3 {
	return t.TipPoint().Sub(t.Base())
}

// Angle returns the direction the tip points in.
func (t *ArrowTip) Angle() float64 {
	return AngleOfVector(t.Vector())
}

// Length returns the base-to-apex distance.
func (t *ArrowTip) Length() float64 {
	return t.Vector().Len()
}

// Arrow is a line with an arrowhead whose tip length and stroke width
// follow the curve length under two capped-ratio policies: tips shrink
// proportionally on very short arrows but never grow past the
// configured length, and likewise for stroke width.
type Arrow struct {
	Line

	// MaxTipLengthToLengthRatio caps the tip length at this fraction of
	// the arrow length.
	MaxTipLengthToLengthRatio float64
	// MaxStrokeWidthToLengthRatio caps the stroke width at this
	// fraction of the arrow length.
	MaxStrokeWidthToLengthRatio float64

	initialStrokeWidth float64
}

// NewArrow returns an arrow from start to end. Unless overridden it is
// buffed by the configured arrow buffer and drawn with the configured
// arrow stroke width.
func NewArrow(start, end Endpoint, opts ...Option) *Arrow {
	cfg := makeConfig(opts)
	a := &Arrow{
		MaxTipLengthToLengthRatio:   cfg.maxTipRatio,
		MaxStrokeWidthToLengthRatio: cfg.maxStrokeRatio,
	}
	if !optionSetsBuff(opts) {
		cfg.buff = Config.ArrowBuff
	}
	if !cfg.hasStrokeWidth {
		cfg.strokeWidth = Config.ArrowStrokeWidth
		cfg.hasStrokeWidth = true
	}
	a.initLine(start, end, cfg)
	a.initialStrokeWidth = a.style.StrokeWidth
	a.addTip(a.defaultTipLength(), false)
	a.setStrokeWidthFromLength()
	return a
}

// optionSetsBuff reports whether any option touches the buffer, so the
// arrow's own default does not clobber an explicit WithBuff(0).
func optionSetsBuff(opts []Option) bool {
	probe := shapeConfig{buff: math.NaN()}
	for _, opt := range opts {
		opt(&probe)
	}
	return !math.IsNaN(probe.buff)
}

// defaultTipLength caps the configured tip length on short arrows.
func (a *Arrow) defaultTipLength() float64 {
	return math.Min(a.TipLength, a.MaxTipLengthToLengthRatio*a.Length())
}

func (a *Arrow) setStrokeWidthFromLength() {
	a.style.StrokeWidth = math.Min(
		a.initialStrokeWidth,
		a.MaxStrokeWidthToLengthRatio*a.Length(),
	)
}

// Scale rescales the arrow about its center while keeping the tip-size
// and stroke-width policies: tips are detached, the bare curve is
// scaled, and fresh tips are attached under the new length. Zero-length
// arrows are left unchanged, since tip geometry is undefined there.
func (a *Arrow) Scale(factor float64) *Arrow {
	if a.Length() == 0 {
		slog.Warn("scaling zero-length arrow is a no-op")
		return a
	}
	hadTip, hadStartTip := a.HasTip(), a.HasStartTip()
	if hadTip || hadStartTip {
		a.PopTips()
	}
	a.VMobject.Scale(factor)
	a.setStrokeWidthFromLength()
	if hadTip {
		a.addTip(a.defaultTipLength(), false)
	}
	if hadStartTip {
		a.addTip(a.defaultTipLength(), true)
	}
	return a
}

// SetLength scales the arrow to the given length under the arrow
// scaling policy.
func (a *Arrow) SetLength(length float64) {
	cur := a.Length()
	if cur == 0 {
		slog.Warn("cannot set length of zero-length arrow")
		return
	}
	a.Scale(length / cur)
}

// NewVector returns an arrow from the origin along direction, with no
// buffer.
func NewVector(direction mgl64.Vec3, opts ...Option) *Arrow {
	return NewArrow(At(Origin), At(direction),
		append([]Option{WithBuff(0)}, opts...)...)
}

// NewDoubleArrow returns an arrow with arrowheads at both ends.
func NewDoubleArrow(start, end Endpoint, opts ...Option) *Arrow {
	a := NewArrow(start, end, opts...)
	a.addTip(a.defaultTipLength(), true)
	return a
}
