package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a full-turn arc.
type Circle struct {
	Arc
}

// NewCircle returns a unit circle centered on the origin. Radius and
// center come from WithRadius and WithArcCenter.
func NewCircle(opts ...Option) *Circle {
	c := &Circle{}
	c.Arc = *NewArc(0, Tau, opts...)
	if cfg := makeConfig(opts); !cfg.hasColor {
		c.style.StrokeColor = Red
	}
	return c
}

// PointAtAngle returns the point on the circle at the given polar angle
// about its center. The angle is measured absolutely, not relative to
// the circle's start anchor.
func (c *Circle) PointAtAngle(angle float64) mgl64.Vec3 {
	startAngle := AngleOfVector(c.points.Start().Sub(c.Center()))
	prop := math.Mod((angle-startAngle)/Tau, 1)
	if prop < 0 {
		prop++
	}
	return c.PointFromProportion(prop)
}

// Surround moves and resizes the circle to enclose m's bounding box,
// then scales by bufferFactor for breathing room.
func (c *Circle) Surround(m *VMobject, bufferFactor float64) {
	c.Shift(m.Center().Sub(c.Center()))
	c.SetWidth(math.Hypot(m.Width(), m.Height()), false)
	c.Scale(bufferFactor)
}

// NewDot returns a small filled circle at point. The radius defaults to
// the configured dot radius.
func NewDot(point mgl64.Vec3, opts ...Option) *Circle {
	cfg := makeConfig(opts)
	radius := Config.DotRadius
	if cfg.hasRadius {
		radius = cfg.radius
	}
	d := NewCircle(append(opts,
		WithRadius(radius), WithArcCenter(point), WithStrokeWidth(0))...)
	d.style.FillOpacity = 1
	d.style.FillColor = White
	d.style.StrokeColor = White
	if cfg.hasColor {
		d.style.FillColor = cfg.color
		d.style.StrokeColor = cfg.color
	}
	return d
}

// NewSmallDot returns a dot at the configured small dot radius.
func NewSmallDot(point mgl64.Vec3, opts ...Option) *Circle {
	return NewDot(point, append(opts, WithRadius(Config.SmallDotRadius))...)
}

// Ellipse is a circle stretched to independent width and height.
type Ellipse struct {
	Circle
}

// NewEllipse returns an ellipse with the given bounding-box width and
// height, centered on the origin.
func NewEllipse(width, height float64, opts ...Option) *Ellipse {
	e := &Ellipse{}
	e.Circle = *NewCircle(opts...)
	e.SetWidth(width, true)
	e.SetHeight(height, true)
	return e
}

// AnnularSector is the filled region between two concentric arcs of the
// same sweep, closed by radial segments at both ends.
type AnnularSector struct {
	Arc

	InnerRadius float64
	OuterRadius float64
}

// NewAnnularSector returns the sector between innerRadius and
// outerRadius sweeping angle radians from startAngle. It is filled and
// strokeless; WithColor sets the fill.
func NewAnnularSector(innerRadius, outerRadius, startAngle, angle float64, opts ...Option) *AnnularSector {
	cfg := makeConfig(opts)
	s := &AnnularSector{
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
	}
	s.initTipable()
	s.StartAngle = startAngle
	s.Angle = angle
	s.NumComponents = cfg.numComponents
	s.arcCenter = cfg.arcCenter

	inner := NewArc(startAngle, angle,
		WithRadius(innerRadius), WithArcCenter(cfg.arcCenter),
		WithNumComponents(cfg.numComponents))
	outer := NewArc(startAngle, angle,
		WithRadius(outerRadius), WithArcCenter(cfg.arcCenter),
		WithNumComponents(cfg.numComponents))
	outer.points.Reverse()

	s.points = append(s.points, inner.points...)
	s.points.AddLineTo(outer.points.Start())
	s.points = append(s.points, outer.points...)
	s.points.AddLineTo(inner.points.Start())

	s.style.FillOpacity = 1
	s.style.StrokeWidth = 0
	s.style.FillColor = White
	if cfg.hasColor {
		s.style.FillColor = cfg.color
	}
	return s
}

// NewSector returns a pie slice: an annular sector whose inner radius
// is zero. The outer radius comes from WithRadius.
func NewSector(startAngle, angle float64, opts ...Option) *AnnularSector {
	cfg := makeConfig(opts)
	return NewAnnularSector(0, cfg.radius, startAngle, angle, opts...)
}

// Annulus is the filled ring between two concentric circles.
type Annulus struct {
	Circle

	InnerRadius float64
	OuterRadius float64
}

// NewAnnulus returns the ring between innerRadius and outerRadius,
// centered per WithArcCenter. The inner boundary runs in reverse so the
// even-odd interior is the ring itself.
func NewAnnulus(innerRadius, outerRadius float64, opts ...Option) *Annulus {
	cfg := makeConfig(opts)
	a := &Annulus{
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
	}
	a.initTipable()
	a.Radius = outerRadius
	a.NumComponents = cfg.numComponents
	a.Angle = Tau

	outer := NewCircle(WithRadius(outerRadius),
		WithNumComponents(cfg.numComponents))
	inner := NewCircle(WithRadius(innerRadius),
		WithNumComponents(cfg.numComponents))
	inner.points.Reverse()
	a.points = append(a.points, outer.points...)
	a.points = append(a.points, inner.points...)
	a.Shift(cfg.arcCenter)
	a.arcCenter = cfg.arcCenter

	a.style.FillOpacity = 1
	a.style.StrokeWidth = 0
	a.style.FillColor = White
	if cfg.hasColor {
		a.style.FillColor = cfg.color
	}
	return a
}
