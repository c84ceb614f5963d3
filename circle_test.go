package manim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleGeometry(t *testing.T) {
	c := NewCircle(WithRadius(2), WithArcCenter(V(1, 1, 0)))
	assert.InDelta(t, 4, c.Width(), 1e-9)
	assert.InDelta(t, 4, c.Height(), 1e-9)

	center := c.Center()
	assert.InDelta(t, 1, center.X(), 1e-9)
	assert.InDelta(t, 1, center.Y(), 1e-9)

	for _, anchor := range c.Points().StartAnchors() {
		assert.InDelta(t, 2, anchor.Sub(center).Len(), 1e-9)
	}
	assert.InDelta(t, 2*Tau, c.ArcLength(), 1e-3)
}

func TestCircleClosed(t *testing.T) {
	c := NewCircle()
	assert.InDelta(t, 0, c.Points().Start().Sub(c.Points().End()).Len(), 1e-9)
}

func TestPointAtAngle(t *testing.T) {
	c := NewCircle(WithRadius(2), WithArcCenter(V(1, 1, 0)))

	p := c.PointAtAngle(0)
	assert.InDelta(t, 3, p.X(), 1e-9)
	assert.InDelta(t, 1, p.Y(), 1e-9)

	p = c.PointAtAngle(math.Pi / 2)
	assert.InDelta(t, 1, p.X(), 1e-9)
	assert.InDelta(t, 3, p.Y(), 1e-9)

	// negative angles wrap
	p = c.PointAtAngle(-math.Pi / 2)
	assert.InDelta(t, 1, p.X(), 1e-9)
	assert.InDelta(t, -1, p.Y(), 1e-9)
}

func TestCircleSurround(t *testing.T) {
	sq := NewSquare(2)
	sq.Shift(V(5, 0, 0))

	c := NewCircle()
	c.Surround(&sq.VMobject, 1.2)

	center := c.Center()
	assert.InDelta(t, 5, center.X(), 1e-9)
	assert.InDelta(t, 0, center.Y(), 1e-9)
	// the diagonal of the box, scaled out by the buffer factor
	assert.InDelta(t, 1.2*math.Sqrt(8), c.Width(), 1e-6)
}

func TestDot(t *testing.T) {
	d := NewDot(V(2, 3, 0))
	center := d.Center()
	assert.InDelta(t, 2, center.X(), 1e-9)
	assert.InDelta(t, 3, center.Y(), 1e-9)
	assert.InDelta(t, 2*Config.DotRadius, d.Width(), 1e-9)
	assert.InDelta(t, 1, d.Style().FillOpacity, 1e-12)
	assert.Zero(t, d.Style().StrokeWidth)

	s := NewSmallDot(Origin)
	assert.InDelta(t, 2*Config.SmallDotRadius, s.Width(), 1e-9)
}

func TestEllipse(t *testing.T) {
	e := NewEllipse(4, 2)
	assert.InDelta(t, 4, e.Width(), 1e-9)
	assert.InDelta(t, 2, e.Height(), 1e-9)
	center := e.Center()
	assert.InDelta(t, 0, center.X(), 1e-9)
	assert.InDelta(t, 0, center.Y(), 1e-9)
}

func TestAnnularSector(t *testing.T) {
	s := NewAnnularSector(1, 2, 0, Tau/4)

	// the outline closes back on the inner arc's start
	assert.InDelta(t, 0, s.Points().Start().Sub(s.Points().End()).Len(), 1e-9)
	assert.InDelta(t, 1, s.Style().FillOpacity, 1e-12)
	assert.Zero(t, s.Style().StrokeWidth)

	// two arcs plus two radial closing segments
	want := 1*Tau/4 + 2*Tau/4 + 2*(2-1)
	assert.InDelta(t, want, s.Points().Arclen(defaultAccuracy), 1e-3)
}

func TestSector(t *testing.T) {
	s := NewSector(0, Tau/4, WithRadius(2))
	assert.Zero(t, s.InnerRadius)
	assert.InDelta(t, 2, s.OuterRadius, 1e-12)

	// a pie slice: arc plus two radii
	want := 2*Tau/4 + 4
	assert.InDelta(t, want, s.Points().Arclen(defaultAccuracy), 1e-3)
}

func TestAnnulus(t *testing.T) {
	a := NewAnnulus(1, 2, WithArcCenter(V(3, 0, 0)))
	assert.InDelta(t, 4, a.Width(), 1e-9)
	center := a.Center()
	assert.InDelta(t, 3, center.X(), 1e-9)
	assert.InDelta(t, 1, a.Style().FillOpacity, 1e-12)

	// both boundary circles contribute
	assert.InDelta(t, Tau*(1+2), a.Points().Arclen(defaultAccuracy), 1e-2)
}
