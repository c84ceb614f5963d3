package manim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonClosesPath(t *testing.T) {
	p := NewPolygon(Origin, V(2, 0, 0), V(2, 2, 0))
	assert.Equal(t, 3, p.NumCurves())
	assert.Equal(t, p.Start(), p.End())

	vs := p.Vertices()
	require.Len(t, vs, 3)
	assert.Equal(t, V(2, 2, 0), vs[2])
}

func TestRegularPolygonOrientation(t *testing.T) {
	hex := NewRegularPolygon(6)
	first := hex.Vertices()[0]
	assert.InDelta(t, 1, first.X(), 1e-9)
	assert.InDelta(t, 0, first.Y(), 1e-9)

	// odd vertex counts point straight up
	tri := NewTriangle()
	first = tri.Vertices()[0]
	assert.InDelta(t, 0, first.X(), 1e-9)
	assert.InDelta(t, 1, first.Y(), 1e-9)

	rot := NewRegularPolygon(4, WithStartAngle(math.Pi/4))
	first = rot.Vertices()[0]
	assert.InDelta(t, math.Sqrt2/2, first.X(), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, first.Y(), 1e-9)
}

func TestRegularPolygonVerticesOnUnitCircle(t *testing.T) {
	for _, v := range NewRegularPolygon(7).Vertices() {
		assert.InDelta(t, 1, v.Len(), 1e-9)
	}
}

func TestRectangleDimensions(t *testing.T) {
	r := NewRectangle(3, 1)
	assert.InDelta(t, 3, r.Width(), 1e-9)
	assert.InDelta(t, 1, r.Height(), 1e-9)
	assert.Equal(t, 4, r.NumCurves())

	sq := NewSquare(2)
	vs := sq.Vertices()
	require.Len(t, vs, 4)
	for _, v := range vs {
		assert.InDelta(t, 1, math.Abs(v.X()), 1e-9)
		assert.InDelta(t, 1, math.Abs(v.Y()), 1e-9)
	}
}

func TestRoundCornersPerimeter(t *testing.T) {
	sq := NewSquare(2)
	require.NoError(t, sq.RoundCorners(0.5))

	// each corner swaps 2r of straight edges for a quarter circle
	want := 8 - 0.5*(8-2*math.Pi)
	assert.InDelta(t, want, sq.Points().Arclen(defaultAccuracy), 1e-3)
	assert.InDelta(t, 2, sq.Width(), 1e-6)
	assert.InDelta(t, 2, sq.Height(), 1e-6)
}

func TestRoundCornersIdempotent(t *testing.T) {
	sq := NewSquare(2)
	require.NoError(t, sq.RoundCorners(0.5))
	once := sq.Points().Arclen(defaultAccuracy)
	numCurves := sq.NumCurves()

	require.NoError(t, sq.RoundCorners(0.5))
	assert.InDelta(t, once, sq.Points().Arclen(defaultAccuracy), 1e-9)
	assert.Equal(t, numCurves, sq.NumCurves())
}

func TestRoundCornersInPlaceCompounds(t *testing.T) {
	sq := NewSquare(2)
	require.NoError(t, sq.RoundCornersInPlace(0.5))
	numCurves := sq.NumCurves()

	// rounding again works on the already-rounded outline
	require.NoError(t, sq.RoundCornersInPlace(0.05))
	assert.NotEqual(t, numCurves, sq.NumCurves())
}

func TestRoundCornersTooLarge(t *testing.T) {
	sq := NewSquare(2)
	err := sq.RoundCorners(1.5)
	assert.ErrorIs(t, err, ErrCornerRadius)

	// the failed call leaves the outline untouched
	assert.Equal(t, 4, sq.NumCurves())
}

func TestRoundCornersZeroRadius(t *testing.T) {
	sq := NewSquare(2)
	require.NoError(t, sq.RoundCorners(0))
	assert.Equal(t, 4, sq.NumCurves())
	assert.InDelta(t, 8, sq.Points().Arclen(defaultAccuracy), 1e-6)
}

func TestRoundCornersNeedsTriangle(t *testing.T) {
	p := NewPolygon(Origin, V(1, 0, 0))
	assert.ErrorIs(t, p.RoundCorners(0.1), ErrCornerRadius)
}

func TestRoundCornersNegativeRadius(t *testing.T) {
	sq := NewSquare(2)
	require.NoError(t, sq.RoundCorners(-0.3))
	// concave corners bulge outward past the original bounding box
	assert.Greater(t, sq.Width(), 2.0)
}

func TestRoundedRectangle(t *testing.T) {
	r, err := NewRoundedRectangle(4, 2, 0.5)
	require.NoError(t, err)
	want := 2*(4+2) - 0.5*(8-2*math.Pi)
	assert.InDelta(t, want, r.Points().Arclen(defaultAccuracy), 1e-3)

	_, err = NewRoundedRectangle(4, 2, 10)
	assert.ErrorIs(t, err, ErrCornerRadius)
}

func TestPolygonVerticesAfterTransform(t *testing.T) {
	p := NewPolygon(Origin, V(1, 0, 0), V(0, 1, 0))
	p.Shift(V(2, 0, 0))
	vs := p.Vertices()
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, vs[0])

	// rounding after a transform starts from the transformed outline
	require.NoError(t, p.RoundCorners(0.1))
	c := p.Center()
	assert.InDelta(t, 2+1.0/3, c.X(), 0.2)
}
