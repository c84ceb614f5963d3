package manim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox(t *testing.T) {
	sq := NewSquare(2)
	assert.InDelta(t, 2, sq.Width(), 1e-12)
	assert.InDelta(t, 2, sq.Height(), 1e-12)
	c := sq.Center()
	assert.InDelta(t, 0, c.X(), 1e-12)
	assert.InDelta(t, 0, c.Y(), 1e-12)

	// empty shapes report the origin and zero extents
	empty := NewVMobject()
	assert.Equal(t, Origin, empty.Center())
	assert.Zero(t, empty.Width())
}

func TestShiftScaleRotate(t *testing.T) {
	sq := NewSquare(2)
	sq.Shift(V(3, 1, 0))
	c := sq.Center()
	assert.InDelta(t, 3, c.X(), 1e-12)
	assert.InDelta(t, 1, c.Y(), 1e-12)

	sq.Scale(2)
	assert.InDelta(t, 4, sq.Width(), 1e-9)
	c = sq.Center()
	assert.InDelta(t, 3, c.X(), 1e-9, "scaling about the center keeps it put")

	sq.RotateAbout(math.Pi/2, Out, Origin)
	c = sq.Center()
	assert.InDelta(t, -1, c.X(), 1e-9)
	assert.InDelta(t, 3, c.Y(), 1e-9)
}

func TestSetWidthStretch(t *testing.T) {
	sq := NewSquare(2)
	sq.SetWidth(6, true)
	assert.InDelta(t, 6, sq.Width(), 1e-9)
	assert.InDelta(t, 2, sq.Height(), 1e-9, "stretching x leaves y alone")

	sq2 := NewSquare(2)
	sq2.SetWidth(6, false)
	assert.InDelta(t, 6, sq2.Width(), 1e-9)
	assert.InDelta(t, 6, sq2.Height(), 1e-9, "uniform scaling tracks both")
}

func TestTransformsApplyToChildren(t *testing.T) {
	parent := NewVMobject()
	parent.points.SetAsCorners([]mgl64.Vec3{Origin, V(1, 0, 0)})
	child := NewVMobject()
	child.points.SetAsCorners([]mgl64.Vec3{V(2, 0, 0), V(3, 0, 0)})
	parent.Add(child)

	parent.Shift(V(0, 5, 0))
	assert.InDelta(t, 5, child.Start().Y(), 1e-12)
}

func TestBoundaryPoint(t *testing.T) {
	sq := NewSquare(2)
	p := sq.BoundaryPoint(Right)
	assert.InDelta(t, 1, p.X(), 1e-12)

	p = sq.BoundaryPoint(V(1, 1, 0))
	assert.InDelta(t, 1, p.X(), 1e-12)
	assert.InDelta(t, 1, p.Y(), 1e-12)
}

func TestPutStartAndEndOn(t *testing.T) {
	m := NewVMobject()
	m.points.SetAsCorners([]mgl64.Vec3{Origin, V(1, 0, 0)})
	m.PutStartAndEndOn(V(1, 1, 0), V(1, 3, 0))

	s, e := m.Start(), m.End()
	assert.InDelta(t, 1, s.X(), 1e-9)
	assert.InDelta(t, 1, s.Y(), 1e-9)
	assert.InDelta(t, 1, e.X(), 1e-9)
	assert.InDelta(t, 3, e.Y(), 1e-9)
}

func TestPutStartAndEndOnAntiparallel(t *testing.T) {
	m := NewVMobject()
	m.points.SetAsCorners([]mgl64.Vec3{Origin, V(2, 0, 0)})
	m.PutStartAndEndOn(V(2, 0, 0), Origin)

	assert.InDelta(t, 2, m.Start().X(), 1e-9)
	assert.InDelta(t, 0, m.End().X(), 1e-9)
}

func TestPutStartAndEndOnDegenerate(t *testing.T) {
	// a point-like shape regenerates as a straight segment
	m := NewVMobject()
	m.points.SetAsCorners([]mgl64.Vec3{V(5, 5, 0), V(5, 5, 0)})
	m.PutStartAndEndOn(Origin, V(1, 0, 0))

	require.Equal(t, 1, m.NumCurves())
	assert.Equal(t, Origin, m.Start())
	assert.Equal(t, V(1, 0, 0), m.End())
}

func TestFamily(t *testing.T) {
	a, b, c := NewVMobject(), NewVMobject(), NewVMobject()
	a.Add(b)
	b.Add(c)
	assert.Len(t, a.Family(), 3)

	a.Remove(b)
	assert.Len(t, a.Family(), 1)
}
