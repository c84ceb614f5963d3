package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Locatable is the query surface endpoint resolution needs from a
// shape: its center and its outline point in a given direction.
type Locatable interface {
	Center() mgl64.Vec3
	BoundaryPoint(direction mgl64.Vec3) mgl64.Vec3
}

// VMobject is the drawable-shape base every concrete shape builds on:
// an ordered cubic-Bézier point buffer, a child list, and stroke/fill
// style. Transforms apply to the whole family (the shape and its
// descendants), so attached decorations move with their parent.
type VMobject struct {
	points   Path
	children []*VMobject
	style    Style
}

var _ Locatable = (*VMobject)(nil)

// NewVMobject returns an empty shape with the default style.
func NewVMobject() *VMobject {
	return &VMobject{style: DefaultStyle()}
}

// Points returns the shape's own point buffer. The slice is shared;
// treat it as read-only and use SetPoints to replace it.
func (m *VMobject) Points() Path {
	return m.points
}

// SetPoints replaces the shape's own point buffer.
func (m *VMobject) SetPoints(p Path) {
	m.points = p
}

// AppendPoints appends a copy of p to the shape's point buffer.
func (m *VMobject) AppendPoints(p Path) {
	m.points = append(m.points, p...)
}

// ClearPoints empties the shape's own point buffer, leaving children
// untouched.
func (m *VMobject) ClearPoints() {
	m.points = m.points[:0]
}

// Style gives mutable access to the shape's style fields.
func (m *VMobject) Style() *Style {
	return &m.style
}

// Add appends children to the shape.
func (m *VMobject) Add(children ...*VMobject) {
	m.children = append(m.children, children...)
}

// Remove detaches child from the shape's direct children. Unknown
// children are ignored.
func (m *VMobject) Remove(child *VMobject) {
	for i, c := range m.children {
		if c == child {
			m.children = append(m.children[:i], m.children[i+1:]...)
			return
		}
	}
}

// Children returns the direct children.
func (m *VMobject) Children() []*VMobject {
	return m.children
}

// Family returns the shape and all of its descendants, depth first.
func (m *VMobject) Family() []*VMobject {
	out := []*VMobject{m}
	for _, c := range m.children {
		out = append(out, c.Family()...)
	}
	return out
}

func (m *VMobject) applyPoints(f func(mgl64.Vec3) mgl64.Vec3) {
	for _, sm := range m.Family() {
		for i := range sm.points {
			sm.points[i] = f(sm.points[i])
		}
	}
}

// Shift translates the shape and its children by v.
func (m *VMobject) Shift(v mgl64.Vec3) *VMobject {
	m.applyPoints(func(p mgl64.Vec3) mgl64.Vec3 {
		return p.Add(v)
	})
	return m
}

// Scale scales the shape and its children uniformly about its center.
func (m *VMobject) Scale(factor float64) *VMobject {
	return m.ScaleAbout(factor, m.Center())
}

// ScaleAbout scales the shape and its children uniformly about a point.
func (m *VMobject) ScaleAbout(factor float64, about mgl64.Vec3) *VMobject {
	m.applyPoints(func(p mgl64.Vec3) mgl64.Vec3 {
		return about.Add(p.Sub(about).Mul(factor))
	})
	return m
}

// Rotate rotates the shape and its children about its center.
func (m *VMobject) Rotate(angle float64, axis mgl64.Vec3) *VMobject {
	return m.RotateAbout(angle, axis, m.Center())
}

// RotateAbout rotates the shape and its children by angle radians about
// the given axis through the given point. A zero axis is a no-op.
func (m *VMobject) RotateAbout(angle float64, axis, about mgl64.Vec3) *VMobject {
	if axis.Len() == 0 {
		return m
	}
	q := mgl64.QuatRotate(angle, axis.Normalize())
	m.applyPoints(func(p mgl64.Vec3) mgl64.Vec3 {
		return about.Add(q.Rotate(p.Sub(about)))
	})
	return m
}

// Stretch scales a single dimension (0 = x, 1 = y, 2 = z) about the
// shape's center.
func (m *VMobject) Stretch(factor float64, dim int) *VMobject {
	about := m.Center()
	m.applyPoints(func(p mgl64.Vec3) mgl64.Vec3 {
		p[dim] = about[dim] + (p[dim]-about[dim])*factor
		return p
	})
	return m
}

func (m *VMobject) bbox() (lo, hi mgl64.Vec3, ok bool) {
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, sm := range m.Family() {
		for _, p := range sm.points {
			ok = true
			for d := 0; d < 3; d++ {
				lo[d] = math.Min(lo[d], p[d])
				hi[d] = math.Max(hi[d], p[d])
			}
		}
	}
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return lo, hi, true
}

// Center returns the center of the family's bounding box, or the origin
// for a shape with no points.
func (m *VMobject) Center() mgl64.Vec3 {
	lo, hi, ok := m.bbox()
	if !ok {
		return mgl64.Vec3{}
	}
	return lo.Add(hi).Mul(0.5)
}

// Width returns the bounding-box extent along x.
func (m *VMobject) Width() float64 {
	lo, hi, ok := m.bbox()
	if !ok {
		return 0
	}
	return hi.X() - lo.X()
}

// Height returns the bounding-box extent along y.
func (m *VMobject) Height() float64 {
	lo, hi, ok := m.bbox()
	if !ok {
		return 0
	}
	return hi.Y() - lo.Y()
}

// SetWidth scales the shape so its bounding box is w wide: uniformly,
// or along x only when stretch is set. Zero-width shapes are left
// unchanged.
func (m *VMobject) SetWidth(w float64, stretch bool) *VMobject {
	cur := m.Width()
	if cur == 0 {
		return m
	}
	if stretch {
		return m.Stretch(w/cur, 0)
	}
	return m.Scale(w / cur)
}

// SetHeight scales the shape so its bounding box is h tall: uniformly,
// or along y only when stretch is set. Zero-height shapes are left
// unchanged.
func (m *VMobject) SetHeight(h float64, stretch bool) *VMobject {
	cur := m.Height()
	if cur == 0 {
		return m
	}
	if stretch {
		return m.Stretch(h/cur, 1)
	}
	return m.Scale(h / cur)
}

// BoundaryPoint returns the family point with the greatest projection
// onto direction, the point a ray from the center in that direction
// exits through. Shapes without points report their center.
func (m *VMobject) BoundaryPoint(direction mgl64.Vec3) mgl64.Vec3 {
	best := m.Center()
	bestDot := math.Inf(-1)
	for _, sm := range m.Family() {
		for _, p := range sm.points {
			if d := p.Dot(direction); d > bestDot {
				bestDot = d
				best = p
			}
		}
	}
	return best
}

// Start returns the first anchor of the shape's own path.
func (m *VMobject) Start() mgl64.Vec3 {
	return m.points.Start()
}

// End returns the last anchor of the shape's own path.
func (m *VMobject) End() mgl64.Vec3 {
	return m.points.End()
}

// NumCurves returns the number of cubic curves in the shape's own path.
func (m *VMobject) NumCurves() int {
	return m.points.NumCurves()
}

// PointFromProportion evaluates the shape's own path at alpha ∈ [0, 1].
func (m *VMobject) PointFromProportion(alpha float64) mgl64.Vec3 {
	return m.points.PointFromProportion(alpha)
}

// ArcLength returns the arc length of the shape's own path.
func (m *VMobject) ArcLength() float64 {
	return m.points.Arclen(defaultAccuracy)
}

// PutStartAndEndOn moves, rotates, and scales the shape (children
// included) so that its path runs from start to end. A shape whose
// current endpoints coincide is regenerated as a straight segment
// between the targets.
func (m *VMobject) PutStartAndEndOn(start, end mgl64.Vec3) *VMobject {
	m.putStartAndEndOnFrom(m.Start(), m.End(), start, end)
	return m
}

// putStartAndEndOnFrom applies the endpoint-matching transform given
// explicit current endpoints; tip-bearing curves pass their logical
// (tip-aware) endpoints here.
func (m *VMobject) putStartAndEndOnFrom(currStart, currEnd, start, end mgl64.Vec3) {
	curr := currEnd.Sub(currStart)
	if curr.Len() == 0 {
		m.points.SetAsCorners([]mgl64.Vec3{start, end})
		return
	}
	target := end.Sub(start)
	m.ScaleAbout(target.Len()/curr.Len(), currStart)
	if angle := AngleBetweenVectors(curr, target); angle > 1e-12 {
		axis := curr.Cross(target)
		if axis.Len() < 1e-12 {
			// antiparallel in-plane vectors flip about the plane normal
			axis = Out
		}
		m.RotateAbout(angle, axis, currStart)
	}
	m.Shift(start.Sub(currStart))
}
