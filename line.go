package manim

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Endpoint designates where a line terminates: a literal coordinate, or
// another shape whose boundary the line should touch.
type Endpoint struct {
	point mgl64.Vec3
	shape Locatable
}

// At anchors an endpoint at a fixed coordinate.
func At(p mgl64.Vec3) Endpoint {
	return Endpoint{point: p}
}

// On anchors an endpoint on a shape. The line meets the shape's
// boundary facing the opposite endpoint rather than its center.
func On(shape Locatable) Endpoint {
	return Endpoint{shape: shape}
}

// pointify resolves the endpoint to a concrete point. With a zero
// direction a shape endpoint resolves to its center, otherwise to its
// boundary point in that direction.
func (e Endpoint) pointify(direction mgl64.Vec3) mgl64.Vec3 {
	if e.shape == nil {
		return e.point
	}
	if direction.Len() == 0 {
		return e.shape.Center()
	}
	return e.shape.BoundaryPoint(direction)
}

// resolveEndpoints runs the two-pass resolution: centers first for a
// rough direction, then boundary points along it. The second pass is
// needed because boundary-point lookup wants a direction that itself
// depends on both endpoints.
func resolveEndpoints(start, end Endpoint) (mgl64.Vec3, mgl64.Vec3) {
	roughStart := start.pointify(mgl64.Vec3{})
	roughEnd := end.pointify(mgl64.Vec3{})
	dir := Normalize(roughEnd.Sub(roughStart))
	return start.pointify(dir), end.pointify(dir.Mul(-1))
}

// Line is a straight (or, with WithPathArc, arced) curve between two
// resolved endpoints.
type Line struct {
	TipableVMobject

	// Buff is the fixed length trimmed from each end, independent of
	// overall scale.
	Buff float64
	// PathArc bends the body into an arc of this sweep angle.
	PathArc float64

	start, end mgl64.Vec3
}

// NewLine returns the line from start to end, with buffing and arcing
// taken from options.
func NewLine(start, end Endpoint, opts ...Option) *Line {
	l := &Line{}
	l.initLine(start, end, makeConfig(opts))
	return l
}

func (l *Line) initLine(start, end Endpoint, cfg shapeConfig) {
	l.initTipable()
	l.TipLength = cfg.tipLength
	l.Buff = cfg.buff
	l.PathArc = cfg.pathArc
	if cfg.hasStrokeWidth {
		l.style.StrokeWidth = cfg.strokeWidth
	}
	if cfg.hasColor {
		l.style.StrokeColor = cfg.color
	}
	l.start, l.end = resolveEndpoints(start, end)
	l.generatePoints()
}

func (l *Line) generatePoints() {
	if l.PathArc != 0 {
		arc, err := NewArcBetweenPoints(l.start, l.end, WithAngle(l.PathArc))
		if err == nil {
			l.points = arc.points
		} else {
			l.points.SetAsCorners([]mgl64.Vec3{l.start, l.end})
		}
	} else {
		l.points.SetAsCorners([]mgl64.Vec3{l.start, l.end})
	}
	l.accountForBuff()
}

// SetPathArc regenerates the line's body with a new arc angle.
func (l *Line) SetPathArc(angle float64) {
	l.PathArc = angle
	l.generatePoints()
}

// accountForBuff trims Buff worth of length from both ends, expressed
// as a proportional cut. Trims that would consume or invert the curve
// leave it unchanged.
func (l *Line) accountForBuff() {
	if l.Buff == 0 {
		return
	}
	var length float64
	if l.PathArc == 0 {
		length = l.Length()
	} else {
		length = l.ArcLength()
	}
	if length <= 2*l.Buff {
		return
	}
	t := l.Buff / length
	l.points = l.points.Partial(t, 1-t)
}

// Vector returns end − start of the logical endpoints.
func (l *Line) Vector() mgl64.Vec3 {
	return l.End().Sub(l.Start())
}

// UnitVector returns the line's direction with unit length.
func (l *Line) UnitVector() mgl64.Vec3 {
	return Normalize(l.Vector())
}

// Angle returns the line's polar angle in the xy-plane.
func (l *Line) Angle() float64 {
	return AngleOfVector(l.Vector())
}

// Slope returns the line's slope, tan of its angle.
func (l *Line) Slope() float64 {
	return math.Tan(l.Angle())
}

// SetAngle rotates the line about its start point to the given angle.
func (l *Line) SetAngle(angle float64) {
	l.RotateAbout(angle-l.Angle(), Out, l.Start())
}

// SetLength scales the line about its center to the given length.
// Zero-length lines are left unchanged.
func (l *Line) SetLength(length float64) {
	cur := l.Length()
	if cur == 0 {
		slog.Warn("cannot set length of zero-length line")
		return
	}
	l.Scale(length / cur)
}

// DashedLine is a line rendered as evenly spaced dash children; its own
// point buffer is empty.
type DashedLine struct {
	Line

	DashLength float64
}

// NewDashedLine returns a dashed line from start to end. Dash length
// and drawn ratio come from WithDashLength and WithDashSpaceRatio.
func NewDashedLine(start, end Endpoint, opts ...Option) *DashedLine {
	cfg := makeConfig(opts)
	d := &DashedLine{DashLength: cfg.dashLength}
	d.initLine(start, end, cfg)
	numDashes := d.calculateNumDashes(cfg.dashSpaceRatio)
	dashes := NewDashedVMobject(&d.VMobject, numDashes, cfg.dashSpaceRatio)
	d.ClearPoints()
	d.Add(dashes...)
	return d
}

func (d *DashedLine) calculateNumDashes(spaceRatio float64) int {
	if spaceRatio <= 0 {
		return 1
	}
	full := d.DashLength / spaceRatio
	if full <= 0 {
		return 1
	}
	n := int(math.Ceil(d.Line.Length() / full))
	if n < 1 {
		return 1
	}
	return n
}

// NewDashedVMobject splits src's path into numDashes partial copies,
// each drawn over spaceRatio of its dash period.
func NewDashedVMobject(src *VMobject, numDashes int, spaceRatio float64) []*VMobject {
	if numDashes < 1 {
		numDashes = 1
	}
	out := make([]*VMobject, 0, numDashes)
	for i := 0; i < numDashes; i++ {
		a := float64(i) / float64(numDashes)
		b := a + spaceRatio/float64(numDashes)
		dash := NewVMobject()
		dash.style = src.style
		dash.points = src.points.Partial(a, math.Min(b, 1))
		out = append(out, dash)
	}
	return out
}

// Start returns the first dash's start.
func (d *DashedLine) Start() mgl64.Vec3 {
	if len(d.children) > 0 {
		return d.children[0].Start()
	}
	return d.Line.Start()
}

// End returns the last dash's end.
func (d *DashedLine) End() mgl64.Vec3 {
	if len(d.children) > 0 {
		return d.children[len(d.children)-1].End()
	}
	return d.Line.End()
}

// NewTangentLine returns the tangent to shape at the given proportion
// along its path, scaled to the given length about the tangent point.
func NewTangentLine(shape *VMobject, alpha, length float64, opts ...Option) *Line {
	const dAlpha = 1e-6
	a1 := clamp(alpha-dAlpha, 0, 1)
	a2 := clamp(alpha+dAlpha, 0, 1)
	l := NewLine(
		At(shape.PointFromProportion(a1)),
		At(shape.PointFromProportion(a2)),
		opts...,
	)
	if cur := l.Length(); cur > 0 {
		l.Scale(length / cur)
	}
	return l
}

// NewElbow returns a right-angle mark of the given width, rotated by
// angle about the origin.
func NewElbow(width, angle float64) *VMobject {
	m := NewVMobject()
	m.points.SetAsCorners([]mgl64.Vec3{Up, UR, Right})
	if cur := m.Width(); cur > 0 {
		m.ScaleAbout(width/cur, Origin)
	}
	m.RotateAbout(angle, Out, Origin)
	return m
}
