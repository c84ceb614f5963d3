package manim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Arc is a circular arc realized as a piecewise cubic Bézier path. The
// parametric fields describe the arc at generation time; later
// geometric queries (ArcCenter, StopAngle) read from the realized
// points, not from the stored parameters.
type Arc struct {
	TipableVMobject

	Radius        float64
	NumComponents int
	StartAngle    float64
	Angle         float64

	arcCenter mgl64.Vec3
}

// NewArc returns an arc sweeping angle radians counterclockwise from
// startAngle. Radius, center, and sample count come from options
// (WithRadius, WithArcCenter, WithNumComponents).
func NewArc(startAngle, angle float64, opts ...Option) *Arc {
	cfg := makeConfig(opts)
	a := &Arc{
		Radius:        cfg.radius,
		NumComponents: cfg.numComponents,
		StartAngle:    startAngle,
		Angle:         angle,
		arcCenter:     cfg.arcCenter,
	}
	a.initTipable()
	a.TipLength = cfg.tipLength
	if cfg.hasColor {
		a.style.StrokeColor = cfg.color
	}
	if cfg.hasStrokeWidth {
		a.style.StrokeWidth = cfg.strokeWidth
	}
	a.generatePoints()
	return a
}

func (a *Arc) generatePoints() {
	a.points = arcPath(a.StartAngle, a.Angle, a.NumComponents)
	a.ScaleAbout(a.Radius, Origin)
	a.Shift(a.arcCenter)
}

// arcPath samples the unit circle over numComponents angles inclusive
// of both ends and derives cubic handles from the rotated radius
// tangents, the classic bounded-error circular approximation. Each
// segment spans angle/(numComponents−1); callers keep that at or below
// a quarter turn. Fewer than two components yield an empty path.
func arcPath(startAngle, angle float64, numComponents int) Path {
	if numComponents < 2 {
		return Path{}
	}
	n := numComponents
	anchors := make([]mgl64.Vec3, n)
	for i := range anchors {
		th := startAngle + angle*float64(i)/float64(n-1)
		anchors[i] = Right.Mul(math.Cos(th)).Add(Up.Mul(math.Sin(th)))
	}
	dTheta := angle / float64(n-1)
	p := make(Path, 0, 4*(n-1))
	for i := 0; i+1 < n; i++ {
		t1 := tangent90(anchors[i])
		t2 := tangent90(anchors[i+1])
		p = append(p,
			anchors[i],
			anchors[i].Add(t1.Mul(dTheta/3)),
			anchors[i+1].Sub(t2.Mul(dTheta/3)),
			anchors[i+1],
		)
	}
	return p
}

// tangent90 rotates the radius vector a quarter turn: (x, y) → (−y, x).
func tangent90(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-v.Y(), v.X(), 0}
}

// ArcCenter recovers the arc's center by intersecting the normals of
// the first curve's two anchor/handle pairs. A straight first segment
// has parallel normals and no center; that is reported as
// ErrDegenerateArc rather than guessed at.
func (a *Arc) ArcCenter() (mgl64.Vec3, error) {
	if len(a.points) < 4 {
		return mgl64.Vec3{}, fmt.Errorf("%w: arc has no curves", ErrDegenerateArc)
	}
	a1, h1 := a.points[0], a.points[1]
	h2, a2 := a.points[2], a.points[3]
	n1 := tangent90(h1.Sub(a1))
	n2 := tangent90(h2.Sub(a2))
	center, ok := LineIntersection(a1, a1.Add(n1), a2, a2.Add(n2))
	if !ok {
		return mgl64.Vec3{}, ErrDegenerateArc
	}
	return center, nil
}

// MoveArcCenterTo shifts the arc so its center sits at point.
func (a *Arc) MoveArcCenterTo(point mgl64.Vec3) error {
	c, err := a.ArcCenter()
	if err != nil {
		return err
	}
	a.Shift(point.Sub(c))
	return nil
}

// StopAngle returns the angle of the arc's last anchor about its
// center, normalized to [0, Tau).
func (a *Arc) StopAngle() (float64, error) {
	c, err := a.ArcCenter()
	if err != nil {
		return 0, err
	}
	return math.Mod(AngleOfVector(a.points.End().Sub(c))+Tau, Tau), nil
}

// NewArcBetweenPoints spans an arc between two points. The bend comes
// either from WithAngle (sweep angle, default a quarter turn) or from
// WithRadius; radius wins when both are given. A negative radius bows
// the arc the other way, and a radius smaller than half the chord fails
// with ErrInvalidRadius. A zero sweep degenerates to a straight
// two-point segment.
func NewArcBetweenPoints(start, end mgl64.Vec3, opts ...Option) (*Arc, error) {
	cfg := makeConfig(opts)
	angle := Tau / 4
	if cfg.hasAngle {
		angle = cfg.angle
	}
	if cfg.hasRadius {
		radius := cfg.radius
		s := 2.0
		if radius < 0 {
			s = -2
			radius = -radius
		}
		halfdist := end.Sub(start).Len() / 2
		if radius < halfdist {
			return nil, fmt.Errorf("%w: radius %g, half distance %g",
				ErrInvalidRadius, radius, halfdist)
		}
		arcHeight := radius - math.Sqrt(radius*radius-halfdist*halfdist)
		angle = math.Acos((radius-arcHeight)/radius) * s
	}

	a := &Arc{
		Radius:        1,
		NumComponents: cfg.numComponents,
		StartAngle:    0,
		Angle:         angle,
	}
	a.initTipable()
	a.TipLength = cfg.tipLength
	if cfg.hasColor {
		a.style.StrokeColor = cfg.color
	}
	if cfg.hasStrokeWidth {
		a.style.StrokeWidth = cfg.strokeWidth
	}
	a.generatePoints()
	if angle == 0 {
		a.points.SetAsCorners([]mgl64.Vec3{Left, Right})
	}
	a.VMobject.PutStartAndEndOn(start, end)

	if cfg.hasRadius {
		a.Radius = math.Abs(cfg.radius)
	} else {
		center, err := a.ArcCenter()
		if err != nil {
			slog.Warn("arc center undefined, treating radius as infinite")
			a.Radius = math.Inf(1)
		} else {
			a.Radius = start.Sub(center).Len()
		}
	}
	return a, nil
}

// NewCurvedArrow draws an arc from start to end with an arrowhead at
// the end.
func NewCurvedArrow(start, end mgl64.Vec3, opts ...Option) (*Arc, error) {
	a, err := NewArcBetweenPoints(start, end, opts...)
	if err != nil {
		return nil, err
	}
	a.AddTip(false)
	return a, nil
}

// NewCurvedDoubleArrow draws an arc with arrowheads at both ends.
func NewCurvedDoubleArrow(start, end mgl64.Vec3, opts ...Option) (*Arc, error) {
	a, err := NewCurvedArrow(start, end, opts...)
	if err != nil {
		return nil, err
	}
	a.AddTip(true)
	return a, nil
}
