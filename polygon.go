package manim

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is a closed outline through an ordered vertex list, realized
// by repeating the first vertex at the end of the path.
type Polygon struct {
	VMobject

	vertices []mgl64.Vec3
	rounded  bool
}

// NewPolygon returns the closed polygon through the given vertices.
func NewPolygon(vertices ...mgl64.Vec3) *Polygon {
	p := &Polygon{}
	p.initPolygon(vertices)
	return p
}

func (p *Polygon) initPolygon(vertices []mgl64.Vec3) {
	p.style = DefaultStyle()
	p.style.StrokeColor = Blue
	p.vertices = slices.Clone(vertices)
	if len(vertices) == 0 {
		return
	}
	corners := append(slices.Clone(vertices), vertices[0])
	p.points.SetAsCorners(corners)
}

// Vertices returns the current path's start anchors. Before rounding
// these are the logical vertices; after rounding they are the anchors
// of the rounded outline.
func (p *Polygon) Vertices() []mgl64.Vec3 {
	return p.points.StartAnchors()
}

// RoundCorners replaces every vertex with a tangent arc of the given
// radius. The outline is recomputed from the logical vertex list
// (snapshotted from the path on first call, so construction-time
// transforms are honored), which makes repeated calls idempotent.
// Transforms applied after the first rounding are not reflected in the
// stored vertices; round before transforming, or use
// RoundCornersInPlace. A negative radius rounds concavely.
func (p *Polygon) RoundCorners(radius float64) error {
	if !p.rounded {
		p.vertices = p.points.StartAnchors()
	}
	pts, err := roundedCornerPath(p.vertices, radius)
	if err != nil {
		return err
	}
	p.points = pts
	p.rounded = true
	return nil
}

// RoundCornersInPlace rounds the corners of the current outline,
// whatever it is. This is the destructive one-way transform: applied
// twice it rounds the corners of the already-rounded outline.
func (p *Polygon) RoundCornersInPlace(radius float64) error {
	pts, err := roundedCornerPath(p.points.StartAnchors(), radius)
	if err != nil {
		return err
	}
	p.points = pts
	return nil
}

// roundedCornerPath builds the rounded outline: a tangent arc at every
// vertex, threaded in order by straight runs whose curve count tracks
// the neighboring arc's anchor density. The arc sequence starts from
// the arc preceding the first vertex so the loop closes where the
// original outline did.
func roundedCornerPath(vertices []mgl64.Vec3, radius float64) (Path, error) {
	n := len(vertices)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, have %d",
			ErrCornerRadius, n)
	}
	if radius == 0 {
		var p Path
		p.SetAsCorners(append(slices.Clone(vertices), vertices[0]))
		return p, nil
	}

	arcs := make([]*Arc, 0, n)
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]
		v3 := vertices[(i+2)%n]
		vect1 := v2.Sub(v1)
		vect2 := v3.Sub(v2)
		angle := AngleBetweenVectors(vect1, vect2) * sign(radius)
		cutOff := radius * math.Tan(angle/2)
		if math.Abs(cutOff) > vect1.Len()/2 || math.Abs(cutOff) > vect2.Len()/2 {
			return nil, fmt.Errorf("%w: radius %g cuts %g into an edge of length %g",
				ErrCornerRadius, radius, math.Abs(cutOff),
				math.Min(vect1.Len(), vect2.Len()))
		}
		// cross sign picks clockwise vs counterclockwise so winding is
		// consistent regardless of polygon orientation
		s := sign(cross2(vect1, vect2))
		arc, err := NewArcBetweenPoints(
			v2.Sub(Normalize(vect1).Mul(cutOff)),
			v2.Add(Normalize(vect2).Mul(cutOff)),
			WithAngle(s*angle),
		)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, arc)
	}

	// start the loop from the arc preceding the first vertex
	arcs = append([]*Arc{arcs[n-1]}, arcs[:n-1]...)
	var out Path
	for i, arc1 := range arcs {
		arc2 := arcs[(i+1)%len(arcs)]
		out = append(out, arc1.points...)
		connector := NewLine(At(arc1.points.End()), At(arc2.points.Start()))
		if arcLen := arc1.points.Arclen(defaultAccuracy); arcLen > 0 {
			ratio := connector.Length() / arcLen
			connector.points.InsertNCurves(int(float64(arc1.points.NumCurves()) * ratio))
		}
		out = append(out, connector.points...)
	}
	return out, nil
}

// NewRegularPolygon returns the regular n-gon inscribed in the unit
// circle. Without WithStartAngle, even n starts at angle 0 and odd n
// points straight up.
func NewRegularPolygon(n int, opts ...Option) *Polygon {
	cfg := makeConfig(opts)
	startAngle := cfg.startAngle
	if !cfg.hasStartAngle {
		if n%2 == 0 {
			startAngle = 0
		} else {
			startAngle = 90 * Degrees
		}
	}
	p := NewPolygon(CompassDirections(n, RotateVector(Right, startAngle, Out))...)
	if cfg.hasColor {
		p.style.StrokeColor = cfg.color
	}
	return p
}

// NewTriangle returns a regular triangle.
func NewTriangle(opts ...Option) *Polygon {
	return NewRegularPolygon(3, opts...)
}

// Rectangle is an axis-aligned four-sided polygon.
type Rectangle struct {
	Polygon
}

// NewRectangle returns a rectangle of the given width and height
// centered on the origin.
func NewRectangle(width, height float64, opts ...Option) *Rectangle {
	cfg := makeConfig(opts)
	r := &Rectangle{}
	r.initPolygon([]mgl64.Vec3{UL, UR, DR, DL})
	r.style.StrokeColor = White
	if cfg.hasColor {
		r.style.StrokeColor = cfg.color
	}
	r.SetWidth(width, true)
	r.SetHeight(height, true)
	// keep the logical vertices in step with the stretch
	r.vertices = r.points.StartAnchors()
	return r
}

// NewSquare returns a square with the given side length.
func NewSquare(side float64, opts ...Option) *Rectangle {
	return NewRectangle(side, side, opts...)
}

// NewRoundedRectangle returns a rectangle with its corners rounded to
// cornerRadius.
func NewRoundedRectangle(width, height, cornerRadius float64, opts ...Option) (*Rectangle, error) {
	r := NewRectangle(width, height, opts...)
	if err := r.RoundCorners(cornerRadius); err != nil {
		return nil, err
	}
	return r, nil
}
