package manim

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Path is the ordered point buffer of a shape, holding a piecewise
// cubic Bézier curve. Points are read in self-contained quadruples
// (anchor, handle, handle, anchor), one per curve; consecutive
// quadruples share no points, so quadruples append independently.
//
// Invariant: len(p) is a multiple of 4. The empty path is valid and has
// zero curves.
type Path []mgl64.Vec3

// NumCurves returns the number of cubic curves in the path.
func (p Path) NumCurves() int {
	return len(p) / 4
}

func (p Path) curve(i int) cubic {
	return cubic{p[4*i], p[4*i+1], p[4*i+2], p[4*i+3]}
}

// Start returns the first anchor. It is the zero vector for an empty
// path.
func (p Path) Start() mgl64.Vec3 {
	if len(p) == 0 {
		return mgl64.Vec3{}
	}
	return p[0]
}

// End returns the last anchor. It is the zero vector for an empty path.
func (p Path) End() mgl64.Vec3 {
	if len(p) == 0 {
		return mgl64.Vec3{}
	}
	return p[len(p)-1]
}

// StartAnchors returns each curve's first anchor.
func (p Path) StartAnchors() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, p.NumCurves())
	for i := 0; i+3 < len(p); i += 4 {
		out = append(out, p[i])
	}
	return out
}

func (p Path) Copy() Path {
	return slices.Clone(p)
}

func (p *Path) appendCubic(c cubic) {
	*p = append(*p, c.p0, c.p1, c.p2, c.p3)
}

// SetAsCorners replaces p with straight segments threading the given
// points in order. Handles are placed at thirds, so each segment is the
// linear parameterization of its chord.
func (p *Path) SetAsCorners(corners []mgl64.Vec3) {
	*p = (*p)[:0]
	for i := 0; i+1 < len(corners); i++ {
		a, b := corners[i], corners[i+1]
		*p = append(*p, a, interpolate(a, b, 1.0/3.0), interpolate(a, b, 2.0/3.0), b)
	}
}

// AddLineTo appends a straight segment from the path's end to point. On
// an empty path it appends a degenerate segment at point.
func (p *Path) AddLineTo(point mgl64.Vec3) {
	last := p.End()
	*p = append(*p,
		last,
		interpolate(last, point, 1.0/3.0),
		interpolate(last, point, 2.0/3.0),
		point,
	)
}

// Reverse reverses the path in place. Full reversal of the flat point
// list keeps every quadruple well formed because quadruples are
// palindromic in role (anchor, handle, handle, anchor).
func (p Path) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// PointFromProportion evaluates the path at alpha ∈ [0, 1], uniform in
// curve index.
func (p Path) PointFromProportion(alpha float64) mgl64.Vec3 {
	n := p.NumCurves()
	if n == 0 {
		return mgl64.Vec3{}
	}
	i, res := integerInterpolate(n, alpha)
	return p.curve(i).eval(res)
}

// Partial extracts the sub-path covering proportions [a, b] of p,
// measured uniformly in curve index. Out-of-order or empty ranges
// return an empty path.
func (p Path) Partial(a, b float64) Path {
	n := p.NumCurves()
	if n == 0 || b <= a {
		return Path{}
	}
	if a <= 0 && b >= 1 {
		return p.Copy()
	}
	lowIdx, lowRes := integerInterpolate(n, a)
	upIdx, upRes := integerInterpolate(n, b)
	var out Path
	if lowIdx == upIdx {
		out.appendCubic(p.curve(lowIdx).subsegment(lowRes, upRes))
		return out
	}
	out.appendCubic(p.curve(lowIdx).subsegment(lowRes, 1))
	for i := lowIdx + 1; i < upIdx; i++ {
		out = append(out, p[4*i:4*i+4]...)
	}
	if upRes > 0 {
		out.appendCubic(p.curve(upIdx).subsegment(0, upRes))
	}
	return out
}

// Arclen returns the total arc length of the path.
func (p Path) Arclen(accuracy float64) float64 {
	n := p.NumCurves()
	if n == 0 {
		return 0
	}
	perCurve := accuracy / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		sum += p.curve(i).arclen(perCurve)
	}
	return sum
}

// InsertNCurves re-subdivides p into NumCurves()+n curves, assigning
// splits to curves proportionally to arc length so that anchor density
// stays roughly uniform.
func (p *Path) InsertNCurves(n int) {
	num := p.NumCurves()
	if n <= 0 || num == 0 {
		return
	}
	lengths := make([]float64, num)
	var total float64
	for i := 0; i < num; i++ {
		lengths[i] = p.curve(i).arclen(defaultAccuracy)
		total += lengths[i]
	}
	if total == 0 {
		// degenerate path, split evenly
		for i := range lengths {
			lengths[i] = 1
		}
		total = float64(num)
	}

	// cumulative rounding keeps the overall count exact
	out := make(Path, 0, len(*p)+4*n)
	assigned := 0
	var acc float64
	for i := 0; i < num; i++ {
		acc += lengths[i]
		want := int(math.Round(float64(n) * acc / total))
		pieces := 1 + want - assigned
		assigned = want
		c := p.curve(i)
		for j := 0; j < pieces; j++ {
			out.appendCubic(c.subsegment(
				float64(j)/float64(pieces),
				float64(j+1)/float64(pieces),
			))
		}
	}
	*p = out
}
