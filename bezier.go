package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// defaultAccuracy is the arc-length accuracy used when no caller
// supplies one. It is suitable for construction-time measurements such
// as buffering and dash counts.
const defaultAccuracy = 1e-6

// cubic is a single cubic Bézier segment with self-contained control
// points: two anchors and the two handles between them.
type cubic struct {
	p0, p1, p2, p3 mgl64.Vec3
}

func (c cubic) eval(t float64) mgl64.Vec3 {
	mt := 1 - t
	out := c.p0.Mul(mt * mt * mt)
	out = out.Add(c.p1.Mul(3 * mt * mt * t))
	out = out.Add(c.p2.Mul(3 * mt * t * t))
	out = out.Add(c.p3.Mul(t * t * t))
	return out
}

func (c cubic) derivative(t float64) mgl64.Vec3 {
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)
	mt := 1 - t
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// subsegment extracts the sub-curve over [t0, t1], keeping the endpoint
// tangents of the restriction.
func (c cubic) subsegment(t0, t1 float64) cubic {
	p0 := c.eval(t0)
	p3 := c.eval(t1)
	scale := (t1 - t0) / 3
	return cubic{
		p0,
		p0.Add(c.derivative(t0).Mul(scale)),
		p3.Sub(c.derivative(t1).Mul(scale)),
		p3,
	}
}

// arclen returns the arc length of the segment using adaptive
// Legendre-Gauss quadrature.
func (c cubic) arclen(accuracy float64) float64 {
	return c.arclenRec(accuracy, 0)
}

func (c cubic) arclenRec(accuracy float64, depth int) float64 {
	d03 := c.p3.Sub(c.p0)
	d01 := c.p1.Sub(c.p0)
	d12 := c.p2.Sub(c.p1)
	d23 := c.p3.Sub(c.p2)
	lplc := d01.Len() + d12.Len() + d23.Len() - d03.Len()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The factor of 3 for the first derivative is accounted for in the
	// quadrature core.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5))
	dm1 := dd2.Add(dd1).Mul(0.5)
	dm2 := dd2.Sub(dd1).Mul(0.25)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := lenSq(dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)))
		ddNorm2 := lenSq(dm1.Add(dm2.Mul(2 * xi)))
		est += wi * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// dNorm2 is 0 as the segment approaches a singularity
		est = 0
	}

	estGauss8Error := math.Min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := math.Min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadrature(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := math.Min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadrature(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0 := c.subsegment(0, 0.5)
	c1 := c.subsegment(0.5, 1)
	return c0.arclenRec(accuracy*0.5, depth+1) + c1.arclenRec(accuracy*0.5, depth+1)
}

func arclenQuadrature(coeffs [][2]float64, dm, dm1, dm2 mgl64.Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Len()
		dmx := d.Sub(dm1.Mul(xi)).Len()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

func lenSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
