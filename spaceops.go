package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Degrees converts degrees to radians when used as a multiplier.
const Degrees = Tau / 360

// Coordinate directions. Paths are planar, embedded in 3-space with Out
// as the plane normal so coplanar rotation has a well-defined axis.
var (
	Origin = mgl64.Vec3{0, 0, 0}
	Right  = mgl64.Vec3{1, 0, 0}
	Left   = mgl64.Vec3{-1, 0, 0}
	Up     = mgl64.Vec3{0, 1, 0}
	Down   = mgl64.Vec3{0, -1, 0}
	Out    = mgl64.Vec3{0, 0, 1}
	In     = mgl64.Vec3{0, 0, -1}
	UL     = mgl64.Vec3{-1, 1, 0}
	UR     = mgl64.Vec3{1, 1, 0}
	DL     = mgl64.Vec3{-1, -1, 0}
	DR     = mgl64.Vec3{1, -1, 0}
)

// Standard buffer distances between shapes.
const (
	SmallBuff    = 0.1
	MedSmallBuff = 0.25
	MedLargeBuff = 0.5
	LargeBuff    = 1.0
)

// V returns the point (x, y, z).
func V(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to itself rather than to NaN.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	n := v.Len()
	if n == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / n)
}

// AngleOfVector returns the polar angle of v projected onto the
// xy-plane. This is atan2(y, x).
func AngleOfVector(v mgl64.Vec3) float64 {
	return math.Atan2(v.Y(), v.X())
}

// AngleBetweenVectors returns the unsigned angle between a and b, in
// [0, π]. Zero vectors are treated as parallel.
func AngleBetweenVectors(a, b mgl64.Vec3) float64 {
	na, nb := a.Len(), b.Len()
	if na == 0 || nb == 0 {
		return 0
	}
	return math.Acos(clamp(a.Dot(b)/(na*nb), -1, 1))
}

// RotateVector rotates v by angle radians about axis.
func RotateVector(v mgl64.Vec3, angle float64, axis mgl64.Vec3) mgl64.Vec3 {
	if axis.Len() == 0 {
		return v
	}
	return mgl64.QuatRotate(angle, axis.Normalize()).Rotate(v)
}

// LineIntersection computes the point where the infinite lines through
// a0, a1 and b0, b1 cross in the xy-plane. ok is false when the lines
// are parallel.
func LineIntersection(a0, a1, b0, b1 mgl64.Vec3) (_ mgl64.Vec3, ok bool) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	den := cross2(d1, d2)
	if math.Abs(den) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	t := cross2(b0.Sub(a0), d2) / den
	return a0.Add(d1.Mul(t)), true
}

// CompassDirections returns n unit vectors spaced evenly over a full
// turn, starting from start and proceeding counterclockwise.
func CompassDirections(n int, start mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for i := range out {
		out[i] = RotateVector(start, float64(i)*Tau/float64(n), Out)
	}
	return out
}

// cross2 returns the z component of a × b.
func cross2(a, b mgl64.Vec3) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func interpolate(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// integerInterpolate splits alpha over n equal buckets, returning the
// bucket index and the residue within it. alpha ≥ 1 lands at the end of
// the last bucket.
func integerInterpolate(n int, alpha float64) (int, float64) {
	if n <= 0 {
		return 0, 0
	}
	x := clamp(alpha, 0, 1) * float64(n)
	i := int(x)
	if i >= n {
		return n - 1, 1
	}
	return i, x - float64(i)
}
