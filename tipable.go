package manim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TipableVMobject carries the endpoint and arrowhead protocol shared by
// lines and arcs: creating and positioning triangular tips, splicing
// them onto an end of the curve, and reading endpoints that account for
// attached tips.
type TipableVMobject struct {
	VMobject

	// TipLength is the length a newly attached tip is built with.
	TipLength float64

	tip      *ArrowTip
	startTip *ArrowTip
}

func (t *TipableVMobject) initTipable() {
	t.style = DefaultStyle()
	t.TipLength = Config.TipLength
}

// AddTip attaches a tip of the curve's default tip length at the end,
// or at the start when atStart is set. The curve body is shortened so
// the tip does not overlap it, and a previous tip at the same end is
// replaced.
func (t *TipableVMobject) AddTip(atStart bool) *ArrowTip {
	return t.addTip(t.TipLength, atStart)
}

func (t *TipableVMobject) addTip(tipLength float64, atStart bool) *ArrowTip {
	tip := t.CreateTip(tipLength, atStart)
	t.resetEndpointsBasedOnTip(tip, atStart)
	t.assignTip(tip, atStart)
	t.Add(&tip.VMobject)
	return tip
}

// CreateTip returns a styled tip positioned at the curve's endpoint
// without attaching it. A zero tipLength uses the curve's TipLength.
func (t *TipableVMobject) CreateTip(tipLength float64, atStart bool) *ArrowTip {
	tip := t.unpositionedTip(tipLength)
	t.positionTip(tip, atStart)
	return tip
}

// unpositionedTip builds a tip that inherits the curve's color but has
// no position in space yet.
func (t *TipableVMobject) unpositionedTip(tipLength float64) *ArrowTip {
	if tipLength == 0 {
		tipLength = t.TipLength
	}
	tip := NewArrowTip(tipLength)
	tip.style.FillColor = t.style.StrokeColor
	tip.style.StrokeColor = t.style.StrokeColor
	return tip
}

// positionTip rotates the tip so its vector matches the curve's
// terminal tangent and lands its apex on the curve's endpoint. The
// tangent comes from the terminal anchor/handle pair, not the two
// endpoints, so curvature at the tip is respected.
func (t *TipableVMobject) positionTip(tip *ArrowTip, atStart bool) {
	var anchor, handle mgl64.Vec3
	if atStart {
		anchor = t.points.Start()
		handle = t.FirstHandle()
	} else {
		anchor = t.points.End()
		handle = t.LastHandle()
	}
	// handle−anchor points back into the curve; the apex faces away
	tip.Rotate(AngleOfVector(handle.Sub(anchor))-math.Pi-tip.Angle(), Out)
	tip.Shift(anchor.Sub(tip.TipPoint()))
}

// resetEndpointsBasedOnTip shortens the curve body so its endpoint sits
// at the tip's base. Zero-length curves have nothing to shrink and are
// left alone.
func (t *TipableVMobject) resetEndpointsBasedOnTip(tip *ArrowTip, atStart bool) {
	if t.Length() == 0 {
		return
	}
	if atStart {
		t.PutStartAndEndOn(tip.Base(), t.End())
	} else {
		t.PutStartAndEndOn(t.Start(), tip.Base())
	}
}

// assignTip records the tip as the curve's named child, discarding any
// previous tip at that end.
func (t *TipableVMobject) assignTip(tip *ArrowTip, atStart bool) {
	if atStart {
		if t.startTip != nil {
			t.Remove(&t.startTip.VMobject)
		}
		t.startTip = tip
	} else {
		if t.tip != nil {
			t.Remove(&t.tip.VMobject)
		}
		t.tip = tip
	}
}

// HasTip reports whether an end tip is attached.
func (t *TipableVMobject) HasTip() bool {
	return t.tip != nil
}

// HasStartTip reports whether a start tip is attached.
func (t *TipableVMobject) HasStartTip() bool {
	return t.startTip != nil
}

// Tip returns the end tip, or the start tip when only that one exists.
func (t *TipableVMobject) Tip() (*ArrowTip, error) {
	switch {
	case t.tip != nil:
		return t.tip, nil
	case t.startTip != nil:
		return t.startTip, nil
	default:
		return nil, ErrNoTip
	}
}

// StartTip returns the start tip.
func (t *TipableVMobject) StartTip() (*ArrowTip, error) {
	if t.startTip == nil {
		return nil, ErrNoTip
	}
	return t.startTip, nil
}

// PopTips detaches all tips and restores the curve's bare geometric
// endpoints, so transforms can apply to the undecorated curve. The end
// tip, when present, comes first in the result.
func (t *TipableVMobject) PopTips() []*ArrowTip {
	start, end := t.Start(), t.End()
	var out []*ArrowTip
	if t.tip != nil {
		out = append(out, t.tip)
		t.Remove(&t.tip.VMobject)
		t.tip = nil
	}
	if t.startTip != nil {
		out = append(out, t.startTip)
		t.Remove(&t.startTip.VMobject)
		t.startTip = nil
	}
	t.PutStartAndEndOn(start, end)
	return out
}

// Start returns the logical start point: the start tip's apex when one
// is attached, else the path's first anchor.
func (t *TipableVMobject) Start() mgl64.Vec3 {
	if t.startTip != nil {
		return t.startTip.TipPoint()
	}
	return t.points.Start()
}

// End returns the logical end point: the end tip's apex when one is
// attached, else the path's last anchor.
func (t *TipableVMobject) End() mgl64.Vec3 {
	if t.tip != nil {
		return t.tip.TipPoint()
	}
	return t.points.End()
}

// StartAndEnd returns both logical endpoints.
func (t *TipableVMobject) StartAndEnd() (mgl64.Vec3, mgl64.Vec3) {
	return t.Start(), t.End()
}

// Length is the straight-line distance between the logical endpoints.
func (t *TipableVMobject) Length() float64 {
	return t.End().Sub(t.Start()).Len()
}

// FirstHandle returns the first curve's first handle.
func (t *TipableVMobject) FirstHandle() mgl64.Vec3 {
	if len(t.points) < 2 {
		return t.points.Start()
	}
	return t.points[1]
}

// LastHandle returns the last curve's second handle.
func (t *TipableVMobject) LastHandle() mgl64.Vec3 {
	if len(t.points) < 2 {
		return t.points.End()
	}
	return t.points[len(t.points)-2]
}

// PutStartAndEndOn places the curve, tips included, so its logical
// endpoints land on start and end.
func (t *TipableVMobject) PutStartAndEndOn(start, end mgl64.Vec3) {
	t.putStartAndEndOnFrom(t.Start(), t.End(), start, end)
}
