package manim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowTipGeometry(t *testing.T) {
	tip := NewArrowTip(0.35)
	assert.InDelta(t, 0.35, tip.Length(), 1e-9)
	assert.InDelta(t, 0.35, tip.Width(), 1e-9)
	assert.InDelta(t, 0.35, tip.Height(), 1e-9)

	// fresh tips point left: apex at minimal x, base behind it
	assert.Less(t, tip.TipPoint().X(), tip.Base().X())
	assert.InDelta(t, 1, tip.Style().FillOpacity, 1e-12)
	assert.Zero(t, tip.Style().StrokeWidth)
}

func TestArrowDefaults(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)))

	// default buffer insets both logical endpoints
	assert.InDelta(t, 0.25, a.Start().X(), 1e-9)
	assert.InDelta(t, 1.75, a.End().X(), 1e-9)
	assert.InDelta(t, 1.5, a.Length(), 1e-9)

	require.True(t, a.HasTip())
	tip, err := a.Tip()
	require.NoError(t, err)
	assert.InDelta(t, 0.35, tip.Length(), 1e-9)
	assert.InDelta(t, Config.ArrowStrokeWidth, a.Style().StrokeWidth, 1e-9)
}

func TestArrowNoBuff(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)), WithBuff(0))
	assert.InDelta(t, 0, a.Start().X(), 1e-9)
	assert.InDelta(t, 2, a.End().X(), 1e-9)

	// the body stops at the tip base so the stroke does not poke
	// through the arrowhead
	tip, err := a.Tip()
	require.NoError(t, err)
	assert.InDelta(t, 2-0.35, a.Points().End().X(), 1e-9)
	assert.InDelta(t, 2-0.35, tip.Base().X(), 1e-9)
}

func TestArrowTipCapOnShortArrows(t *testing.T) {
	a := NewArrow(At(Origin), At(V(1, 0, 0)), WithBuff(0))
	tip, err := a.Tip()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, tip.Length(), 1e-9, "tip capped at a quarter of the length")
}

func TestArrowPopTipsRoundTrip(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)), WithBuff(0))
	start, end := a.StartAndEnd()

	tips := a.PopTips()
	require.Len(t, tips, 1)
	assert.False(t, a.HasTip())

	// the bare curve spans the full logical extent again
	assert.InDelta(t, start.X(), a.Points().Start().X(), 1e-9)
	assert.InDelta(t, end.X(), a.Points().End().X(), 1e-9)
}

func TestArrowScalePreservesTipLength(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)), WithBuff(0))
	a.Scale(2)

	assert.InDelta(t, 4, a.Length(), 1e-9)
	tip, err := a.Tip()
	require.NoError(t, err)
	// a long arrow keeps the configured tip length instead of growing
	assert.InDelta(t, 0.35, tip.Length(), 1e-9)
}

func TestArrowScaleDownShrinksTip(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)), WithBuff(0))
	a.Scale(0.25)

	assert.InDelta(t, 0.5, a.Length(), 1e-9)
	tip, err := a.Tip()
	require.NoError(t, err)
	assert.InDelta(t, 0.125, tip.Length(), 1e-9)
	// stroke width follows the capped ratio once the arrow is short
	assert.InDelta(t, 2.5, a.Style().StrokeWidth, 1e-9)
}

func TestArrowSetLength(t *testing.T) {
	a := NewArrow(At(Origin), At(V(2, 0, 0)), WithBuff(0))
	a.SetLength(1)
	assert.InDelta(t, 1, a.Length(), 1e-9)
	tip, err := a.Tip()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, tip.Length(), 1e-9)
}

func TestArrowScaleZeroLength(t *testing.T) {
	a := NewArrow(At(Origin), At(Origin), WithBuff(0))
	a.Scale(3)
	assert.Zero(t, a.Length())
}

func TestVector(t *testing.T) {
	v := NewVector(V(3, 0, 0))
	assert.InDelta(t, 0, v.Start().X(), 1e-9)
	assert.InDelta(t, 3, v.End().X(), 1e-9)
	assert.True(t, v.HasTip())
}

func TestDoubleArrow(t *testing.T) {
	d := NewDoubleArrow(At(Origin), At(V(2, 0, 0)))
	assert.True(t, d.HasTip())
	assert.True(t, d.HasStartTip())
	assert.InDelta(t, 0.25, d.Start().X(), 1e-9)
	assert.InDelta(t, 1.75, d.End().X(), 1e-9)

	st, err := d.StartTip()
	require.NoError(t, err)
	// the start tip points backwards
	assert.Less(t, st.Vector().X(), 0.0)
}

func TestTipOnUntippedCurve(t *testing.T) {
	l := NewLine(At(Origin), At(V(1, 0, 0)))
	_, err := l.Tip()
	assert.ErrorIs(t, err, ErrNoTip)
	_, err = l.StartTip()
	assert.ErrorIs(t, err, ErrNoTip)
}

func TestAddTipAtStart(t *testing.T) {
	l := NewLine(At(Origin), At(V(2, 0, 0)))
	l.AddTip(true)
	require.True(t, l.HasStartTip())

	// the logical start is the apex, on the original endpoint
	assert.InDelta(t, 0, l.Start().X(), 1e-9)
	// the body begins at the tip base
	assert.InDelta(t, 0.35, l.Points().Start().X(), 1e-9)
}
