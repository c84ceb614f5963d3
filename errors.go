package manim

import "errors"

var (
	// ErrInvalidRadius reports an arc radius smaller than half the
	// distance between its endpoints; no arc of that radius spans the
	// chord.
	ErrInvalidRadius = errors.New("manim: radius smaller than half the distance between points")

	// ErrDegenerateArc reports an arc whose center is undefined because
	// its first segment is straight. Callers typically fall back to an
	// infinite radius.
	ErrDegenerateArc = errors.New("manim: arc center undefined for straight segment")

	// ErrNoTip reports a tip query on a curve with no attached tips.
	ErrNoTip = errors.New("manim: curve has no tip")

	// ErrCornerRadius reports a corner radius whose tangent cut-off
	// exceeds half of an adjacent polygon edge; rounding would
	// self-intersect.
	ErrCornerRadius = errors.New("manim: corner radius too large for adjacent edges")
)
