// Package manim constructs parametric vector shapes as piecewise cubic
// Bézier paths.
//
// Shapes are declared by their parameters (an arc's radius and sweep, a
// polygon's vertices, an arrow's endpoints) and realized eagerly into a
// flat point buffer of self-contained (anchor, handle, handle, anchor)
// quadruples. Constructors accept functional options; all angles are in
// radians and all curves live in the xy-plane of a right-handed
// 3-space, with rotation about the Out axis.
//
// Everything here is geometry. Shapes carry stroke and fill style
// values for a renderer to read, but no rendering happens in this
// package.
package manim
