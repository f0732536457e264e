package birdloader

import (
	"image/color"
	"math"
	"time"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, offsets and polygon points.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// MaxRadius returns the radius of the largest circle inscribed in r.
// Negative sizes are treated as zero.
func (r Rect) MaxRadius() float64 {
	return math.Max(0, math.Min(r.Width, r.Height)/2)
}

// Direction selects which way the bird faces. All region angles and the eye
// translation are mirrored between the two directions.
type Direction uint8

const (
	FacingRight Direction = iota // beak on the right, eye starts left of center
	FacingLeft                   // beak on the left, eye starts right of center
)

// String returns "right" or "left".
func (d Direction) String() string {
	switch d {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// sign returns +1 for FacingRight and -1 for FacingLeft.
func (d Direction) sign() float64 {
	if d == FacingLeft {
		return -1
	}
	return 1
}

// Properties is the loader's configuration. It is copied by New and never
// mutated afterwards.
type Properties struct {
	HairColor     Color
	ForeheadColor Color
	BeardColor    Color
	BeakColor     Color
	MouthColor    Color
	EyeColor      Color
	Direction     Direction
	// Duration is the length of one phase's movement.
	Duration time.Duration
}

// Style constants. These are fixed for every loader and not configurable.
const (
	EyeSpacing     = 2.5
	EyeRadiusRatio = 1.0 / 6.0
	PhaseDelay     = 750 * time.Millisecond

	// beardFadeRatio is the share of Duration spent fading the beard out
	// (and again fading it back in).
	beardFadeRatio = 3.0 / 5.0
)

// Rotation targets per phase, ordered mouth, hair, forehead, beard, beak.
var (
	phaseARight = [animatedRegionCount]float64{math.Pi / 2, math.Pi, -math.Pi, -math.Pi / 2, -math.Pi / 2}
	phaseBRight = [animatedRegionCount]float64{0, 2 * math.Pi, 0, -2 * math.Pi, 0}
	phaseALeft  = [animatedRegionCount]float64{-math.Pi / 2, math.Pi, -math.Pi, math.Pi / 2, math.Pi / 2}
	phaseBLeft  = [animatedRegionCount]float64{0, 2 * math.Pi, 0, 2 * math.Pi, 0}
)

// RotationTargets returns the rotation table for the given phase and direction.
func RotationTargets(p Phase, d Direction) [animatedRegionCount]float64 {
	switch {
	case p == PhaseA && d == FacingLeft:
		return phaseALeft
	case p == PhaseA:
		return phaseARight
	case d == FacingLeft:
		return phaseBLeft
	default:
		return phaseBRight
	}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMesh                      // renders triangles via DrawTriangles
)
