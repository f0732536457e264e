package birdloader

import "math"

// RegionKind identifies one filled segment of the bird face. The numeric
// order is the paint order: later kinds are drawn on top.
type RegionKind uint8

const (
	RegionMouth RegionKind = iota
	RegionHair
	RegionForehead
	RegionBeard
	RegionEye
	RegionBeak
)

// RegionCount is the number of regions making up the face.
const RegionCount = 6

// animatedRegionCount is the number of regions that rotate each phase.
const animatedRegionCount = 5

// animatedRegions lists the rotating regions in rotation-table order.
var animatedRegions = [animatedRegionCount]RegionKind{
	RegionMouth, RegionHair, RegionForehead, RegionBeard, RegionBeak,
}

var regionNames = [RegionCount]string{"mouth", "hair", "forehead", "beard", "eye", "beak"}

func (k RegionKind) String() string {
	if int(k) < len(regionNames) {
		return regionNames[k]
	}
	return "unknown"
}

// arcSegmentsPerTurn controls how finely a full circle is flattened.
const arcSegmentsPerTurn = 64

// regionGeometry holds the fixed arc parameters of one region.
type regionGeometry struct {
	ratio      float64
	rightStart float64
	rightEnd   float64
	leftStart  float64
	leftEnd    float64
}

var regionTable = [RegionCount]regionGeometry{
	RegionMouth:    {1.0 / 3.0, 0, math.Pi / 2, math.Pi / 2, math.Pi},
	RegionHair:     {1, math.Pi / 2, 3 * math.Pi / 2, 3 * math.Pi / 2, math.Pi / 2},
	RegionForehead: {2.0 / 3.0, math.Pi / 2, 3 * math.Pi / 2, 3 * math.Pi / 2, math.Pi / 2},
	RegionBeard:    {2.0 / 3.0, math.Pi / 2, math.Pi, 0, math.Pi / 2},
	RegionEye:      {EyeRadiusRatio, 0, 2 * math.Pi, 0, 2 * math.Pi},
	RegionBeak:     {2.0 / 3.0, 3 * math.Pi / 2, 0, math.Pi, 3 * math.Pi / 2},
}

// Region is one computed face segment. All coordinates are relative to the
// center of the loader's bounds.
type Region struct {
	Kind        RegionKind
	StartAngle  float64
	EndAngle    float64
	RadiusRatio float64
	Radius      float64
	// Center is the arc center. It is the origin for every region except
	// the eye.
	Center Vec2
	Color  Color
	// Points is the closed outline: Points[0] is Center, followed by the arc
	// from StartAngle to EndAngle swept clockwise.
	Points []Vec2
}

// eyeTravel is the eye's offset from the view center along each axis, and
// half the distance it slides during Phase A.
func eyeTravel(maxRadius float64) float64 {
	return EyeSpacing + maxRadius*EyeRadiusRatio
}

// BuildRegions computes the six face regions for the given bounds, in paint
// order. It is a pure function; empty or negative bounds produce zero-radius
// regions.
func BuildRegions(bounds Rect, props Properties) [RegionCount]Region {
	maxRadius := bounds.MaxRadius()
	var regions [RegionCount]Region
	for i := range regions {
		kind := RegionKind(i)
		geo := regionTable[kind]

		start, end := geo.rightStart, geo.rightEnd
		if props.Direction == FacingLeft {
			start, end = geo.leftStart, geo.leftEnd
		}

		radius := maxRadius * geo.ratio
		var center Vec2
		if kind == RegionEye {
			travel := EyeSpacing + radius
			center = Vec2{X: -props.Direction.sign() * travel, Y: -travel}
		}

		regions[i] = Region{
			Kind:        kind,
			StartAngle:  start,
			EndAngle:    end,
			RadiusRatio: geo.ratio,
			Radius:      radius,
			Center:      center,
			Color:       regionColor(kind, props),
			Points:      arcPoints(center, radius, start, end),
		}
	}
	return regions
}

func regionColor(kind RegionKind, props Properties) Color {
	switch kind {
	case RegionMouth:
		return props.MouthColor
	case RegionHair:
		return props.HairColor
	case RegionForehead:
		return props.ForeheadColor
	case RegionBeard:
		return props.BeardColor
	case RegionEye:
		return props.EyeColor
	default:
		return props.BeakColor
	}
}

// clockwiseSweep returns the angle covered when travelling clockwise
// (increasing angle, Y down) from start to end. An end at or before start
// wraps through a full turn.
func clockwiseSweep(start, end float64) float64 {
	sweep := end - start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return sweep
}

// arcPoints flattens a pie slice: the center followed by the arc.
func arcPoints(center Vec2, radius, start, end float64) []Vec2 {
	sweep := clockwiseSweep(start, end)
	segs := int(math.Ceil(sweep / (2 * math.Pi) * arcSegmentsPerTurn))
	if segs < 2 {
		segs = 2
	}

	pts := make([]Vec2, 0, segs+2)
	pts = append(pts, center)
	for i := 0; i <= segs; i++ {
		a := start + sweep*float64(i)/float64(segs)
		sin, cos := math.Sincos(a)
		pts = append(pts, Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin})
	}
	return pts
}
