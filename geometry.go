package roboviz

import (
	"math"
	"strconv"
)

// Robot glyph dimensions in meters. The arrow head is sized from these,
// then converted to display units with the map scale.
const (
	RobotHeightMeters = 0.5
	RobotWidthMeters  = 0.3
)

const (
	// headingRadius is a very short shaft, in display units, used purely
	// to orient the arrow head.
	headingRadius = 0.1

	// tickInterval is the spacing of axis ticks in display units.
	tickInterval = 100
)

// Pose is a 2D position plus heading.
type Pose struct {
	X        float64 // meters
	Y        float64 // meters
	ThetaDeg float64 // degrees, 0 = along +X
}

// Vec2 is a point in display units (map pixels).
type Vec2 struct {
	X, Y float64
}

// Glyph is the directional marker for a single pose, in display units.
// It is rebuilt from scratch on every pose update.
type Glyph struct {
	Pos      Vec2    // shaft origin
	Tip      Vec2    // shaft end, head base
	Head     [3]Vec2 // apex, left, right
	ThetaDeg float64
}

// newGlyph converts a world pose to a display-space arrow. scale is
// meters per display unit.
func newGlyph(x, y, thetaDeg, scale float64) *Glyph {
	theta := thetaDeg * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)

	pos := Vec2{x / scale, y / scale}
	tip := Vec2{pos.X + headingRadius*c, pos.Y + headingRadius*s}

	headLen := RobotHeightMeters / scale
	headWidth := RobotWidthMeters / scale

	apex := Vec2{tip.X + headLen*c, tip.Y + headLen*s}
	left := Vec2{tip.X - headWidth/2*s, tip.Y + headWidth/2*c}
	right := Vec2{tip.X + headWidth/2*s, tip.Y - headWidth/2*c}

	return &Glyph{
		Pos:      pos,
		Tip:      tip,
		Head:     [3]Vec2{apex, left, right},
		ThetaDeg: thetaDeg,
	}
}

// Tick is one axis tick: a display coordinate and its world-unit label.
type Tick struct {
	Display float64
	Label   string
}

// axisTicks generates ticks every tickInterval display units across
// [shift, sizePixels+shift], labeled in world units.
func axisTicks(sizePixels int, shift, scale float64) []Tick {
	ticks := make([]Tick, 0, sizePixels/tickInterval+1)
	for t := shift; t <= float64(sizePixels)+shift; t += tickInterval {
		ticks = append(ticks, Tick{
			Display: t,
			Label:   strconv.FormatFloat(scale*t, 'g', -1, 64),
		})
	}
	return ticks
}
