// Package demo generates deterministic pose and map data so the
// visualizer can be exercised without a robot: a differential-drive
// rover wanders a procedural floorplan and reveals it into a grayscale
// occupancy raster.
package demo

import (
	"math"
	"math/rand"

	"github.com/robolab-io/roboviz/internal/trace"
)

// Params tune the rover's motion and how aggressively it reveals the
// floorplan around its path.
type Params struct {
	SpeedMPS      float64 // forward speed
	TurnRateDeg   float64 // heading noise, degrees/s
	RevealRadiusM float64 // radius of the revealed disk around the rover
}

// DefaultParams returns a gentle indoor wander.
func DefaultParams() Params {
	return Params{
		SpeedMPS:      1.0,
		TurnRateDeg:   60.0,
		RevealRadiusM: 4.0,
	}
}

// Rover is a kinematic differential-drive robot on a floorplan. It
// maintains a "revealed" view of the plan: cells near visited positions
// take the floorplan's value, everything else stays unknown.
type Rover struct {
	fp            *Floorplan
	sizeMeters    float64
	metersPerCell float64
	params        Params
	rng           *rand.Rand

	x, y       float64 // meters, origin at the lower-left map corner
	headingDeg float64
	t          float64

	view []byte
}

// NewRover places a rover at the center of fp, which spans sizeMeters
// on each side. The same seed always yields the same walk.
func NewRover(fp *Floorplan, sizeMeters float64, params Params, seed int64) *Rover {
	rng := rand.New(rand.NewSource(seed))

	r := &Rover{
		fp:            fp,
		sizeMeters:    sizeMeters,
		metersPerCell: sizeMeters / float64(fp.Size),
		params:        params,
		rng:           rng,
		x:             sizeMeters / 2,
		y:             sizeMeters / 2,
		headingDeg:    rng.Float64() * 360,
		view:          make([]byte, fp.Size*fp.Size),
	}
	for i := range r.view {
		r.view[i] = CellUnknown
	}
	r.reveal()
	return r
}

// Step advances the rover by dt seconds and returns the resulting pose
// frame. Headings wander with seeded noise; hitting a wall turns the
// rover away instead of moving.
func (r *Rover) Step(dt float64) trace.Frame {
	r.t += dt
	r.headingDeg += r.rng.NormFloat64() * r.params.TurnRateDeg * dt

	theta := r.headingDeg * math.Pi / 180
	nx := r.x + r.params.SpeedMPS*math.Cos(theta)*dt
	ny := r.y + r.params.SpeedMPS*math.Sin(theta)*dt

	if r.blocked(nx, ny) {
		r.headingDeg += 90 + r.rng.Float64()*90
	} else {
		r.x, r.y = nx, ny
	}
	r.headingDeg = math.Mod(r.headingDeg, 360)

	r.reveal()

	return trace.Frame{T: r.t, X: r.x, Y: r.y, ThetaDeg: r.headingDeg}
}

// Pose returns the current pose without stepping.
func (r *Rover) Pose() trace.Frame {
	return trace.Frame{T: r.t, X: r.x, Y: r.y, ThetaDeg: r.headingDeg}
}

// Map returns the revealed occupancy raster. The backing buffer is
// reused across steps, matching the in-place map update contract of the
// visualizer.
func (r *Rover) Map() []byte {
	return r.view
}

// Coverage reports the fraction of cells no longer unknown.
func (r *Rover) Coverage() float64 {
	known := 0
	for _, c := range r.view {
		if c != CellUnknown {
			known++
		}
	}
	return float64(known) / float64(len(r.view))
}

func (r *Rover) blocked(x, y float64) bool {
	col, row := r.cell(x, y)
	return r.fp.Wall(col, row)
}

// cell converts meters (y up) to raster coordinates (row 0 at top).
func (r *Rover) cell(x, y float64) (col, row int) {
	col = int(x / r.metersPerCell)
	row = r.fp.Size - 1 - int(y/r.metersPerCell)
	return col, row
}

func (r *Rover) reveal() {
	radius := int(math.Ceil(r.params.RevealRadiusM / r.metersPerCell))
	col, row := r.cell(r.x, r.y)

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc > radius*radius {
				continue
			}
			c, rw := col+dc, row+dr
			if c < 0 || c >= r.fp.Size || rw < 0 || rw >= r.fp.Size {
				continue
			}
			r.view[rw*r.fp.Size+c] = r.fp.At(c, rw)
		}
	}
}
