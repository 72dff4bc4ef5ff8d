package roboviz

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowClosed reports that the drawing surface owned by the
	// visualizer is gone: the user closed the window, or a newer window
	// replaced it.
	ErrWindowClosed = errors.New("window closed")

	// ErrInterrupted reports that the user aborted from inside the
	// redraw event pump (quit key).
	ErrInterrupted = errors.New("display interrupted")

	// ErrMapSize reports a map buffer whose length is not pixelSize².
	ErrMapSize = errors.New("bad map buffer size")
)

// Segment is one trajectory edge between consecutive displayed poses,
// in display units.
type Segment struct {
	From, To Vec2
}

// Scene holds the retained drawing state of a visualizer: the current
// pose glyph, the trajectory polyline, and the map raster. It performs
// all coordinate conversion and is independent of any window, so it can
// be driven headless.
//
// A Scene is not safe for concurrent use; callers serialize updates,
// matching the single-threaded render loop that consumes it.
type Scene struct {
	sizePixels int
	scale      float64 // meters per display unit
	shift      float64 // display-axis offset

	showTrajectory bool
	zeroAngle      *float64
	startAngle     float64
	startPos       Vec2
	haveStart      bool

	glyph    *Glyph
	prev     Vec2
	havePrev bool
	segments []Segment

	raster     []byte
	mapVersion uint64
}

// NewScene creates a pose-only scene with the origin centered, spanning
// sizeMeters of world across sizePixels of display.
func NewScene(sizePixels int, sizeMeters float64, opts ...Option) (*Scene, error) {
	return newScene(sizePixels, sizeMeters, -float64(sizePixels)/2, opts...)
}

// NewMapScene creates a map+pose scene with the origin in the lower-left
// corner, so the map raster fills the positive quadrant.
func NewMapScene(sizePixels int, sizeMeters float64, opts ...Option) (*Scene, error) {
	return newScene(sizePixels, sizeMeters, 0, opts...)
}

func newScene(sizePixels int, sizeMeters, shift float64, opts ...Option) (*Scene, error) {
	if sizePixels <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %d pixels", sizePixels)
	}
	if sizeMeters <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %f meters", sizeMeters)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Scene{
		sizePixels:     sizePixels,
		scale:          sizeMeters / float64(sizePixels),
		shift:          shift,
		showTrajectory: o.showTrajectory,
		zeroAngle:      o.zeroAngle,
	}, nil
}

// Scale returns the immutable meters-per-display-unit ratio.
func (s *Scene) Scale() float64 { return s.scale }

// SizePixels returns the square display size.
func (s *Scene) SizePixels() int { return s.sizePixels }

// Shift returns the display-axis offset (negative half-size when the
// origin is centered, zero when it sits in the corner).
func (s *Scene) Shift() float64 { return s.shift }

// SetPose replaces the pose glyph with a new arrow at the given world
// pose and, when trajectory display is on, appends one segment from the
// previous display position.
//
// When a zero angle is configured, the first pose is captured as the
// reference and later headings are displayed relative to it, offset by
// the configured angle. Positions are not re-based.
func (s *Scene) SetPose(x, y, thetaDeg float64) {
	if s.zeroAngle != nil {
		if !s.haveStart {
			s.startAngle = thetaDeg
			s.startPos = Vec2{x, y}
			s.haveStart = true
		}
		thetaDeg = *s.zeroAngle + thetaDeg - s.startAngle
	}

	s.glyph = newGlyph(x, y, thetaDeg, s.scale)

	curr := Vec2{x / s.scale, y / s.scale}
	if s.showTrajectory && s.havePrev {
		s.segments = append(s.segments, Segment{From: s.prev, To: curr})
	}
	s.prev = curr
	s.havePrev = true
}

// SetMap replaces the map raster contents. buf must be a row-major
// grayscale grid of exactly sizePixels² bytes, row 0 at the top of the
// window; anything else fails with ErrMapSize and leaves the raster
// untouched. The backing allocation is created on first use and reused
// afterwards, so the renderer can update its texture in place.
func (s *Scene) SetMap(buf []byte) error {
	want := s.sizePixels * s.sizePixels
	if len(buf) != want {
		return fmt.Errorf("map buffer is %d bytes, want %d: %w", len(buf), want, ErrMapSize)
	}
	if s.raster == nil {
		s.raster = make([]byte, want)
	}
	copy(s.raster, buf)
	s.mapVersion++
	return nil
}

// Glyph returns the current pose glyph, or nil before the first pose.
func (s *Scene) Glyph() *Glyph { return s.glyph }

// Segments returns the trajectory polyline accumulated so far.
func (s *Scene) Segments() []Segment { return s.segments }

// Raster returns the retained map raster, or nil before the first map.
func (s *Scene) Raster() []byte { return s.raster }

// MapVersion increments on every accepted SetMap; renderers compare it
// against the version they last uploaded.
func (s *Scene) MapVersion() uint64 { return s.mapVersion }

// Ticks returns the axis ticks for this scene's extent and scale.
func (s *Scene) Ticks() []Tick {
	return axisTicks(s.sizePixels, s.shift, s.scale)
}
