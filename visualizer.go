package roboviz

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colBackground = rl.NewColor(10, 10, 10, 255)
	colAxis       = rl.NewColor(140, 140, 140, 255)
	colTickLabel  = rl.NewColor(110, 110, 110, 255)
	colGrid       = rl.NewColor(30, 30, 30, 255)
	colTrajectory = rl.NewColor(80, 140, 255, 255)
	colVehicle    = rl.NewColor(230, 41, 55, 255)
)

const tickFontSize = 10

// Visualizer owns a square window and renders a directional robot
// marker in a centered world coordinate frame, optionally with a
// trajectory trail. Construction opens the window; the instance must be
// driven from a single goroutine, and each Display or Refresh briefly
// yields to the windowing event pump.
type Visualizer struct {
	scene  *Scene
	win    *window
	closed bool
}

// New opens a sizePixels² window spanning sizeMeters of world on each
// axis, with the origin at the center.
func New(sizePixels int, sizeMeters float64, title string, opts ...Option) (*Visualizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	scene, err := NewScene(sizePixels, sizeMeters, opts...)
	if err != nil {
		return nil, err
	}
	win := openWindow(sizePixels, title, o.fps)
	return &Visualizer{scene: scene, win: win}, nil
}

// Scene exposes the retained drawing state, mainly for headless
// consumers and tests.
func (v *Visualizer) Scene() *Scene { return v.scene }

// SetPose updates the robot marker without redrawing. It is a no-op
// once the visualizer is closed.
func (v *Visualizer) SetPose(x, y, thetaDeg float64) {
	if v.closed {
		return
	}
	v.scene.SetPose(x, y, thetaDeg)
}

// Display updates the robot marker and redraws the frame.
func (v *Visualizer) Display(x, y, thetaDeg float64) error {
	if v.closed {
		return ErrWindowClosed
	}
	v.scene.SetPose(x, y, thetaDeg)
	return v.Refresh()
}

// Refresh redraws the current scene without blocking beyond one frame
// of the event pump. It fails with ErrWindowClosed when the surface
// opened at construction is gone, or ErrInterrupted when the user quits
// from inside the pump; after either, the visualizer is terminally
// closed.
func (v *Visualizer) Refresh() error {
	return v.refresh(nil)
}

// Close releases the window. Further calls fail with ErrWindowClosed.
func (v *Visualizer) Close() {
	if !v.closed {
		v.closed = true
		v.win.close()
	}
}

func (v *Visualizer) refresh(drawUnder func()) error {
	if v.closed {
		return ErrWindowClosed
	}
	if !v.win.current() || rl.WindowShouldClose() {
		v.closed = true
		return ErrWindowClosed
	}

	rl.BeginDrawing()
	rl.ClearBackground(colBackground)
	if drawUnder != nil {
		drawUnder()
	}
	v.drawAxes()
	v.drawTrajectory()
	v.drawVehicle()
	rl.EndDrawing()

	// EndDrawing ran the event pump, so key state is fresh here.
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		v.closed = true
		return ErrInterrupted
	}
	return nil
}

// toScreen maps display units (y up, axis range [shift, size+shift]) to
// window coordinates (y down, origin top-left).
func (v *Visualizer) toScreen(p Vec2) rl.Vector2 {
	size := float64(v.scene.sizePixels)
	return rl.NewVector2(
		float32(p.X-v.scene.shift),
		float32(size-(p.Y-v.scene.shift)),
	)
}

func (v *Visualizer) drawAxes() {
	size := int32(v.scene.sizePixels)

	// Axis lines through the display origin.
	origin := v.toScreen(Vec2{0, 0})
	rl.DrawLine(0, int32(origin.Y), size, int32(origin.Y), colGrid)
	rl.DrawLine(int32(origin.X), 0, int32(origin.X), size, colGrid)

	for _, tick := range v.scene.Ticks() {
		x := v.toScreen(Vec2{tick.Display, 0})
		y := v.toScreen(Vec2{0, tick.Display})

		rl.DrawLine(int32(x.X), size-6, int32(x.X), size, colAxis)
		rl.DrawLine(0, int32(y.Y), 6, int32(y.Y), colAxis)

		w := rl.MeasureText(tick.Label, tickFontSize)
		rl.DrawText(tick.Label, int32(x.X)-w/2, size-8-tickFontSize, tickFontSize, colTickLabel)
		rl.DrawText(tick.Label, 8, int32(y.Y)-tickFontSize/2, tickFontSize, colTickLabel)
	}

	rl.DrawText("X (m)", size-40, size-24, tickFontSize, colAxis)
	rl.DrawText("Y (m)", 8, 8, tickFontSize, colAxis)
}

func (v *Visualizer) drawTrajectory() {
	for _, seg := range v.scene.Segments() {
		rl.DrawLineV(v.toScreen(seg.From), v.toScreen(seg.To), colTrajectory)
	}
}

func (v *Visualizer) drawVehicle() {
	g := v.scene.Glyph()
	if g == nil {
		return
	}

	rl.DrawLineEx(v.toScreen(g.Pos), v.toScreen(g.Tip), 2, colVehicle)

	a := v.toScreen(g.Head[0])
	b := v.toScreen(g.Head[1])
	c := v.toScreen(g.Head[2])
	// Raylib culls triangles wound the wrong way; the y flip in
	// toScreen can reverse the winding, so fix it here.
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, colVehicle)
}
