package roboviz

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MapVisualizer renders a grayscale occupancy-grid raster under the
// robot marker. The display origin sits in the lower-left corner so the
// map fills the window; the raster is row-major with row 0 at the top.
//
// The map texture is created on the first frame that has map data and
// updated in place afterwards, never recreated.
type MapVisualizer struct {
	Visualizer

	tex        rl.Texture2D
	haveTex    bool
	texVersion uint64
	pixels     []color.RGBA
}

// NewMapVisualizer opens a sizePixels² window spanning sizeMeters of
// world, with the origin in the lower-left corner.
func NewMapVisualizer(sizePixels int, sizeMeters float64, title string, opts ...Option) (*MapVisualizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	scene, err := NewMapScene(sizePixels, sizeMeters, opts...)
	if err != nil {
		return nil, err
	}
	win := openWindow(sizePixels, title, o.fps)
	return &MapVisualizer{
		Visualizer: Visualizer{scene: scene, win: win},
	}, nil
}

// SetMap replaces the map raster without redrawing. buf must hold
// exactly sizePixels² grayscale bytes; a wrong length fails with
// ErrMapSize.
func (m *MapVisualizer) SetMap(buf []byte) error {
	if m.closed {
		return ErrWindowClosed
	}
	return m.scene.SetMap(buf)
}

// Display updates pose and map together and redraws the frame.
func (m *MapVisualizer) Display(x, y, thetaDeg float64, mapBytes []byte) error {
	if m.closed {
		return ErrWindowClosed
	}
	m.scene.SetPose(x, y, thetaDeg)
	if err := m.scene.SetMap(mapBytes); err != nil {
		return err
	}
	return m.Refresh()
}

// Refresh redraws map, axes, trajectory and marker. Error semantics
// match Visualizer.Refresh.
func (m *MapVisualizer) Refresh() error {
	return m.refresh(m.drawMap)
}

// Close releases the map texture and the window.
func (m *MapVisualizer) Close() {
	if !m.closed {
		if m.haveTex && m.win.current() {
			rl.UnloadTexture(m.tex)
			m.haveTex = false
		}
		m.Visualizer.Close()
	}
}

func (m *MapVisualizer) drawMap() {
	raster := m.scene.Raster()
	if raster == nil {
		return
	}

	size := m.scene.sizePixels
	if !m.haveTex {
		img := rl.GenImageColor(size, size, rl.Black)
		m.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		m.pixels = make([]color.RGBA, size*size)
		m.haveTex = true
	}

	if m.texVersion != m.scene.MapVersion() {
		for i, b := range raster {
			m.pixels[i] = color.RGBA{R: b, G: b, B: b, A: 255}
		}
		rl.UpdateTexture(m.tex, m.pixels)
		m.texVersion = m.scene.MapVersion()
	}

	rl.DrawTexture(m.tex, 0, 0, rl.White)
}
