package roboviz

import (
	"errors"
	"testing"
)

// A closed visualizer must reject every call before touching the window
// layer or the scene, so these run without an actual window.
func TestClosedVisualizerRejectsCalls(t *testing.T) {
	scene, err := NewScene(800, 10)
	if err != nil {
		t.Fatal(err)
	}
	v := &Visualizer{scene: scene, win: &window{}, closed: true}

	if err := v.Display(1, 2, 3); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed from Display, got %v", err)
	}
	if err := v.Refresh(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed from Refresh, got %v", err)
	}

	v.SetPose(1, 2, 3)
	if scene.Glyph() != nil {
		t.Error("closed visualizer must not mutate the scene")
	}
}

func TestClosedMapVisualizerRejectsCalls(t *testing.T) {
	scene, err := NewMapScene(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := &MapVisualizer{Visualizer: Visualizer{scene: scene, win: &window{}, closed: true}}

	if err := m.SetMap(make([]byte, 16)); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed from SetMap, got %v", err)
	}
	if err := m.Display(1, 2, 3, make([]byte, 16)); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("expected ErrWindowClosed from Display, got %v", err)
	}
	if scene.Raster() != nil {
		t.Error("closed visualizer must not retain map data")
	}
}
