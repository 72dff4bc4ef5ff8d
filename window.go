package roboviz

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raylib owns a single global window. A generation counter stands in for
// a per-window handle, so a visualizer can tell when the surface it
// opened at construction has been replaced by a newer one.
var windowGeneration uint64

type window struct {
	generation uint64
}

func openWindow(sizePixels int, title string, fps int32) *window {
	rl.InitWindow(int32(sizePixels), int32(sizePixels), title)
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
	windowGeneration++
	return &window{generation: windowGeneration}
}

// current reports whether this handle still owns the active surface.
func (w *window) current() bool {
	return rl.IsWindowReady() && w.generation == windowGeneration
}

func (w *window) close() {
	if w.current() {
		rl.CloseWindow()
	}
}
