package demo

import (
	"testing"
)

func TestFloorplanBorder(t *testing.T) {
	fp := NewFloorplan(64, 8, 42)

	for i := 0; i < 64; i++ {
		if !fp.Wall(i, 0) || !fp.Wall(i, 63) {
			t.Fatalf("expected border wall at column %d", i)
		}
		if !fp.Wall(0, i) || !fp.Wall(63, i) {
			t.Fatalf("expected border wall at row %d", i)
		}
	}
}

func TestFloorplanDeterministic(t *testing.T) {
	a := NewFloorplan(64, 8, 42)
	b := NewFloorplan(64, 8, 42)

	for row := 0; row < 64; row++ {
		for col := 0; col < 64; col++ {
			if a.At(col, row) != b.At(col, row) {
				t.Fatalf("plans differ at (%d, %d)", col, row)
			}
		}
	}
}

func TestFloorplanSpawnAreaClear(t *testing.T) {
	fp := NewFloorplan(128, 20, 7)
	if fp.Wall(64, 64) {
		t.Error("expected center cell to be free")
	}
}

func TestFloorplanOutOfRange(t *testing.T) {
	fp := NewFloorplan(32, 0, 1)
	if !fp.Wall(-1, 5) || !fp.Wall(5, 32) {
		t.Error("out-of-range cells should count as walls")
	}
	if fp.At(-1, 0) != CellWall {
		t.Error("out-of-range intensity should be wall")
	}
}

func TestRoverDeterministic(t *testing.T) {
	params := DefaultParams()
	a := NewRover(NewFloorplan(64, 8, 42), 16.0, params, 99)
	b := NewRover(NewFloorplan(64, 8, 42), 16.0, params, 99)

	for i := 0; i < 200; i++ {
		fa := a.Step(0.05)
		fb := b.Step(0.05)
		if fa != fb {
			t.Fatalf("step %d: frames differ: %+v vs %+v", i, fa, fb)
		}
	}
}

func TestRoverStaysInBounds(t *testing.T) {
	fp := NewFloorplan(64, 8, 1)
	r := NewRover(fp, 16.0, DefaultParams(), 2)

	for i := 0; i < 2000; i++ {
		fr := r.Step(0.05)
		if fr.X < 0 || fr.X > 16.0 || fr.Y < 0 || fr.Y > 16.0 {
			t.Fatalf("step %d: rover escaped to (%f, %f)", i, fr.X, fr.Y)
		}
	}
}

func TestRoverRevealsMap(t *testing.T) {
	fp := NewFloorplan(64, 8, 1)
	r := NewRover(fp, 16.0, DefaultParams(), 2)

	if r.Coverage() == 0 {
		t.Fatal("expected the spawn area to be revealed")
	}

	before := r.Coverage()
	for i := 0; i < 500; i++ {
		r.Step(0.05)
	}
	after := r.Coverage()

	if after < before {
		t.Errorf("coverage went backwards: %f -> %f", before, after)
	}
}

func TestRoverMapBufferReused(t *testing.T) {
	fp := NewFloorplan(32, 4, 1)
	r := NewRover(fp, 8.0, DefaultParams(), 3)

	first := &r.Map()[0]
	r.Step(0.05)
	if &r.Map()[0] != first {
		t.Error("map buffer should be reused across steps")
	}
	if len(r.Map()) != 32*32 {
		t.Errorf("expected %d map bytes, got %d", 32*32, len(r.Map()))
	}
}
