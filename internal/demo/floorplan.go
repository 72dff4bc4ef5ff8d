package demo

import (
	"math/rand"
)

// Cell intensities in the demo occupancy raster.
const (
	CellWall    byte = 0
	CellUnknown byte = 127
	CellFree    byte = 255
)

// Floorplan is a synthetic indoor environment: a bordered square grid
// with rectangular obstacles. Cells are row-major with row 0 at the top,
// matching the raster layout the visualizer expects.
type Floorplan struct {
	Size  int
	cells []byte
}

const borderCells = 2

// NewFloorplan generates a size×size plan with the given number of
// random rectangular obstacles. The same seed always yields the same
// plan. A clear area is kept around the center so the rover has
// somewhere to start.
func NewFloorplan(size, obstacles int, seed int64) *Floorplan {
	fp := &Floorplan{
		Size:  size,
		cells: make([]byte, size*size),
	}
	for i := range fp.cells {
		fp.cells[i] = CellFree
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if row < borderCells || row >= size-borderCells ||
				col < borderCells || col >= size-borderCells {
				fp.cells[row*size+col] = CellWall
			}
		}
	}

	rng := rand.New(rand.NewSource(seed))
	spawn := size / 8
	for i := 0; i < obstacles; i++ {
		w := size/20 + rng.Intn(size/8)
		h := size/20 + rng.Intn(size/8)
		col := rng.Intn(size - w)
		row := rng.Intn(size - h)

		// Keep the spawn area around the center open.
		if col < size/2+spawn && col+w > size/2-spawn &&
			row < size/2+spawn && row+h > size/2-spawn {
			continue
		}

		for r := row; r < row+h; r++ {
			for c := col; c < col+w; c++ {
				fp.cells[r*size+c] = CellWall
			}
		}
	}

	return fp
}

// Wall reports whether the cell at (col, row) is occupied. Out-of-range
// cells count as walls.
func (fp *Floorplan) Wall(col, row int) bool {
	if col < 0 || col >= fp.Size || row < 0 || row >= fp.Size {
		return true
	}
	return fp.cells[row*fp.Size+col] == CellWall
}

// At returns the intensity of the cell at (col, row).
func (fp *Floorplan) At(col, row int) byte {
	if col < 0 || col >= fp.Size || row < 0 || row >= fp.Size {
		return CellWall
	}
	return fp.cells[row*fp.Size+col]
}
