package tui

import (
	"strings"
)

// Braille patterns pack a 2x4 dot grid into one rune:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-dot drawing surface. Dot coordinates span
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetRune stamps an arbitrary rune into a character cell, replacing any
// dots there. Used for the robot marker.
func (c *Canvas) SetRune(col, row int, r rune) {
	if col < 0 || col >= c.Width || row < 0 || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in dot coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// wallThreshold separates wall cells from free/unknown ones in a
// grayscale occupancy raster.
const wallThreshold = 64

// DrawMap renders a size×size grayscale occupancy raster onto the
// canvas, one dot per occupied cell, nearest-neighbor sampled to the
// dot resolution. Raster row 0 maps to the top dot row.
func (c *Canvas) DrawMap(raster []byte, size int) {
	if size <= 0 || len(raster) != size*size {
		return
	}

	dotsX := c.Width * 2
	dotsY := c.Height * 4
	for dy := 0; dy < dotsY; dy++ {
		row := dy * size / dotsY
		for dx := 0; dx < dotsX; dx++ {
			col := dx * size / dotsX
			if raster[row*size+col] < wallThreshold {
				c.Set(dx, dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
