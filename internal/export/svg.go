// Package export renders recorded traces and map rasters to files:
// SVG trajectories and PGM map snapshots.
package export

import (
	"fmt"
	"strings"

	"github.com/robolab-io/roboviz/internal/trace"
)

// TrajectorySVG renders the XY path of a trace as a single SVG polyline,
// auto-fitted to the frame bounds with 10% padding.
func TrajectorySVG(frames []trace.Frame, width, height int, strokeColor string) string {
	if len(frames) < 2 {
		return ""
	}

	minX, maxX := frames[0].X, frames[0].X
	minY, maxY := frames[0].Y, frames[0].Y
	for _, fr := range frames {
		if fr.X < minX {
			minX = fr.X
		}
		if fr.X > maxX {
			maxX = fr.X
		}
		if fr.Y < minY {
			minY = fr.Y
		}
		if fr.Y > maxY {
			maxY = fr.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, fr := range frames {
		x := (fr.X - minX) / rangeX * float64(width)
		y := float64(height) - (fr.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
