// SPDX-License-Identifier: MIT

package view

import (
	"math"
	"strings"

	"github.com/katalvlaran/fraunhofer/phasor"
)

// Canvas is a W×H grid of runes. Drawing outside the grid is clipped.
type Canvas struct {
	W, H  int
	cells [][]rune
}

// NewCanvas returns a blank canvas; non-positive sizes give an empty one.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, cells: make([][]rune, h)}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", w))
	}

	return c
}

// At returns the rune in column x, row y (row 0 at the top), or ' ' when
// outside the grid.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return ' '
	}

	return c.cells[y][x]
}

// Set writes r at column x, row y.
func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.W && y >= 0 && y < c.H {
		c.cells[y][x] = r
	}
}

// Text writes s left to right starting at column x, row y.
func (c *Canvas) Text(x, y int, s string) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r)
	}
}

// Cell maps a point in figure units to a grid cell (y up → row down).
func (c *Canvas) Cell(p phasor.Point) (x, y int) {
	x = int(math.Round(p.X * float64(c.W-1)))
	y = int(math.Round((1 - p.Y) * float64(c.H-1)))

	return x, y
}

// Line draws a segment between two grid cells.
func (c *Canvas) Line(x1, y1, x2, y2 int, r rune) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Arrow draws from p to q in figure units with a stroke that follows the
// direction, and marks the head with '•'.
func (c *Canvas) Arrow(p, q phasor.Point) {
	x1, y1 := c.Cell(p)
	x2, y2 := c.Cell(q)
	c.Line(x1, y1, x2, y2, stroke(q.Sub(p)))
	c.Set(x2, y2, '•')
}

// Circle outlines a circle of radius r (figure units) around p.
func (c *Canvas) Circle(p phasor.Point, r float64, mark rune) {
	const steps = 24
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x, y := c.Cell(phasor.Point{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)})
		c.Set(x, y, mark)
	}
}

// Lines returns the rows of the canvas with trailing spaces trimmed.
func (c *Canvas) Lines() []string {
	out := make([]string, c.H)
	for y, row := range c.cells {
		out[y] = strings.TrimRight(string(row), " ")
	}

	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// stroke picks a line rune for direction d.
func stroke(d phasor.Point) rune {
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += math.Pi
	}
	switch deg := a * 180 / math.Pi; {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '│'
	default:
		return '\\'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
