// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fraunhofer/diffraction"
	"github.com/katalvlaran/fraunhofer/sampling"
)

// panel is a rectangular plotting area in cells, axes included.
type panel struct {
	x, y, w, h int
}

// Plot draws the amplitude curve above the intensity curve, both against
// the independent variable in degrees. The reference curve, if any, is
// drawn under the intensity points.
func Plot(c *Canvas, res *diffraction.Result) {
	c.Text(max((c.W-len([]rune(res.Title)))/2, 0), 0, res.Title)

	xs := sampling.Degrees(res.X)
	xmax := 360.0
	if res.Variable == diffraction.Angle {
		xmax = 90
	}
	xlabel := res.Variable.String() + " (°)"

	half := (c.H - 1) / 2
	top := panel{x: 8, y: 1, w: c.W - 9, h: half - 1}
	bottom := panel{x: 8, y: half + 1, w: c.W - 9, h: c.H - half - 2}

	top.axes(c, xmax, res.Peak, "electric field amplitude", xlabel)
	top.points(c, xs, res.Amplitude, xmax, res.Peak, '•')

	imax := res.Peak * res.Peak
	bottom.axes(c, xmax, imax, "intensity", xlabel)
	if res.Reference != nil {
		bottom.points(c, sampling.Degrees(res.Reference.X), res.Reference.Y, xmax, imax, '·')
	}
	bottom.points(c, xs, res.Intensity, xmax, imax, '•')
}

// axes draws the left and bottom borders, the y limit and both labels.
func (p panel) axes(c *Canvas, xmax, ymax float64, ylabel, xlabel string) {
	if p.w < 2 || p.h < 3 {
		return
	}
	base := p.y + p.h - 2
	for y := p.y; y < base; y++ {
		c.Set(p.x, y, '│')
	}
	for x := p.x + 1; x < p.x+p.w; x++ {
		c.Set(x, base, '─')
	}
	c.Set(p.x, base, '└')

	c.Text(0, p.y, trimFloat(ymax, 2))
	c.Text(0, base, "0")
	c.Text(p.x+2, p.y, ylabel)
	c.Text(p.x+p.w-len(fmt.Sprint(xmax)), base+1, fmt.Sprint(xmax))
	c.Text(p.x+(p.w-len([]rune(xlabel)))/2, base+1, xlabel)
}

// points scatters (xs[i], ys[i]) into the panel interior, clipping values
// outside [0,xmax]×[0,ymax].
func (p panel) points(c *Canvas, xs, ys []float64, xmax, ymax float64, mark rune) {
	iw, ih := p.w-2, p.h-2
	if iw < 1 || ih < 1 || !(xmax > 0) || !(ymax > 0) {
		return
	}
	for i := range xs {
		fx, fy := xs[i]/xmax, ys[i]/ymax
		// Peaks computed by summation can overshoot the limit by an ulp.
		if fy > 1 && fy < 1+1e-9 {
			fy = 1
		}
		if fx > 1 && fx < 1+1e-9 {
			fx = 1
		}
		if fx < 0 || fx > 1 || fy < 0 || fy > 1 || math.IsNaN(fy) {
			continue
		}
		col := p.x + 1 + int(math.Round(fx*float64(iw-1)))
		row := p.y + ih - 1 - int(math.Round(fy*float64(ih-1)))
		c.Set(col, row, mark)
	}
}
