package axis

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Painter is a plot.Plotter that draws the tick marks the native axis cannot:
// inward marks, minor marks, and mirrors on the top and right edges. It reads
// its Params at draw time, so adjusting them between renders takes effect on
// the next render.
type Painter struct {
	x, y *Params
}

// NewPainter returns a Painter reading tick parameters for the x and y axes.
// A nil axis parameter disables painting for that axis.
func NewPainter(x, y *Params) *Painter {
	return &Painter{x: x, y: y}
}

// Plot implements plot.Plotter.
func (pt *Painter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	if pt.x != nil {
		ticks := plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max)
		for _, tick := range ticks {
			x := trX(tick.Value)
			if !c.ContainsX(x) {
				continue
			}
			length, width, ok := pt.x.markFor(tick.IsMinor())
			if !ok {
				continue
			}
			sty := lineStyle(width, pt.x.Color, plt.X.Tick.LineStyle)
			pt.x.strokeX(c, sty, x, length)
		}
	}

	if pt.y != nil {
		ticks := plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max)
		for _, tick := range ticks {
			y := trY(tick.Value)
			if !c.ContainsY(y) {
				continue
			}
			length, width, ok := pt.y.markFor(tick.IsMinor())
			if !ok {
				continue
			}
			sty := lineStyle(width, pt.y.Color, plt.Y.Tick.LineStyle)
			pt.y.strokeY(c, sty, y, length)
		}
	}
}

// strokeX draws the marks for one x-axis tick on the bottom edge and, when
// mirrored, the top edge. For the Out direction the native axis already
// draws the primary outward marks, so the painter only adds the mirrors.
func (p *Params) strokeX(c draw.Canvas, sty draw.LineStyle, x, length vg.Length) {
	in, out := p.directions()

	if p.Direction != Out {
		if in {
			c.StrokeLine2(sty, x, c.Min.Y, x, c.Min.Y+length)
		}
		if out {
			c.StrokeLine2(sty, x, c.Min.Y, x, c.Min.Y-length)
		}
	}

	if p.Top {
		if in {
			c.StrokeLine2(sty, x, c.Max.Y, x, c.Max.Y-length)
		}
		if out {
			c.StrokeLine2(sty, x, c.Max.Y, x, c.Max.Y+length)
		}
	}
}

func (p *Params) strokeY(c draw.Canvas, sty draw.LineStyle, y, length vg.Length) {
	in, out := p.directions()

	if p.Direction != Out {
		if in {
			c.StrokeLine2(sty, c.Min.X, y, c.Min.X+length, y)
		}
		if out {
			c.StrokeLine2(sty, c.Min.X, y, c.Min.X-length, y)
		}
	}

	if p.Right {
		if in {
			c.StrokeLine2(sty, c.Max.X, y, c.Max.X-length, y)
		}
		if out {
			c.StrokeLine2(sty, c.Max.X, y, c.Max.X+length, y)
		}
	}
}

// directions reports whether marks are drawn inward and outward.
func (p *Params) directions() (in, out bool) {
	switch p.Direction {
	case In:
		return true, false
	case Out:
		return false, true
	default: // InOut
		return true, true
	}
}

func lineStyle(width vg.Length, c color.Color, base draw.LineStyle) draw.LineStyle {
	sty := base
	sty.Width = width
	if c != nil {
		sty.Color = c
	}
	return sty
}
