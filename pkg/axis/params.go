package axis

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Direction controls which way tick marks point relative to the data area.
type Direction int

const (
	// In draws tick marks pointing into the data area.
	In Direction = iota
	// Out draws tick marks pointing away from the data area.
	Out
	// InOut draws tick marks in both directions.
	InOut
)

// Which selects the tick classes a setting applies to.
type Which int

const (
	// Both applies to major and minor ticks.
	Both Which = iota
	// Major applies to major ticks only.
	Major
	// Minor applies to minor ticks only.
	Minor
)

// Params holds the tick appearance for one axis.
type Params struct {
	// Direction is the direction tick marks point.
	Direction Direction

	// Top mirrors the x-axis ticks onto the top edge; Right mirrors the
	// y-axis ticks onto the right edge. Only the field matching the axis
	// is consulted.
	Top   bool
	Right bool

	// Which selects the tick classes drawn by the painter.
	Which Which

	// ShowMinor controls whether minor tick marks are drawn at all.
	ShowMinor bool

	// Mark lengths and line widths per tick class.
	MajorLength vg.Length
	MinorLength vg.Length
	MajorWidth  vg.Length
	MinorWidth  vg.Length

	// Color is the tick mark color. Nil keeps the axis default.
	Color color.Color
}

// DefaultParams returns the journal-style defaults: inward mirrored ticks
// with minor marks at half the major length.
func DefaultParams() Params {
	return Params{
		Direction:   In,
		Top:         true,
		Right:       true,
		Which:       Both,
		ShowMinor:   true,
		MajorLength: vg.Points(3.5),
		MinorLength: vg.Points(1.75),
		MajorWidth:  vg.Points(0.8),
		MinorWidth:  vg.Points(0.8),
	}
}

// Option mutates a Params value.
type Option func(*Params)

// WithDirection sets the tick mark direction.
func WithDirection(d Direction) Option { return func(p *Params) { p.Direction = d } }

// WithTop controls mirroring of x-axis ticks onto the top edge.
func WithTop(top bool) Option { return func(p *Params) { p.Top = top } }

// WithRight controls mirroring of y-axis ticks onto the right edge.
func WithRight(right bool) Option { return func(p *Params) { p.Right = right } }

// WithWhich selects the tick classes the painter draws.
func WithWhich(w Which) Option { return func(p *Params) { p.Which = w } }

// WithMinor controls whether minor tick marks are drawn.
func WithMinor(show bool) Option { return func(p *Params) { p.ShowMinor = show } }

// WithLengths sets the major and minor tick mark lengths.
func WithLengths(major, minor vg.Length) Option {
	return func(p *Params) {
		p.MajorLength = major
		p.MinorLength = minor
	}
}

// WithWidths sets the major and minor tick line widths.
func WithWidths(major, minor vg.Length) Option {
	return func(p *Params) {
		p.MajorWidth = major
		p.MinorWidth = minor
	}
}

// WithColor sets the tick mark color.
func WithColor(c color.Color) Option { return func(p *Params) { p.Color = c } }

// Apply maps the parts of x and y onto what gonum/plot's native axis can
// express. The native axis only draws outward marks on the bottom and left
// edges, so for Out the native mark length is kept; for In and InOut it is
// zeroed and a Painter draws the marks instead (see NewPainter).
func Apply(p *plot.Plot, x, y Params) {
	applyAxis(&p.X, x)
	applyAxis(&p.Y, y)
}

func applyAxis(ax *plot.Axis, pr Params) {
	ax.Tick.LineStyle.Width = pr.MajorWidth
	if pr.Color != nil {
		ax.Tick.LineStyle.Color = pr.Color
	}
	if pr.Direction == Out {
		ax.Tick.Length = pr.MajorLength
	} else {
		ax.Tick.Length = 0
	}
}

// markFor returns the length and width of the mark for a tick class, and
// whether that class is drawn at all under these parameters.
func (p Params) markFor(minor bool) (length, width vg.Length, ok bool) {
	if minor {
		if !p.ShowMinor || p.Which == Major {
			return 0, 0, false
		}
		return p.MinorLength, p.MinorWidth, true
	}
	if p.Which == Minor {
		return 0, 0, false
	}
	return p.MajorLength, p.MajorWidth, true
}
