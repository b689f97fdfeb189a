// Package style loads journal style sheets and applies them to plots.
//
// A style sheet is a TOML document describing the visual defaults of a
// journal: font sizes and variant, axis and tick line widths, tick direction
// and mirroring, legend placement, and the default line width for plotters.
// The package only decodes the document; the semantics of every field are
// carried by gonum/plot's own types.
//
// gonum/plot keeps no global style state, so applying a Style configures
// exactly the plots it is applied to. Styles cannot leak between figures.
//
// A zero Style applies gonum/plot's library defaults; Default returns it.
package style

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/pubplot/pkg/axis"
	"github.com/matzehuels/pubplot/pkg/errors"
)

// Style is a decoded journal style sheet. Zero fields keep the plotting
// library's defaults.
type Style struct {
	Figure FigureSection `toml:"figure"`
	Font   FontSection   `toml:"font"`
	Axes   AxesSection   `toml:"axes"`
	Ticks  TickSection   `toml:"ticks"`
	Legend LegendSection `toml:"legend"`
	Lines  LineSection   `toml:"lines"`
}

// FigureSection configures the figure canvas.
type FigureSection struct {
	// Background is the canvas background color as "#rrggbb" or "#rgb".
	Background string `toml:"background"`
}

// FontSection configures text rendering. Sizes are in printer's points.
type FontSection struct {
	// Size is the base size for titles and axis labels.
	Size float64 `toml:"size"`
	// TitleSize, LabelSize, TickSize, and LegendSize override Size for the
	// respective text classes.
	TitleSize  float64 `toml:"title_size"`
	LabelSize  float64 `toml:"label_size"`
	TickSize   float64 `toml:"tick_size"`
	LegendSize float64 `toml:"legend_size"`
	// Variant selects the typeface variant: "serif", "sans", or "mono".
	Variant string `toml:"variant"`
	// Bold and Italic set the weight and slant for all text.
	Bold   bool `toml:"bold"`
	Italic bool `toml:"italic"`
}

// AxesSection configures the axis lines.
type AxesSection struct {
	LineWidth float64 `toml:"line_width"`
	Color     string  `toml:"color"`
}

// TickSection configures tick marks. The boolean fields are pointers so a
// sheet can distinguish "unset" from "false".
type TickSection struct {
	// Direction is "in", "out", or "inout".
	Direction   string  `toml:"direction"`
	Top         *bool   `toml:"top"`
	Right       *bool   `toml:"right"`
	Minor       *bool   `toml:"minor"`
	MajorLength float64 `toml:"major_length"`
	MinorLength float64 `toml:"minor_length"`
	MajorWidth  float64 `toml:"major_width"`
	MinorWidth  float64 `toml:"minor_width"`
	Color       string  `toml:"color"`
}

// LegendSection configures legend placement.
type LegendSection struct {
	Top  *bool `toml:"top"`
	Left *bool `toml:"left"`
}

// LineSection configures the default line style for plotters.
type LineSection struct {
	Width float64 `toml:"width"`
	Color string  `toml:"color"`
}

// Default returns the zero style, which applies the plotting library's
// defaults unchanged.
func Default() *Style {
	return &Style{}
}

// Parse decodes and validates a TOML style sheet.
func Parse(data []byte) (*Style, error) {
	var s Style
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse style sheet")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a style sheet from disk. A missing or unreadable
// file fails with INVALID_CONFIG.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read style sheet %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "style sheet %s", path)
	}
	return s, nil
}

func (s *Style) validate() error {
	switch s.Ticks.Direction {
	case "", "in", "out", "inout":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid tick direction %q (must be in, out, or inout)", s.Ticks.Direction)
	}
	switch s.Font.Variant {
	case "", "serif", "sans", "mono":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid font variant %q (must be serif, sans, or mono)", s.Font.Variant)
	}
	for _, c := range []string{s.Figure.Background, s.Axes.Color, s.Ticks.Color, s.Lines.Color} {
		if c == "" {
			continue
		}
		if _, err := parseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Apply maps the style onto a plot. Only fields set in the sheet are
// touched; everything else keeps the plot's current configuration.
func (s *Style) Apply(p *plot.Plot) {
	if s.Figure.Background != "" {
		if c, err := parseColor(s.Figure.Background); err == nil {
			p.BackgroundColor = c
		}
	}

	s.applyText(&p.Title.TextStyle, s.Font.TitleSize)
	s.applyText(&p.X.Label.TextStyle, s.Font.LabelSize)
	s.applyText(&p.Y.Label.TextStyle, s.Font.LabelSize)
	s.applyTickText(&p.X.Tick.Label)
	s.applyTickText(&p.Y.Tick.Label)
	s.applyText(&p.Legend.TextStyle, s.Font.LegendSize)

	if s.Axes.LineWidth > 0 {
		p.X.LineStyle.Width = vg.Points(s.Axes.LineWidth)
		p.Y.LineStyle.Width = vg.Points(s.Axes.LineWidth)
	}
	if s.Axes.Color != "" {
		if c, err := parseColor(s.Axes.Color); err == nil {
			p.X.LineStyle.Color = c
			p.Y.LineStyle.Color = c
		}
	}

	if s.Legend.Top != nil {
		p.Legend.Top = *s.Legend.Top
	}
	if s.Legend.Left != nil {
		p.Legend.Left = *s.Legend.Left
	}
}

func (s *Style) applyText(ts *text.Style, size float64) {
	if size == 0 {
		size = s.Font.Size
	}
	if size > 0 {
		ts.Font.Size = vg.Points(size)
	}
	s.applyFace(&ts.Font)
}

func (s *Style) applyTickText(ts *text.Style) {
	size := s.Font.TickSize
	if size == 0 {
		size = s.Font.Size
	}
	if size > 0 {
		ts.Font.Size = vg.Points(size)
	}
	s.applyFace(&ts.Font)
}

func (s *Style) applyFace(f *font.Font) {
	switch s.Font.Variant {
	case "serif":
		f.Variant = font.Variant("Serif")
	case "sans":
		f.Variant = font.Variant("Sans")
	case "mono":
		f.Variant = font.Variant("Mono")
	}
	if s.Font.Bold {
		f.Weight = xfont.WeightBold
	}
	if s.Font.Italic {
		f.Style = xfont.StyleItalic
	}
}

// TickParams converts the sheet's tick section into axis parameters,
// starting from the journal-style defaults and overriding what the sheet
// sets.
func (s *Style) TickParams() axis.Params {
	p := axis.DefaultParams()

	switch s.Ticks.Direction {
	case "in":
		p.Direction = axis.In
	case "out":
		p.Direction = axis.Out
	case "inout":
		p.Direction = axis.InOut
	}
	if s.Ticks.Top != nil {
		p.Top = *s.Ticks.Top
	}
	if s.Ticks.Right != nil {
		p.Right = *s.Ticks.Right
	}
	if s.Ticks.Minor != nil {
		p.ShowMinor = *s.Ticks.Minor
	}
	if s.Ticks.MajorLength > 0 {
		p.MajorLength = vg.Points(s.Ticks.MajorLength)
	}
	if s.Ticks.MinorLength > 0 {
		p.MinorLength = vg.Points(s.Ticks.MinorLength)
	}
	if s.Ticks.MajorWidth > 0 {
		p.MajorWidth = vg.Points(s.Ticks.MajorWidth)
	}
	if s.Ticks.MinorWidth > 0 {
		p.MinorWidth = vg.Points(s.Ticks.MinorWidth)
	}
	if s.Ticks.Color != "" {
		if c, err := parseColor(s.Ticks.Color); err == nil {
			p.Color = c
		}
	}
	return p
}

// LineStyle returns the sheet's default line style for plotters. Callers
// pass it to plotters they create; the library cannot retrofit it onto
// plotters added later.
func (s *Style) LineStyle() draw.LineStyle {
	sty := plotter.DefaultLineStyle
	if s.Lines.Width > 0 {
		sty.Width = vg.Points(s.Lines.Width)
	}
	if s.Lines.Color != "" {
		if c, err := parseColor(s.Lines.Color); err == nil {
			sty.Color = c
		}
	}
	return sty
}

// parseColor decodes "#rrggbb" and "#rgb" hex colors.
func parseColor(s string) (color.Color, error) {
	hex := s
	if len(hex) == 0 || hex[0] != '#' {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q (expected #rrggbb or #rgb)", s)
	}
	hex = hex[1:]

	var r, g, b uint8
	switch len(hex) {
	case 6:
		for i, dst := range []*uint8{&r, &g, &b} {
			v, err := hexByte(hex[2*i], hex[2*i+1])
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q", s)
			}
			*dst = v
		}
	case 3:
		for i, dst := range []*uint8{&r, &g, &b} {
			v, err := hexByte(hex[i], hex[i])
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q", s)
			}
			*dst = v
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q (expected #rrggbb or #rgb)", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid hex digit %q", c)
}
