package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/pubplot/pkg/axis"
	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/journal"
	"github.com/matzehuels/pubplot/pkg/style"
)

// Figure is a journal-sized canvas holding zero or more styled axes.
// The caller owns the figure exclusively; the library keeps no reference
// to it after creation.
type Figure struct {
	width, height vg.Length
	journal       journal.Journal
	style         *style.Style
	plotFns       []func(*plot.Plot)

	rows, cols int
	axes       []*Axes
}

// Axes wraps a single plot with its tick parameters. The embedded
// *plot.Plot exposes the full native API.
type Axes struct {
	*plot.Plot

	xTicks, yTicks *axis.Params
}

// newAxes builds a styled plot with the figure's tick painter installed.
func newAxes(st *style.Style, plotFns []func(*plot.Plot)) *Axes {
	p := plot.New()
	st.Apply(p)

	params := st.TickParams()
	x, y := params, params
	a := &Axes{Plot: p, xTicks: &x, yTicks: &y}

	axis.Apply(p, x, y)
	p.Add(axis.NewPainter(a.xTicks, a.yTicks))

	for _, fn := range plotFns {
		fn(p)
	}
	return a
}

// SetTicks adjusts the tick appearance of both axes. The painter reads the
// parameters at draw time, so the change affects the next render.
func (a *Axes) SetTicks(opts ...axis.Option) {
	for _, opt := range opts {
		opt(a.xTicks)
		opt(a.yTicks)
	}
	axis.Apply(a.Plot, *a.xTicks, *a.yTicks)
}

// SetFormatter installs the magnitude-window tick formatter, preserving the
// current tick placement. See axis.SetFormatter.
func (a *Axes) SetFormatter(opts ...axis.FormatterOption) {
	axis.SetFormatter(a.Plot, opts...)
}

// TickParams returns the current tick parameters for the x and y axes.
func (a *Axes) TickParams() (x, y axis.Params) {
	return *a.xTicks, *a.yTicks
}

// Size returns the figure dimensions.
func (fig *Figure) Size() (w, h vg.Length) {
	return fig.width, fig.height
}

// Journal returns the journal the figure was created for.
func (fig *Figure) Journal() journal.Journal { return fig.journal }

// Style returns the style applied to the figure's axes.
func (fig *Figure) Style() *style.Style { return fig.style }

// Grid builds a rows×cols grid of styled axes on a bare figure.
// It fails with INVALID_CONFIG on non-positive dimensions or when the
// figure already has a grid.
func (fig *Figure) Grid(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid grid %dx%d (dimensions must be positive)", rows, cols)
	}
	if fig.rows != 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure already has a %dx%d grid", fig.rows, fig.cols)
	}

	fig.rows, fig.cols = rows, cols
	fig.axes = make([]*Axes, rows*cols)
	for i := range fig.axes {
		fig.axes[i] = newAxes(fig.style, fig.plotFns)
	}
	return nil
}

// Axes returns all axes in row-major order. Empty until Grid is called.
func (fig *Figure) Axes() []*Axes { return fig.axes }

// At returns the axes at the given grid position, or nil if the position is
// outside the grid.
func (fig *Figure) At(row, col int) *Axes {
	if row < 0 || row >= fig.rows || col < 0 || col >= fig.cols {
		return nil
	}
	return fig.axes[row*fig.cols+col]
}

// SetTicks adjusts the tick appearance of every axes in the figure.
func (fig *Figure) SetTicks(opts ...axis.Option) {
	for _, a := range fig.axes {
		a.SetTicks(opts...)
	}
}

// SetFormatter installs the magnitude-window tick formatter on every axes
// in the figure.
func (fig *Figure) SetFormatter(opts ...axis.FormatterOption) {
	for _, a := range fig.axes {
		a.SetFormatter(opts...)
	}
}

// Draw renders the figure's axes aligned into dc. A figure without a grid
// draws nothing.
func (fig *Figure) Draw(dc draw.Canvas) {
	if fig.rows == 0 {
		return
	}

	plots := make([][]*plot.Plot, fig.rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, fig.cols)
		for c := range plots[r] {
			plots[r][c] = fig.axes[r*fig.cols+c].Plot
		}
	}

	canvases := plot.Align(plots, draw.Tiles{Rows: fig.rows, Cols: fig.cols}, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
}

// Write renders the figure in the given format. Supported formats: png,
// jpg, jpeg, svg, pdf, eps. Unknown formats fail with INVALID_FORMAT.
func (fig *Figure) Write(w io.Writer, format string) (int64, error) {
	var wt io.WriterTo

	switch strings.ToLower(format) {
	case "png":
		c := vgimg.New(fig.width, fig.height)
		fig.Draw(draw.New(c))
		wt = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		c := vgimg.New(fig.width, fig.height)
		fig.Draw(draw.New(c))
		wt = vgimg.JpegCanvas{Canvas: c}
	case "svg":
		c := vgsvg.New(fig.width, fig.height)
		fig.Draw(draw.New(c))
		wt = c
	case "pdf":
		c := vgpdf.New(fig.width, fig.height)
		fig.Draw(draw.New(c))
		wt = c
	case "eps":
		c := vgeps.New(fig.width, fig.height)
		fig.Draw(draw.New(c))
		wt = c
	default:
		return 0, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (must be one of: png, jpg, svg, pdf, eps)", format)
	}

	return wt.WriteTo(w)
}

// Save renders the figure to path, inferring the format from the file
// extension.
func (fig *Figure) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q (missing extension)", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := fig.Write(f, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
