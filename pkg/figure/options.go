package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/style"
)

// Option configures a single figure creation.
type Option func(*config)

type config struct {
	journal     string
	columns     int
	heightRatio float64
	width       vg.Length
	height      vg.Length
	style       *style.Style
	plotFns     []func(*plot.Plot)
}

// WithJournal selects the journal for this figure, overriding the factory
// default.
func WithJournal(id string) Option {
	return func(c *config) { c.journal = id }
}

// WithColumns selects the column layout: 1 for the one-column width, 2 for
// the two-column width.
func WithColumns(n int) Option {
	return func(c *config) { c.columns = n }
}

// TwoColumn selects the journal's two-column width. Shorthand for
// WithColumns(2).
func TwoColumn() Option {
	return func(c *config) { c.columns = 2 }
}

// WithHeightRatio derives the figure height as width times ratio instead of
// the journal's explicit height or the golden-ratio default.
func WithHeightRatio(ratio float64) Option {
	return func(c *config) { c.heightRatio = ratio }
}

// WithSize sets the figure dimensions directly, bypassing the journal's
// size calculation entirely. An escape hatch for nonstandard layouts.
// Both dimensions must be positive; a half-set size fails figure creation
// with INVALID_CONFIG.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithStyle applies s instead of the journal's style sheet.
func WithStyle(s *style.Style) Option {
	return func(c *config) { c.style = s }
}

// WithPlot registers a hook that runs on every plot the figure creates,
// after the style is applied. This is the passthrough for native plot
// configuration the factory does not model.
func WithPlot(fn func(*plot.Plot)) Option {
	return func(c *config) { c.plotFns = append(c.plotFns, fn) }
}
