package figure

import (
	"io"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/journal"
	"github.com/matzehuels/pubplot/pkg/registry"
	"github.com/matzehuels/pubplot/pkg/style"
)

// Factory creates figures against a journal registry. The zero-value
// default journal is journal.DefaultID; SetJournal changes it for figures
// created afterwards (figures already created are unaffected).
type Factory struct {
	reg     *registry.Registry
	journal string
	logger  *log.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the factory's logger. The default discards all output.
func WithLogger(logger *log.Logger) FactoryOption {
	return func(f *Factory) { f.logger = logger }
}

// WithDefaultJournal sets the journal used when a figure names none.
func WithDefaultJournal(id string) FactoryOption {
	return func(f *Factory) { f.journal = id }
}

// NewFactory creates a figure factory over reg.
func NewFactory(reg *registry.Registry, opts ...FactoryOption) *Factory {
	f := &Factory{
		reg:     reg,
		journal: journal.DefaultID,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetJournal sets the default journal for figures created afterwards.
// Unknown ids fail with NOT_FOUND and leave the default unchanged.
func (f *Factory) SetJournal(id string) error {
	if _, err := f.reg.Lookup(id); err != nil {
		return err
	}
	f.journal = id
	return nil
}

// Journal returns the current default journal id.
func (f *Factory) Journal() string { return f.journal }

// Registry returns the registry the factory resolves journals against.
func (f *Factory) Registry() *registry.Registry { return f.reg }

// Figure creates a bare figure: journal-sized and styled, but without axes.
// The caller builds its own subplot grid via Grid. Any failure (unknown
// journal, invalid column selection, unreadable style sheet) aborts figure
// creation entirely.
func (f *Factory) Figure(opts ...Option) (*Figure, error) {
	cfg := config{journal: f.journal, columns: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	j, err := f.reg.Lookup(cfg.journal)
	if err != nil {
		return nil, err
	}

	var w, h vg.Length
	switch {
	case cfg.width > 0 && cfg.height > 0:
		w, h = cfg.width, cfg.height
	case cfg.width != 0 || cfg.height != 0:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"explicit size needs a positive width and height, got %v x %v", cfg.width, cfg.height)
	default:
		w, h, err = j.Size(cfg.columns, cfg.heightRatio)
		if err != nil {
			return nil, err
		}
	}

	st := cfg.style
	if st == nil {
		if st, err = resolveStyle(j); err != nil {
			return nil, err
		}
	}

	f.logger.Debug("created figure",
		"journal", j.Name, "columns", cfg.columns, "width", w, "height", h)

	return &Figure{
		width:   w,
		height:  h,
		journal: j,
		style:   st,
		plotFns: cfg.plotFns,
	}, nil
}

// Subplots creates a figure with a single styled axes, the common case.
// For custom grids use Figure followed by Grid.
func (f *Factory) Subplots(opts ...Option) (*Figure, *Axes, error) {
	fig, err := f.Figure(opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := fig.Grid(1, 1); err != nil {
		return nil, nil, err
	}
	return fig, fig.At(0, 0), nil
}

// resolveStyle picks the style for a journal: its registered sheet if it has
// one, the embedded sheet for bundled journals, the library defaults
// otherwise.
func resolveStyle(j journal.Journal) (*style.Style, error) {
	if j.Style != "" {
		return style.Load(j.Style)
	}
	if data, ok := journal.StyleSheet(j.Name); ok {
		return style.Parse(data)
	}
	return style.Default(), nil
}
