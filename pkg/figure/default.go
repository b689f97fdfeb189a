package figure

import (
	"sync"

	"github.com/matzehuels/pubplot/pkg/registry"
)

// The process-wide default factory, built lazily over the default registry.
// Package-level functions are thin wrappers around it; prefer an explicit
// Factory in library code and tests.
var (
	defaultMu      sync.Mutex
	defaultFactory *Factory
)

func getDefault() (*Factory, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultFactory == nil {
		reg, err := registry.Default()
		if err != nil {
			return nil, err
		}
		defaultFactory = NewFactory(reg)
	}
	return defaultFactory, nil
}

// Subplots creates a single-axes figure through the default factory.
func Subplots(opts ...Option) (*Figure, *Axes, error) {
	f, err := getDefault()
	if err != nil {
		return nil, nil, err
	}
	return f.Subplots(opts...)
}

// New creates a bare figure through the default factory. The caller builds
// its own subplot grid via Grid.
func New(opts ...Option) (*Figure, error) {
	f, err := getDefault()
	if err != nil {
		return nil, err
	}
	return f.Figure(opts...)
}

// SetJournal sets the default factory's journal for figures created
// afterwards. Figures already created are unaffected.
func SetJournal(id string) error {
	f, err := getDefault()
	if err != nil {
		return err
	}
	return f.SetJournal(id)
}

// Journal returns the default factory's current journal id.
func Journal() (string, error) {
	f, err := getDefault()
	if err != nil {
		return "", err
	}
	return f.Journal(), nil
}
