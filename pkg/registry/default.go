package registry

import (
	"context"
	"sync"
)

// The process-wide default registry, opened lazily over the default
// DirStore (~/.config/pubplot). It backs the package-level conveniences
// here and the default figure factory. Prefer an explicit Registry in
// library code and tests.
var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the process-wide registry, opening it on first use.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		store, err := NewDirStore("")
		if err != nil {
			defaultErr = err
			return
		}
		defaultReg, defaultErr = Open(context.Background(), store)
	})
	return defaultReg, defaultErr
}

// Available returns the identifiers known to the default registry, in
// registry order.
func Available() ([]string, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	return reg.IDs(), nil
}
