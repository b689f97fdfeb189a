// Package registry maintains the mapping from journal identifiers to their
// presets.
//
// A Registry is seeded with the bundled journals and overlaid with the user
// presets persisted by its Store. Registration installs the journal's style
// sheet into the store's managed location and rewrites the persisted catalog,
// so registered journals survive process restarts.
//
// # Concurrency
//
// Lookup and IDs are safe to call from multiple goroutines only as long as
// no goroutine mutates the registry. Concurrent Register/Remove is undefined;
// callers that mutate from multiple goroutines must serialize access.
//
// # Usage
//
//	reg, err := registry.Open(ctx, store)
//	j, err := reg.Lookup("aanda")
//
//	custom := journal.Journal{Name: "thesis", OneColumn: 5 * vg.Inch}
//	err = reg.Register(ctx, custom, false)
package registry

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/journal"
)

// Registry is an ordered mapping from journal identifier to Journal.
// Bundled journals come first in catalog order; registered journals are
// appended in registration order.
type Registry struct {
	store  Store
	logger *log.Logger

	ids     []string
	entries map[string]journal.Journal
	user    map[string]bool // ids that came from the store or Register
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registry mutations. The default discards
// all output.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// Open creates a registry backed by store: the bundled presets are seeded
// first, then the store's persisted entries are overlaid (a persisted entry
// with a bundled id replaces the bundled preset in place).
func Open(ctx context.Context, store Store, opts ...Option) (*Registry, error) {
	r := &Registry{
		store:   store,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		entries: make(map[string]journal.Journal),
		user:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, j := range journal.Builtin() {
		r.put(j)
	}

	persisted, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, j := range persisted {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		r.put(j)
		r.user[j.Name] = true
	}
	return r, nil
}

// NewMemory returns an ephemeral registry over an in-memory store, seeded
// with the bundled presets. Useful for tests and callers that do not want
// registrations persisted.
func NewMemory(opts ...Option) *Registry {
	r, err := Open(context.Background(), NewMemStore(), opts...)
	if err != nil {
		// MemStore.Load cannot fail on a fresh store.
		panic(err)
	}
	return r
}

// Lookup returns the journal registered under id.
// Unknown ids fail with NOT_FOUND, naming the available journals.
func (r *Registry) Lookup(id string) (journal.Journal, error) {
	j, ok := r.entries[id]
	if !ok {
		return journal.Journal{}, errors.New(errors.ErrCodeNotFound,
			"journal %q not found (available: %s)", id, strings.Join(r.ids, ", "))
	}
	return j, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Len returns the number of registered journals.
func (r *Registry) Len() int { return len(r.ids) }

// IDs returns the journal identifiers in registry order. The slice is a
// copy and safe to modify.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Register validates j and adds it to the registry, persisting it through
// the store. If j carries a style sheet path, the sheet is copied into the
// store's managed location and the registered journal points at the copy.
//
// An existing id fails with CONFLICT unless overwrite is true, in which case
// all fields are replaced and the entry keeps its position.
func (r *Registry) Register(ctx context.Context, j journal.Journal, overwrite bool) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if !overwrite && r.Has(j.Name) {
		return errors.New(errors.ErrCodeConflict,
			"journal %q is already registered (use overwrite to replace it)", j.Name)
	}

	wasUser := r.user[j.Name]
	prev := r.entries[j.Name]

	installed := false
	if j.Style != "" {
		managed, err := r.store.InstallStyle(ctx, j.Name, j.Style)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err,
				"install style sheet for journal %q", j.Name)
		}
		j.Style = managed
		installed = true
	}

	// Persist before touching registry state, so a failed save leaves the
	// in-memory registry unchanged.
	if err := r.store.Save(ctx, r.userJournalsWith(j)); err != nil {
		if installed && !wasUser {
			if rmErr := r.store.RemoveStyle(ctx, j.Name); rmErr != nil {
				r.logger.Warn("could not remove style sheet after failed save",
					"id", j.Name, "err", rmErr)
			}
		}
		return err
	}

	// A style-less replacement retires the previous managed copy.
	if !installed && wasUser && prev.Style != "" {
		if err := r.store.RemoveStyle(ctx, j.Name); err != nil {
			r.logger.Warn("could not remove stale style sheet", "id", j.Name, "err", err)
		}
	}

	r.put(j)
	r.user[j.Name] = true

	r.logger.Info("registered journal", "id", j.Name,
		"onecol", j.OneColumn, "twocol", j.TwoColumn, "overwrite", overwrite)
	return nil
}

// Remove deletes the journal registered under id along with its managed
// style sheet copy, if any. Unknown ids fail with NOT_FOUND.
//
// Removing a bundled journal only affects this process: bundled presets are
// seeded again on the next Open.
func (r *Registry) Remove(ctx context.Context, id string) error {
	if !r.Has(id) {
		return errors.New(errors.ErrCodeNotFound,
			"journal %q not found (available: %s)", id, strings.Join(r.ids, ", "))
	}

	if r.user[id] {
		// Persist before touching registry state, so a failed save leaves
		// the in-memory registry unchanged.
		if err := r.store.Save(ctx, r.userJournalsWithout(id)); err != nil {
			return err
		}
		if err := r.store.RemoveStyle(ctx, id); err != nil {
			r.logger.Warn("could not remove managed style sheet", "id", id, "err", err)
		}
		delete(r.user, id)
	}

	delete(r.entries, id)
	for i, known := range r.ids {
		if known == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}

	r.logger.Info("removed journal", "id", id)
	return nil
}

// put inserts or replaces an entry, keeping registry order: a known id keeps
// its position, a new id is appended.
func (r *Registry) put(j journal.Journal) {
	if _, ok := r.entries[j.Name]; !ok {
		r.ids = append(r.ids, j.Name)
	}
	r.entries[j.Name] = j
}

// userJournalsWith returns the persisted subset of the registry in order
// with j included: an existing entry under the same id is replaced in place,
// a new id goes at the end.
func (r *Registry) userJournalsWith(j journal.Journal) []journal.Journal {
	var out []journal.Journal
	found := false
	for _, id := range r.ids {
		switch {
		case id == j.Name:
			out = append(out, j)
			found = true
		case r.user[id]:
			out = append(out, r.entries[id])
		}
	}
	if !found {
		out = append(out, j)
	}
	return out
}

// userJournalsWithout returns the persisted subset of the registry in order
// with id excluded.
func (r *Registry) userJournalsWithout(id string) []journal.Journal {
	var out []journal.Journal
	for _, known := range r.ids {
		if known != id && r.user[known] {
			out = append(out, r.entries[known])
		}
	}
	return out
}
