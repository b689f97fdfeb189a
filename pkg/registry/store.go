package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/pubplot/pkg/journal"
)

// Store persists registered journals and their style sheets. Implementations
// own the layout of the persisted catalog; the registry only hands them
// ordered journal slices.
//
// Two implementations exist: DirStore persists to a config directory and
// MemStore keeps everything in memory for tests and ephemeral registries.
type Store interface {
	// Load returns the persisted journals in catalog order.
	// A store with no catalog yet returns nil, nil.
	Load(ctx context.Context) ([]journal.Journal, error)

	// Save rewrites the persisted catalog with the given journals.
	Save(ctx context.Context, journals []journal.Journal) error

	// InstallStyle copies the style sheet at src into the store's managed
	// location for the journal id and returns the path the registry should
	// record.
	InstallStyle(ctx context.Context, id, src string) (string, error)

	// RemoveStyle deletes the managed style sheet copy for id, if present.
	RemoveStyle(ctx context.Context, id string) error
}

// =============================================================================
// DirStore - file-backed store
// =============================================================================

const (
	catalogFile = "journals.toml"
	stylesDir   = "styles"
)

// DirStore persists the journal catalog and managed style sheets under a
// single directory:
//
//	<dir>/journals.toml     the catalog
//	<dir>/styles/<id>.toml  one managed sheet per registered journal
type DirStore struct {
	mu  sync.Mutex
	dir string
}

// NewDirStore creates a file-backed store rooted at dir.
// If dir is empty, the XDG config directory is used (~/.config/pubplot/).
func NewDirStore(dir string) (*DirStore, error) {
	if dir == "" {
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			dir = filepath.Join(configHome, "pubplot")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("get home dir: %w", err)
			}
			dir = filepath.Join(home, ".config", "pubplot")
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

// Path returns the store's root directory.
func (s *DirStore) Path() string { return s.dir }

func (s *DirStore) catalogPath() string { return filepath.Join(s.dir, catalogFile) }

func (s *DirStore) stylePath(id string) string {
	return filepath.Join(s.dir, stylesDir, id+".toml")
}

func (s *DirStore) Load(ctx context.Context) ([]journal.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.catalogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read journal catalog: %w", err)
	}

	journals, err := journal.ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	// Style sheets are stored by basename; resolve to managed paths.
	for i := range journals {
		if journals[i].Style != "" {
			journals[i].Style = filepath.Join(s.dir, stylesDir, journals[i].Style)
		}
	}
	return journals, nil
}

func (s *DirStore) Save(ctx context.Context, journals []journal.Journal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The catalog records style sheets by basename so the directory can be
	// relocated wholesale.
	persisted := make([]journal.Journal, len(journals))
	copy(persisted, journals)
	for i := range persisted {
		if persisted[i].Style != "" {
			persisted[i].Style = filepath.Base(persisted[i].Style)
		}
	}

	data, err := journal.EncodeCatalog(persisted)
	if err != nil {
		return err
	}
	return s.atomicWrite(s.catalogPath(), data)
}

func (s *DirStore) InstallStyle(ctx context.Context, id, src string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read style sheet %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Join(s.dir, stylesDir), 0o755); err != nil {
		return "", fmt.Errorf("create styles dir: %w", err)
	}

	dst := s.stylePath(id)
	if err := s.atomicWrite(dst, data); err != nil {
		return "", err
	}
	return dst, nil
}

func (s *DirStore) RemoveStyle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.stylePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove style sheet: %w", err)
	}
	return nil
}

// atomicWrite writes data through a uniquely named temp file and renames it
// into place, so a crash mid-write never leaves a truncated catalog.
func (s *DirStore) atomicWrite(path string, data []byte) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

var _ Store = (*DirStore)(nil)

// =============================================================================
// MemStore - in-memory store
// =============================================================================

// MemStore keeps the catalog in memory. Style sheets are not copied; the
// source path is recorded unchanged. Intended for tests and ephemeral
// registries.
type MemStore struct {
	mu       sync.Mutex
	journals []journal.Journal
	styles   map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{styles: make(map[string]string)}
}

func (s *MemStore) Load(ctx context.Context) ([]journal.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]journal.Journal, len(s.journals))
	copy(out, s.journals)
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, journals []journal.Journal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.journals = make([]journal.Journal, len(journals))
	copy(s.journals, journals)
	return nil
}

func (s *MemStore) InstallStyle(ctx context.Context, id, src string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.styles[id] = src
	return src, nil
}

func (s *MemStore) RemoveStyle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.styles, id)
	return nil
}

var _ Store = (*MemStore)(nil)
