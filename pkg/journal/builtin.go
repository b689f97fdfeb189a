package journal

import (
	"embed"
	"fmt"
	"sync"
)

// The bundled journal presets and their style sheets are embedded into the
// binary, so the default registry works without any external files.

//go:embed assets/journals.toml
var builtinCatalog []byte

//go:embed assets/styles/*.toml
var builtinStyles embed.FS

var (
	builtinOnce sync.Once
	builtins    []Journal
)

// Builtin returns the bundled journal presets in catalog order.
// The returned slice is a copy and safe to modify.
func Builtin() []Journal {
	builtinOnce.Do(func() {
		var err error
		builtins, err = ParseCatalog(builtinCatalog)
		if err != nil {
			// The embedded catalog ships with the binary; failing to parse
			// it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("journal: embedded catalog is invalid: %v", err))
		}
	})
	out := make([]Journal, len(builtins))
	copy(out, builtins)
	return out
}

// StyleSheet returns the embedded style sheet for a bundled journal.
// The second return value reports whether a sheet exists for the id.
func StyleSheet(id string) ([]byte, bool) {
	data, err := builtinStyles.ReadFile("assets/styles/" + id + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}
