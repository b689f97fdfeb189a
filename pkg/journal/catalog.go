package journal

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/unit"
)

// catalogEntry is the on-disk form of a journal: one TOML table per journal,
// dimensions as unit-suffixed strings.
//
//	[aanda]
//	onecol = "256.0pt"
//	twocol = "523.5pt"
type catalogEntry struct {
	OneCol string `toml:"onecol"`
	TwoCol string `toml:"twocol,omitempty"`
	Height string `toml:"height,omitempty"`
	Style  string `toml:"style,omitempty"`
}

// ParseCatalog decodes a TOML journal catalog, preserving document order.
// Every entry is validated; a malformed dimension or an invalid identifier
// fails the whole catalog with INVALID_CONFIG.
func ParseCatalog(data []byte) ([]Journal, error) {
	var raw map[string]catalogEntry
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse journal catalog")
	}

	var journals []Journal
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue // sub-keys of a table, already consumed by the entry
		}
		name := key[0]
		entry, ok := raw[name]
		if !ok {
			continue
		}
		j, err := entry.journal(name)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, nil
}

// EncodeCatalog renders journals back into TOML, one table per journal in
// slice order. Dimensions are written in inches.
func EncodeCatalog(journals []Journal) ([]byte, error) {
	var buf bytes.Buffer
	for i, j := range journals {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%s]\n", tableHeader(j.Name))
		if err := toml.NewEncoder(&buf).Encode(entryFrom(j)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode journal %q", j.Name)
		}
	}
	return buf.Bytes(), nil
}

// bareKeyRegex matches identifiers TOML accepts as unquoted keys.
var bareKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// tableHeader renders a journal name as a TOML table key. Names with
// characters outside the bare-key set, such as dots, must be quoted:
// an unquoted dot would split the header into nested tables and the
// entry would not survive a decode.
func tableHeader(name string) string {
	if bareKeyRegex.MatchString(name) {
		return name
	}
	return fmt.Sprintf("%q", name)
}

func (e catalogEntry) journal(name string) (Journal, error) {
	j := Journal{Name: name, Style: e.Style}

	if e.OneCol == "" {
		return Journal{}, errors.New(errors.ErrCodeInvalidConfig, "journal %q: missing one-column width", name)
	}
	var err error
	if j.OneColumn, err = unit.Parse(e.OneCol); err != nil {
		return Journal{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "journal %q: onecol", name)
	}
	if e.TwoCol != "" {
		if j.TwoColumn, err = unit.Parse(e.TwoCol); err != nil {
			return Journal{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "journal %q: twocol", name)
		}
	}
	if e.Height != "" {
		if j.Height, err = unit.Parse(e.Height); err != nil {
			return Journal{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "journal %q: height", name)
		}
	}

	if err := j.Validate(); err != nil {
		return Journal{}, err
	}
	return j, nil
}

func entryFrom(j Journal) catalogEntry {
	e := catalogEntry{
		OneCol: unit.Format(j.OneColumn),
		Style:  j.Style,
	}
	if j.TwoColumn != 0 {
		e.TwoCol = unit.Format(j.TwoColumn)
	}
	if j.Height != 0 {
		e.Height = unit.Format(j.Height)
	}
	return e
}
