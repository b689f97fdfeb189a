// Package journal defines the Journal value type and its size calculator.
//
// A Journal is a named preset describing a publication's page-layout
// dimensions: the printable width of a one-column figure, optionally the
// width of a two-column figure, an optional explicit height, and an optional
// style sheet. The package also ships the bundled default presets
// (see Builtin) and the TOML catalog codec used by the registry to persist
// user presets.
//
// All dimensions are vg.Length values; catalogs that quote widths in TeX
// points are converted at parse time (see the unit package).
package journal

import (
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/errors"
)

// Golden is the golden ratio, the fallback aspect ratio used when a journal
// has no explicit height and the caller requests no height ratio.
const Golden = 1.618033988749895

// DefaultID is the journal used when the caller selects none.
const DefaultID = "aanda"

// Journal describes a publication's figure dimensions and visual style.
// A Journal is an immutable value: it is created at registration time and
// never mutated afterwards.
type Journal struct {
	// Name uniquely identifies the journal in the registry.
	Name string

	// OneColumn is the printable width of a one-column figure. Required.
	OneColumn vg.Length

	// TwoColumn is the printable width of a two-column figure.
	// Zero means the journal has no two-column layout.
	TwoColumn vg.Length

	// Height is an explicit figure height. Zero means the height is derived
	// from the width (golden ratio or a caller-supplied ratio).
	Height vg.Length

	// Style is the path to the journal's style sheet, if any. For bundled
	// journals the sheet is embedded and this field is empty; the figure
	// factory resolves it by name.
	Style string
}

// Validate checks the journal's invariants:
//   - the name is a valid identifier,
//   - the one-column width is positive,
//   - the two-column width, if present, is at least the one-column width,
//   - the explicit height, if present, is positive.
func (j Journal) Validate() error {
	if err := errors.ValidateJournalID(j.Name); err != nil {
		return err
	}
	if j.OneColumn <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "journal %q: one-column width must be positive, got %v", j.Name, j.OneColumn)
	}
	if j.TwoColumn != 0 && j.TwoColumn < j.OneColumn {
		return errors.New(errors.ErrCodeInvalidConfig, "journal %q: two-column width %v is smaller than one-column width %v", j.Name, j.TwoColumn, j.OneColumn)
	}
	if j.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "journal %q: height must not be negative, got %v", j.Name, j.Height)
	}
	return nil
}

// Size computes the final figure dimensions for the given column selection.
//
// columns selects the one-column (1) or two-column (2) width; requesting two
// columns on a journal without a two-column width fails with INVALID_CONFIG.
//
// The height is resolved in precedence order:
//  1. heightRatio > 0: height = width × heightRatio
//  2. the journal's explicit height, if set
//  3. height = width / Golden
func (j Journal) Size(columns int, heightRatio float64) (w, h vg.Length, err error) {
	switch columns {
	case 1:
		w = j.OneColumn
	case 2:
		if j.TwoColumn == 0 {
			return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "journal %q does not support two-column figures", j.Name)
		}
		w = j.TwoColumn
	default:
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "invalid column selection %d (must be 1 or 2)", columns)
	}

	switch {
	case heightRatio > 0:
		h = vg.Length(float64(w) * heightRatio)
	case heightRatio < 0:
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig, "height ratio must not be negative, got %g", heightRatio)
	case j.Height > 0:
		h = j.Height
	default:
		h = vg.Length(float64(w) / Golden)
	}
	return w, h, nil
}
