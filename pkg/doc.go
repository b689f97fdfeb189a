// Package pkg provides the core libraries for pubplot figure creation.
//
// # Overview
//
// Pubplot is a convenience layer over gonum/plot for creating figures that
// fit the column layout and typography of scientific journals. The pkg
// directory is organized into six areas:
//
//  1. [figure] - Figure factory (journal-sized, styled plots and subplot grids)
//  2. [journal] - Journal presets (column widths, heights, bundled style sheets)
//  3. [registry] - Persistent journal registry with pluggable stores
//  4. [style] - TOML style sheets applied to plots
//  5. [axis] - Tick direction, mirroring, and label formatting
//  6. [unit] - Length parsing and formatting (pt, bp, in, cm, mm)
//
// # Architecture
//
// The typical flow through pubplot:
//
//	Journal preset (registry)
//	         ↓
//	    [journal] package (size calculation: columns, golden ratio)
//	         ↓
//	    [style] package (fonts, line widths, tick defaults)
//	         ↓
//	    [figure] package (plots, subplot grids, tick painter)
//	         ↓
//	    PNG/JPG/SVG/PDF/EPS output
//
// # Quick Start
//
// Create a two-column figure for Astronomy & Astrophysics:
//
//	import (
//	    "github.com/matzehuels/pubplot/pkg/figure"
//	    "gonum.org/v1/plot/plotter"
//	)
//
//	fig, ax, _ := figure.Subplots(
//	    figure.WithJournal("aanda"),
//	    figure.TwoColumn(),
//	)
//
//	line, _ := plotter.NewLine(points)
//	ax.Add(line)
//	ax.X.Label.Text = "wavelength [nm]"
//
//	_ = fig.Save("figure.pdf")
//
// # Main Packages
//
// [figure] - The figure factory. Resolves a journal preset into exact
// dimensions, applies its style sheet, and installs the tick painter.
// Supports single axes (Subplots) and grids (Grid, At).
//
// [journal] - Journal presets bundled with the library (aanda, apj, mnras,
// prd, ieee, nature) plus the size calculation: one or two column widths,
// explicit heights, and the golden-ratio default.
//
// [registry] - Ordered journal registry seeded with the bundled presets and
// overlaid with user registrations. DirStore persists to ~/.config/pubplot/
// with managed style sheet copies; MemStore backs tests.
//
// [style] - TOML style sheets: font sizes and variants, axis and tick line
// widths, tick direction and mirroring, legend placement, default line style.
//
// [axis] - Tick appearance beyond what gonum/plot exposes natively: inward
// ticks, top and right mirrors, minor tick control, and the magnitude-window
// label formatter ("0.25", "1e6", "2.5e-4").
//
// [unit] - vg.Length helpers: Parse accepts pt (TeX points), bp (printer's
// points), in, cm, and mm; Format renders lengths in inches.
//
// [errors] - Structured errors with machine-readable codes shared by the
// registry and figure factory.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/figure/...   # Specific package
//	go test -run Example       # Examples only
//
// [figure]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/figure
// [journal]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/journal
// [registry]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/registry
// [style]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/style
// [axis]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/axis
// [unit]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/unit
// [errors]: https://pkg.go.dev/github.com/matzehuels/pubplot/pkg/errors
package pkg
