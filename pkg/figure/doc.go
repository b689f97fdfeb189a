// Package figure creates journal-sized, styled figures on top of gonum/plot.
//
// A Factory resolves a journal from a registry, computes the figure
// dimensions from the column selection and height ratio, applies the
// journal's style sheet, and hands back ready-to-plot axes. The underlying
// *plot.Plot is embedded in every Axes, so callers keep full native control
// over everything the factory does not configure.
//
// # Usage
//
// One plot, sized for a two-column A&A figure:
//
//	reg := registry.NewMemory()
//	f := figure.NewFactory(reg)
//	fig, ax, err := f.Subplots(figure.WithJournal("aanda"), figure.TwoColumn())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ax.Title.Text = "Flux"
//	// ... add plotters via ax.Add ...
//	err = fig.Save("flux.pdf")
//
// A custom grid starts from a bare figure:
//
//	fig, err := f.Figure(figure.WithJournal("mnras"))
//	err = fig.Grid(2, 2)
//	ax := fig.At(1, 0)
//
// The package-level Subplots, New, and SetJournal mirror the Factory API on
// a process-wide factory over the default registry.
package figure
