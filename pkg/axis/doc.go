// Package axis provides tick and formatter helpers for gonum/plot axes.
//
// The helpers cover two concerns that journal styles care about and that
// gonum/plot's native axis does not express directly:
//
//   - Tick appearance: direction (inward, outward, or both), mirroring onto
//     the top and right edges, minor ticks, and per-class lengths and widths.
//     Params holds the knobs; Apply maps what the native axis can express and
//     a Painter plotter draws the rest inside the data area.
//
//   - Tick labels: Formatter renders values inside a readable magnitude
//     window in plain decimal notation and everything else in exponent
//     notation. Wrap relabels an existing plot.Ticker without touching its
//     tick placement.
//
// Figures created by the figure package install these helpers automatically;
// the package can also be used on a bare *plot.Plot.
package axis
