package axis

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// Formatter renders tick values in plain decimal notation inside a readable
// magnitude window and in exponent notation outside it.
//
// The policy is deterministic and depends only on the magnitude of the value,
// never on neighboring ticks:
//   - v == 0 renders as "0".
//   - Low < |v| < High (both bounds strict) renders as the shortest plain
//     decimal, e.g. "1", "-50", "3.5".
//   - Everything else renders in exponent notation with the shortest
//     mantissa, a bare "e", and no exponent padding, e.g. "1e6", "2.5e-4".
type Formatter struct {
	// Low and High bound the decimal window. Values with Low < |v| < High
	// render as plain decimals.
	Low, High float64
}

// Default window bounds: four decades around 1.
const (
	DefaultLow  = 0.01
	DefaultHigh = 1000
)

// NewFormatter returns a Formatter with the default window.
func NewFormatter() Formatter {
	return Formatter{Low: DefaultLow, High: DefaultHigh}
}

// Format renders a single tick value under the formatter's policy.
func (f Formatter) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs > f.Low && abs < f.High {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return exponent(v)
}

// exponent renders v as mantissa-e-exponent without the '+' sign or leading
// exponent zeros that strconv emits: 1e+06 becomes 1e6, 2.5e-04 becomes
// 2.5e-4.
func exponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimLeft(exp, "+-"), "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mantissa + "e" + exp
}

// Wrap returns a plot.Ticker that keeps base's tick placement but relabels
// its major ticks with f. Minor ticks stay unlabeled.
func (f Formatter) Wrap(base plot.Ticker) plot.Ticker {
	return wrapTicker{base: base, format: f.Format}
}

type wrapTicker struct {
	base   plot.Ticker
	format func(float64) string
}

func (t wrapTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	out := make([]plot.Tick, len(ticks))
	for i, tick := range ticks {
		if !tick.IsMinor() {
			tick.Label = t.format(tick.Value)
		}
		out[i] = tick
	}
	return out
}

// Selective returns a plot.Ticker that keeps base's tick placement but labels
// only the ticks whose values appear in keep (within a relative tolerance).
// All other ticks become unlabeled minor ticks.
func Selective(keep []float64, base plot.Ticker) plot.Ticker {
	return selectiveTicker{keep: keep, base: base, format: NewFormatter().Format}
}

type selectiveTicker struct {
	keep   []float64
	base   plot.Ticker
	format func(float64) string
}

func (t selectiveTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	out := make([]plot.Tick, len(ticks))
	for i, tick := range ticks {
		if t.kept(tick.Value) {
			tick.Label = t.format(tick.Value)
		} else {
			tick.Label = ""
		}
		out[i] = tick
	}
	return out
}

func (t selectiveTicker) kept(v float64) bool {
	for _, k := range t.keep {
		if approxEqual(v, k) {
			return true
		}
	}
	return false
}

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	const tol = 1e-9
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// StripMinor returns a plot.Ticker that drops base's minor ticks entirely.
func StripMinor(base plot.Ticker) plot.Ticker {
	return stripTicker{base: base}
}

type stripTicker struct {
	base plot.Ticker
}

func (t stripTicker) Ticks(min, max float64) []plot.Tick {
	var out []plot.Tick
	for _, tick := range t.base.Ticks(min, max) {
		if !tick.IsMinor() {
			out = append(out, tick)
		}
	}
	return out
}

// FormatterOption configures SetFormatter.
type FormatterOption func(*formatterConfig)

type formatterConfig struct {
	low, high float64
	x, y      bool
}

// WithWindow sets the decimal window bounds.
func WithWindow(low, high float64) FormatterOption {
	return func(c *formatterConfig) {
		c.low = low
		c.high = high
	}
}

// OnX restricts the formatter to the x axis.
func OnX() FormatterOption {
	return func(c *formatterConfig) {
		c.x = true
		c.y = false
	}
}

// OnY restricts the formatter to the y axis.
func OnY() FormatterOption {
	return func(c *formatterConfig) {
		c.x = false
		c.y = true
	}
}

// SetFormatter installs the magnitude-window formatter on the plot's axes,
// wrapping the current tickers so tick placement is preserved. By default it
// applies to both axes with the default window.
func SetFormatter(p *plot.Plot, opts ...FormatterOption) {
	cfg := formatterConfig{low: DefaultLow, high: DefaultHigh, x: true, y: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := Formatter{Low: cfg.low, High: cfg.high}
	if cfg.x {
		p.X.Tick.Marker = f.Wrap(p.X.Tick.Marker)
	}
	if cfg.y {
		p.Y.Tick.Marker = f.Wrap(p.Y.Tick.Marker)
	}
}
