package figure

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/axis"
	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/journal"
	"github.com/matzehuels/pubplot/pkg/registry"
	"github.com/matzehuels/pubplot/pkg/style"
)

// testFactory returns a factory over a memory registry with a "test"
// journal: onecol 3in, twocol 6in, no explicit height.
func testFactory(t *testing.T) *Factory {
	t.Helper()

	reg := registry.NewMemory()
	j := journal.Journal{Name: "test", OneColumn: 3 * vg.Inch, TwoColumn: 6 * vg.Inch}
	if err := reg.Register(context.Background(), j, false); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return NewFactory(reg)
}

func TestSubplotsTwoColumn(t *testing.T) {
	f := testFactory(t)

	fig, ax, err := f.Subplots(WithJournal("test"), TwoColumn())
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if ax == nil {
		t.Fatal("Subplots returned nil axes")
	}

	w, h := fig.Size()
	if w != 6*vg.Inch {
		t.Errorf("width = %vin, want 6in", float64(w)/72)
	}
	// 6/1.618 ≈ 3.71in, golden-ratio default within a thousandth of an inch.
	if math.Abs(float64(h)/72-6/1.618) > 0.001 {
		t.Errorf("height = %vin, want 6/1.618 ≈ 3.71in", float64(h)/72)
	}
}

func TestSubplotsOneColumnDefault(t *testing.T) {
	f := testFactory(t)

	fig, _, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if w, _ := fig.Size(); w != 3*vg.Inch {
		t.Errorf("width = %vin, want one-column 3in", float64(w)/72)
	}
}

func TestSubplotsHeightRatio(t *testing.T) {
	f := testFactory(t)

	fig, _, err := f.Subplots(WithJournal("test"), WithHeightRatio(0.5))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if _, h := fig.Size(); h != 1.5*vg.Inch {
		t.Errorf("height = %vin, want 1.5in", float64(h)/72)
	}
}

func TestSubplotsUnknownJournal(t *testing.T) {
	f := testFactory(t)

	_, _, err := f.Subplots(WithJournal("no-such-journal"))
	if err == nil {
		t.Fatal("Subplots succeeded for unknown journal")
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("code = %v, want NOT_FOUND", errors.GetCode(err))
	}
}

func TestSubplotsTwoColumnUnsupported(t *testing.T) {
	reg := registry.NewMemory()
	// apj is a bundled journal without a two-column width.
	f := NewFactory(reg)

	_, _, err := f.Subplots(WithJournal("apj"), TwoColumn())
	if err == nil {
		t.Fatal("Subplots succeeded for unsupported column selection")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestWithSizeOverride(t *testing.T) {
	f := testFactory(t)

	fig, err := f.Figure(WithJournal("test"), WithSize(4*vg.Inch, 2*vg.Inch))
	if err != nil {
		t.Fatalf("Figure: %v", err)
	}
	w, h := fig.Size()
	if w != 4*vg.Inch || h != 2*vg.Inch {
		t.Errorf("size = %v x %v, want explicit 4in x 2in", w, h)
	}
}

func TestWithSizeHalfSet(t *testing.T) {
	f := testFactory(t)

	tests := []struct {
		name string
		w, h vg.Length
	}{
		{"width only", 4 * vg.Inch, 0},
		{"height only", 0, 2 * vg.Inch},
		{"negative width", -4 * vg.Inch, 2 * vg.Inch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Figure(WithJournal("test"), WithSize(tt.w, tt.h))
			if err == nil {
				t.Fatal("Figure succeeded with an incomplete explicit size")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestSetJournal(t *testing.T) {
	f := testFactory(t)

	if f.Journal() != journal.DefaultID {
		t.Errorf("initial journal = %q, want %q", f.Journal(), journal.DefaultID)
	}

	if err := f.SetJournal("test"); err != nil {
		t.Fatalf("SetJournal: %v", err)
	}
	if f.Journal() != "test" {
		t.Errorf("journal = %q, want test", f.Journal())
	}

	// Figures created afterwards use the new default.
	fig, _, err := f.Subplots()
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if fig.Journal().Name != "test" {
		t.Errorf("figure journal = %q, want test", fig.Journal().Name)
	}

	// Unknown ids leave the default unchanged.
	if err := f.SetJournal("nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("SetJournal(nope) code = %v, want NOT_FOUND", errors.GetCode(err))
	}
	if f.Journal() != "test" {
		t.Errorf("journal changed to %q after failed SetJournal", f.Journal())
	}
}

func TestGrid(t *testing.T) {
	f := testFactory(t)

	fig, err := f.Figure(WithJournal("test"), TwoColumn())
	if err != nil {
		t.Fatalf("Figure: %v", err)
	}
	if len(fig.Axes()) != 0 {
		t.Error("bare figure has axes before Grid")
	}

	if err := fig.Grid(2, 3); err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if len(fig.Axes()) != 6 {
		t.Errorf("len(Axes()) = %d, want 6", len(fig.Axes()))
	}
	if fig.At(1, 2) == nil {
		t.Error("At(1, 2) = nil inside the grid")
	}
	if fig.At(2, 0) != nil {
		t.Error("At(2, 0) != nil outside the grid")
	}
	if fig.At(-1, 0) != nil {
		t.Error("At(-1, 0) != nil")
	}

	// A second grid is rejected.
	if err := fig.Grid(1, 1); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("second Grid code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestGridInvalidDimensions(t *testing.T) {
	f := testFactory(t)

	fig, err := f.Figure(WithJournal("test"))
	if err != nil {
		t.Fatalf("Figure: %v", err)
	}
	if err := fig.Grid(0, 2); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Grid(0, 2) code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestStyleResolution(t *testing.T) {
	t.Run("bundled journal uses embedded sheet", func(t *testing.T) {
		f := NewFactory(registry.NewMemory())
		fig, _, err := f.Subplots(WithJournal("aanda"))
		if err != nil {
			t.Fatalf("Subplots: %v", err)
		}
		// The aanda sheet sets a 9pt serif base font.
		if fig.Style().Font.Size != 9.0 {
			t.Errorf("style font size = %v, want 9 from embedded sheet", fig.Style().Font.Size)
		}
	})

	t.Run("registered journal loads managed sheet", func(t *testing.T) {
		ctx := context.Background()
		dir := t.TempDir()
		src := filepath.Join(dir, "sheet.toml")
		if err := os.WriteFile(src, []byte("[font]\nsize = 11.0\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		store, err := registry.NewDirStore(filepath.Join(dir, "config"))
		if err != nil {
			t.Fatal(err)
		}
		reg, err := registry.Open(ctx, store)
		if err != nil {
			t.Fatal(err)
		}
		j := journal.Journal{Name: "custom", OneColumn: 3 * vg.Inch, Style: src}
		if err := reg.Register(ctx, j, false); err != nil {
			t.Fatalf("Register: %v", err)
		}

		fig, _, err := NewFactory(reg).Subplots(WithJournal("custom"))
		if err != nil {
			t.Fatalf("Subplots: %v", err)
		}
		if fig.Style().Font.Size != 11.0 {
			t.Errorf("style font size = %v, want 11 from managed sheet", fig.Style().Font.Size)
		}
	})

	t.Run("journal without sheet gets library defaults", func(t *testing.T) {
		f := testFactory(t)
		fig, _, err := f.Subplots(WithJournal("test"))
		if err != nil {
			t.Fatalf("Subplots: %v", err)
		}
		if *fig.Style() != (style.Style{}) {
			t.Errorf("style = %+v, want zero style", fig.Style())
		}
	})

	t.Run("style override wins", func(t *testing.T) {
		f := NewFactory(registry.NewMemory())
		custom := &style.Style{}
		custom.Font.Size = 14

		fig, _, err := f.Subplots(WithJournal("aanda"), WithStyle(custom))
		if err != nil {
			t.Fatalf("Subplots: %v", err)
		}
		if fig.Style() != custom {
			t.Error("WithStyle did not override the journal sheet")
		}
	})
}

func TestWithPlotPassthrough(t *testing.T) {
	f := testFactory(t)

	fig, err := f.Figure(WithJournal("test"), WithPlot(func(p *plot.Plot) {
		p.Title.Text = "hooked"
	}))
	if err != nil {
		t.Fatalf("Figure: %v", err)
	}
	if err := fig.Grid(1, 2); err != nil {
		t.Fatalf("Grid: %v", err)
	}
	for i, a := range fig.Axes() {
		if a.Title.Text != "hooked" {
			t.Errorf("axes[%d].Title.Text = %q, want hook applied", i, a.Title.Text)
		}
	}
}

func TestSetTicks(t *testing.T) {
	f := testFactory(t)

	fig, ax, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	ax.SetTicks(axis.WithDirection(axis.Out), axis.WithMinor(false))

	x, y := ax.TickParams()
	if x.Direction != axis.Out || y.Direction != axis.Out {
		t.Error("SetTicks did not change tick direction on both axes")
	}
	if x.ShowMinor || y.ShowMinor {
		t.Error("SetTicks did not hide minor ticks")
	}
	// Outward direction restores the native tick marks.
	if ax.X.Tick.Length != x.MajorLength {
		t.Errorf("native tick length = %v, want %v", ax.X.Tick.Length, x.MajorLength)
	}

	// Figure-level SetTicks reaches every axes.
	fig.SetTicks(axis.WithTop(false))
	x, _ = ax.TickParams()
	if x.Top {
		t.Error("figure-level SetTicks did not reach the axes")
	}
}

func TestSetFormatter(t *testing.T) {
	f := testFactory(t)

	_, ax, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	ax.SetFormatter()

	// Every major label in [0, 10] sits inside the magnitude window and
	// must come out as a plain decimal.
	for _, tick := range ax.X.Tick.Marker.Ticks(0, 10) {
		if tick.IsMinor() {
			continue
		}
		if strings.Contains(tick.Label, "e") {
			t.Errorf("label for %v = %q, want plain decimal", tick.Value, tick.Label)
		}
	}
}

func TestWriteSVG(t *testing.T) {
	f := testFactory(t)

	fig, _, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	var buf bytes.Buffer
	n, err := fig.Write(&buf, "svg")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n == 0 || buf.Len() == 0 {
		t.Error("Write produced no output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		t.Error("output does not look like SVG")
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	f := testFactory(t)

	fig, _, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	var buf bytes.Buffer
	_, err = fig.Write(&buf, "tiff")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestSave(t *testing.T) {
	f := testFactory(t)

	fig, _, err := f.Subplots(WithJournal("test"))
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	path := filepath.Join(t.TempDir(), "fig.svg")
	if err := fig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}

	if err := fig.Save(filepath.Join(t.TempDir(), "noext")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Save without extension code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}
