package unit

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    vg.Length
		wantErr bool
	}{
		{"tex points", "256.0pt", 256.0 * TexPoint, false},
		{"tex points no decimal", "242pt", 242 * TexPoint, false},
		{"big points", "12bp", 12, false},
		{"inches", "3.5in", 3.5 * Inch, false},
		{"bare number is inches", "3.54", 3.54 * Inch, false},
		{"centimeters", "8.6cm", 8.6 * Centimeter, false},
		{"millimeters", "89mm", 89 * Millimeter, false},
		{"surrounding whitespace", " 3.5 in ", 3.5 * Inch, false},
		{"negative", "-1in", -1 * Inch, false},

		{"empty", "", 0, true},
		{"unit only", "pt", 0, true},
		{"unknown unit", "3.5px", 0, true},
		{"garbage", "wide", 0, true},
		{"double decimal", "1.2.3in", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("Parse(%q) code = %v, want INVALID_CONFIG", tt.input, errors.GetCode(err))
				}
				return
			}
			if math.Abs(float64(got-tt.want)) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTexPointConversion(t *testing.T) {
	// 72.27 TeX points are exactly one inch.
	got, err := Parse("72.27pt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if math.Abs(float64(got-Inch)) > 1e-9 {
		t.Errorf("72.27pt = %v, want %v (one inch)", got, Inch)
	}
}

func TestFormatRoundtrip(t *testing.T) {
	lengths := []vg.Length{
		3.5 * Inch,
		256.0 * TexPoint,
		89 * Millimeter,
		0,
		-2 * Inch,
		// Extreme magnitudes must stay in plain decimal; exponent notation
		// would not parse back.
		1e21 * Inch,
		1e-12 * Inch,
	}
	for _, l := range lengths {
		got, err := Parse(Format(l))
		if err != nil {
			t.Fatalf("Parse(Format(%v)) = Parse(%q): %v", l, Format(l), err)
		}
		tol := 1e-12 * math.Max(1, math.Abs(float64(l)))
		if math.Abs(float64(got-l)) > tol {
			t.Errorf("roundtrip %v -> %q -> %v", l, Format(l), got)
		}
	}
}
