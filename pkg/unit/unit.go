// Package unit provides length units and parsing for journal catalogs.
//
// All lengths are expressed in gonum/plot's native vg.Length (printer's
// points, 72 per inch). Journal catalogs may declare dimensions in several
// units; the catalog notation is a number with an optional suffix:
//
//	"256.0pt"  TeX points (72.27 per inch, the TeX convention)
//	"12bp"     big (DTP) points (72 per inch)
//	"3.5in"    inches
//	"8.6cm"    centimeters
//	"89mm"     millimeters
//	"3.54"     bare numbers are inches
//
// Conversion happens once, at parse time; everything downstream is plain
// arithmetic on vg.Length.
package unit

import (
	"regexp"
	"strconv"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/pubplot/pkg/errors"
)

// Length units in vg.Length (1/72 inch per unit).
const (
	// Inch is the base unit for figure dimensions.
	Inch = vg.Inch

	// Centimeter is 1/2.54 inch.
	Centimeter = vg.Centimeter

	// Millimeter is 1/10 centimeter.
	Millimeter = vg.Millimeter

	// Point is the big (DTP) point, 1/72 inch. This is vg's native unit.
	Point = vg.Length(1)

	// TexPoint is the TeX point, 1/72.27 inch. Journal catalogs that quote
	// column widths in points use the TeX convention.
	TexPoint = Inch / 72.27
)

// lengthRegex matches a signed decimal number with an optional unit suffix.
var lengthRegex = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*(pt|bp|in|cm|mm)?\s*$`)

// Parse converts a catalog length string into a vg.Length.
// A bare number is interpreted as inches. Malformed input returns an
// INVALID_CONFIG error.
func Parse(s string) (vg.Length, error) {
	m := lengthRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "malformed length %q (expected e.g. \"256.0pt\", \"3.5in\", \"89mm\")", s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "malformed length %q", s)
	}

	switch m[2] {
	case "", "in":
		return vg.Length(v) * Inch, nil
	case "pt":
		return vg.Length(v) * TexPoint, nil
	case "bp":
		return vg.Length(v) * Point, nil
	case "cm":
		return vg.Length(v) * Centimeter, nil
	case "mm":
		return vg.Length(v) * Millimeter, nil
	}
	// Unreachable: the regex only admits the suffixes above.
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown unit in %q", s)
}

// Format renders a length in the catalog's canonical notation: inches with
// an "in" suffix, always as a plain decimal so Parse can read it back at
// any magnitude.
func Format(l vg.Length) string {
	return strconv.FormatFloat(float64(l/Inch), 'f', -1, 64) + "in"
}
