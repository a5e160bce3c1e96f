package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kristinawk/bicimad-nearest/pkg"
)

var coordinateCleaner = strings.NewReplacer("[", "", "]", "", " ", "")

// ParseCoordinates turns a bracketed pair such as "[-3.6425358, 40.4400607]" into its two numbers,
// in the order they appear in the text.
func ParseCoordinates(s string) (float64, float64, error) {
	tokens := strings.Split(coordinateCleaner.Replace(s), ",")
	if len(tokens) != 2 {
		return 0, 0, pkg.WrapErrorf(nil, pkg.ErrMalformedCoordinate,
			"coordinate %q: expected 2 values, got %d", s, len(tokens))
	}

	first, err := parseDecimal(tokens[0])
	if err != nil {
		return 0, 0, pkg.WrapErrorf(err, pkg.ErrMalformedCoordinate, "coordinate %q", s)
	}
	second, err := parseDecimal(tokens[1])
	if err != nil {
		return 0, 0, pkg.WrapErrorf(err, pkg.ErrMalformedCoordinate, "coordinate %q", s)
	}
	return first, second, nil
}

// parseDecimal accepts signed decimal numbers with an optional exponent. NaN, infinities, hex floats
// and digit separators are rejected.
func parseDecimal(tok string) (float64, error) {
	if tok == "" || strings.IndexFunc(tok, notDecimalRune) >= 0 {
		return 0, fmt.Errorf("%q is not a decimal number", tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not finite", tok)
	}
	return f, nil
}

func notDecimalRune(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

// FormatCoordinates is the inverse of ParseCoordinates.
func FormatCoordinates(first, second float64) string {
	return "[" + strconv.FormatFloat(first, 'g', -1, 64) + ", " + strconv.FormatFloat(second, 'g', -1, 64) + "]"
}
