// Package chrono renders signed years as human readable relative time
package chrono

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	exponentThreshold = 1e20
	trillion          = 1e12
	billion           = 1e9
	million           = 1e6
	approxThreshold   = 10000
)

var superscripts = map[rune]rune{
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
	'-': '⁻',
}

// Format returns the display string for a year
// Negative years are in the past, positive ones in the future, large magnitudes are relative to now
func Format(year float64) string {
	abs := math.Abs(year)
	suffix := "from now"
	if year < 0 {
		suffix = "ago"
	}

	switch {
	case abs >= exponentThreshold:
		return "10" + Superscript(Exponent(abs)) + " years " + suffix
	case abs >= trillion:
		return Decimal(abs/trillion) + " trillion years " + suffix
	case abs >= billion:
		return Decimal(abs/billion) + " billion years " + suffix
	case abs >= million:
		return Decimal(abs/million) + " million years " + suffix
	case abs >= approxThreshold:
		return "~" + humanize.Comma(int64(math.Round(abs/1000))) + ",000 years " + suffix
	case year < 0:
		return grouped(abs) + " BCE"
	default:
		return strconv.FormatFloat(year, 'f', -1, 64) + " CE"
	}
}

// Exponent returns floor(log10(abs)) corrected for floating point error at exact powers of ten
func Exponent(abs float64) int {
	if abs <= 0 || math.IsInf(abs, 0) || math.IsNaN(abs) {
		return 0
	}
	exp := int(math.Floor(math.Log10(abs)))
	if math.Pow10(exp+1) <= abs {
		exp++
	} else if math.Pow10(exp) > abs {
		exp--
	}
	return exp
}

// Decimal rounds to one decimal place and drops a trailing ".0"
func Decimal(n float64) string {
	rounded := math.Round(n*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Superscript maps the decimal digits of n to superscript glyphs
func Superscript(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	b.Grow(len(digits) * 3)
	for _, d := range digits {
		if s, ok := superscripts[d]; ok {
			b.WriteRune(s)
		} else {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// grouped renders a magnitude with thousands separators, keeping fractional digits if any
func grouped(abs float64) string {
	if abs == math.Trunc(abs) {
		return humanize.Comma(int64(abs))
	}
	return humanize.Commaf(abs)
}
