package chrono

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		year float64
		want string
	}{
		{"zero", 0, "0 CE"},
		{"common era", 1969, "1969 CE"},
		{"small bce", -500, "500 BCE"},
		{"grouped bce", -3100, "3,100 BCE"},
		{"just under approx threshold", -9999, "9,999 BCE"},
		{"approx threshold", -10000, "~10,000 years ago"},
		{"approx past", -15000, "~15,000 years ago"},
		{"approx future", 15000, "~15,000 years from now"},
		{"million threshold", -1e6, "1 million years ago"},
		{"million future", 2.5e6, "2.5 million years from now"},
		{"million past", -2.5e6, "2.5 million years ago"},
		{"billion", -13.8e9, "13.8 billion years ago"},
		{"billion rounds", -4.54e9, "4.5 billion years ago"},
		{"trillion threshold", 1e12, "1 trillion years from now"},
		{"exponent threshold", 1e20, "10²⁰ years from now"},
		{"exponent past", -1e21, "10²¹ years ago"},
		{"exponent future", 1e21, "10²¹ years from now"},
		{"exponent not power of ten", 3.7e25, "10²⁵ years from now"},
		{"exponent huge", 1e100, "10¹⁰⁰ years from now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.year))
		})
	}
}

func TestExponentAtPowersOfTen(t *testing.T) {
	for e := 20; e <= 300; e++ {
		assert.Equal(t, e, Exponent(math.Pow10(e)), "10^%d", e)
	}
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "4", Decimal(4))
	assert.Equal(t, "4.5", Decimal(4.54))
	assert.Equal(t, "13.8", Decimal(13.8))
	assert.Equal(t, "1000", Decimal(999.96))
}

func TestSuperscript(t *testing.T) {
	assert.Equal(t, "¹²³⁴⁵⁶⁷⁸⁹⁰", Superscript(1234567890))
	assert.Equal(t, "²¹", Superscript(21))
}

// TestFormatGolden pins the rendering of a timeline spanning every branch
func TestFormatGolden(t *testing.T) {
	timeline := []struct {
		label string
		year  float64
	}{
		{"far future", 1e100},
		{"proton decay", 1e40},
		{"last stars", 1.25e14},
		{"sun dies", 5e9},
		{"next ice age", 50000},
		{"today", 2024},
		{"pyramids", -2560},
		{"cave paintings", -40000},
		{"asteroid", -66e6},
		{"earth forms", -4.54e9},
		{"big bang", -13.8e9},
	}

	var buf bytes.Buffer
	for _, e := range timeline {
		fmt.Fprintf(&buf, "%-16s%s\n", e.label, Format(e.year))
	}

	g := goldie.New(t)
	g.Assert(t, "timeline", buf.Bytes())
}
