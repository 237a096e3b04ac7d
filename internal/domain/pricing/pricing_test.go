package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"kitchen":            "kitchen",
		"kitchen:":           "kitchen",
		"  kitchen  ":        "kitchen",
		"living-area%3A":     "living-area",
		"dining%20area":      "dining area",
		"":                   "",
		"bad%zzescape":       "bad%zzescape",
		" technical-rooms: ": "technical-rooms",
		"a%2541":             "aA",
		"kitchen%253A":       "kitchen",
		"kitchen%3A%20":      "kitchen",
	}
	for in, want := range cases {
		got := NormalizeSlug(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, got, NormalizeSlug(got), "not stable for %q", in)
	}
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, 700.0, UnitPrice("kitchen"))
	assert.Equal(t, 700.0, UnitPrice("kitchen:"))
	assert.Equal(t, 350.0, UnitPrice(" parking "))
	assert.Equal(t, DefaultUnitPrice, UnitPrice("wine-cellar"))
	assert.Equal(t, DefaultUnitPrice, UnitPrice(""))
}

func TestRatesReturnsCopy(t *testing.T) {
	r := Rates()
	r["kitchen"] = 1
	assert.Equal(t, 700.0, UnitPrice("kitchen"))
	assert.Len(t, Rates(), 13)
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "12.450 €", FormatEuro(12450))
	assert.Equal(t, "7.500 €", FormatEuro(7500))
	assert.Equal(t, "0 €", FormatEuro(0))
}
