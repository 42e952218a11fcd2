package parser

import (
	"math"
	"testing"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1 234,56", 1234.56},
		{"1\u00a0234,56", 1234.56},
		{"1\u202f234,56", 1234.56},
		{"1 234,5", 1234.5},
		{"12.3", 12.3},
		{"  42  ", 42},
		{"-7,25", -7.25},
		{"0", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, NormalizeText(tt.input), 1e-9, "NormalizeText(%q)", tt.input)
	}
}

func TestNormalizeTextNaN(t *testing.T) {
	inputs := []string{"", "   ", "nan", "NaN", "NAN", "abc", "12,34,56", "€ 12", "1.2.3", "--1"}
	for _, in := range inputs {
		assert.True(t, math.IsNaN(NormalizeText(in)), "NormalizeText(%q) should be NaN", in)
	}
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, 12.5, NormalizeNumber(models.Number(12.5)))
	assert.Equal(t, 1234.56, NormalizeNumber(models.Str("1 234,56")))
	assert.True(t, math.IsNaN(NormalizeNumber(models.Empty())))
}

func TestNormalizeNeverPanics(t *testing.T) {
	inputs := []string{"\x00", "\xff\xfe", "1e999999", ",", ".", "+", "∞", "0x1p-2", "١٢٣"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { NormalizeText(in) }, "input %q", in)
	}
}
