package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		year int
		tag  string
	}{
		{1945, "other"},
		{1920, "other"},
		{1946, "baby-boomer"},
		{1950, "baby-boomer"},
		{1964, "baby-boomer"},
		{1965, "x"},
		{1980, "x"},
		{1981, "millennial"},
		{1996, "millennial"},
		{1997, "z"},
		{2012, "z"},
		{2013, "alpha"},
		{2100, "alpha"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tag, Classify(tt.year).Tag, "year %d", tt.year)
	}
}

func TestClassify_WholeBoomerRange(t *testing.T) {
	for y := 1946; y <= 1964; y++ {
		assert.Equal(t, BabyBoomer, Classify(y))
	}
}

func TestBands(t *testing.T) {
	bands := Bands(2020)
	assert.Len(t, bands, 5)
	assert.Equal(t, GenAlpha, bands[4].Label)
	assert.Equal(t, 2020, bands[4].To)

	assert.Len(t, Bands(2000), 4)
}
