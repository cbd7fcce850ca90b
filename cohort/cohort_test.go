package cohort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attainment() *Series {
	return &Series{
		Name:   "Educational Attainment",
		Source: "US Census Bureau",
		Data: []DataPoint{
			{Year: 2003, Value: 20.5},
			{Year: 2005, Value: 21.2},
			{Year: 2007, Value: 22.1},
		},
	}
}

func TestResolve_ExactTarget(t *testing.T) {
	p, ok := Resolve(attainment(), 1980, 25, 3)
	require.True(t, ok)
	assert.Equal(t, 2005, p.Year)
	assert.Equal(t, 21.2, p.Value)
}

func TestResolve_NearestWithinTolerance(t *testing.T) {
	p, ok := Resolve(attainment(), 1983, 25, 3) // target 2008
	require.True(t, ok)
	assert.Equal(t, 2007, p.Year)
}

func TestResolve_OutsideTolerance(t *testing.T) {
	_, ok := Resolve(attainment(), 1965, 25, 3) // target 1990
	assert.False(t, ok)

	// distance equal to the tolerance is rejected
	_, ok = Resolve(attainment(), 1985, 25, 3) // target 2010, nearest 2007
	assert.False(t, ok)
}

func TestResolve_EmptyAndNil(t *testing.T) {
	_, ok := Resolve(&Series{}, 1980, 25, 3)
	assert.False(t, ok)

	_, ok = Resolve(nil, 1980, 25, 3)
	assert.False(t, ok)
}

func TestResolve_TieKeepsFirstInSeriesOrder(t *testing.T) {
	s := &Series{Data: []DataPoint{
		{Year: 2006, Value: 2},
		{Year: 2004, Value: 1},
	}}
	p, ok := Resolve(s, 1980, 25, 3)
	require.True(t, ok)
	assert.Equal(t, 2006, p.Year)
}

func TestResolve_UnorderedSeries(t *testing.T) {
	s := &Series{Data: []DataPoint{
		{Year: 2010, Value: 3},
		{Year: 1990, Value: 1},
		{Year: 2001, Value: 2},
	}}
	p, ok := Resolve(s, 1975, 25, 3)
	require.True(t, ok)
	assert.Equal(t, 2001, p.Year)
}

func TestResolver_Offsets(t *testing.T) {
	r := NewResolver()
	r.Offsets = map[string]int{"proficiency": 13}

	assert.Equal(t, 25, r.OffsetFor("attainment"))
	assert.Equal(t, 13, r.OffsetFor("proficiency"))
	assert.Equal(t, 2005, r.TargetYear("attainment", 1980))

	p, ok := r.Resolve("attainment", attainment(), 1980)
	require.True(t, ok)
	assert.Equal(t, 2005, p.Year)
}
