package chart

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/andareed/cohortline/cohort"
)

func TestFromSeries(t *testing.T) {
	s := &cohort.Series{
		Name: "Literacy Rate",
		Data: []cohort.DataPoint{{Year: 1990, Value: 80}, {Year: 2000, Value: 85.5}},
	}
	p := FromSeries(s)
	assert.Equal(t, []int{1990, 2000}, p.Labels)
	assert.Equal(t, []float64{80, 85.5}, p.Values)
	assert.Equal(t, "Literacy Rate", p.SeriesName)
	assert.Equal(t, "Literacy Rate Over Time", p.Title())

	assert.True(t, FromSeries(nil).Empty())
	assert.True(t, FromSeries(&cohort.Series{Name: "x"}).Empty())
}

func TestFromSeries_OrdersByYear(t *testing.T) {
	s := &cohort.Series{
		Name: "Enrollment",
		Data: []cohort.DataPoint{{Year: 2010, Value: 30}, {Year: 1990, Value: 10}, {Year: 2000, Value: 20}},
	}
	p := FromSeries(s)
	assert.Equal(t, []int{1990, 2000, 2010}, p.Labels)
	assert.Equal(t, []float64{10, 20, 30}, p.Values)
	assert.Equal(t, 2010, s.Data[0].Year, "series left untouched")

	assert.Equal(t, "▁▅█", Sparkline(p, 10))
	assert.Contains(t, Render(p, 10, Style{}), "1990 – 2010")
}

func TestSparkline(t *testing.T) {
	p := Payload{Labels: []int{1, 2, 3}, Values: []float64{0, 5, 10}}
	assert.Equal(t, "▁▅█", Sparkline(p, 10))

	flat := Payload{Labels: []int{1, 2}, Values: []float64{3, 3}}
	assert.Equal(t, "██", Sparkline(flat, 10))

	assert.Empty(t, Sparkline(Payload{}, 10))
	assert.Empty(t, Sparkline(p, 0))
}

func TestSparkline_Resamples(t *testing.T) {
	vals := make([]float64, 100)
	labels := make([]int, 100)
	for i := range vals {
		vals[i] = float64(i)
		labels[i] = 1900 + i
	}
	out := Sparkline(Payload{Labels: labels, Values: vals}, 20)
	assert.Equal(t, 20, utf8.RuneCountInString(out))
	r := []rune(out)
	assert.Equal(t, '▁', r[0])
	assert.Equal(t, '█', r[len(r)-1])
}

func TestMarkerColor_Cycles(t *testing.T) {
	assert.Equal(t, lipgloss.Color("9"), MarkerColor(0))
	assert.Equal(t, lipgloss.Color("12"), MarkerColor(1))
	assert.Equal(t, MarkerColor(0), MarkerColor(2))
}

func TestStyleFor(t *testing.T) {
	st := StyleFor(1, "Bachelor's+")
	assert.Equal(t, "Bachelor's+", st.Label)
	assert.Equal(t, StyleFor(1, "").Color, StyleFor(1+len(lineColors), "").Color)
}

func TestRender(t *testing.T) {
	p := Payload{Labels: []int{1990, 2000}, Values: []float64{1, 2}, SeriesName: "Enrollment"}
	out := Render(p, 10, StyleFor(0, ""))
	assert.Contains(t, out, "Enrollment Over Time")
	assert.Contains(t, out, "1990 – 2000")
	assert.Equal(t, "No data points", Render(Payload{}, 10, Style{}))
}
