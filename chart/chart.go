// Package chart turns a series into the payload a line chart needs and draws
// it as a terminal sparkline.
package chart

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/cohortline/cohort"
)

// Payload is what a chart renderer consumes: years on the x axis, values on
// the y axis and the series name for the legend.
type Payload struct {
	Labels     []int
	Values     []float64
	SeriesName string
}

// FromSeries orders the points by year; the file order is not trusted.
func FromSeries(s *cohort.Series) Payload {
	if s.Empty() {
		return Payload{}
	}
	data := slices.Clone(s.Data)
	slices.SortStableFunc(data, func(a, b cohort.DataPoint) int { return a.Year - b.Year })
	p := Payload{
		Labels:     make([]int, len(data)),
		Values:     make([]float64, len(data)),
		SeriesName: s.Name,
	}
	for i, d := range data {
		p.Labels[i] = d.Year
		p.Values[i] = d.Value
	}
	return p
}

func (p Payload) Empty() bool { return len(p.Values) == 0 }

func (p Payload) Title() string {
	if p.SeriesName == "" {
		return "Educational Statistics Over Time"
	}
	return p.SeriesName + " Over Time"
}

// Range returns the min and max values. ok is false for an empty payload.
func (p Payload) Range() (lo, hi float64, ok bool) {
	if p.Empty() {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range p.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, true
}

// --- Styles ---

// Style is the per-statistic look of a chart line.
type Style struct {
	Color lipgloss.Color
	Label string
}

var lineColors = []lipgloss.Color{"37", "75", "179", "204", "141", "114"}

// StyleFor picks a stable colour for the statistic at catalog position idx.
func StyleFor(idx int, label string) Style {
	if idx < 0 {
		idx = 0
	}
	return Style{Color: lineColors[idx%len(lineColors)], Label: label}
}

var markerColors = []lipgloss.Color{"9", "12"}

// MarkerColor cycles the marker palette by position on the timeline.
func MarkerColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return markerColors[i%len(markerColors)]
}

// --- Sparkline ---

var blocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws the payload values in width cells. Longer series are
// averaged into buckets; shorter ones use one cell per value.
func Sparkline(p Payload, width int) string {
	if p.Empty() || width <= 0 {
		return ""
	}
	vals := resample(p.Values, width)
	lo, hi, _ := p.Range()

	var b strings.Builder
	for _, v := range vals {
		level := len(blocks) - 1
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(len(blocks)-1)))
		}
		b.WriteRune(blocks[level])
	}
	return b.String()
}

func resample(vals []float64, width int) []float64 {
	if len(vals) <= width {
		return vals
	}
	out := make([]float64, width)
	for i := range out {
		from := i * len(vals) / width
		to := (i + 1) * len(vals) / width
		sum := 0.0
		for _, v := range vals[from:to] {
			sum += v
		}
		out[i] = sum / float64(to-from)
	}
	return out
}

// Render draws a titled sparkline with the year span and value range
// underneath.
func Render(p Payload, width int, st Style) string {
	if p.Empty() {
		return "No data points"
	}
	lo, hi, _ := p.Range()
	line := lipgloss.NewStyle().Foreground(st.Color).Render(Sparkline(p, width))
	axis := fmt.Sprintf("%d – %d   min %.2f  max %.2f", p.Labels[0], p.Labels[len(p.Labels)-1], lo, hi)
	title := p.Title()
	if st.Label != "" {
		title = st.Label + " Over Time"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		line,
		lipgloss.NewStyle().Faint(true).Render(axis),
	)
}
