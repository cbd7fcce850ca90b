// Package compare builds the per-cohort comparison tables shown under the
// timeline.
package compare

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/generation"
	"github.com/andareed/cohortline/markers"
)

const (
	NotAvailable    = "N/A"
	NoMarkersText   = "Add markers to see comparisons"
	NoSelectionText = "No statistics selected. Click settings to choose."
	NoDataText      = "No data available. Run the data pipeline or point data.url at a published site."
)

// Lookup returns the loaded series for a statistic name.
type Lookup func(name string) (*cohort.Series, bool)

// Cell is one statistic evaluated for one cohort.
type Cell struct {
	Stat       string
	TargetYear int
	Point      cohort.DataPoint
	Found      bool
	Source     string
}

// Entry is the comparison block for one marker.
type Entry struct {
	Marker     markers.Marker
	Generation generation.Label
	Age        int
	Cells      []Cell
}

type Report struct {
	Entries     []Entry
	Stats       []string
	NoData      bool
	NoSelection bool
}

// Empty reports whether there is nothing to tabulate.
func (r Report) Empty() bool {
	return r.NoData || r.NoSelection || len(r.Entries) == 0
}

// Message is the placeholder text shown instead of tables, if any.
func (r Report) Message() string {
	switch {
	case r.NoData:
		return NoDataText
	case r.NoSelection:
		return NoSelectionText
	case len(r.Entries) == 0:
		return NoMarkersText
	}
	return ""
}

// Build evaluates every selected statistic for every marker, in store order.
// available is the number of statistics that produced data; zero marks the
// whole report as no-data.
func Build(ms []markers.Marker, selected []string, available int, lookup Lookup, r cohort.Resolver, now time.Time) Report {
	report := Report{Stats: append([]string(nil), selected...)}
	if available == 0 {
		report.NoData = true
		return report
	}
	if len(selected) == 0 {
		report.NoSelection = true
		return report
	}

	year := now.Year()
	for _, m := range ms {
		e := Entry{
			Marker:     m,
			Generation: generation.Classify(m.Year),
			Age:        year - m.Year,
			Cells:      make([]Cell, 0, len(selected)),
		}
		for _, name := range selected {
			c := Cell{Stat: name, TargetYear: r.TargetYear(name, m.Year)}
			if s, ok := lookup(name); ok {
				c.Source = s.Source
				c.Point, c.Found = r.Resolve(name, s, m.Year)
			}
			e.Cells = append(e.Cells, c)
		}
		report.Entries = append(report.Entries, e)
	}
	return report
}

var printer = message.NewPrinter(language.English)

// FormatValue renders a cell value with two decimals and digit grouping, or
// N/A when nothing matched.
func FormatValue(c Cell) string {
	if !c.Found {
		return NotAvailable
	}
	return printer.Sprintf("%.2f", c.Point.Value)
}

// FormatAge renders the current age column.
func FormatAge(age int) string {
	if age == 1 {
		return "1 year old"
	}
	return printer.Sprintf("%d years old", age)
}
