// Package stats loads statistic series from a data source and tracks which
// of them are available and selected.
package stats

import "github.com/andareed/cohortline/cohort"

// Info describes a known statistic. The catalog order is the render order.
type Info struct {
	Key         string
	Name        string
	Description string
	Unit        string
	AgeOffset   int
}

// Catalog is the ordered set of statistics the app knows how to show.
type Catalog []Info

// DefaultCatalog lists the statistics produced by the data pipeline.
func DefaultCatalog() Catalog {
	return Catalog{
		{Key: "literacy", Name: "Literacy Rate", Description: "Adult literacy rates (15+)", Unit: "%", AgeOffset: cohort.DefaultAgeOffset},
		{Key: "attainment", Name: "Bachelor's+", Description: "Percentage with bachelor's degree or higher (25+)", Unit: "%", AgeOffset: cohort.DefaultAgeOffset},
		{Key: "graduation", Name: "HS Graduation", Description: "Percentage graduating from high school", Unit: "%", AgeOffset: cohort.DefaultAgeOffset},
		{Key: "enrollment", Name: "Enrollment", Description: "School enrollment rates by level", Unit: "%", AgeOffset: cohort.DefaultAgeOffset},
		{Key: "proficiency", Name: "NAEP Reading", Description: "NAEP Reading scores (Grade 8)", Unit: "score", AgeOffset: cohort.DefaultAgeOffset},
		{Key: "early_childhood", Name: "Early Childhood", Description: "Early literacy and readiness indicators", Unit: "", AgeOffset: cohort.DefaultAgeOffset},
	}
}

func (c Catalog) Keys() []string {
	out := make([]string, len(c))
	for i, info := range c {
		out[i] = info.Key
	}
	return out
}

func (c Catalog) Lookup(key string) (Info, bool) {
	for _, info := range c {
		if info.Key == key {
			return info, true
		}
	}
	return Info{}, false
}

// Index returns the declaration position of key, or -1.
func (c Catalog) Index(key string) int {
	for i, info := range c {
		if info.Key == key {
			return i
		}
	}
	return -1
}

// Offsets collects per-statistic age offsets for a cohort.Resolver.
func (c Catalog) Offsets() map[string]int {
	out := make(map[string]int, len(c))
	for _, info := range c {
		if info.AgeOffset > 0 {
			out[info.Key] = info.AgeOffset
		}
	}
	return out
}
