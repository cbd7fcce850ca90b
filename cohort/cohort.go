// Package cohort maps a birth year to the data point that represents that
// cohort in a statistic's time series.
package cohort

const (
	// DefaultAgeOffset is the age at which statistics are read for a cohort.
	DefaultAgeOffset = 25
	// DefaultTolerance is the exclusive year distance a match may be off by.
	DefaultTolerance = 3
)

// DataPoint is one observation in a series.
type DataPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// Series is a fetched statistic. It is not modified after it is loaded.
type Series struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Source      string      `json:"source"`
	Data        []DataPoint `json:"data"`
}

// Empty reports whether s carries no data points. A nil series is empty.
func (s *Series) Empty() bool {
	return s == nil || len(s.Data) == 0
}

// Resolve finds the point nearest to birthYear+ageOffset. Ties keep the
// first point in the series' own order. The match is rejected unless its
// distance is strictly below tolerance.
func Resolve(s *Series, birthYear, ageOffset, tolerance int) (DataPoint, bool) {
	if s.Empty() {
		return DataPoint{}, false
	}
	target := birthYear + ageOffset

	best := -1
	bestDist := 0
	for i, p := range s.Data {
		d := abs(p.Year - target)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if bestDist >= tolerance {
		return DataPoint{}, false
	}
	return s.Data[best], true
}

// Resolver holds the lookup parameters. Offsets overrides AgeOffset per
// statistic name.
type Resolver struct {
	AgeOffset int
	Tolerance int
	Offsets   map[string]int
}

func NewResolver() Resolver {
	return Resolver{AgeOffset: DefaultAgeOffset, Tolerance: DefaultTolerance}
}

// OffsetFor returns the age offset used for the named statistic.
func (r Resolver) OffsetFor(stat string) int {
	if off, ok := r.Offsets[stat]; ok {
		return off
	}
	return r.AgeOffset
}

// TargetYear is the calendar year a cohort is evaluated at for stat.
func (r Resolver) TargetYear(stat string, birthYear int) int {
	return birthYear + r.OffsetFor(stat)
}

func (r Resolver) Resolve(stat string, s *Series, birthYear int) (DataPoint, bool) {
	return Resolve(s, birthYear, r.OffsetFor(stat), r.Tolerance)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
