// Package markers owns the ordered set of birth-year markers placed on the
// timeline.
package markers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/andareed/cohortline/logging"
)

const (
	DefaultMinYear = 1950
	DefaultMaxYear = 2020
)

var (
	ErrDuplicateYear = errors.New("a marker already exists for this year")
	ErrOutOfRange    = errors.New("year is outside the timeline range")
)

// YearError carries the rejected year. It unwraps to ErrDuplicateYear or
// ErrOutOfRange.
type YearError struct {
	Year int
	Err  error
}

func (e *YearError) Error() string {
	return fmt.Sprintf("%d: %v", e.Year, e.Err)
}

func (e *YearError) Unwrap() error { return e.Err }

// Bounds is the inclusive year range of the timeline.
type Bounds struct {
	Min int
	Max int
}

func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinYear, Max: DefaultMaxYear}
}

func (b Bounds) Contains(year int) bool {
	return year >= b.Min && year <= b.Max
}

func (b Bounds) Clamp(year int) int {
	if year < b.Min {
		return b.Min
	}
	if year > b.Max {
		return b.Max
	}
	return year
}

func (b Bounds) Span() int { return b.Max - b.Min }

// Marker is a birth year with an id that never changes once created.
type Marker struct {
	Year int
	ID   string
}

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Moved
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Moved:
		return "moved"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after a mutation has fully applied.
type Change struct {
	Kind   ChangeKind
	Marker Marker
}

// Store keeps markers sorted ascending by year. It is not safe for
// concurrent use; all calls are expected on the UI event loop.
type Store struct {
	bounds  Bounds
	markers []Marker
	newID   func() string

	subs   map[int]func(Change)
	subSeq int
}

type Option func(*Store)

// WithIDGenerator replaces the default uuid based id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func NewStore(bounds Bounds, opts ...Option) *Store {
	s := &Store{
		bounds: bounds,
		newID:  func() string { return "marker_" + uuid.NewString() },
		subs:   make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Bounds() Bounds { return s.bounds }

// Add places a new marker. Duplicate years are checked before the range.
func (s *Store) Add(year int) (Marker, error) {
	for _, m := range s.markers {
		if m.Year == year {
			return Marker{}, &YearError{Year: year, Err: ErrDuplicateYear}
		}
	}
	if !s.bounds.Contains(year) {
		return Marker{}, &YearError{Year: year, Err: ErrOutOfRange}
	}

	m := Marker{Year: year, ID: s.newID()}
	s.markers = append(s.markers, m)
	s.sort()
	logging.Debugf("markers: added %s at %d (%d total)", m.ID, m.Year, len(s.markers))
	s.notify(Change{Kind: Added, Marker: m})
	return m, nil
}

// Remove deletes the marker with id. Unknown ids are ignored.
func (s *Store) Remove(id string) bool {
	for i, m := range s.markers {
		if m.ID != id {
			continue
		}
		s.markers = append(s.markers[:i], s.markers[i+1:]...)
		logging.Debugf("markers: removed %s (%d)", m.ID, m.Year)
		s.notify(Change{Kind: Removed, Marker: m})
		return true
	}
	return false
}

// UpdateYear moves a marker, clamping year into the bounds. It does not
// check whether another marker already sits on the new year.
func (s *Store) UpdateYear(id string, year int) (Marker, bool) {
	year = s.bounds.Clamp(year)
	for i := range s.markers {
		if s.markers[i].ID != id {
			continue
		}
		s.markers[i].Year = year
		m := s.markers[i]
		s.sort()
		logging.Debugf("markers: moved %s to %d", m.ID, m.Year)
		s.notify(Change{Kind: Moved, Marker: m})
		return m, true
	}
	return Marker{}, false
}

// List returns a copy of the markers in year order.
func (s *Store) List() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

func (s *Store) Years() []int {
	out := make([]int, len(s.markers))
	for i, m := range s.markers {
		out[i] = m.Year
	}
	return out
}

func (s *Store) Len() int { return len(s.markers) }

func (s *Store) Get(id string) (Marker, bool) {
	for _, m := range s.markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}

func (s *Store) Contains(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// IndexOf returns the position of id in year order, or -1.
func (s *Store) IndexOf(id string) int {
	for i, m := range s.markers {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Restore replaces the markers with years, each going through Add so the
// usual validation applies. Rejected years are returned, not fatal.
func (s *Store) Restore(years []int) []error {
	s.markers = s.markers[:0]
	var errs []error
	for _, y := range years {
		if _, err := s.Add(y); err != nil {
			logging.Warnf("markers: restore skipped %d: %v", y, err)
			errs = append(errs, err)
		}
	}
	s.notify(Change{Kind: Reset})
	return errs
}

// Subscribe registers fn for change notifications and returns a function
// that removes it again.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subSeq++
	id := s.subSeq
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) notify(c Change) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		s.subs[id](c)
	}
}

func (s *Store) sort() {
	sort.SliceStable(s.markers, func(i, j int) bool {
		return s.markers[i].Year < s.markers[j].Year
	})
}
