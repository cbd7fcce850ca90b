package stats

import "github.com/andareed/cohortline/logging"

// DefaultSelection is used when no stats are named in the query or config.
var DefaultSelection = []string{"literacy", "attainment"}

// Selection is the set of statistics shown in the comparison tables. It only
// holds available names and always reports them in catalog order.
type Selection struct {
	catalog   Catalog
	available map[string]bool
	chosen    map[string]bool
}

func NewSelection(catalog Catalog) *Selection {
	return &Selection{
		catalog:   catalog,
		available: make(map[string]bool),
		chosen:    make(map[string]bool),
	}
}

// SetAvailable replaces the available set and drops chosen names that are no
// longer available.
func (s *Selection) SetAvailable(names []string) {
	s.available = make(map[string]bool, len(names))
	for _, n := range names {
		s.available[n] = true
	}
	for n := range s.chosen {
		if !s.available[n] {
			delete(s.chosen, n)
		}
	}
}

// Initial picks defaults ∩ available, or the first available statistic when
// that intersection is empty.
func (s *Selection) Initial(defaults []string) {
	s.chosen = make(map[string]bool)
	for _, n := range defaults {
		if s.available[n] {
			s.chosen[n] = true
		}
	}
	if len(s.chosen) > 0 {
		return
	}
	for _, info := range s.catalog {
		if s.available[info.Key] {
			logging.Infof("stats: no default available, falling back to %s", info.Key)
			s.chosen[info.Key] = true
			return
		}
	}
}

// Replace swaps in names filtered to the available set. When nothing
// survives the filter the current selection is kept and false is returned.
func (s *Selection) Replace(names []string) bool {
	next := make(map[string]bool)
	for _, n := range names {
		if s.available[n] {
			next[n] = true
		}
	}
	if len(next) == 0 {
		return false
	}
	s.chosen = next
	return true
}

// Toggle flips name in or out of the selection. Unavailable names are
// refused.
func (s *Selection) Toggle(name string) bool {
	if !s.available[name] {
		return false
	}
	if s.chosen[name] {
		delete(s.chosen, name)
	} else {
		s.chosen[name] = true
	}
	return true
}

func (s *Selection) Contains(name string) bool { return s.chosen[name] }

func (s *Selection) IsAvailable(name string) bool { return s.available[name] }

func (s *Selection) Len() int { return len(s.chosen) }

// Names lists the chosen statistics in catalog order.
func (s *Selection) Names() []string {
	var out []string
	for _, info := range s.catalog {
		if s.chosen[info.Key] {
			out = append(out, info.Key)
		}
	}
	return out
}

// AvailableNames lists the available statistics in catalog order.
func (s *Selection) AvailableNames() []string {
	var out []string
	for _, info := range s.catalog {
		if s.available[info.Key] {
			out = append(out, info.Key)
		}
	}
	return out
}
