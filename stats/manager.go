package stats

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/logging"
)

// Report is the merged result of a probe, in catalog order.
type Report struct {
	Results   []Result
	Available []string
}

// NoData reports whether no statistic produced data.
func (r Report) NoData() bool { return len(r.Available) == 0 }

// Manager probes the source for every catalog entry and caches the loaded
// series by name.
type Manager struct {
	catalog Catalog
	source  Source
	limit   int

	mu        sync.Mutex
	cache     map[string]*cohort.Series
	available []string
}

func NewManager(catalog Catalog, source Source) *Manager {
	return &Manager{
		catalog: catalog,
		source:  source,
		limit:   4,
		cache:   make(map[string]*cohort.Series),
	}
}

func (m *Manager) Catalog() Catalog { return m.catalog }

// Probe fetches every statistic not already cached. Fetches run
// concurrently; results are slotted by catalog position so the completion
// order has no effect on the report.
func (m *Manager) Probe(ctx context.Context) Report {
	results := make([]Result, len(m.catalog))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.limit)
	for i, info := range m.catalog {
		if s, ok := m.cached(info.Key); ok {
			results[i] = Result{Name: info.Key, Status: Loaded, Series: s}
			continue
		}
		i, info := i, info
		g.Go(func() error {
			results[i] = Fetch(gctx, m.source, info.Key)
			// a failed statistic never stops the others
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Results: results}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range results {
		switch r.Status {
		case Loaded:
			m.cache[r.Name] = r.Series
			report.Available = append(report.Available, r.Name)
		case Empty:
			logging.Infof("stats: %s has no data", r.Name)
		case Failed:
			logging.Warnf("stats: %s unavailable: %v", r.Name, r.Err)
		}
	}
	m.available = append([]string(nil), report.Available...)
	logging.Infof("stats: probe done, %d/%d available", len(report.Available), len(m.catalog))
	return report
}

// Reprobe drops the cache and probes again.
func (m *Manager) Reprobe(ctx context.Context) Report {
	m.mu.Lock()
	m.cache = make(map[string]*cohort.Series)
	m.available = nil
	m.mu.Unlock()
	return m.Probe(ctx)
}

func (m *Manager) cached(name string) (*cohort.Series, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.cache[name]
	return s, ok
}

// Series returns the cached series for name.
func (m *Manager) Series(name string) (*cohort.Series, bool) {
	return m.cached(name)
}

func (m *Manager) Available() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.available...)
}

func (m *Manager) NoData() bool {
	return len(m.Available()) == 0
}
