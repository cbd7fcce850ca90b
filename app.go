package main

import (
	"fmt"
	"time"

	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/config"
	"github.com/andareed/cohortline/logging"
	"github.com/andareed/cohortline/markers"
	"github.com/andareed/cohortline/stats"
	"github.com/andareed/cohortline/urlstate"
)

// app holds the long lived collaborators shared by the TUI and the
// non-interactive commands.
type app struct {
	settings  config.Settings
	catalog   stats.Catalog
	manager   *stats.Manager
	selection *stats.Selection
	store     *markers.Store
	codec     urlstate.Codec
	resolver  cohort.Resolver
	now       func() time.Time
}

func newApp(s config.Settings, src stats.Source) *app {
	catalog := stats.DefaultCatalog()
	return &app{
		settings:  s,
		catalog:   catalog,
		manager:   stats.NewManager(catalog, src),
		selection: stats.NewSelection(catalog),
		store:     markers.NewStore(s.Bounds),
		codec:     urlstate.NewCodec(s.Bounds),
		resolver:  s.Resolver(catalog.Offsets()),
		now:       time.Now,
	}
}

// sourceFor prefers a local data directory over the HTTP site.
func sourceFor(s config.Settings) (stats.Source, error) {
	if s.DataDir != "" {
		logging.Infof("data: reading series from %s", s.DataDir)
		return stats.NewDirSource(s.DataDir), nil
	}
	if s.DataURL == "" {
		return nil, fmt.Errorf("no data source: set data.url or data.dir")
	}
	logging.Infof("data: fetching series from %s", s.DataURL)
	return stats.NewHTTPSource(s.DataURL, s.DataTimeout), nil
}

// applyAvailability feeds a probe report into the selection. The first call
// uses the launch query's stats, falling back to the configured defaults;
// later calls keep what survives.
func (a *app) applyAvailability(r stats.Report, pending []string, first bool) {
	a.selection.SetAvailable(r.Available)
	if first {
		if len(pending) > 0 && a.selection.Replace(pending) {
			return
		}
		a.selection.Initial(a.defaults())
		return
	}
	if a.selection.Len() == 0 {
		a.selection.Initial(a.defaults())
	}
}

func (a *app) defaults() []string {
	if len(a.settings.DefaultStats) > 0 {
		return a.settings.DefaultStats
	}
	return stats.DefaultSelection
}

// restore decodes a shared query and places its markers. Stats are returned
// unfiltered by availability; the probe has not run yet.
func (a *app) restore(raw string) urlstate.Query {
	q := a.codec.Decode(raw, a.catalog.Keys())
	for _, err := range a.store.Restore(q.Years) {
		logging.Warnf("restore: %v", err)
	}
	return q
}

func (a *app) statName(key string) string {
	if info, ok := a.catalog.Lookup(key); ok {
		return info.Name
	}
	return key
}

func (a *app) shareURL() string {
	return urlstate.ShareURL(a.settings.ShareBaseURL, a.query())
}

func (a *app) query() string {
	return a.codec.Encode(a.store.Years(), a.selection.Names())
}
