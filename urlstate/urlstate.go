// Package urlstate converts the marker years and the statistic selection to
// and from a shareable query string.
package urlstate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/andareed/cohortline/logging"
	"github.com/andareed/cohortline/markers"
)

// --- Wire format ---

const (
	keyCohorts = "cohorts"
	keyStats   = "stats"

	// older links used a single stat and a markers list
	legacyKeyMarkers = "markers"
	legacyKeyStat    = "stat"
)

// Query is a decoded query string. Years keep the order they were written
// in; the marker store re-sorts them on restore.
type Query struct {
	Years []int
	Stats []string
}

type Codec struct {
	Bounds markers.Bounds
}

func NewCodec(b markers.Bounds) Codec {
	return Codec{Bounds: b}
}

// Encode writes cohorts then stats. A key is left out entirely when it has
// nothing to carry. Stat names containing a comma cannot survive the comma
// separated list and are skipped.
func (c Codec) Encode(years []int, stats []string) string {
	var parts []string
	if len(years) > 0 {
		ys := make([]string, len(years))
		for i, y := range years {
			ys[i] = strconv.Itoa(y)
		}
		parts = append(parts, keyCohorts+"="+strings.Join(ys, ","))
	}
	ss := make([]string, 0, len(stats))
	for _, s := range stats {
		if strings.Contains(s, ",") {
			logging.Warnf("urlstate: skipping stat %q, names cannot contain commas", s)
			continue
		}
		ss = append(ss, url.QueryEscape(s))
	}
	if len(ss) > 0 {
		parts = append(parts, keyStats+"="+strings.Join(ss, ","))
	}
	return strings.Join(parts, "&")
}

// Decode parses raw, which may be a bare query, a query with a leading "?"
// or a full URL. Bad or out of range years are dropped; stats are limited to
// the names in available.
func (c Codec) Decode(raw string, available []string) Query {
	values, err := url.ParseQuery(queryPart(raw))
	if err != nil {
		// ParseQuery keeps what it could parse alongside the error
		logging.Warnf("urlstate: partial query %q: %v", raw, err)
	}

	var q Query

	cohorts := values.Get(keyCohorts)
	if cohorts == "" {
		cohorts = values.Get(legacyKeyMarkers)
	}
	for _, tok := range splitList(cohorts) {
		y, err := strconv.Atoi(tok)
		if err != nil {
			logging.Debugf("urlstate: dropping cohort token %q", tok)
			continue
		}
		if !c.Bounds.Contains(y) {
			logging.Debugf("urlstate: dropping out of range cohort %d", y)
			continue
		}
		q.Years = append(q.Years, y)
	}

	stats := values.Get(keyStats)
	if stats == "" {
		stats = values.Get(legacyKeyStat)
	}
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}
	for _, name := range splitList(stats) {
		if known[name] {
			q.Stats = append(q.Stats, name)
		}
	}
	return q
}

// ShareURL appends query to base. An empty query yields base unchanged.
func ShareURL(base, query string) string {
	base = strings.TrimRight(base, "?&")
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	if query == "" {
		return base
	}
	return base + "?" + query
}

func queryPart(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
