package compare

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/markers"
	"github.com/andareed/cohortline/urlstate"
)

var now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func seriesLookup(all ...*cohort.Series) Lookup {
	byName := make(map[string]*cohort.Series, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	return func(name string) (*cohort.Series, bool) {
		s, ok := byName[name]
		return s, ok
	}
}

var attainment = &cohort.Series{
	Name:   "attainment",
	Source: "NCES Digest",
	Data: []cohort.DataPoint{
		{Year: 1995, Value: 24.98},
		{Year: 2000, Value: 29.1},
	},
}

var literacy = &cohort.Series{
	Name:   "literacy",
	Source: "PIAAC",
	Data:   []cohort.DataPoint{{Year: 2012, Value: 1234.5}},
}

func TestBuild_FromSharedQuery(t *testing.T) {
	store := markers.NewStore(markers.DefaultBounds())
	codec := urlstate.NewCodec(store.Bounds())

	q := codec.Decode("cohorts=1970,1980&stats=attainment", []string{"literacy", "attainment"})
	require.Empty(t, store.Restore(q.Years))
	require.Equal(t, []string{"attainment"}, q.Stats)

	r := Build(store.List(), q.Stats, 2, seriesLookup(attainment, literacy), cohort.NewResolver(), now)
	require.Len(t, r.Entries, 2)
	assert.False(t, r.Empty())

	first, second := r.Entries[0], r.Entries[1]
	assert.Equal(t, 1970, first.Marker.Year)
	assert.Equal(t, 1980, second.Marker.Year)
	assert.Equal(t, "Generation X", first.Generation.Name)
	assert.Equal(t, 56, first.Age)

	require.Len(t, first.Cells, 1)
	assert.True(t, first.Cells[0].Found)
	assert.Equal(t, 1995, first.Cells[0].TargetYear)
	assert.Equal(t, "24.98", FormatValue(first.Cells[0]))
	assert.Equal(t, "NCES Digest", first.Cells[0].Source)

	// 1980+25 = 2005 is five years from the nearest point
	assert.False(t, second.Cells[0].Found)
	assert.Equal(t, NotAvailable, FormatValue(second.Cells[0]))
}

func TestBuild_CellsFollowSelectionOrder(t *testing.T) {
	ms := []markers.Marker{{Year: 1987, ID: "a"}}
	r := Build(ms, []string{"literacy", "attainment", "graduation"}, 2, seriesLookup(attainment, literacy), cohort.NewResolver(), now)

	require.Len(t, r.Entries, 1)
	cells := r.Entries[0].Cells
	require.Len(t, cells, 3)
	assert.Equal(t, "literacy", cells[0].Stat)
	assert.True(t, cells[0].Found)
	assert.Equal(t, "1,234.50", FormatValue(cells[0]))
	assert.Equal(t, "attainment", cells[1].Stat)
	assert.False(t, cells[1].Found)
	assert.Equal(t, "graduation", cells[2].Stat)
	assert.False(t, cells[2].Found, "stats without a series render as N/A")
	assert.Empty(t, cells[2].Source)
}

func TestBuild_PlaceholderStates(t *testing.T) {
	ms := []markers.Marker{{Year: 1990, ID: "a"}}
	lookup := seriesLookup(attainment)
	res := cohort.NewResolver()

	r := Build(ms, []string{"attainment"}, 0, lookup, res, now)
	assert.True(t, r.NoData)
	assert.Equal(t, NoDataText, r.Message())

	r = Build(ms, nil, 1, lookup, res, now)
	assert.True(t, r.NoSelection)
	assert.Equal(t, NoSelectionText, r.Message())

	r = Build(nil, []string{"attainment"}, 1, lookup, res, now)
	assert.True(t, r.Empty())
	assert.Equal(t, NoMarkersText, r.Message())
}

func TestBuild_PerStatOffset(t *testing.T) {
	res := cohort.NewResolver()
	res.Offsets = map[string]int{"proficiency": 14}
	prof := &cohort.Series{Name: "proficiency", Data: []cohort.DataPoint{{Year: 2004, Value: 262}}}

	r := Build([]markers.Marker{{Year: 1990}}, []string{"proficiency"}, 1, seriesLookup(prof), res, now)
	cell := r.Entries[0].Cells[0]
	assert.Equal(t, 2004, cell.TargetYear)
	assert.True(t, cell.Found)
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "1 year old", FormatAge(1))
	assert.Equal(t, "36 years old", FormatAge(36))
}

func TestRender(t *testing.T) {
	ms := []markers.Marker{{Year: 1970, ID: "a"}, {Year: 1980, ID: "b"}}
	r := Build(ms, []string{"attainment"}, 1, seriesLookup(attainment), cohort.NewResolver(), now)

	out := Render(r, func(k string) string { return strings.ToUpper(k) }, PlainStyles())
	assert.Contains(t, out, "1970 · Generation X · 56 years old")
	assert.Contains(t, out, "ATTAINMENT")
	assert.Contains(t, out, "24.98")
	assert.Contains(t, out, NotAvailable)
	assert.Less(t, strings.Index(out, "1970"), strings.Index(out, "1980"))

	empty := Render(Build(nil, nil, 1, nil, cohort.NewResolver(), now), func(k string) string { return k }, PlainStyles())
	assert.Equal(t, NoSelectionText, empty)
}
