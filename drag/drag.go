// Package drag tracks a single marker drag from pointer-down to release.
// The preview year lives here until the drag is committed to the store.
package drag

import (
	"math"

	"github.com/andareed/cohortline/logging"
	"github.com/andareed/cohortline/markers"
)

// Target is the part of the marker store a drag needs.
type Target interface {
	Contains(id string) bool
	UpdateYear(id string, year int) (markers.Marker, bool)
}

// Track is the horizontal geometry of the timeline, captured once when the
// drag starts.
type Track struct {
	Left  float64
	Width float64
}

type State int

const (
	Idle State = iota
	Dragging
)

// Preview is what the view draws while a drag is live.
type Preview struct {
	MarkerID string
	Year     int
	Percent  float64
}

type OutcomeKind int

const (
	NoSession OutcomeKind = iota
	Committed
	Aborted
)

// Outcome describes how a session ended.
type Outcome struct {
	Kind   OutcomeKind
	Marker markers.Marker
}

type session struct {
	markerID string
	track    Track
	year     int
	percent  float64
}

type Controller struct {
	target Target
	bounds markers.Bounds
	live   *session
}

func NewController(target Target, bounds markers.Bounds) *Controller {
	return &Controller{target: target, bounds: bounds}
}

func (c *Controller) State() State {
	if c.live == nil {
		return Idle
	}
	return Dragging
}

func (c *Controller) Active() bool { return c.live != nil }

// MarkerID returns the id being dragged, or "" when idle.
func (c *Controller) MarkerID() string {
	if c.live == nil {
		return ""
	}
	return c.live.markerID
}

// Begin starts a session for the marker currently at year. It refuses to
// start while another session is live.
func (c *Controller) Begin(markerID string, year int, track Track) bool {
	if c.live != nil {
		logging.Debugf("drag: ignoring begin on %s, %s already dragging", markerID, c.live.markerID)
		return false
	}
	if !c.target.Contains(markerID) {
		return false
	}
	c.live = &session{
		markerID: markerID,
		track:    track,
		year:     year,
		percent:  PercentOf(c.bounds, year),
	}
	logging.Debugf("drag: begin %s at %d", markerID, year)
	return true
}

// Move updates the preview from a pointer x position. The store is not
// touched.
func (c *Controller) Move(x float64) (int, bool) {
	if c.live == nil {
		return 0, false
	}
	pct := percentAt(c.live.track, x)
	c.live.percent = pct
	c.live.year = YearAt(c.bounds, pct)
	return c.live.year, true
}

// Nudge shifts the preview by delta years, for keyboard driven drags.
func (c *Controller) Nudge(delta int) (int, bool) {
	if c.live == nil {
		return 0, false
	}
	c.live.year = c.bounds.Clamp(c.live.year + delta)
	c.live.percent = PercentOf(c.bounds, c.live.year)
	return c.live.year, true
}

func (c *Controller) Preview() (Preview, bool) {
	if c.live == nil {
		return Preview{}, false
	}
	return Preview{MarkerID: c.live.markerID, Year: c.live.year, Percent: c.live.percent}, true
}

// End commits the last preview year. If the marker disappeared during the
// drag nothing is written.
func (c *Controller) End() Outcome {
	s := c.live
	c.live = nil
	if s == nil {
		return Outcome{Kind: NoSession}
	}
	if !c.target.Contains(s.markerID) {
		logging.Infof("drag: %s was removed mid-drag, dropping commit", s.markerID)
		return Outcome{Kind: Aborted}
	}
	m, ok := c.target.UpdateYear(s.markerID, s.year)
	if !ok {
		return Outcome{Kind: Aborted}
	}
	logging.Debugf("drag: committed %s at %d", m.ID, m.Year)
	return Outcome{Kind: Committed, Marker: m}
}

// Cancel ends the session without committing.
func (c *Controller) Cancel() bool {
	if c.live == nil {
		return false
	}
	logging.Debugf("drag: cancelled %s", c.live.markerID)
	c.live = nil
	return true
}

// Forget cancels the session if it belongs to markerID.
func (c *Controller) Forget(markerID string) {
	if c.live != nil && c.live.markerID == markerID {
		c.Cancel()
	}
}

// YearAt maps a percentage of the track to a year.
func YearAt(b markers.Bounds, percent float64) int {
	percent = clampPercent(percent)
	return int(math.Round(float64(b.Min) + percent/100*float64(b.Span())))
}

// PercentOf is the inverse of YearAt, used to place marker handles.
func PercentOf(b markers.Bounds, year int) float64 {
	if b.Span() <= 0 {
		return 0
	}
	return clampPercent(float64(year-b.Min) / float64(b.Span()) * 100)
}

func percentAt(t Track, x float64) float64 {
	if t.Width <= 0 {
		return 0
	}
	return clampPercent((x - t.Left) / t.Width * 100)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
