package main

import "github.com/andareed/cohortline/drag"

type uiState struct {
	mode       mode
	noticeMsg  string
	noticeType string
	noticeSeq  int
	selectedID string
	showChart  bool
	chartIdx   int
	query      string
	track      trackGeometry
}

// trackGeometry is where the timeline bar sits on screen, in cells.
type trackGeometry struct {
	left  int
	width int
	row   int
}

func (g trackGeometry) dragTrack() drag.Track {
	// cell i spans percent i/(width-1)
	return drag.Track{Left: float64(g.left), Width: float64(max(1, g.width-1))}
}

func (g trackGeometry) contains(x, y int) bool {
	return g.width > 1 && y == g.row && x >= g.left && x < g.left+g.width
}
