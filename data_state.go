package main

import (
	"github.com/andareed/cohortline/compare"
	"github.com/andareed/cohortline/stats"
	"github.com/andareed/cohortline/urlstate"
)

type dataState struct {
	probe   stats.Report
	probed  bool
	loading bool
	// stats from the launch query, applied once availability is known
	pending urlstate.Query
	report  compare.Report
}
