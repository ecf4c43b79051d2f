// Package query owns the search lifecycle and the active
// category/year filter. Like the suggestion controller, it sequences
// requests so a superseded search can never overwrite the results of a
// newer one.
package query

import (
	"strings"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/display"
)

// DefaultCategory is the category filter's neutral value. It is never
// sent to the backend.
const DefaultCategory = "All"

// Filter is the user-selected category and year. Year 0 means unset.
// The year applies to the popular-papers listing only; the main search
// never sends it.
type Filter struct {
	Category string
	Year     int
}

// NewFilter returns the session-start filter.
func NewFilter() Filter {
	return Filter{Category: DefaultCategory}
}

// Controller drives searches and the popular-papers panel. Owned and
// mutated by a single update loop.
type Controller struct {
	filter   Filter
	seq      uint64
	inFlight bool
}

// NewController starts with the default filter.
func NewController() *Controller {
	return &Controller{filter: NewFilter()}
}

// Filter returns the current filter values.
func (c *Controller) Filter() Filter {
	return c.filter
}

// SetCategory updates the category filter. Selecting the current value
// again is allowed; the caller re-fetches either way.
func (c *Controller) SetCategory(category string) {
	if category == "" {
		category = DefaultCategory
	}
	c.filter.Category = category
}

// SetYear updates the year filter; 0 clears it.
func (c *Controller) SetYear(year int) {
	c.filter.Year = year
}

// InFlight reports whether a search is currently running.
func (c *Controller) InFlight() bool {
	return c.inFlight
}

// Begin validates and registers a new search. Empty (after trimming)
// queries are refused. The returned category is what goes on the wire:
// empty when the default category is active. Both result regions should
// show display.Loading() once Begin succeeds.
func (c *Controller) Begin(raw string) (query, category string, seq uint64, ok bool) {
	query = strings.TrimSpace(raw)
	if query == "" {
		return "", "", 0, false
	}

	c.seq++
	c.inFlight = true

	if c.filter.Category != DefaultCategory {
		category = c.filter.Category
	}
	return query, category, c.seq, true
}

// Apply interprets a completed search. Stale sequences are dropped so
// only the most recent search's outcome is ever displayed. On failure
// both regions receive the same error banner; loading never survives
// this call for the current search.
func (c *Controller) Apply(seq uint64, res *api.SearchResult, err error) (videos, repos display.Block, ok bool) {
	if seq != c.seq {
		debuglog.Debugf("discarding superseded search response (seq %d, latest %d)", seq, c.seq)
		return display.Block{}, display.Block{}, false
	}
	c.inFlight = false

	if err != nil {
		banner := display.Error(api.UserMessage(err, display.MsgGenericFailure))
		debuglog.Errorf("search failed: %v", err)
		return banner, banner, true
	}

	if res == nil {
		res = &api.SearchResult{}
	}
	return display.Videos(res.Videos), display.Repos(res.Repos), true
}

// Papers interprets a completed popular-papers load. Failures are
// ancillary: they render as the empty state, never as an error banner.
func (c *Controller) Papers(papers []api.PopularPaper, err error) display.Block {
	if err != nil {
		debuglog.Warnf("popular papers load failed: %v", err)
		return display.PopularPapers(nil, c.filter.Category)
	}
	return display.PopularPapers(papers, c.filter.Category)
}
