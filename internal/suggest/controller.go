// Package suggest owns the autocomplete state machine: debounce
// arming, per-request sequence numbers, stale-response suppression, and
// keyboard-driven selection. The controller is pure; the TUI schedules
// the debounce timers and network fetches it asks for.
package suggest

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/manuaishika/researchrepo/internal/api"
)

// Phase is the controller's position in the suggestion lifecycle.
type Phase int

const (
	// PhaseIdle: dropdown hidden, no suggestions, nothing scheduled.
	PhaseIdle Phase = iota
	// PhasePending: a debounce timer is armed but has not fired.
	PhasePending
	// PhaseFetching: a suggestion request is in flight.
	PhaseFetching
	// PhaseShown: the dropdown is visible with a nonempty suggestion set.
	PhaseShown
)

// NoSelection is the SelectedIndex value meaning no row is selected.
const NoSelection = -1

// State is a snapshot of the dropdown, consumed by the view on every
// render pass.
type State struct {
	Suggestions   []api.Suggestion
	SelectedIndex int
	Visible       bool
}

// Controller mutates its state only in response to input, keyboard,
// hover, dismissal, and fetch-completion events. A single goroutine
// (the bubbletea update loop) drives it; the sequence number, not
// locking, is what keeps late responses from clobbering newer state.
type Controller struct {
	phase       Phase
	suggestions []api.Suggestion
	selected    int
	seq         uint64
	armedQuery  string
	minChars    int
	delay       time.Duration
}

// NewController builds a controller. minChars is the minimum trimmed
// query length that qualifies for a fetch; delay is the debounce
// window.
func NewController(minChars int, delay time.Duration) *Controller {
	return &Controller{
		phase:    PhaseIdle,
		selected: NoSelection,
		minChars: minChars,
		delay:    delay,
	}
}

// Delay returns the debounce window for timer scheduling.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Snapshot returns a copy of the display-relevant state.
func (c *Controller) Snapshot() State {
	s := State{
		SelectedIndex: c.selected,
		Visible:       c.phase == PhaseShown,
	}
	if len(c.suggestions) > 0 {
		s.Suggestions = make([]api.Suggestion, len(c.suggestions))
		copy(s.Suggestions, c.suggestions)
	}
	return s
}

// Input handles a change of the search box text. Any previously armed
// timer and any in-flight request are invalidated by bumping the
// sequence number. When the trimmed query qualifies, a new timer should
// be armed for the returned sequence; otherwise the dropdown clears and
// arm is false.
func (c *Controller) Input(query string) (seq uint64, arm bool) {
	c.seq++

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < c.minChars {
		c.toIdle()
		return 0, false
	}

	c.armedQuery = trimmed
	c.phase = PhasePending
	return c.seq, true
}

// TimerFired reports whether the fired timer is still the current one.
// Only the most recent qualifying input's timer may trigger a fetch;
// earlier timers are recognized as cancelled by their stale sequence.
// On success the controller moves to fetching and returns the query
// captured at arm time.
func (c *Controller) TimerFired(seq uint64) (query string, ok bool) {
	if seq != c.seq || c.phase != PhasePending {
		return "", false
	}
	c.phase = PhaseFetching
	return c.armedQuery, true
}

// Apply installs the outcome of a suggestion request. Responses whose
// sequence is no longer current are discarded: state reflects only the
// most recent request's outcome. Failures and empty results dismiss the
// dropdown silently; the caller logs, the user never sees an error.
func (c *Controller) Apply(seq uint64, suggestions []api.Suggestion, err error) bool {
	if seq != c.seq {
		return false
	}

	if err != nil || len(suggestions) == 0 {
		c.toIdle()
		return true
	}

	c.phase = PhaseShown
	c.suggestions = suggestions
	c.selected = NoSelection
	return true
}

// MoveSelection shifts the selected row by delta, clamped to
// [NoSelection, count-1]. No wrapping.
func (c *Controller) MoveSelection(delta int) {
	if c.phase != PhaseShown {
		return
	}
	next := c.selected + delta
	if next < NoSelection {
		next = NoSelection
	}
	if max := len(c.suggestions) - 1; next > max {
		next = max
	}
	c.selected = next
}

// Hover selects the row under the pointer without changing visibility
// or the suggestion set.
func (c *Controller) Hover(index int) {
	if c.phase != PhaseShown || index < 0 || index >= len(c.suggestions) {
		return
	}
	c.selected = index
}

// Commit resolves the keyboard-selected suggestion. The dropdown
// dismisses and the caller copies the title into the search field and
// starts a full search.
func (c *Controller) Commit() (title string, ok bool) {
	if c.phase != PhaseShown || c.selected < 0 {
		return "", false
	}
	return c.CommitIndex(c.selected)
}

// CommitIndex resolves a specific row, as a mouse click does.
func (c *Controller) CommitIndex(index int) (title string, ok bool) {
	if c.phase != PhaseShown || index < 0 || index >= len(c.suggestions) {
		return "", false
	}
	title = c.suggestions[index].Title
	c.seq++
	c.toIdle()
	return title, true
}

// Dismiss hides and clears the dropdown (escape, outside click, focus
// loss). Pending timers and in-flight requests are invalidated.
func (c *Controller) Dismiss() {
	c.seq++
	c.toIdle()
}

func (c *Controller) toIdle() {
	c.phase = PhaseIdle
	c.suggestions = nil
	c.selected = NoSelection
	c.armedQuery = ""
}
