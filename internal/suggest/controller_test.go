package suggest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuaishika/researchrepo/internal/api"
)

func newTestController() *Controller {
	return NewController(2, 300*time.Millisecond)
}

func suggestionsFor(titles ...string) []api.Suggestion {
	out := make([]api.Suggestion, len(titles))
	for i, title := range titles {
		out[i] = api.Suggestion{Title: title}
	}
	return out
}

func TestShortQueryClearsAndArmsNothing(t *testing.T) {
	c := newTestController()

	seq, arm := c.Input("a")
	assert.False(t, arm)
	assert.Zero(t, seq)
	assert.Equal(t, PhaseIdle, c.Phase())

	// Whitespace does not count toward the minimum.
	_, arm = c.Input("  a  ")
	assert.False(t, arm)
}

func TestDebounceOnlyLatestTimerFires(t *testing.T) {
	c := newTestController()

	seq1, arm := c.Input("a b")
	require.True(t, arm)
	seq2, arm := c.Input("ab")
	require.True(t, arm)
	seq3, arm := c.Input("abc")
	require.True(t, arm)

	// Earlier timers fire into a bumped sequence and are ignored.
	_, ok := c.TimerFired(seq1)
	assert.False(t, ok)
	_, ok = c.TimerFired(seq2)
	assert.False(t, ok)

	query, ok := c.TimerFired(seq3)
	require.True(t, ok)
	assert.Equal(t, "abc", query)
	assert.Equal(t, PhaseFetching, c.Phase())
}

func TestQueryCapturedAtArmTime(t *testing.T) {
	c := newTestController()

	seq, arm := c.Input("  transformer  ")
	require.True(t, arm)

	query, ok := c.TimerFired(seq)
	require.True(t, ok)
	assert.Equal(t, "transformer", query)
}

func TestApplyShowsSuggestions(t *testing.T) {
	c := newTestController()

	seq, _ := c.Input("tra")
	_, ok := c.TimerFired(seq)
	require.True(t, ok)

	changed := c.Apply(seq, suggestionsFor("Transformer", "TransGAN"), nil)
	require.True(t, changed)

	s := c.Snapshot()
	assert.True(t, s.Visible)
	assert.Len(t, s.Suggestions, 2)
	assert.Equal(t, NoSelection, s.SelectedIndex)
}

func TestApplyEmptyOrFailureDismissesSilently(t *testing.T) {
	for name, result := range map[string]struct {
		suggestions []api.Suggestion
		err         error
	}{
		"empty":   {nil, nil},
		"failure": {nil, errors.New("boom")},
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestController()
			seq, _ := c.Input("tra")
			c.TimerFired(seq)

			changed := c.Apply(seq, result.suggestions, result.err)
			assert.True(t, changed)
			assert.Equal(t, PhaseIdle, c.Phase())
			assert.False(t, c.Snapshot().Visible)
		})
	}
}

func TestStaleResponseSuppression(t *testing.T) {
	c := newTestController()

	// "abc" fetch goes out.
	seqOld, _ := c.Input("abc")
	_, ok := c.TimerFired(seqOld)
	require.True(t, ok)

	// Before it resolves, "abcd" arms, fires, and completes.
	seqNew, _ := c.Input("abcd")
	_, ok = c.TimerFired(seqNew)
	require.True(t, ok)
	require.True(t, c.Apply(seqNew, suggestionsFor("abcd result"), nil))

	// The late "abc" response must not overwrite the newer state.
	changed := c.Apply(seqOld, suggestionsFor("abc stale"), nil)
	assert.False(t, changed)
	s := c.Snapshot()
	require.Len(t, s.Suggestions, 1)
	assert.Equal(t, "abcd result", s.Suggestions[0].Title)
}

func TestStaleResponseAfterNewerArmed(t *testing.T) {
	c := newTestController()

	seqOld, _ := c.Input("abc")
	c.TimerFired(seqOld)

	// Newer request armed but not yet completed: the old response is
	// still stale.
	_, arm := c.Input("abcd")
	require.True(t, arm)

	changed := c.Apply(seqOld, suggestionsFor("abc stale"), nil)
	assert.False(t, changed)
	assert.Equal(t, PhasePending, c.Phase())
}

func TestKeyboardNavigationClamps(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")
	c.TimerFired(seq)
	c.Apply(seq, suggestionsFor("one", "two", "three"), nil)

	want := []int{0, 1, 2, 2}
	for i, expected := range want {
		c.MoveSelection(1)
		assert.Equal(t, expected, c.Snapshot().SelectedIndex, "press %d", i+1)
	}

	down := []int{1, 0, -1, -1}
	for i, expected := range down {
		c.MoveSelection(-1)
		assert.Equal(t, expected, c.Snapshot().SelectedIndex, "press %d", i+1)
	}
}

func TestHoverSelectsRowOnly(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")
	c.TimerFired(seq)
	c.Apply(seq, suggestionsFor("one", "two"), nil)

	c.Hover(1)
	s := c.Snapshot()
	assert.Equal(t, 1, s.SelectedIndex)
	assert.True(t, s.Visible)
	assert.Len(t, s.Suggestions, 2)

	// Out-of-range hovers are ignored.
	c.Hover(5)
	assert.Equal(t, 1, c.Snapshot().SelectedIndex)
}

func TestCommitRequiresSelection(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")
	c.TimerFired(seq)
	c.Apply(seq, suggestionsFor("Transformer"), nil)

	_, ok := c.Commit()
	assert.False(t, ok, "commit with no selection must fail")

	c.MoveSelection(1)
	title, ok := c.Commit()
	require.True(t, ok)
	assert.Equal(t, "Transformer", title)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.False(t, c.Snapshot().Visible)
}

func TestCommitIndexActsLikeRowClick(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")
	c.TimerFired(seq)
	c.Apply(seq, suggestionsFor("one", "two"), nil)

	title, ok := c.CommitIndex(1)
	require.True(t, ok)
	assert.Equal(t, "two", title)
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestDismissInvalidatesInFlight(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")
	c.TimerFired(seq)

	c.Dismiss()
	assert.Equal(t, PhaseIdle, c.Phase())

	// The in-flight response lands after dismissal and is discarded.
	changed := c.Apply(seq, suggestionsFor("late"), nil)
	assert.False(t, changed)
	assert.False(t, c.Snapshot().Visible)
}

func TestShortInputCancelsPendingTimer(t *testing.T) {
	c := newTestController()
	seq, _ := c.Input("tra")

	// User deletes down to one char before the timer fires.
	_, arm := c.Input("t")
	assert.False(t, arm)

	_, ok := c.TimerFired(seq)
	assert.False(t, ok, "cancelled timer must not fetch")
}
