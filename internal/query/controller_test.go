package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/display"
)

func TestBeginRefusesEmptyQuery(t *testing.T) {
	c := NewController()

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, _, _, ok := c.Begin(raw)
		assert.False(t, ok, "query %q must not start a search", raw)
		assert.False(t, c.InFlight())
	}
}

func TestBeginTrimsAndOmitsDefaultCategory(t *testing.T) {
	c := NewController()

	query, category, seq, ok := c.Begin("  transformer  ")
	require.True(t, ok)
	assert.Equal(t, "transformer", query)
	assert.Empty(t, category, "the default category never goes on the wire")
	assert.NotZero(t, seq)
	assert.True(t, c.InFlight())
}

func TestBeginSendsSelectedCategory(t *testing.T) {
	c := NewController()
	c.SetCategory("NLP")

	_, category, _, ok := c.Begin("bert")
	require.True(t, ok)
	assert.Equal(t, "NLP", category)

	c.SetCategory("All")
	_, category, _, _ = c.Begin("bert")
	assert.Empty(t, category)
}

func TestApplySuccessRendersBothRegions(t *testing.T) {
	c := NewController()
	_, _, seq, _ := c.Begin("transformer")

	videos, repos, ok := c.Apply(seq, &api.SearchResult{
		Videos: []api.Video{{Title: "Attention Explained", URL: "u"}},
		Repos:  []api.Repo{{Name: "attention", URL: "u"}},
	}, nil)
	require.True(t, ok)
	assert.False(t, c.InFlight())
	assert.Equal(t, display.KindCards, videos.Kind)
	assert.Equal(t, display.KindCards, repos.Kind)
}

func TestApplyFailureShowsSameBannerInBothRegions(t *testing.T) {
	c := NewController()
	_, _, seq, _ := c.Begin("transformer")

	videos, repos, ok := c.Apply(seq, nil, errors.New("connection refused"))
	require.True(t, ok)
	assert.False(t, c.InFlight(), "loading must not survive a failed search")
	assert.Equal(t, display.KindError, videos.Kind)
	assert.Equal(t, videos, repos)
	assert.Equal(t, display.MsgGenericFailure, videos.Message)
}

func TestApplyFailureSurfacesServerMessage(t *testing.T) {
	c := NewController()
	_, _, seq, _ := c.Begin("ab")

	videos, _, ok := c.Apply(seq, nil, &api.StatusError{Path: "/api/search", Code: 400, Message: "query too short"})
	require.True(t, ok)
	assert.Equal(t, "query too short", videos.Message)
}

func TestApplyDropsSupersededSearch(t *testing.T) {
	c := NewController()
	_, _, seqOld, _ := c.Begin("transformer")
	_, _, seqNew, _ := c.Begin("resnet")

	_, _, ok := c.Apply(seqOld, &api.SearchResult{}, nil)
	assert.False(t, ok, "older search result must be discarded")
	assert.True(t, c.InFlight(), "newest search is still running")

	videos, _, ok := c.Apply(seqNew, &api.SearchResult{}, nil)
	require.True(t, ok)
	assert.Equal(t, display.KindEmpty, videos.Kind)
}

func TestApplyNilResultRendersEmptyStates(t *testing.T) {
	c := NewController()
	_, _, seq, _ := c.Begin("obscure")

	videos, repos, ok := c.Apply(seq, nil, nil)
	require.True(t, ok)
	assert.Equal(t, display.MsgNoVideos, videos.Message)
	assert.Equal(t, display.MsgNoRepos, repos.Message)
}

func TestPapersFailureRendersEmptyState(t *testing.T) {
	c := NewController()
	c.SetCategory("CV")

	b := c.Papers(nil, errors.New("boom"))
	assert.Equal(t, display.KindEmpty, b.Kind)
	assert.Equal(t, display.MsgNoPapers, b.Message)
}

func TestPapersBadgeFollowsCurrentCategory(t *testing.T) {
	c := NewController()
	c.SetCategory("NLP")

	b := c.Papers([]api.PopularPaper{{Title: "A", Category: "NLP"}, {Title: "B", Category: "CV"}}, nil)
	require.Len(t, b.Cards, 2)
	assert.Empty(t, b.Cards[0].Badge)
	assert.Equal(t, "CV", b.Cards[1].Badge)
}

func TestSetCategoryNormalizesEmpty(t *testing.T) {
	c := NewController()
	c.SetCategory("")
	assert.Equal(t, DefaultCategory, c.Filter().Category)
}

func TestSetYear(t *testing.T) {
	c := NewController()
	c.SetYear(2021)
	assert.Equal(t, 2021, c.Filter().Year)
	c.SetYear(0)
	assert.Zero(t, c.Filter().Year)
}
