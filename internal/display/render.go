package display

import (
	"fmt"
	"strconv"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/format"
)

// Videos maps a video collection to a display block, preserving input
// order. An empty or absent collection yields the videos empty state.
func Videos(videos []api.Video) Block {
	if len(videos) == 0 {
		return emptyBlock(MsgNoVideos)
	}

	cards := make([]Card, 0, len(videos))
	for _, v := range videos {
		cards = append(cards, Card{
			Title:     format.EscapeForDisplay(v.Title),
			Subtitle:  format.EscapeForDisplay(format.Fallback(v.Channel, "Unknown")),
			Meta:      videoMeta(v),
			URL:       format.EscapeForDisplay(v.URL),
			Thumbnail: format.EscapeForDisplay(v.Thumbnail),
		})
	}
	return Block{Kind: KindCards, Cards: cards}
}

func videoMeta(v api.Video) string {
	views := format.EscapeForDisplay(v.Views)
	published := format.EscapeForDisplay(v.Published)
	switch {
	case views != "" && published != "":
		return views + " • " + published
	case views != "":
		return views
	default:
		return published
	}
}

// Repos maps a repo collection to a display block. Entries missing both
// URL and name are invalid: they are logged and dropped, never rendered
// and never counted. Zero repos returned and all-repos-invalid produce
// distinct empty-state messages.
func Repos(repos []api.Repo) Block {
	if len(repos) == 0 {
		return emptyBlock(MsgNoRepos)
	}

	cards := make([]Card, 0, len(repos))
	for _, r := range repos {
		if !r.Valid() {
			debuglog.Debugf("dropping repo result with no url and no name")
			continue
		}
		cards = append(cards, Card{
			Title:       format.EscapeForDisplay(format.Fallback(r.Name, r.URL)),
			Subtitle:    format.EscapeForDisplay(format.Fallback(r.Author, "Unknown")),
			Meta:        repoMeta(r),
			Badge:       format.EscapeForDisplay(format.Fallback(r.Language, "Various")),
			Description: format.EscapeForDisplay(format.Fallback(r.Description, "No description available")),
			URL:         format.EscapeForDisplay(r.URL),
		})
	}

	if len(cards) == 0 {
		return emptyBlock(MsgNoValidRepos)
	}
	return Block{Kind: KindCards, Cards: cards}
}

func repoMeta(r api.Repo) string {
	stars := r.Stars
	if stars < 0 {
		stars = 0
	}
	forks := r.Forks
	if forks < 0 {
		forks = 0
	}
	return fmt.Sprintf("★ %s • ⑂ %s", format.FormatCount(stars), format.FormatCount(forks))
}

// PopularPapers maps the popular-papers panel. The category badge shows
// only when the paper's category differs from the currently selected
// one.
func PopularPapers(papers []api.PopularPaper, currentCategory string) Block {
	if len(papers) == 0 {
		return emptyBlock(MsgNoPapers)
	}

	cards := make([]Card, 0, len(papers))
	for _, p := range papers {
		badge := ""
		if p.Category != "" && p.Category != currentCategory {
			badge = format.EscapeForDisplay(p.Category)
		}
		cards = append(cards, Card{
			Title: format.EscapeForDisplay(p.Title),
			Meta:  yearLabel(p.Year),
			Badge: badge,
		})
	}
	return Block{Kind: KindCards, Cards: cards}
}

// Suggestions maps autocomplete rows. Selection state lives in the
// autocomplete controller and resets whenever this is re-rendered.
func Suggestions(suggestions []api.Suggestion) Block {
	cards := make([]Card, 0, len(suggestions))
	for _, s := range suggestions {
		cards = append(cards, Card{
			Title: format.EscapeForDisplay(s.Title),
			Meta:  yearLabel(s.Year),
			Badge: format.EscapeForDisplay(s.Category),
		})
	}
	return Block{Kind: KindCards, Cards: cards}
}

// Error builds a single escaped failure banner.
func Error(message string) Block {
	return Block{
		Kind:    KindError,
		Message: format.EscapeForDisplay(format.Fallback(message, MsgGenericFailure)),
	}
}

// Loading builds the in-flight indicator block, shown in both result
// regions while a search runs.
func Loading() Block {
	return Block{Kind: KindLoading, Message: MsgSearching}
}

func yearLabel(year int) string {
	if year == 0 {
		return "N/A"
	}
	return strconv.Itoa(year)
}
