package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) requestContext() (context.Context, context.CancelFunc) {
	timeout := a.config.API.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (a *App) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		categories, err := a.backend.Categories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func (a *App) loadYears() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		years, err := a.backend.Years(ctx)
		return yearsMsg{years: years, err: err}
	}
}

// loadPapers fetches the popular-papers panel under the current
// category and year filter.
func (a *App) loadPapers() tea.Cmd {
	filter := a.search.Filter()
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		papers, err := a.backend.PopularPapers(ctx, filter.Category, filter.Year)
		return papersMsg{papers: papers, err: err}
	}
}

func (a *App) performSearch(query, category string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		result, err := a.backend.Search(ctx, query, category)
		return searchDoneMsg{seq: seq, result: result, err: err}
	}
}

// armDebounce schedules the debounce timer for a qualifying input. The
// timer carries its sequence so a stale fire is recognized and ignored.
func (a *App) armDebounce(seq uint64) tea.Cmd {
	return tea.Tick(a.suggest.Delay(), func(time.Time) tea.Msg {
		return suggestTickMsg{seq: seq}
	})
}

func (a *App) fetchSuggestions(seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		suggestions, err := a.backend.Suggestions(ctx, query)
		return suggestionsMsg{seq: seq, suggestions: suggestions, err: err}
	}
}

func (a *App) openLink(url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{err: a.launcher.Open(url)}
	}
}
