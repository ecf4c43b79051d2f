package tui

import (
	"context"

	"github.com/manuaishika/researchrepo/internal/api"
)

// Backend is the slice of the API client the TUI depends on. Tests
// substitute a fake; production wires *api.Client.
type Backend interface {
	Search(ctx context.Context, query, category string) (*api.SearchResult, error)
	Suggestions(ctx context.Context, query string) ([]api.Suggestion, error)
	Categories(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]int, error)
	PopularPapers(ctx context.Context, category string, year int) ([]api.PopularPaper, error)
}

// LinkOpener hands a validated URL to the system browser.
type LinkOpener interface {
	Open(url string) error
}
