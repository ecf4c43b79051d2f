package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/manuaishika/researchrepo/internal/config"
)

type KeyHandler struct {
	app         *App
	config      *config.Config
	modifierKey string
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	modifierKey := cfg.Keys.Modifier + "+"
	return &KeyHandler{app: app, config: cfg, modifierKey: modifierKey}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", kh.modifierKey + kh.config.Keys.Bindings.Quit:
		return kh.app, tea.Quit
	case kh.modifierKey + kh.config.Keys.Bindings.FocusSearch:
		kh.focusRegion(RegionSearch)
		return kh.app, nil
	case kh.modifierKey + kh.config.Keys.Bindings.Refresh:
		return kh.app, tea.Batch(
			kh.app.loadCategories(),
			kh.app.loadYears(),
			kh.app.loadPapers(),
			kh.app.rerunSearch(),
		)
	case "tab":
		kh.cycleFocus(1)
		return kh.app, nil
	case "shift+tab":
		kh.cycleFocus(-1)
		return kh.app, nil
	}

	if kh.app.focus == RegionSearch {
		return kh.handleSearchKey(msg)
	}
	return kh.handleListKey(msg)
}

// handleSearchKey owns the search box and the suggestion dropdown.
func (kh *KeyHandler) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := kh.app

	switch msg.String() {
	case kh.config.Keys.Bindings.Back:
		if app.suggest.Snapshot().Visible {
			app.suggest.Dismiss()
			return app, nil
		}
		return app, tea.Quit

	case "down":
		if app.suggest.Snapshot().Visible {
			app.suggest.MoveSelection(1)
			return app, nil
		}
		return app, nil

	case "up":
		if app.suggest.Snapshot().Visible {
			app.suggest.MoveSelection(-1)
			return app, nil
		}
		return app, nil

	case "enter":
		if title, ok := app.suggest.Commit(); ok {
			app.setSearchText(title)
			return app, app.startSearch(title)
		}
		return app, app.startSearch(app.searchInput.Value())

	default:
		var cmd tea.Cmd
		app.searchInput, cmd = app.searchInput.Update(msg)
		return app, tea.Batch(cmd, app.onSearchInputChanged())
	}
}

// handleListKey routes keys to the focused pane's list and interprets
// its selection actions.
func (kh *KeyHandler) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := kh.app
	key := msg.String()

	if key == kh.config.Keys.Bindings.Back {
		kh.focusRegion(RegionSearch)
		return app, nil
	}

	if key == "enter" || key == kh.modifierKey+kh.config.Keys.Bindings.OpenLink {
		if cmd := kh.activateSelection(key); cmd != nil {
			return app, cmd
		}
		if key == "enter" {
			return app, nil
		}
	}

	switch app.focus {
	case RegionCategories:
		var cmd tea.Cmd
		app.categoryList, cmd = app.categoryList.Update(msg)
		return app, cmd
	case RegionYears:
		var cmd tea.Cmd
		app.yearList, cmd = app.yearList.Update(msg)
		return app, cmd
	case RegionPapers:
		var cmd tea.Cmd
		app.paperList, cmd = app.paperList.Update(msg)
		return app, cmd
	case RegionVideos:
		var cmd tea.Cmd
		app.videoList, cmd = app.videoList.Update(msg)
		return app, cmd
	case RegionRepos:
		var cmd tea.Cmd
		app.repoList, cmd = app.repoList.Update(msg)
		return app, cmd
	}
	return app, nil
}

// activateSelection performs the focused pane's enter action.
func (kh *KeyHandler) activateSelection(key string) tea.Cmd {
	app := kh.app

	switch app.focus {
	case RegionCategories:
		item, ok := app.categoryList.SelectedItem().(categoryItem)
		if !ok {
			return nil
		}
		app.search.SetCategory(string(item))
		return tea.Batch(app.loadPapers(), app.rerunSearch())

	case RegionYears:
		item, ok := app.yearList.SelectedItem().(yearItem)
		if !ok {
			return nil
		}
		app.search.SetYear(item.year)
		return app.loadPapers()

	case RegionPapers:
		item, ok := app.paperList.SelectedItem().(cardItem)
		if !ok {
			return nil
		}
		app.setSearchText(item.card.Title)
		kh.focusRegion(RegionSearch)
		return app.startSearch(item.card.Title)

	case RegionVideos:
		return kh.openSelected(app.videoList)

	case RegionRepos:
		return kh.openSelected(app.repoList)
	}
	return nil
}

func (kh *KeyHandler) openSelected(l list.Model) tea.Cmd {
	item, ok := l.SelectedItem().(cardItem)
	if !ok || item.card.URL == "" {
		return nil
	}
	return kh.app.openLink(item.card.URL)
}

func (kh *KeyHandler) cycleFocus(delta int) {
	current := 0
	for i, r := range focusOrder {
		if r == kh.app.focus {
			current = i
			break
		}
	}
	next := (current + delta + len(focusOrder)) % len(focusOrder)
	kh.focusRegion(focusOrder[next])
}

func (kh *KeyHandler) focusRegion(r Region) {
	if kh.app.focus == RegionSearch && r != RegionSearch {
		kh.app.suggest.Dismiss()
		kh.app.searchInput.Blur()
	}
	if r == RegionSearch {
		kh.app.searchInput.Focus()
	}
	kh.app.focus = r
}

func (kh *KeyHandler) GetHelpForCurrentRegion() []string {
	mod := kh.config.Keys.Modifier
	quit := mod + "+" + kh.config.Keys.Bindings.Quit + ": quit"
	focus := mod + "+" + kh.config.Keys.Bindings.FocusSearch + ": search"

	switch kh.app.focus {
	case RegionSearch:
		if kh.app.suggest.Snapshot().Visible {
			return []string{"↑↓: suggestions", "enter: search", "esc: dismiss", "tab: panes", quit}
		}
		return []string{"type to search", "enter: search", "tab: panes", quit}
	case RegionCategories:
		return []string{"↑↓: navigate", "enter: filter category", "esc: back", focus, quit}
	case RegionYears:
		return []string{"↑↓: navigate", "enter: filter year", "esc: back", focus, quit}
	case RegionPapers:
		return []string{"↑↓: navigate", "enter: search this paper", "esc: back", focus, quit}
	case RegionVideos, RegionRepos:
		open := mod + "+" + kh.config.Keys.Bindings.OpenLink + ": open link"
		return []string{"↑↓: navigate", "enter: open link", open, "esc: back", focus, quit}
	}
	return []string{quit}
}
