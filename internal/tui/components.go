package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/manuaishika/researchrepo/internal/display"
	"github.com/manuaishika/researchrepo/internal/format"
)

type cardItem struct {
	card display.Card
}

func (i cardItem) Title() string {
	title := i.card.Title
	if i.card.Badge != "" {
		title += " " + BadgeStyle.Render(i.card.Badge)
	}
	return title
}

func (i cardItem) Description() string {
	desc := i.card.Subtitle
	if i.card.Meta != "" {
		if desc != "" {
			desc += " • "
		}
		desc += i.card.Meta
	}
	if i.card.Description != "" {
		if desc != "" {
			desc += " — "
		}
		desc += format.TruncateEnd(i.card.Description, 80)
	}
	if i.card.URL != "" {
		if desc != "" {
			desc += " • "
		}
		// Both ends of a URL carry meaning, so truncate the middle.
		desc += format.TruncateMiddle(i.card.URL, 40)
	}
	return MetaStyle.Render(desc)
}

func (i cardItem) FilterValue() string { return i.card.Title }

type categoryItem string

func (i categoryItem) Title() string       { return string(i) }
func (i categoryItem) Description() string { return "" }
func (i categoryItem) FilterValue() string { return string(i) }

type yearItem struct {
	year  int
	label string
}

func (i yearItem) Title() string       { return i.label }
func (i yearItem) Description() string { return "" }
func (i yearItem) FilterValue() string { return i.label }

func cardItems(cards []display.Card) []list.Item {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = cardItem{card: c}
	}
	return items
}

// renderBlock shows the list for card blocks and a centered message for
// everything else (empty, loading, error).
func renderBlock(b display.Block, listView string, width, height int, spinnerView string) string {
	switch b.Kind {
	case display.KindCards:
		return listView
	case display.KindError:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(ErrorMessageStyle.Render("✗ " + b.Message))
	case display.KindLoading:
		msg := b.Message
		if spinnerView != "" {
			msg = spinnerView + " " + msg
		}
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(EmptyMessageStyle.Render(msg))
	default:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(EmptyMessageStyle.Render(b.Message))
	}
}
