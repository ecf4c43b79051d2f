package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manuaishika/researchrepo/internal/config"
)

const AppName = "researchrepo"

// ASCII art logo lines for researchrepo - canonical definition
var LogoLines = []string{
	"▄▄▄▄▄  ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄",
	"██  ██ ██    ██    ██    ██ ██ ██ ██ ██  ██",
	"██▀▀█▄ ██▀▀  ▀▀▀██ ██▀▀  ██▀▀█ ██▀▀▄ ██  ██",
	"██  ██ ██▄▄▄ ▄▄▄██ ██▄▄▄ ██ ██ ██ ██ ██▄▄██",
}

const CompactLogo = `researchrepo ›`

// Brand colors
var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")

	BackgroundColor = lipgloss.Color("#1A1A2E")
	SurfaceColor    = lipgloss.Color("#16213E")
	TextColor       = lipgloss.Color("#EAEAEA")
	MutedColor      = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#F87171")
	SuccessColor = lipgloss.Color("#4ADE80")
)

// Styled components, derived from the palette by rebuildStyles.
var (
	LogoStyle         lipgloss.Style
	TitleStyle        lipgloss.Style
	StatusBarStyle    lipgloss.Style
	HelpStyle         lipgloss.Style
	SelectedRowStyle  lipgloss.Style
	DropdownStyle     lipgloss.Style
	BadgeStyle        lipgloss.Style
	MetaStyle         lipgloss.Style
	ErrorMessageStyle lipgloss.Style
	EmptyMessageStyle lipgloss.Style
	SeparatorStyle    lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every styled component from the current color
// vars. Must run again after any palette change or the styles keep the
// colors they captured last.
func rebuildStyles() {
	LogoStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Bold(true).
		Padding(0, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(AccentColor).
		Bold(true)

	DropdownStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(SecondaryColor).
		Padding(0, 1)

	MetaStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Faint(true)

	ErrorMessageStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)

	EmptyMessageStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(MutedColor)
}

// ApplyColors overrides the brand palette with configured values and
// rebuilds the styled components from it. Empty fields keep the
// defaults.
func ApplyColors(colors config.UIColors) {
	set := func(dst *lipgloss.Color, value string) {
		if value != "" {
			*dst = lipgloss.Color(value)
		}
	}
	set(&PrimaryColor, colors.Primary)
	set(&SecondaryColor, colors.Secondary)
	set(&AccentColor, colors.Accent)
	set(&TextColor, colors.Text)
	set(&MutedColor, colors.Muted)
	set(&ErrorColor, colors.Error)
	set(&SuccessColor, colors.Success)

	rebuildStyles()
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Type to search for a research paper")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}
