package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/manuaishika/researchrepo/internal/config"
)

func currentPalette() config.UIColors {
	return config.UIColors{
		Primary:   string(PrimaryColor),
		Secondary: string(SecondaryColor),
		Accent:    string(AccentColor),
		Text:      string(TextColor),
		Muted:     string(MutedColor),
		Error:     string(ErrorColor),
		Success:   string(SuccessColor),
	}
}

func TestApplyColorsRebuildsStyles(t *testing.T) {
	defer ApplyColors(currentPalette())

	ApplyColors(config.UIColors{Error: "#123456", Primary: "#654321"})

	assert.Equal(t, lipgloss.Color("#123456"), ErrorColor)
	assert.Equal(t, lipgloss.Color("#123456"), ErrorMessageStyle.GetForeground(),
		"styles must be rebuilt from the overridden palette")
	assert.Equal(t, lipgloss.Color("#654321"), LogoStyle.GetForeground())
}

func TestApplyColorsKeepsDefaultsForEmptyFields(t *testing.T) {
	defer ApplyColors(currentPalette())
	before := MutedColor

	ApplyColors(config.UIColors{Error: "#123456"})

	assert.Equal(t, before, MutedColor)
	assert.Equal(t, before, MetaStyle.GetForeground())
}

func TestCompactBannerCarriesLogoAndMessage(t *testing.T) {
	banner := GetCompactBanner("hello")
	assert.Contains(t, banner, "hello")
	assert.NotEmpty(t, LogoLines)
}
