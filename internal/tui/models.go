package tui

// Region is the pane that currently owns keyboard input.
type Region int

const (
	RegionSearch Region = iota
	RegionCategories
	RegionYears
	RegionPapers
	RegionVideos
	RegionRepos
)

// focusOrder is the tab cycle through the panes.
var focusOrder = []Region{
	RegionSearch,
	RegionCategories,
	RegionYears,
	RegionPapers,
	RegionVideos,
	RegionRepos,
}
