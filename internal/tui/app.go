package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/config"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/display"
	"github.com/manuaishika/researchrepo/internal/query"
	"github.com/manuaishika/researchrepo/internal/suggest"
)

// Layout rows above the suggestion dropdown: logo line plus the
// bordered search input. Mouse hit-testing of dropdown rows depends on
// this staying in sync with View.
const dropdownTop = 4

type App struct {
	config     *config.Config
	backend    Backend
	launcher   LinkOpener
	keyHandler *KeyHandler

	suggest *suggest.Controller
	search  *query.Controller

	searchInput  textinput.Model
	categoryList list.Model
	yearList     list.Model
	paperList    list.Model
	videoList    list.Model
	repoList     list.Model
	spin         spinner.Model

	focus Region

	videoBlock display.Block
	repoBlock  display.Block
	paperBlock display.Block

	lastQuery string // last executed search, for category re-runs
	lastInput string // previous search box text, to detect edits

	width  int
	height int
	err    error
}

func NewApp(backend Backend, opener LinkOpener, cfg *config.Config) *App {
	ApplyColors(cfg.UI.Colors)

	si := textinput.New()
	si.Placeholder = "Search research papers..."
	si.Focus()

	newList := func(title string, filtering bool) list.Model {
		l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
		l.Title = title
		l.Styles.Title = TitleStyle
		l.SetShowStatusBar(false)
		l.SetShowHelp(false)
		l.SetFilteringEnabled(filtering)
		return l
	}

	compact := list.NewDefaultDelegate()
	compact.ShowDescription = false
	compactList := func(title string) list.Model {
		l := list.New([]list.Item{}, compact, 0, 0)
		l.Title = title
		l.Styles.Title = TitleStyle
		l.SetShowStatusBar(false)
		l.SetShowHelp(false)
		l.SetFilteringEnabled(false)
		return l
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	app := &App{
		config:       cfg,
		backend:      backend,
		launcher:     opener,
		suggest:      suggest.NewController(cfg.Search.MinQueryChars, cfg.Search.Debounce()),
		search:       query.NewController(),
		searchInput:  si,
		categoryList: compactList("› categories"),
		yearList:     compactList("› years"),
		paperList:    newList("› popular papers", false),
		videoList:    newList("› video explanations", false),
		repoList:     newList("› code implementations", false),
		spin:         sp,
		focus:        RegionSearch,
		paperBlock:   display.Loading(),
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCategories(),
		a.loadYears(),
		a.loadPapers(),
		textinput.Blink,
		a.spin.Tick,
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case tea.MouseMsg:
		if cmd := a.handleMouse(msg); cmd != nil {
			return a, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		cmds = append(cmds, cmd)

	case categoriesMsg:
		if msg.err != nil {
			debuglog.Warnf("categories load failed: %v", msg.err)
			break
		}
		a.categoryList.SetItems(categoryItems(msg.categories))

	case yearsMsg:
		if msg.err != nil {
			debuglog.Warnf("years load failed: %v", msg.err)
			break
		}
		a.yearList.SetItems(yearItems(msg.years))

	case papersMsg:
		a.paperBlock = a.search.Papers(msg.papers, msg.err)
		a.paperList.SetItems(cardItems(a.paperBlock.Cards))

	case suggestTickMsg:
		if q, ok := a.suggest.TimerFired(msg.seq); ok {
			cmds = append(cmds, a.fetchSuggestions(msg.seq, q))
		}

	case suggestionsMsg:
		if msg.err != nil {
			debuglog.Warnf("suggestions fetch failed: %v", msg.err)
		}
		a.suggest.Apply(msg.seq, msg.suggestions, msg.err)

	case searchDoneMsg:
		videos, repos, ok := a.search.Apply(msg.seq, msg.result, msg.err)
		if ok {
			a.videoBlock = videos
			a.repoBlock = repos
			a.videoList.SetItems(cardItems(videos.Cards))
			a.repoList.SetItems(cardItems(repos.Cards))
		}

	case linkOpenedMsg:
		a.err = msg.err

	case errorMsg:
		a.err = msg.err
	}

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// startSearch kicks off a full search for raw. The dropdown dismisses
// and both result regions switch to loading until the response lands.
func (a *App) startSearch(raw string) tea.Cmd {
	q, category, seq, ok := a.search.Begin(raw)
	if !ok {
		return nil
	}

	a.suggest.Dismiss()
	a.lastQuery = q
	a.videoBlock = display.Loading()
	a.repoBlock = display.Loading()
	a.videoList.SetItems(nil)
	a.repoList.SetItems(nil)
	a.err = nil

	return tea.Batch(a.performSearch(q, category, seq), a.spin.Tick)
}

// rerunSearch repeats the last search under the current filter, used
// after a category change.
func (a *App) rerunSearch() tea.Cmd {
	if a.lastQuery == "" {
		return nil
	}
	return a.startSearch(a.lastQuery)
}

// onSearchInputChanged feeds the new text to the suggestion controller
// and arms a debounce timer when the query qualifies.
func (a *App) onSearchInputChanged() tea.Cmd {
	value := a.searchInput.Value()
	if value == a.lastInput {
		return nil
	}
	a.lastInput = value

	seq, arm := a.suggest.Input(value)
	if !arm {
		return nil
	}
	return a.armDebounce(seq)
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := a.suggest.Snapshot()
	if !s.Visible {
		return nil
	}

	// Dropdown rows start one line below its top border.
	row := msg.Y - dropdownTop - 1
	inRows := row >= 0 && row < len(s.Suggestions)

	switch {
	case msg.Action == tea.MouseActionMotion && inRows:
		a.suggest.Hover(row)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inRows {
			// Click outside the dropdown dismisses it.
			a.suggest.Dismiss()
			return nil
		}
		if title, ok := a.suggest.CommitIndex(row); ok {
			a.setSearchText(title)
			return a.startSearch(title)
		}
	}
	return nil
}

func (a *App) setSearchText(value string) {
	a.searchInput.SetValue(value)
	a.searchInput.CursorEnd()
	a.lastInput = value
}

func (a *App) resize() {
	sidebarWidth := a.sidebarWidth()
	mainWidth := a.width - sidebarWidth - 1
	bodyHeight := a.height - dropdownTop - 2
	if bodyHeight < 6 {
		bodyHeight = 6
	}

	third := bodyHeight / 3
	a.categoryList.SetSize(sidebarWidth, third)
	a.yearList.SetSize(sidebarWidth, third)
	a.paperList.SetSize(sidebarWidth, bodyHeight-2*third)

	half := bodyHeight / 2
	a.videoList.SetSize(mainWidth, half)
	a.repoList.SetSize(mainWidth, bodyHeight-half)

	inputWidth := a.width - 8
	if inputWidth < 20 {
		inputWidth = a.width - 4
	}
	a.searchInput.Width = inputWidth
}

func (a *App) sidebarWidth() int {
	w := a.width / 4
	if w < 24 {
		w = 24
	}
	if w > 40 {
		w = 40
	}
	return w
}

func (a *App) View() string {
	header := a.viewHeader()

	sidebar := lipgloss.JoinVertical(
		lipgloss.Left,
		a.categoryList.View(),
		a.yearList.View(),
		a.viewPapers(),
	)

	main := a.viewResults()

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)

	statusBar := a.statusBar()
	separatorWidth := a.width
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	separator := SeparatorStyle.Render(repeatRune('─', separatorWidth))

	return lipgloss.JoinVertical(lipgloss.Top, header, body, separator, statusBar)
}

func (a *App) viewHeader() string {
	logo := LogoStyle.Render(CompactLogo)

	inputBorderColor := MutedColor
	if a.focus == RegionSearch {
		inputBorderColor = AccentColor
	}
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inputBorderColor).
		Padding(0, 1).
		Width(a.searchInput.Width + 4).
		Render(a.searchInput.View())

	header := lipgloss.JoinVertical(lipgloss.Left, logo, input)

	if dropdown := a.viewDropdown(); dropdown != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, dropdown)
	}
	return header
}

func (a *App) viewDropdown() string {
	s := a.suggest.Snapshot()
	if !s.Visible {
		return ""
	}

	// Suggestion text is untrusted; only the renderer's escaped cards
	// ever reach the terminal.
	block := display.Suggestions(s.Suggestions)
	rows := make([]string, len(block.Cards))
	for i, card := range block.Cards {
		rows[i] = a.renderSuggestionRow(card, i == s.SelectedIndex)
	}

	return DropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a *App) renderSuggestionRow(c display.Card, selected bool) string {
	row := c.Title
	if c.Badge != "" {
		row += "  " + c.Badge
	}
	if c.Meta != "" {
		row += "  " + c.Meta
	}
	if selected {
		return SelectedRowStyle.Render(row)
	}
	return lipgloss.NewStyle().Foreground(TextColor).Render(row)
}

func (a *App) viewPapers() string {
	w := a.sidebarWidth()
	h := a.paperList.Height()
	return renderBlock(a.paperBlock, a.paperList.View(), w, h, "")
}

func (a *App) viewResults() string {
	mainWidth := a.width - a.sidebarWidth() - 1
	halfHeight := a.videoList.Height()

	if a.lastQuery == "" && !a.search.InFlight() {
		return lipgloss.NewStyle().
			Width(mainWidth).
			Height(halfHeight*2).
			Align(lipgloss.Center, lipgloss.Center).
			Render(GetWelcomeMessage())
	}

	spinView := ""
	if a.search.InFlight() {
		spinView = a.spin.View()
	}

	videos := renderBlock(a.videoBlock, a.videoList.View(), mainWidth, halfHeight, spinView)
	repos := renderBlock(a.repoBlock, a.repoList.View(), mainWidth, a.repoList.Height(), spinView)

	return lipgloss.JoinVertical(lipgloss.Left, videos, repos)
}

func (a *App) statusBar() string {
	if a.err != nil {
		return StatusBarStyle.Width(a.width).Render(
			ErrorMessageStyle.Render("✗ " + a.err.Error()))
	}

	commands := a.keyHandler.GetHelpForCurrentRegion()
	if len(commands) == 0 {
		return ""
	}
	return StatusBarStyle.Width(a.width).Render(joinHelp(commands))
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]rune, n)
	for i := range b {
		b[i] = r
	}
	return string(b)
}

func joinHelp(commands []string) string {
	out := ""
	for i, c := range commands {
		if i > 0 {
			out += " • "
		}
		out += c
	}
	return out
}

func categoryItems(categories []string) []list.Item {
	// "All" always leads, whether or not the backend includes it.
	items := []list.Item{categoryItem(query.DefaultCategory)}
	for _, c := range categories {
		if c == query.DefaultCategory {
			continue
		}
		items = append(items, categoryItem(c))
	}
	return items
}

func yearItems(years []int) []list.Item {
	items := []list.Item{yearItem{year: 0, label: "All years"}}
	for _, y := range years {
		items = append(items, yearItem{year: y, label: strconv.Itoa(y)})
	}
	return items
}

type categoriesMsg struct {
	categories []string
	err        error
}

type yearsMsg struct {
	years []int
	err   error
}

type papersMsg struct {
	papers []api.PopularPaper
	err    error
}

type suggestTickMsg struct {
	seq uint64
}

type suggestionsMsg struct {
	seq         uint64
	suggestions []api.Suggestion
	err         error
}

type searchDoneMsg struct {
	seq    uint64
	result *api.SearchResult
	err    error
}

type linkOpenedMsg struct {
	err error
}

type errorMsg struct {
	err error
}
