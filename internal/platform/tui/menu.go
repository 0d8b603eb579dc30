package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// bannerRows are the brick rows drawn above the title.
var bannerRows = []core.Color{core.ColorRed, core.ColorOrange, core.ColorGold, core.ColorGreen, core.ColorLightBlue}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one playable mode on the title screen.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	BestLevel int
}

// MenuModel is the title screen. It picks a mode or opens the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel builds the title screen. With modes set every registered
// mode is listed; otherwise endless variants are reached through the mode
// selector and only base games appear.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, modes bool) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		if !modes && strings.HasSuffix(g.ID, "_endless") {
			continue
		}
		items = append(items, menuItem(store, g))
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

func menuItem(store *storage.Store, g registry.GameInfo) MenuItem {
	item := MenuItem{GameID: g.ID, Title: g.Title}
	if store == nil {
		return item
	}
	if stats, err := store.GetGameStats(g.ID); err == nil {
		item.HighScore = stats.HighScore
		item.BestLevel = stats.BestLevel
	}
	return item
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n == 0 {
			return m, nil
		}
		pick := m.items[m.cursor]
		m.selected = &pick
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{""}
	for _, c := range bannerRows {
		lines = append(lines, colorStyles[c].Render(strings.Repeat("▄▄▄▄ ", 7)))
	}
	lines = append(lines, "", menuTitleStyle.Render("A R K A N O I D"), "")

	for i, item := range m.items {
		line := item.Title
		if item.HighScore > 0 {
			line += menuHintStyle.Render(fmt.Sprintf("  best %d · level %d", item.HighScore, item.BestLevel))
		}
		if i == m.cursor {
			line = menuPickStyle.Render("▶ ") + menuPickStyle.Render(item.Title) + strings.TrimPrefix(line, item.Title)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.items) == 0 {
		lines = append(lines, menuHintStyle.Render("no games registered"))
	}

	lines = append(lines, "", menuHintStyle.Render("↑/↓ choose · enter play · tab scores · q quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, w))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to centre it in width columns. Styled text is
// measured by its visible width.
func centerText(text string, width int) string {
	tw := lipgloss.Width(text)
	if tw >= width {
		return text
	}
	return strings.Repeat(" ", (width-tw)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the title screen until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, false), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
