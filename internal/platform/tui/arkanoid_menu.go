package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ArkanoidMode represents the selected game mode.
type ArkanoidMode int

const (
	ArkanoidModeCampaign ArkanoidMode = iota
	ArkanoidModeEndless
)

// ArkanoidSelection holds the user's selection from the Arkanoid menu.
type ArkanoidSelection struct {
	Mode  ArkanoidMode
	Level int // 0 = start from the beginning, otherwise a one-based level
}

// GameID returns the registry ID for the selected mode.
func (s ArkanoidSelection) GameID() string {
	if s.Mode == ArkanoidModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// choiceList is a wrapping cursor over n entries that shows at most
// window of them at a time.
type choiceList struct {
	n      int
	cursor int
	top    int
	window int
}

func (c *choiceList) move(step int) {
	if c.n == 0 {
		return
	}
	c.cursor = (c.cursor + step + c.n) % c.n
	switch {
	case c.window <= 0:
	case c.cursor < c.top:
		c.top = c.cursor
	case c.cursor >= c.top+c.window:
		c.top = c.cursor - c.window + 1
	}
}

// visible returns the half-open range of entries to draw.
func (c choiceList) visible() (int, int) {
	if c.window <= 0 || c.window >= c.n {
		return 0, c.n
	}
	return c.top, c.top + c.window
}

const (
	modeCampaign = iota
	modeEndless
	modePickLevel
	modeCount
)

// ArkanoidModeModel picks campaign, endless or a starting level.
type ArkanoidModeModel struct {
	levelNames []string
	modes      choiceList
	levels     choiceList
	picking    bool // Level list is open
	width      int
	height     int
	keyMapper  *KeyMapper

	selection *ArkanoidSelection
	quitting  bool
	back      bool
}

// NewArkanoidModeModel creates a new mode selection model for the given levels.
func NewArkanoidModeModel(levelNames []string, width, height int) ArkanoidModeModel {
	m := ArkanoidModeModel{
		levelNames: levelNames,
		modes:      choiceList{n: modeCount},
		levels:     choiceList{n: len(levelNames)},
		keyMapper:  NewKeyMapper(),
	}
	m.resize(width, height)
	return m
}

func (m *ArkanoidModeModel) resize(w, h int) {
	m.width, m.height = w, h
	m.levels.window = max(h-6, 3) // Title, spacing and hint
}

// Init initializes the model.
func (m ArkanoidModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ArkanoidModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	}
	return m, nil
}

func (m ArkanoidModeModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	list := &m.modes
	if m.picking {
		list = &m.levels
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		list.move(-1)
	case MenuActionDown:
		list.move(1)
	case MenuActionBack:
		if m.picking {
			m.picking = false
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	case MenuActionSelect:
		return m.choose()
	}
	return m, nil
}

func (m ArkanoidModeModel) choose() (tea.Model, tea.Cmd) {
	if m.picking {
		m.selection = &ArkanoidSelection{Mode: ArkanoidModeCampaign, Level: m.levels.cursor + 1}
		return m, tea.Quit
	}
	switch m.modes.cursor {
	case modeCampaign:
		m.selection = &ArkanoidSelection{Mode: ArkanoidModeCampaign}
	case modeEndless:
		m.selection = &ArkanoidSelection{Mode: ArkanoidModeEndless}
	case modePickLevel:
		if len(m.levelNames) > 0 {
			m.picking = true
			m.levels.cursor, m.levels.top = 0, 0
		}
		return m, nil
	}
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m ArkanoidModeModel) View() string {
	if m.quitting {
		return ""
	}

	var entries []string
	title := "A R K A N O I D"
	list := m.modes
	if m.picking {
		title = "SELECT LEVEL"
		list = m.levels
		for i, name := range m.levelNames {
			entries = append(entries, fmt.Sprintf("%2d. %s", i+1, name))
		}
	} else {
		entries = []string{
			fmt.Sprintf("Campaign (%d levels)", len(m.levelNames)),
			"Endless",
			"Start at level...",
		}
	}

	lines := []string{"", menuTitleStyle.Render(title), ""}
	from, to := list.visible()
	for i := from; i < to; i++ {
		if i == list.cursor {
			lines = append(lines, menuPickStyle.Render("▶ "+entries[i]))
		} else {
			lines = append(lines, "  "+entries[i])
		}
	}
	lines = append(lines, "", menuHintStyle.Render("↑/↓ choose · enter confirm · esc back · q quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ArkanoidModeModel) Selected() *ArkanoidSelection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ArkanoidModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ArkanoidModeModel) WantsBack() bool {
	return m.back
}

// RunArkanoidModeSelector runs the mode selection and returns the selection,
// or nil if the user backed out.
func RunArkanoidModeSelector(levelNames []string, cfg core.RuntimeConfig) (*ArkanoidSelection, core.RuntimeConfig, error) {
	final, err := tea.NewProgram(NewArkanoidModeModel(levelNames, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, cfg, err
	}
	m, ok := final.(ArkanoidModeModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	if m.quitting || m.back {
		return nil, cfg, nil
	}
	return m.selection, cfg, nil
}
