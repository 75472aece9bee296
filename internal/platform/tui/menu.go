package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Menu layout constants
const (
	menuChrome   = 7 // Title, subtitle, help and margins
	menuMinRows  = 3
	idColumnW    = 12
	titleColumnW = 24
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the skin picker.
type MenuModel struct {
	skins      []registry.SkinInfo
	table      table.Model
	help       help.Model
	keys       MenuKeyMap
	width      int
	height     int
	standalone bool // Quit the program on selection
	quitting   bool
	selected   string
}

// NewMenuModel creates a skin picker listing every registered skin.
func NewMenuModel(width, height int) MenuModel {
	skins := registry.List()

	rows := make([]table.Row, 0, len(skins))
	for _, s := range skins {
		rows = append(rows, table.Row{s.ID, s.Title})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Skin", Width: idColumnW},
			{Title: "Title", Width: titleColumnW},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.Width = width

	return MenuModel{
		skins:      skins,
		table:      t,
		help:       h,
		keys:       DefaultMenuKeyMap(),
		width:      width,
		height:     height,
		standalone: true,
	}
}

func tableHeight(rows int) int {
	return max(rows-menuChrome, menuMinRows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.exit()

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)

	case key.Matches(msg, m.keys.Select):
		if len(m.skins) > 0 {
			m.selected = m.skins[m.table.Cursor()].ID
			return m, m.exit()
		}
	}

	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F L A P P Y"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Pick a skin"), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the chosen skin ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Skin string
	Quit bool
}

// RunMenu runs the skin picker and returns the selection.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == "" {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{Skin: m.Selected()}, nil
}
