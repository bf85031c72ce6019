package ui

// selectors.go provides a generic single-column selector model, used for the
// search-method menu and the smaller pick-one prompts.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectorConfig defines configuration for a generic selector.
type SelectorConfig struct {
	Title    string   // Main title displayed at top
	Subtitle string   // Optional subtitle (e.g., "9 search methods")
	HelpText string   // Help text for footer
	Items    []string // Display labels for each option
}

// SelectorModel is a generic single-column table selector.
type SelectorModel struct {
	table    table.Model
	config   SelectorConfig
	layout   Layout
	selected int // Index of selected item, -1 if cancelled
	quitting bool
}

// NewSelectorModel creates a generic selector with the given configuration.
func NewSelectorModel(cfg SelectorConfig) SelectorModel {
	layout := DefaultLayout()

	rows := make([]table.Row, len(cfg.Items))
	for i, item := range cfg.Items {
		rows[i] = table.Row{item}
	}

	columns := []table.Column{
		{Title: cfg.Title, Width: layout.TableWidth},
	}

	t := InitTable(columns, rows, layout)

	if cfg.HelpText == "" {
		cfg.HelpText = "↑/↓: navigate | Enter: select | Esc: cancel"
	}

	return SelectorModel{
		table:    t,
		config:   cfg,
		layout:   layout,
		selected: -1,
	}
}

func (m SelectorModel) Init() tea.Cmd {
	return StandardInit()
}

func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.table.SetColumns([]table.Column{
			{Title: m.config.Title, Width: m.layout.TableWidth},
		})
		m.table.SetHeight(m.layout.TableHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.selected = -1
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.selected = m.table.Cursor()
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	if m.config.Subtitle != "" {
		content.WriteString(ViewHeaderWithSubtitle(m.config.Title, m.config.Subtitle, m.layout.InnerWidth))
	} else {
		content.WriteString(ViewHeader(m.config.Title, m.layout.InnerWidth))
	}

	content.WriteString(RenderTableWithSelection(m.table, m.layout))

	return TwoBoxView(content.String(), m.config.HelpText, m.layout)
}

// Selected returns the index of the selected item, or -1 if cancelled.
func (m SelectorModel) Selected() int {
	return m.selected
}

// RunSelector runs a selector TUI and returns the selected index.
// Returns -1 if the user cancelled.
func RunSelector(cfg SelectorConfig) (int, error) {
	model := NewSelectorModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("selector error: %w", err)
	}
	return finalModel.(SelectorModel).Selected(), nil
}
