package ui

// results.go shows a CID (or SID) list returned by a search, with actions
// to view structures or download records for individual hits.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultAction is what the user chose to do from the results table.
type ResultAction int

const (
	ResultActionBack ResultAction = iota
	ResultActionViewStructure
	ResultActionViewAll
	ResultActionDownloadSDF
)

// ResultsConfig configures a results table.
type ResultsConfig struct {
	Title      string
	Subtitle   string
	IDLabel    string // column header: "CID" or "SID"
	IDs        []string
	Structures bool // offer structure/download actions (CIDs only)
}

// ResultsModel is the results table TUI model.
type ResultsModel struct {
	config   ResultsConfig
	table    table.Model
	layout   Layout
	action   ResultAction
	selected string
	quitting bool
}

// NewResultsModel creates a results table for a list of identifiers.
func NewResultsModel(cfg ResultsConfig) ResultsModel {
	layout := DefaultLayout()

	if cfg.IDLabel == "" {
		cfg.IDLabel = "CID"
	}

	rows := make([]table.Row, len(cfg.IDs))
	for i, id := range cfg.IDs {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), id}
	}

	t := InitTable(resultColumns(cfg.IDLabel, layout.TableWidth), rows, layout)

	return ResultsModel{
		config: cfg,
		table:  t,
		layout: layout,
	}
}

func resultColumns(idLabel string, totalW int) []table.Column {
	rankW := 6
	idW := totalW - rankW
	if idW < 10 {
		idW = 10
	}
	return []table.Column{
		{Title: "#", Width: rankW},
		{Title: idLabel, Width: idW},
	}
}

func (m ResultsModel) Init() tea.Cmd {
	return StandardInit()
}

func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.table.SetColumns(resultColumns(m.config.IDLabel, m.layout.TableWidth))
		m.table.SetHeight(m.layout.TableHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.action = ResultActionBack
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.config.Structures && len(m.config.IDs) > 0 {
				cursor := m.table.Cursor()
				if cursor >= 0 && cursor < len(m.config.IDs) {
					m.selected = m.config.IDs[cursor]
					m.action = ResultActionViewStructure
					m.quitting = true
					return m, tea.Quit
				}
			}

		case "a":
			if m.config.Structures && len(m.config.IDs) > 0 {
				m.action = ResultActionViewAll
				m.quitting = true
				return m, tea.Quit
			}

		case "d":
			if m.config.Structures && len(m.config.IDs) > 0 {
				cursor := m.table.Cursor()
				if cursor >= 0 && cursor < len(m.config.IDs) {
					m.selected = m.config.IDs[cursor]
					m.action = ResultActionDownloadSDF
					m.quitting = true
					return m, tea.Quit
				}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(ViewHeaderWithSubtitle(m.config.Title, m.config.Subtitle, m.layout.InnerWidth))
	content.WriteString(RenderTableWithSelection(m.table, m.layout))

	helpText := "Esc: back"
	if m.config.Structures {
		helpText = "Enter: view structure | a: view all | d: download SDF | Esc: back"
	}
	return TwoBoxView(content.String(), helpText, m.layout)
}

// Action returns what the user chose to do.
func (m ResultsModel) Action() ResultAction { return m.action }

// SelectedID returns the identifier the action applies to.
func (m ResultsModel) SelectedID() string { return m.selected }

// RunResults shows a results table and returns the chosen action and the
// selected identifier (empty for back/view-all).
func RunResults(cfg ResultsConfig) (ResultAction, string, error) {
	model := NewResultsModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ResultActionBack, "", fmt.Errorf("results view error: %w", err)
	}
	m := finalModel.(ResultsModel)
	return m.Action(), m.SelectedID(), nil
}
