package ui

// history.go shows the session log: past searches and saved downloads,
// switchable with tab.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ParthebhanMedi/search-pubchem/internal/models"
)

const historyLimit = 50

// HistoryModel is the search/download history table TUI model.
type HistoryModel struct {
	searches  []models.SearchRecord
	downloads []models.DownloadRecord
	table     table.Model
	layout    Layout
	showing   int // 0 = searches, 1 = downloads
	quitting  bool
}

// NewHistoryModel creates a history viewer over already-loaded records.
func NewHistoryModel(searches []models.SearchRecord, downloads []models.DownloadRecord) HistoryModel {
	layout := DefaultLayout()
	m := HistoryModel{
		searches:  searches,
		downloads: downloads,
		layout:    layout,
	}
	m.table = InitTable(m.columns(), m.rows(), layout)
	return m
}

func (m HistoryModel) columns() []table.Column {
	w := m.layout.TableWidth
	if m.showing == 0 {
		modeW := 22
		countW := 8
		timeW := 20
		queryW := w - modeW - countW - timeW
		if queryW < 12 {
			queryW = 12
		}
		return []table.Column{
			{Title: "Mode", Width: modeW},
			{Title: "Query", Width: queryW},
			{Title: "Results", Width: countW},
			{Title: "When", Width: timeW},
		}
	}
	cidW := 12
	formatW := 22
	timeW := 20
	fileW := w - cidW - formatW - timeW
	if fileW < 12 {
		fileW = 12
	}
	return []table.Column{
		{Title: "CID", Width: cidW},
		{Title: "Format", Width: formatW},
		{Title: "File", Width: fileW},
		{Title: "When", Width: timeW},
	}
}

func (m HistoryModel) rows() []table.Row {
	if m.showing == 0 {
		rows := make([]table.Row, len(m.searches))
		for i, r := range m.searches {
			rows[i] = table.Row{
				r.Mode,
				r.Query,
				fmt.Sprintf("%d", r.ResultCount),
				r.ExecutedAt.Format("2006-01-02 15:04:05"),
			}
		}
		return rows
	}
	rows := make([]table.Row, len(m.downloads))
	for i, r := range m.downloads {
		rows[i] = table.Row{
			r.CID,
			r.Format,
			r.Filename,
			r.SavedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return rows
}

func (m HistoryModel) Init() tea.Cmd {
	return StandardInit()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.table.SetColumns(m.columns())
		m.table.SetHeight(m.layout.TableHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.showing = 1 - m.showing
			m.table.SetColumns(m.columns())
			m.table.SetRows(m.rows())
			m.table.SetCursor(0)
			return m, nil
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Search History"
	empty := len(m.searches) == 0
	if m.showing == 1 {
		title = "Download History"
		empty = len(m.downloads) == 0
	}

	var content strings.Builder
	content.WriteString(ViewHeaderWithSubtitle(title, fmt.Sprintf("last %d entries", historyLimit), m.layout.InnerWidth))
	if empty {
		content.WriteString("\n")
		content.WriteString(CenterText(RenderDim("Nothing recorded yet."), m.layout.InnerWidth))
		content.WriteString("\n")
	} else {
		content.WriteString(RenderTableWithSelection(m.table, m.layout))
	}

	return TwoBoxView(content.String(), "Tab: searches/downloads | Esc: back", m.layout)
}

// RunHistory shows the history tables until the user closes them.
func RunHistory(searches []models.SearchRecord, downloads []models.DownloadRecord) error {
	model := NewHistoryModel(searches, downloads)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("history view error: %w", err)
	}
	return nil
}
