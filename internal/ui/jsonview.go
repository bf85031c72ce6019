package ui

// jsonview.go displays a pretty-printed JSON document in a scrollable
// viewport, with an option to save it to disk.

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
)

// JSONViewModel shows a JSON document with scrolling.
type JSONViewModel struct {
	title    string
	viewport viewport.Model
	content  string
	save     SaveFunc
	layout   Layout
	status   string
	ready    bool
	quitting bool
}

// NewJSONViewModel creates a JSON viewer. The document must already be
// valid JSON; malformed input is reported inline instead of crashing.
func NewJSONViewModel(title string, doc json.RawMessage, save SaveFunc) JSONViewModel {
	content, err := api.PrettyJSON(doc)
	if err != nil {
		content = fmt.Sprintf("could not format document: %v", err)
	}

	return JSONViewModel{
		title:   title,
		content: content,
		save:    save,
		layout:  DefaultLayout(),
	}
}

func (m JSONViewModel) Init() tea.Cmd {
	return StandardInit()
}

func (m JSONViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		vpHeight := m.layout.ViewportHeight - 11
		if vpHeight < 5 {
			vpHeight = 5
		}
		if !m.ready {
			m.viewport = viewport.New(m.layout.InnerWidth-2, vpHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.layout.InnerWidth - 2
			m.viewport.Height = vpHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if m.save != nil {
				filename, err := m.save()
				if err != nil {
					m.status = RenderError(err.Error())
				} else {
					m.status = AccentStyle.Render(fmt.Sprintf("Saved %s", filename))
				}
			}
			return m, nil
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m JSONViewModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(ViewHeader(m.title, m.layout.InnerWidth))

	if m.ready {
		content.WriteString(m.viewport.View())
		content.WriteString("\n")
		content.WriteString(RenderDim(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)))
	}

	if m.status != "" {
		content.WriteString("\n")
		content.WriteString(m.status)
	}

	return TwoBoxView(content.String(), "↑/↓: scroll | s: save JSON | Esc: close", m.layout)
}

// RunJSONView displays a JSON document until the user closes it.
func RunJSONView(title string, doc json.RawMessage, save SaveFunc) error {
	model := NewJSONViewModel(title, doc, save)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("json view error: %w", err)
	}
	return nil
}
