package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is the TUI model for the splash screen
type SplashModel struct {
	width  int
	height int
	done   bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width, m.height)

	squareWidth := layout.InnerWidth
	squareHeight := layout.ViewportHeight - 4
	if squareHeight < 10 {
		squareHeight = 10
	}

	title := "PubChem Search Interface"
	subtitle := "compound lookup over the PUG REST API"
	titleLine := squareHeight / 2

	var b strings.Builder
	b.WriteString("\n")
	for i := 0; i < squareHeight; i++ {
		switch i {
		case titleLine:
			b.WriteString(CenterTextPadded(AccentStyle.Render(title), squareWidth))
		case titleLine + 1:
			b.WriteString(CenterTextPadded(RenderDim(subtitle), squareWidth))
		default:
			b.WriteString(strings.Repeat(" ", squareWidth))
		}
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(layout.InnerWidth).
		Height(squareHeight).
		Render(b.String())
}

// ShowSplash displays the splash screen briefly at startup
func ShowSplash() {
	model := SplashModel{
		width:  DefaultWidth,
		height: 30,
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	p.Run()

	// Clear screen before continuing
	fmt.Print("\033[2J\033[H")
}
