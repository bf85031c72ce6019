package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for viewport dimensions
const (
	MinViewportWidth  = 80
	MaxViewportWidth  = 140
	DefaultWidth      = 100 // Used when terminal size is unknown
	DefaultHeight     = 32
	MinViewportHeight = 20
	TableHeight       = 16
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // clamped terminal height
	InnerWidth     int // width for content inside borders
	TableWidth     int // sum of column widths + separators
	TableHeight    int // visible data rows in tables
}

// NewLayout creates a Layout from the terminal size, clamping to min/max
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	height := terminalHeight
	if height < MinViewportHeight {
		height = MinViewportHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: height,
		InnerWidth:     width - 2, // minus border chars
		TableWidth:     width - 4, // minus border + padding
		TableHeight:    TableHeight,
	}
}

// DefaultLayout returns a layout using the default dimensions
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("35")  // green
	ColorHighlight = lipgloss.Color("22")  // dark green background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("51")  // cyan
	ColorAccentDim = lipgloss.Color("43")  // teal (progress)
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorError     = lipgloss.Color("196") // red
	ColorWhite     = lipgloss.Color("252") // footer border
)

// Common styles - reusable style definitions
var (
	// Border style for the main viewport box
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// Accent style for highlighted text (cyan)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Dim style for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning message style
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)
)

// NewBorderStyleWithColor returns a bordered style in the given color.
func NewBorderStyleWithColor(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// RenderTitle renders a section title.
func RenderTitle(s string) string { return TitleStyle.Render(s) }

// RenderNormal renders normal body text.
func RenderNormal(s string) string { return NormalStyle.Render(s) }

// RenderDim renders secondary text.
func RenderDim(s string) string { return DimStyle.Render(s) }

// RenderError renders an error message.
func RenderError(s string) string { return ErrorStyle.Render(s) }

// RenderWarn renders a warning message.
func RenderWarn(s string) string { return WarnStyle.Render(s) }

// ApplyTableStyles applies the standard table styling: bordered header,
// neutral selected style (full-width selection is painted by
// RenderTableWithSelection).
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorText)
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.Foreground(ColorText)
	t.SetStyles(s)
}

// NewAppSpinner returns the standard spinner for long-running actions.
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// NewAppTheme creates a huh theme matching the app's style guide:
// white text, green highlights/selection.
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}

// BuildTwoBoxView constructs the standard two-box layout: a bordered main
// content box padded to fill the viewport, and a one-row help footer.
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	// Footer box (3 lines with border) + spacing + main border overhead
	mainAvailableHeight := layout.ViewportHeight - 6
	if mainAvailableHeight < 10 {
		mainAvailableHeight = 10
	}

	contentLines := strings.Count(content, "\n")
	if contentLines < mainAvailableHeight {
		content += strings.Repeat("\n", mainAvailableHeight-contentLines)
	}

	var result strings.Builder

	mainBordered := BorderStyle.
		Width(layout.InnerWidth).
		Height(mainAvailableHeight).
		Render(content)
	result.WriteString(mainBordered)
	result.WriteString("\n")

	footerBordered := NewBorderStyleWithColor(ColorWhite).
		Width(layout.InnerWidth).
		Height(1).
		Render(CenterTextPadded(HintStyle.Render(helpText), layout.InnerWidth))
	result.WriteString(footerBordered)

	return result.String()
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripEscapeCodes removes ANSI color sequences so selection highlighting
// can repaint a full row without embedded resets killing the background.
func stripEscapeCodes(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// StringWidth returns the printable width of a string, ignoring ANSI codes.
func StringWidth(s string) int {
	return lipgloss.Width(s)
}

// truncateToWidth cuts a plain string down to the given printable width.
func truncateToWidth(s string, width int) string {
	if StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < len(runes) {
		return string(runes[:width])
	}
	return s
}
