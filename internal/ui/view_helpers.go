package ui

// view_helpers.go provides common View() rendering helpers.
// Use these to build consistent two-box layouts across all TUI models.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// RenderTableWithSelection renders a bubbles table with full-width selection
// highlight. The table's Selected style stays neutral (see ApplyTableStyles)
// and this function paints the visible cursor row instead, handling the
// table's internal viewport scrolling.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	tableOutput := t.View()
	lines := strings.Split(tableOutput, "\n")
	var result []string

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	// Scroll offset matching the bubbles table viewport: no scrolling until
	// the cursor moves past the visible area, then clamp so the last row
	// stays at the bottom.
	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		maxStart := totalRows - height
		if start > maxStart {
			start = maxStart
		}
	}

	visibleCursorIndex := cursor - start

	for i, line := range lines {
		// Header row, then a manual divider
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			result = append(result, strings.Repeat("─", layout.InnerWidth))
			continue
		}

		dataRowIndex := i - 1
		if dataRowIndex == visibleCursorIndex {
			cleanLine := stripEscapeCodes(line)
			if StringWidth(cleanLine) < layout.InnerWidth {
				cleanLine = cleanLine + strings.Repeat(" ", layout.InnerWidth-StringWidth(cleanLine))
			} else if StringWidth(cleanLine) > layout.InnerWidth {
				cleanLine = truncateToWidth(cleanLine, layout.InnerWidth)
			}
			result = append(result, SelectedStyle.Render(cleanLine))
			continue
		}

		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// ViewHeader renders title + full-width divider + spacing.
func ViewHeader(title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// ViewHeaderWithSubtitle renders title + subtitle + divider + spacing.
func ViewHeaderWithSubtitle(title, subtitle string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(RenderDim(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// CenterText centers text within the given width.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// CenterTextPadded centers text and pads to full width.
func CenterTextPadded(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	leftPad := (width - textW) / 2
	rightPad := width - textW - leftPad
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
}

// FullWidthDivider returns a horizontal divider spanning the inner width.
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}

// TwoBoxView constructs the standard two-box layout (content + help footer).
func TwoBoxView(content, helpText string, layout Layout) string {
	return BuildTwoBoxView(content, helpText, layout)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	errorStyle := lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	fmt.Println(errorStyle.Render("Error: " + message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(WarnStyle.Render(message))
}
