package ui

// imageview.go renders a decoded structure image in the terminal using
// half-block characters: each character cell shows two image rows, the top
// one as foreground and the bottom one as background.

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// SaveFunc persists the displayed image and returns the written filename.
type SaveFunc func() (string, error)

// ImageViewModel displays one structure image with a caption.
type ImageViewModel struct {
	cid      string
	img      image.Image
	save     SaveFunc
	layout   Layout
	preview  string // cached half-block rendering
	status   string
	quitting bool
}

// NewImageViewModel creates an image viewer for a CID's structure rendering.
func NewImageViewModel(cid string, img image.Image, save SaveFunc) ImageViewModel {
	layout := DefaultLayout()
	return ImageViewModel{
		cid:     cid,
		img:     img,
		save:    save,
		layout:  layout,
		preview: renderHalfBlocks(img, layout.InnerWidth-2, (layout.ViewportHeight-10)*2),
	}
}

func (m ImageViewModel) Init() tea.Cmd {
	return StandardInit()
}

func (m ImageViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.preview = renderHalfBlocks(m.img, m.layout.InnerWidth-2, (m.layout.ViewportHeight-10)*2)
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
		case "q", "esc", "enter", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ImageViewModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(ViewHeader(fmt.Sprintf("Structure for CID %s", m.cid), m.layout.InnerWidth))

	for _, line := range strings.Split(m.preview, "\n") {
		content.WriteString(CenterText(line, m.layout.InnerWidth))
		content.WriteString("\n")
	}

	if m.status != "" {
		content.WriteString("\n")
		content.WriteString(CenterText(m.status, m.layout.InnerWidth))
		content.WriteString("\n")
	}

	return TwoBoxView(content.String(), "s: save PNG | Enter/Esc: close", m.layout)
}

// RunImageView displays a structure image until the user closes it.
func RunImageView(cid string, img image.Image, save SaveFunc) error {
	model := NewImageViewModel(cid, img, save)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("image view error: %w", err)
	}
	return nil
}

// renderHalfBlocks downsamples the image to fit maxWidth x maxHeight pixels
// (two pixel rows per terminal row) and renders it as ▀ characters with
// per-cell foreground/background colors.
func renderHalfBlocks(img image.Image, maxWidth, maxHeight int) string {
	if img == nil || maxWidth < 2 || maxHeight < 2 {
		return ""
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return ""
	}

	// Preserve aspect ratio; a terminal cell is roughly twice as tall as
	// wide, which the two-rows-per-cell encoding already accounts for.
	w := maxWidth
	h := srcH * w / srcW
	if h > maxHeight {
		h = maxHeight
		w = srcW * h / srcH
	}
	if h%2 == 1 {
		h--
	}
	if w < 1 || h < 2 {
		return ""
	}

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, bounds, xdraw.Over, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := hexColor(small.RGBAAt(x, y).R, small.RGBAAt(x, y).G, small.RGBAAt(x, y).B)
			bottom := hexColor(small.RGBAAt(x, y+1).R, small.RGBAAt(x, y+1).G, small.RGBAAt(x, y+1).B)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		if y+2 < h {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
