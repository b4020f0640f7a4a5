package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/roach88/masft/internal/config"
	"github.com/roach88/masft/internal/format"
)

var (
	colorWarning = lipgloss.Color("#E0AF68")
	colorSuccess = lipgloss.Color("#9ECE6A")
	colorError   = lipgloss.Color("#F7768E")
	colorMuted   = lipgloss.Color("#737AA2")

	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	failStyle    = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRenderer returns a glamour renderer when the render mode asks for one,
// nil for plain markdown.
func newRenderer(mode string, w io.Writer) (*format.Renderer, error) {
	switch mode {
	case config.RenderAlways:
	case config.RenderAuto:
		if !isTerminal(w) {
			return nil, nil
		}
	default:
		return nil, nil
	}
	return format.NewRenderer(format.DefaultWordWrap)
}
