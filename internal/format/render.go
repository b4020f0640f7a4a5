package format

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column at which rendered markdown wraps.
const DefaultWordWrap = 80

// Renderer styles payload markdown for a terminal.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer picks a style from the terminal background.
func NewRenderer(width int) (*Renderer, error) {
	return newRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap(width)))
}

// NewRendererWithStyle uses a named glamour style such as "dark", "light" or "notty".
func NewRendererWithStyle(style string, width int) (*Renderer, error) {
	return newRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(wrap(width)))
}

func newRenderer(opts ...glamour.TermRendererOption) (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

func wrap(width int) int {
	if width <= 0 {
		return DefaultWordWrap
	}
	return width
}

// Render returns the styled markdown of p.
func (r *Renderer) Render(p Payload) (string, error) {
	out, err := r.tr.Render(p.Markdown())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", p.Kind, err)
	}
	return out, nil
}
