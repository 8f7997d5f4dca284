package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// RenderFunc turns markdown into the text written to the user.
type RenderFunc func(markdown string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() RenderFunc {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return Plain
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Plain returns markdown unchanged.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// RendererFor picks glamour when w is a terminal and Plain otherwise,
// so piped output stays greppable.
func RendererFor(w io.Writer) RenderFunc {
	if IsTerminal(w) {
		return NewRenderer()
	}
	return Plain
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
