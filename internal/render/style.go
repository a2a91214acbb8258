package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style decorates inline error annotations. The zero value passes text
// through untouched.
type Style struct {
	colorize bool
	errStyle lipgloss.Style
}

// NewStyle returns a Style that wraps error annotations in bold red
// when colorize is set. The ANSI profile is forced so the escapes do
// not depend on the environment the process happens to run in.
func NewStyle(colorize bool) Style {
	s := Style{colorize: colorize}
	if colorize {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI)
		s.errStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	}
	return s
}

func (s Style) Error(text string) string {
	if !s.colorize {
		return text
	}
	return s.errStyle.Render(text)
}
