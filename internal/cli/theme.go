package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"attribute-analyzer/internal/match"
	"attribute-analyzer/internal/report"
)

// theme styles console output. Styling is applied only when the writer is a terminal.
type theme struct {
	enabled bool
	success lipgloss.Style
	hint    lipgloss.Style
	failure lipgloss.Style
	heading lipgloss.Style
}

func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)

	return theme{
		enabled: isTerminal(w),
		success: r.NewStyle().Foreground(lipgloss.Color("#00D787")).Bold(true),   // green
		hint:    r.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true), // dim gray
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF005F")).Bold(true),   // red
		heading: r.NewStyle().Foreground(lipgloss.Color("#5FAFD7")).Bold(true),   // light blue
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (t theme) render(style lipgloss.Style, text string) string {
	if !t.enabled {
		return text
	}

	return style.Render(text)
}

func (t theme) successStyle(text string) string { return t.render(t.success, text) }
func (t theme) hintStyle(text string) string    { return t.render(t.hint, text) }
func (t theme) errorStyle(text string) string   { return t.render(t.failure, text) }
func (t theme) headingStyle(text string) string { return t.render(t.heading, text) }

// describe adds a hint to the errors a user can fix from the command line.
func describe(err error) string {
	var (
		thrErr   *match.InvalidThresholdError
		inputErr *match.InvalidInputError
		writeErr *report.WriteError
	)

	switch {
	case errors.As(err, &thrErr):
		return err.Error() + " (set --threshold or threshold in the config file)"
	case errors.As(err, &inputErr):
		return err.Error() + " (check --column, --sheet and --no-header)"
	case errors.As(err, &writeErr):
		return err.Error() + " (check --out)"
	default:
		return err.Error()
	}
}
