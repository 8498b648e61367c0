package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ANSI palette indexes used for diagnostics.
const (
	colorError = lipgloss.Color("9")
	colorWarn  = lipgloss.Color("11")
	colorMuted = lipgloss.Color("8")
)

// Styles renders diagnostic prefixes for one writer. The zero value renders
// plain text.
type Styles struct {
	color bool
	err   lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
}

// ColorEnabled reports whether w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewStyles returns styles for w, colored only when ColorEnabled(w).
func NewStyles(w io.Writer) *Styles {
	if !ColorEnabled(w) {
		return &Styles{}
	}
	r := lipgloss.NewRenderer(w)
	return &Styles{
		color: true,
		err:   r.NewStyle().Foreground(colorError).Bold(true),
		warn:  r.NewStyle().Foreground(colorWarn).Bold(true),
		muted: r.NewStyle().Foreground(colorMuted),
	}
}

func (s *Styles) render(pick func(*Styles) lipgloss.Style, text string) string {
	if s == nil || !s.color {
		return text
	}
	return pick(s).Render(text)
}

// Error renders an error label.
func (s *Styles) Error(text string) string {
	return s.render(func(s *Styles) lipgloss.Style { return s.err }, text)
}

// Warn renders a warning label.
func (s *Styles) Warn(text string) string {
	return s.render(func(s *Styles) lipgloss.Style { return s.warn }, text)
}

// Muted renders secondary text such as hints.
func (s *Styles) Muted(text string) string {
	return s.render(func(s *Styles) lipgloss.Style { return s.muted }, text)
}

// Errorf writes "Error: <message>" followed by a newline.
func Errorf(w io.Writer, format string, args ...any) {
	s := NewStyles(w)
	Writef(w, "%s %s\n", s.Error("Error:"), fmt.Sprintf(format, args...))
}

// Warnf writes "Warning: <message>" followed by a newline.
func Warnf(w io.Writer, format string, args ...any) {
	s := NewStyles(w)
	Writef(w, "%s %s\n", s.Warn("Warning:"), fmt.Sprintf(format, args...))
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}
