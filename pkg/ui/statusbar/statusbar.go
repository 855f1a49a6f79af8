// Package statusbar renders the bottom line of the pager: the program name,
// a note or status message, the page position and a help hint.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/pagebar/pkg/keys"
	"github.com/macropower/pagebar/pkg/ui/theme"
	"github.com/macropower/pagebar/pkg/version"
)

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

type Renderer struct {
	theme   *theme.Theme
	message string
	helpKey string
	width   int
	style   Style
}

type Opt func(*Renderer)

// WithMessage replaces the note with a success message.
func WithMessage(message string) Opt {
	return func(r *Renderer) {
		r.style = StyleSuccess
		r.message = message
	}
}

// WithError replaces the note with an error message.
func WithError(message string) Opt {
	return func(r *Renderer) {
		r.style = StyleError
		r.message = message
	}
}

// WithHelpKey sets the key shown in the help hint.
func WithHelpKey(key string) Opt {
	return func(r *Renderer) {
		r.helpKey = key
	}
}

func New(t *theme.Theme, width int, opts ...Opt) *Renderer {
	r := &Renderer{theme: t, width: width, helpKey: "?"}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render joins the components, truncating the note to fit the width.
func (r *Renderer) Render(note, progress string) string {
	logo := r.logo()
	help := r.render(" " + r.helpKey + " help ")
	progress = r.render(" " + progress + " ")

	if r.message != "" {
		note = r.message
	}

	note = strings.TrimSpace(strings.ReplaceAll(note, "\n", " "))

	available := max(0, r.width-
		ansi.PrintableRuneWidth(logo)-
		ansi.PrintableRuneWidth(progress)-
		ansi.PrintableRuneWidth(help))

	note = truncate.StringWithTail(" "+note+" ", uint(available), keys.Ellipsis) //nolint:gosec // Uses max.
	note = r.render(note)

	padding := max(0, available-ansi.PrintableRuneWidth(note))

	return logo + note + r.render(strings.Repeat(" ", padding)) + progress + help
}

func (r *Renderer) render(s string) string {
	return r.styleFor().Render(s)
}

func (r *Renderer) styleFor() lipgloss.Style {
	switch r.style {
	case StyleError:
		return r.theme.StatusErrorStyle
	case StyleSuccess:
		return r.theme.StatusMessageStyle
	default:
		return r.theme.StatusStyle
	}
}

func (r *Renderer) logo() string {
	return r.theme.HeaderStyle.Render("pagebar " + version.Get().Short())
}
