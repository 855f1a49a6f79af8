// Package overlay draws a box over already rendered content.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	charmansi "github.com/charmbracelet/x/ansi"

	"github.com/macropower/pagebar/pkg/keys"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

const defaultMinOverlayWidth = 16

type Overlay struct {
	ws    *whitespace
	theme *theme.Theme

	width, height int

	// Minimum width of the overlay, in cells.
	minWidth int
}

func New(t *theme.Theme, opts ...OverlayOpt) *Overlay {
	o := &Overlay{
		ws:       &whitespace{},
		theme:    t,
		minWidth: defaultMinOverlayWidth,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

type OverlayOpt func(*Overlay)

// WithMinWidth sets the minimum width of the overlay.
func WithMinWidth(minWidth int) OverlayOpt {
	return func(o *Overlay) {
		o.minWidth = minWidth
	}
}

// SetSize sets the size of the area the overlay is placed on.
func (o *Overlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Place centers fg, wrapped to a fraction of the width and framed by style,
// on top of bg. Content taller than the area is cut and marked with an
// ellipsis.
func (o *Overlay) Place(bg, fg string, widthFraction float64, style lipgloss.Style) string {
	overlayWidth := int(float64(o.width) * widthFraction)
	overlayWidth = clamp(overlayWidth, min(o.minWidth, o.width), o.width)

	innerWidth := max(0, overlayWidth-style.GetHorizontalFrameSize())
	innerHeight := o.height - style.GetVerticalFrameSize()

	fg = cellbuf.Wrap(fg, innerWidth, " /-")
	fgLines, _ := getLines(fg)

	switch {
	case innerHeight < 1:
		return bg
	case len(fgLines) > innerHeight:
		fgLines = fgLines[:innerHeight-1]
		fgLines = append(fgLines, o.theme.InfoStyle.UnsetPadding().Render(keys.Ellipsis))
	}

	blockWidth := max(0, overlayWidth-style.GetHorizontalBorderSize()-style.GetHorizontalMargins())
	fg = style.Width(blockWidth).Render(strings.Join(fgLines, "\n"))

	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgWidth = max(bgWidth, o.width)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	x := clamp(bgWidth-fgWidth, 0, bgWidth) / 2
	y := clamp(bgHeight-fgHeight, 0, bgHeight) / 2

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}

		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)

			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x)) //nolint:gosec // G115: x is positive.
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)

			if pos < x {
				b.WriteString(o.ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		b.WriteString(charmansi.TruncateLeft(bgLine, pos, ""))
	}

	return b.String()
}

func clamp(v, lower, upper int) int {
	return min(max(v, lower), upper)
}

// getLines splits s into lines and returns the width of the widest.
func getLines(s string) ([]string, int) {
	lines := strings.Split(s, "\n")
	widest := 0

	for _, l := range lines {
		widest = max(widest, charmansi.StringWidth(l))
	}

	return lines, widest
}

type whitespace struct {
	chars string
	style termenv.Style
}

func (w whitespace) render(width int) string {
	chars := " "
	if w.chars != "" {
		chars = w.chars
	}

	r := []rune(chars)
	j := 0
	b := strings.Builder{}

	for i := 0; i < width; {
		b.WriteRune(r[j])
		i += charmansi.StringWidth(string(r[j]))

		j++
		if j >= len(r) {
			j = 0
		}
	}

	// Wide runes can leave a one cell gap.
	if short := width - charmansi.StringWidth(b.String()); short > 0 {
		b.WriteString(strings.Repeat(" ", short))
	}

	return w.style.Styled(b.String())
}
