// Package theme derives the pagination styles and icons from chroma styles.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"
	"golang.org/x/term"
)

var (
	ErrInvalidName    = errors.New("invalid theme name")
	ErrUnknownToken   = errors.New("unknown theme token")
	ErrRegisterStyles = errors.New("register styles")
)

// Icons are the glyphs drawn by the page bar.
type Icons struct {
	Backward     string
	Forward      string
	FastBackward string
	FastForward  string
	More         string
}

// DefaultIcons are used by [New].
var DefaultIcons = Icons{
	Backward:     "‹",
	Forward:      "›",
	FastBackward: "«",
	FastForward:  "»",
	More:         "…",
}

// Tokens maps the names accepted by [Register] to chroma token types.
var Tokens = map[string]chroma.TokenType{
	"background":      chroma.Background,
	"comment":         chroma.Comment,
	"keyword":         chroma.Keyword,
	"nameTag":         chroma.NameTag,
	"genericInserted": chroma.GenericInserted,
	"genericDeleted":  chroma.GenericDeleted,
}

var Default = New("github")

type Theme struct {
	// Page bar.
	ItemStyle       lipgloss.Style
	ActiveItemStyle lipgloss.Style
	MarkerStyle     lipgloss.Style
	ButtonStyle     lipgloss.Style
	DisabledStyle   lipgloss.Style
	JumperStyle     lipgloss.Style
	SizePickerStyle lipgloss.Style
	InfoStyle       lipgloss.Style

	// Application.
	HeaderStyle     lipgloss.Style
	LineNumberStyle lipgloss.Style
	TextStyle       lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	ErrorStyle      lipgloss.Style
	OverlayStyle    lipgloss.Style

	// Status bar.
	StatusStyle        lipgloss.Style
	StatusMessageStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	ChromaStyle *chroma.Style
	Icons       Icons
}

// New builds a theme from the named chroma style. The names "auto" (or
// empty), "dark" and "light" select a GitHub style for the terminal
// background. Unknown names fall back to chroma's fallback style.
func New(name string) *Theme {
	cs := newChromaStyle(name)

	var (
		text = lipgloss.NewStyle().
			Foreground(cs.fg(chroma.Background))

		subtle = lipgloss.NewStyle().
			Foreground(cs.fg(chroma.Comment))

		accent = lipgloss.NewStyle().
			Foreground(cs.fg(chroma.NameTag))

		item = text.Padding(0, 1)
	)

	return &Theme{
		ItemStyle: item,
		ActiveItemStyle: item.
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.NameTag)).
			Bold(true),
		MarkerStyle: item.Foreground(cs.fgFactor(chroma.NameTag, 0.3)),
		ButtonStyle: item.Foreground(cs.fg(chroma.Keyword)),
		DisabledStyle: item.
			Foreground(cs.fgFactor(chroma.Comment, 0.4)).
			Faint(true),
		JumperStyle:     text.Padding(0, 1),
		SizePickerStyle: accent.Padding(0, 1),
		InfoStyle:       subtle.Padding(0, 1),

		HeaderStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.NameTag)).
			Bold(true).
			Padding(0, 1),
		LineNumberStyle: subtle,
		TextStyle:       text,
		HelpKeyStyle:    accent,
		HelpDescStyle:   subtle,
		ErrorStyle: lipgloss.NewStyle().
			Foreground(cs.fg(chroma.GenericDeleted)).
			Bold(true),

		OverlayStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cs.fg(chroma.Keyword)).
			Padding(0, 1),

		StatusStyle: lipgloss.NewStyle().
			Foreground(cs.fg(chroma.Comment)).
			Background(cs.bgFactor(chroma.Background, 0.1)),
		StatusMessageStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.GenericInserted)),
		StatusErrorStyle: lipgloss.NewStyle().
			Foreground(cs.bg(chroma.Background)).
			Background(cs.fg(chroma.GenericDeleted)),

		ChromaStyle: cs.style,
		Icons:       DefaultIcons,
	}
}

// Register adds a chroma style built from token name to style entry, e.g.
// "nameTag": "bold #800080".
func Register(name string, entries map[string]string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	se := chroma.StyleEntries{}

	for _, k := range slices.Sorted(maps.Keys(entries)) {
		tt, ok := Tokens[k]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownToken, k)
		}

		se[tt] = entries[k]
	}

	s, err := chroma.NewStyle(name, se)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterStyles, err)
	}

	styles.Register(s)

	return nil
}

// aliases are accepted by [New] in addition to chroma style names.
var aliases = []string{"auto", "dark", "light"}

// Names lists every name [New] resolves without falling back, including
// registered styles.
func Names() []string {
	return append(slices.Clone(aliases), styles.Names()...)
}

// Exists reports whether name resolves to a known style.
func Exists(name string) bool {
	return name == "" || slices.Contains(aliases, name) || slices.Contains(styles.Names(), name)
}

// Suggest returns up to n names that fuzzy match name, best first.
func Suggest(name string, n int) []string {
	matches := fuzzy.Find(name, Names())

	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches[:min(n, len(matches))] {
		out = append(out, m.Str)
	}

	return out
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(name string) chromaStyle {
	s := styles.Get(resolve(name))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bg(t chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Background.String())
}

func (cs chromaStyle) fgFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Colour.BrightenOrDarken(factor).String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bgFactor(t chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(t).Background.BrightenOrDarken(factor).String())
}

func resolve(name string) string {
	switch name {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return detect()
	default:
		return name
	}
}

func detect() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}

	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
