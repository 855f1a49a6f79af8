// Package keys defines configurable key bindings and renders them as help
// columns.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// ErrDuplicateKey is returned when a key code is bound more than once.
var ErrDuplicateKey = errors.New("duplicate key binding")

// Ellipsis marks truncated help descriptions.
const Ellipsis = "…"

// Key is a single key code as reported by Bubble Tea, e.g. "ctrl+c".
type Key struct {
	// Code is the key code identifier.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is shown in help instead of the code.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden keys work but are not shown in help.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := Key{Code: code}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind is an action with a description and the keys that trigger it.
type KeyBind struct {
	// Description is shown in help.
	Description string `json:"description" jsonschema:"title=Description"`
	// Keys trigger this binding.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{Description: description, Keys: keys}
}

// String joins the visible keys with "/".
func (kb *KeyBind) String() string {
	var visible []string
	for _, k := range kb.Keys {
		if !k.Hidden {
			visible = append(visible, k.String())
		}
	}

	return strings.Join(visible, "/")
}

// Match reports whether code triggers the binding. A nil binding matches
// nothing.
func (kb *KeyBind) Match(code string) bool {
	if kb == nil {
		return false
	}

	for _, k := range kb.Keys {
		if k.Code == code {
			return true
		}
	}

	return false
}

// AddKey appends k unless its code is already bound.
func (kb *KeyBind) AddKey(k Key) {
	if kb == nil || kb.Match(k.Code) {
		return
	}

	kb.Keys = append(kb.Keys, k)
}

// Binding converts the bind for use with bubbles components.
func (kb *KeyBind) Binding() key.Binding {
	codes := make([]string, 0, len(kb.Keys))
	for _, k := range kb.Keys {
		codes = append(codes, k.Code)
	}

	return key.NewBinding(
		key.WithKeys(codes...),
		key.WithHelp(kb.String(), kb.Description),
	)
}

// SetDefaultBind fills a nil bind, or its empty fields, from def.
func SetDefaultBind(kb **KeyBind, def KeyBind) {
	if *kb == nil {
		*kb = &def

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = def.Keys
	}

	if (*kb).Description == "" {
		(*kb).Description = def.Description
	}
}

// ValidateBinds reports every key code bound more than once across groups.
func ValidateBinds(groups ...[]*KeyBind) error {
	var errs []error

	owner := map[string]string{}

	for _, group := range groups {
		for _, kb := range group {
			if kb == nil {
				continue
			}

			for _, k := range kb.Keys {
				if prev, ok := owner[k.Code]; ok {
					errs = append(errs, fmt.Errorf("%w: %q used by %q and %q",
						ErrDuplicateKey, k.Code, prev, kb.Description))

					continue
				}

				owner[k.Code] = kb.Description
			}
		}
	}

	return errors.Join(errs...)
}

// HelpRenderer lays out binds in side-by-side columns.
type HelpRenderer struct {
	KeyStyle  lipgloss.Style
	DescStyle lipgloss.Style
	columns   [][]*KeyBind
}

// AddColumn adds a column. Empty columns are ignored.
func (r *HelpRenderer) AddColumn(kbs ...*KeyBind) {
	if len(kbs) == 0 {
		return
	}

	r.columns = append(r.columns, kbs)
}

// Render draws all columns within width cells.
func (r *HelpRenderer) Render(width int) string {
	if len(r.columns) == 0 {
		return ""
	}

	colWidth := max(6, width/len(r.columns)-2)

	blocks := make([]string, 0, len(r.columns))
	for _, col := range r.columns {
		blocks = append(blocks, lipgloss.NewStyle().
			Width(colWidth).
			MarginLeft(1).
			MarginRight(1).
			Render(r.column(colWidth, col)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (r *HelpRenderer) column(width int, kbs []*KeyBind) string {
	keyWidth := 0
	for _, kb := range kbs {
		keyWidth = max(keyWidth, ansi.PrintableRuneWidth(kb.String()))
	}

	descWidth := width - keyWidth - 2

	rows := make([]string, 0, len(kbs))
	for _, kb := range kbs {
		keys := kb.String()
		if keys == "" {
			continue
		}

		pad := strings.Repeat(" ", keyWidth-ansi.PrintableRuneWidth(keys))
		desc := Truncate(kb.Description, descWidth)
		rows = append(rows, r.KeyStyle.Render(keys)+pad+"  "+r.DescStyle.Render(desc))
	}

	return strings.Join(rows, "\n")
}

// Truncate shortens s to width cells, ending with [Ellipsis] when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}

	return truncate.StringWithTail(s, uint(width), Ellipsis)
}
