// Package sizepicker provides a compact cycling selector for page sizes.
package sizepicker

import (
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/pagebar/pkg/keys"
)

// Option is one selectable value.
type Option struct {
	Label string
	Value int
}

// SelectedMsg reports a value chosen by the user.
type SelectedMsg struct {
	Value int
}

// KeyBinds drive the picker from [Model.Update].
type KeyBinds struct {
	Next *keys.KeyBind
	Prev *keys.KeyBind
}

// Model shows the current option between arrows and cycles on input.
type Model struct {
	// Format labels a value that is not one of the options.
	Format        func(int) string
	KeyBinds      KeyBinds
	Style         lipgloss.Style
	DisabledStyle lipgloss.Style
	options       []Option
	value         int
	disabled      bool
}

// New creates a picker. The first option is selected.
func New(options ...Option) Model {
	m := Model{
		Style:         lipgloss.NewStyle(),
		DisabledStyle: lipgloss.NewStyle().Faint(true),
	}
	m.SetOptions(options)

	return m
}

// SetOptions replaces the options, keeping the value.
func (m *Model) SetOptions(options []Option) {
	m.options = slices.Clone(options)
	if m.value == 0 && len(m.options) > 0 {
		m.value = m.options[0].Value
	}
}

// Options returns a copy of the options.
func (m Model) Options() []Option {
	return slices.Clone(m.options)
}

// Value returns the displayed value.
func (m Model) Value() int {
	return m.value
}

// SetValue changes the displayed value without reporting it. Values that are
// not options are still shown.
func (m *Model) SetValue(v int) {
	m.value = v
}

// SetDisabled makes the picker ignore input.
func (m *Model) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// Disabled reports whether input is ignored.
func (m Model) Disabled() bool {
	return m.disabled
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case m.KeyBinds.Next.Match(km.String()):
		return m, m.Next()
	case m.KeyBinds.Prev.Match(km.String()):
		return m, m.Prev()
	}

	return m, nil
}

// Next reports the option after the current one, wrapping around.
func (m Model) Next() tea.Cmd {
	return m.step(1)
}

// Prev reports the option before the current one, wrapping around.
func (m Model) Prev() tea.Cmd {
	return m.step(-1)
}

// step does not change the value itself; the owner decides whether the
// reported value is applied.
func (m Model) step(delta int) tea.Cmd {
	if m.disabled || len(m.options) < 2 {
		return nil
	}

	i := m.index()
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(m.options) - 1
	default:
		i = (i + delta + len(m.options)) % len(m.options)
	}

	v := m.options[i].Value

	return func() tea.Msg {
		return SelectedMsg{Value: v}
	}
}

func (m Model) index() int {
	return slices.IndexFunc(m.options, func(o Option) bool {
		return o.Value == m.value
	})
}

// Label returns the label of the displayed value.
func (m Model) Label() string {
	if i := m.index(); i >= 0 {
		return m.options[i].Label
	}

	if m.Format != nil {
		return m.Format(m.value)
	}

	return strconv.Itoa(m.value)
}

func (m Model) View() string {
	if len(m.options) == 0 {
		return ""
	}

	style := m.Style
	if m.disabled {
		style = m.DisabledStyle
	}

	return style.Render("▾ " + m.Label())
}
