// Package pagebar is a Bubble Tea page bar: backward and forward buttons,
// a row of page items with fast-jump markers, an optional page size picker
// and an optional quick jumper.
//
// State lives in a [pagination.Controller]. Changes made by the user are
// reported as [PageChangedMsg] and [PageSizeChangedMsg]; owners that control
// the page or page size feed the values they accept back through
// [Model.Controller].
package pagebar

import (
	"errors"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/pagebar/pkg/pagination"
	"github.com/macropower/pagebar/pkg/ui/locale"
	"github.com/macropower/pagebar/pkg/ui/sizepicker"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

var errNotDigit = errors.New("only digits are allowed")

// PageChangedMsg reports a page chosen by the user.
type PageChangedMsg struct {
	Page int
}

// PageSizeChangedMsg reports a page size chosen by the user.
type PageSizeChangedMsg struct {
	PageSize int
}

// Config holds the presentation settings of a [Model].
type Config struct {
	Theme           *theme.Theme
	Locale          *locale.Locale
	KeyBinds        *KeyBinds
	ShowSizePicker  bool
	ShowQuickJumper bool
	ShowInfo        bool
}

// Model is the page bar.
type Model struct {
	ctrl     *pagination.Controller
	outbox   *[]tea.Msg
	theme    *theme.Theme
	locale   *locale.Locale
	keyBinds *KeyBinds
	jumper   textinput.Model
	picker   sizepicker.Model

	x, y int

	showSizePicker  bool
	showQuickJumper bool
	showInfo        bool
}

// New creates a page bar. The options configure its [pagination.Controller].
func New(cfg Config, opts ...pagination.Opt) Model {
	outbox := &[]tea.Msg{}

	ctrl := pagination.New(opts...)
	ctrl.OnUpdatePage(func(page int) {
		*outbox = append(*outbox, PageChangedMsg{Page: page})
	})
	ctrl.OnUpdatePageSize(func(size int) {
		*outbox = append(*outbox, PageSizeChangedMsg{PageSize: size})
	})

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.CharLimit = 9
	ti.Width = 4
	ti.Validate = digitsOnly
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctrl:   ctrl,
		outbox: outbox,
		jumper: ti,
		picker: sizepicker.New(),
	}
	m.Apply(cfg)

	return m
}

func digitsOnly(s string) error {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return errNotDigit
		}
	}

	return nil
}

// Apply replaces the presentation settings. Nil fields select defaults.
func (m *Model) Apply(cfg Config) {
	m.theme = cfg.Theme
	if m.theme == nil {
		m.theme = theme.Default
	}

	m.locale = cfg.Locale
	if m.locale == nil {
		m.locale = locale.Default
	}

	m.keyBinds = cfg.KeyBinds
	if m.keyBinds == nil {
		m.keyBinds = NewKeyBinds()
	}

	m.showSizePicker = cfg.ShowSizePicker
	m.showQuickJumper = cfg.ShowQuickJumper
	m.showInfo = cfg.ShowInfo

	m.jumper.TextStyle = m.theme.JumperStyle.UnsetPadding()
	m.jumper.Cursor.Style = m.theme.ActiveItemStyle.UnsetPadding()

	m.syncPicker()
}

// Controller returns the state behind the bar.
func (m Model) Controller() *pagination.Controller {
	return m.ctrl
}

// KeyBinds returns the active key binds.
func (m Model) KeyBinds() *KeyBinds {
	return m.keyBinds
}

// SetPosition tells the bar where its first cell is drawn, for mouse input.
func (m *Model) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// JumperFocused reports whether the quick jumper receives key input.
func (m Model) JumperFocused() bool {
	return m.jumper.Focused()
}

// FocusJumper moves key input to the quick jumper. It does nothing when the
// jumper is hidden or the bar is disabled.
func (m *Model) FocusJumper() tea.Cmd {
	if !m.showQuickJumper || m.ctrl.Disabled() {
		return nil
	}

	return m.jumper.Focus()
}

func (m *Model) blurJumper() {
	m.jumper.Blur()
}

func (m *Model) syncPicker() {
	opts := make([]sizepicker.Option, 0, len(m.ctrl.PageSizes()))
	for _, size := range m.ctrl.PageSizes() {
		opts = append(opts, sizepicker.Option{
			Label: m.locale.SizeOption(size),
			Value: size,
		})
	}

	m.picker.SetOptions(opts)
	m.picker.SetValue(m.ctrl.PageSize())
	m.picker.SetDisabled(m.ctrl.Disabled())
	m.picker.Format = m.locale.SizeOption
	m.picker.Style = m.theme.SizePickerStyle
	m.picker.DisabledStyle = m.theme.DisabledStyle
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.ctrl.Disabled() && m.jumper.Focused() {
		m.blurJumper()
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.jumper.Focused() {
			cmds = append(cmds, m.handleJumperKey(msg))
		} else {
			cmds = append(cmds, m.handleKey(msg))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case sizepicker.SelectedMsg:
		if !m.ctrl.Disabled() {
			m.ctrl.SetPageSize(msg.Value)
		}
	}

	m.syncPicker()
	cmds = append(cmds, m.drain())

	return m, tea.Batch(cmds...)
}

// drain turns the controller notifications raised during this update into
// commands, in the order they fired.
func (m Model) drain() tea.Cmd {
	if len(*m.outbox) == 0 {
		return nil
	}

	msgs := *m.outbox
	*m.outbox = nil

	if len(msgs) == 1 {
		return func() tea.Msg { return msgs[0] }
	}

	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		cmds = append(cmds, func() tea.Msg { return msg })
	}

	return tea.Sequence(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.Disabled() {
		return nil
	}

	kb := m.keyBinds
	key := msg.String()

	switch {
	case kb.Prev.Match(key):
		m.ctrl.Backward()
	case kb.Next.Match(key):
		m.ctrl.Forward()
	case kb.FastBackward.Match(key):
		m.ctrl.FastBackward()
	case kb.FastForward.Match(key):
		m.ctrl.FastForward()
	case kb.First.Match(key):
		m.ctrl.First()
	case kb.Last.Match(key):
		m.ctrl.Last()
	case kb.SizeNext.Match(key):
		if m.showSizePicker {
			return m.picker.Next()
		}
	case kb.SizePrev.Match(key):
		if m.showSizePicker {
			return m.picker.Prev()
		}
	case kb.Jump.Match(key):
		return m.FocusJumper()
	}

	return nil
}

func (m *Model) handleJumperKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch {
	case m.keyBinds.Commit.Match(key):
		m.ctrl.SetJumperText(m.jumper.Value())
		if m.ctrl.CommitJumper() {
			m.jumper.Reset()
			m.blurJumper()
		}

		return nil

	case m.keyBinds.Cancel.Match(key):
		m.blurJumper()

		return nil
	}

	prev := m.jumper.Value()

	var cmd tea.Cmd

	m.jumper, cmd = m.jumper.Update(msg)
	if m.jumper.Err != nil {
		m.jumper.SetValue(prev)
		m.jumper.Err = nil
	}

	m.ctrl.SetJumperText(m.jumper.Value())

	return cmd
}
