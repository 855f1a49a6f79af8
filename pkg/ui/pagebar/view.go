package pagebar

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/macropower/pagebar/pkg/pagination"
)

type segmentKind int

const (
	segInfo segmentKind = iota
	segBackward
	segItem
	segForward
	segPicker
	segJumper
	segGap
)

// segment is one clickable part of the rendered bar.
type segment struct {
	text  string
	item  pagination.Item
	kind  segmentKind
	width int
}

func (m Model) View() string {
	var sb strings.Builder
	for _, s := range m.segments() {
		sb.WriteString(s.text)
	}

	return sb.String()
}

// segments renders the bar left to right. View and mouse hit testing both
// use it, so clicks always land on what was drawn.
func (m Model) segments() []segment {
	var (
		th       = m.theme
		disabled = m.ctrl.Disabled()
		segs     []segment
	)

	add := func(kind segmentKind, it pagination.Item, text string) {
		segs = append(segs, segment{
			kind:  kind,
			item:  it,
			text:  text,
			width: ansi.PrintableRuneWidth(text),
		})
	}

	if m.showInfo {
		if start, end := m.ctrl.Range(); start > 0 {
			total, _ := m.ctrl.ItemCount()
			add(segInfo, pagination.Item{}, th.InfoStyle.Render(m.locale.Range(start, end, total)))
		}
	}

	add(segBackward, pagination.Item{}, m.button(th.Icons.Backward, m.ctrl.CanBackward()))

	for _, it := range m.ctrl.Items() {
		add(segItem, it, m.renderItem(it))
	}

	add(segForward, pagination.Item{}, m.button(th.Icons.Forward, m.ctrl.CanForward()))

	if m.showSizePicker {
		add(segGap, pagination.Item{}, " ")
		add(segPicker, pagination.Item{}, m.picker.View())
	}

	if m.showQuickJumper {
		label := th.JumperStyle.Render(m.locale.Goto())
		if disabled {
			label = th.DisabledStyle.Render(m.locale.Goto())
		}

		add(segGap, pagination.Item{}, " ")
		add(segJumper, pagination.Item{}, lipgloss.JoinHorizontal(lipgloss.Center, label, m.jumperView()))
	}

	return segs
}

func (m Model) button(icon string, enabled bool) string {
	if enabled {
		return m.theme.ButtonStyle.Render(icon)
	}

	return m.theme.DisabledStyle.Render(icon)
}

func (m Model) renderItem(it pagination.Item) string {
	th := m.theme
	disabled := m.ctrl.Disabled()

	switch it.Kind {
	case pagination.ItemFastBackward:
		icon := th.Icons.More
		if m.ctrl.FastBackwardHovered() {
			icon = th.Icons.FastBackward
		}

		if disabled {
			return th.DisabledStyle.Render(icon)
		}

		return th.MarkerStyle.Render(icon)

	case pagination.ItemFastForward:
		icon := th.Icons.More
		if m.ctrl.FastForwardHovered() {
			icon = th.Icons.FastForward
		}

		if disabled {
			return th.DisabledStyle.Render(icon)
		}

		return th.MarkerStyle.Render(icon)

	case pagination.ItemPage:
	}

	label := strconv.Itoa(it.Page)

	switch {
	case disabled && it.Active:
		return th.DisabledStyle.Underline(true).Render(label)
	case disabled:
		return th.DisabledStyle.Render(label)
	case it.Active:
		return th.ActiveItemStyle.Render(label)
	default:
		return th.ItemStyle.Render(label)
	}
}

func (m Model) jumperView() string {
	if m.jumper.Focused() || m.jumper.Value() != "" {
		return "[" + m.jumper.View() + "]"
	}

	return "[" + strings.Repeat(" ", m.jumper.Width+1) + "]"
}

// hit returns the segment under column x of the bar.
func (m Model) hit(x int) (segment, bool) {
	if x < 0 {
		return segment{}, false
	}

	for _, s := range m.segments() {
		if x < s.width {
			return s, true
		}

		x -= s.width
	}

	return segment{}, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ctrl.Disabled() {
		return nil
	}

	var (
		s  segment
		ok bool
	)

	if msg.Y == m.y {
		s, ok = m.hit(msg.X - m.x)
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover(s, ok)

		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

	case tea.MouseActionRelease:
		return nil
	}

	if !ok {
		if m.jumper.Focused() {
			m.blurJumper()
		}

		return nil
	}

	if s.kind != segJumper && m.jumper.Focused() {
		m.blurJumper()
	}

	switch s.kind {
	case segBackward:
		m.ctrl.Backward()
	case segForward:
		m.ctrl.Forward()
	case segItem:
		m.ctrl.Activate(s.item)
	case segPicker:
		if m.showSizePicker {
			return m.picker.Next()
		}
	case segJumper:
		return m.FocusJumper()
	case segInfo, segGap:
	}

	return nil
}

func (m *Model) hover(s segment, ok bool) {
	onItem := ok && s.kind == segItem

	for _, kind := range []pagination.ItemKind{pagination.ItemFastBackward, pagination.ItemFastForward} {
		it := pagination.Item{Kind: kind}
		if onItem && s.item.Kind == kind {
			m.ctrl.Hover(it)
		} else {
			m.ctrl.Leave(it)
		}
	}
}
