package pagebar_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagebar/pkg/pagination"
	"github.com/macropower/pagebar/pkg/ui/locale"
	"github.com/macropower/pagebar/pkg/ui/pagebar"
	"github.com/macropower/pagebar/pkg/ui/sizepicker"
	"github.com/macropower/pagebar/pkg/ui/theme"
	"github.com/macropower/pagebar/pkg/uitest"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and any batched commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}

		return out
	}

	if msg == nil {
		return nil
	}

	return []tea.Msg{msg}
}

// send updates m with msg and feeds picker selections back in.
func send(m pagebar.Model, msg tea.Msg) (pagebar.Model, []tea.Msg) {
	m, cmd := m.Update(msg)

	var out []tea.Msg
	for _, got := range collect(cmd) {
		if sel, ok := got.(sizepicker.SelectedMsg); ok {
			var more []tea.Msg

			m, more = send(m, sel)
			out = append(out, more...)

			continue
		}

		out = append(out, got)
	}

	return m, out
}

func plain(m pagebar.Model) string {
	return ansi.Strip(m.View())
}

// column returns the cell column of the first occurrence of text.
func column(t *testing.T, m pagebar.Model, text string) int {
	t.Helper()

	p := plain(m)
	i := strings.Index(p, text)
	require.GreaterOrEqual(t, i, 0, "%q not in %q", text, p)

	return ansi.StringWidth(p[:i])
}

func click(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		key      tea.KeyMsg
		opts     []pagination.Opt
		wantMsgs []tea.Msg
		wantPage int
	}{
		"next": {
			key:      tea.KeyMsg{Type: tea.KeyRight},
			opts:     []pagination.Opt{pagination.WithPageCount(20)},
			wantMsgs: []tea.Msg{pagebar.PageChangedMsg{Page: 2}},
			wantPage: 2,
		},
		"prev at first page": {
			key:      runes("h"),
			opts:     []pagination.Opt{pagination.WithPageCount(20)},
			wantPage: 1,
		},
		"next at last page": {
			key:      runes("l"),
			opts:     []pagination.Opt{pagination.WithPageCount(20), pagination.WithDefaultPage(20)},
			wantPage: 20,
		},
		"fast forward": {
			key:      runes("L"),
			opts:     []pagination.Opt{pagination.WithPageCount(20), pagination.WithDefaultPage(5)},
			wantMsgs: []tea.Msg{pagebar.PageChangedMsg{Page: 10}},
			wantPage: 10,
		},
		"fast backward": {
			key:      tea.KeyMsg{Type: tea.KeyShiftLeft},
			opts:     []pagination.Opt{pagination.WithPageCount(20), pagination.WithDefaultPage(3)},
			wantMsgs: []tea.Msg{pagebar.PageChangedMsg{Page: 1}},
			wantPage: 1,
		},
		"last": {
			key:      tea.KeyMsg{Type: tea.KeyEnd},
			opts:     []pagination.Opt{pagination.WithPageCount(20)},
			wantMsgs: []tea.Msg{pagebar.PageChangedMsg{Page: 20}},
			wantPage: 20,
		},
		"first": {
			key:      runes("g"),
			opts:     []pagination.Opt{pagination.WithPageCount(20), pagination.WithDefaultPage(7)},
			wantMsgs: []tea.Msg{pagebar.PageChangedMsg{Page: 1}},
			wantPage: 1,
		},
		"disabled": {
			key:      tea.KeyMsg{Type: tea.KeyRight},
			opts:     []pagination.Opt{pagination.WithPageCount(20), pagination.WithDisabled(true)},
			wantPage: 1,
		},
		"unbound": {
			key:      runes("z"),
			opts:     []pagination.Opt{pagination.WithPageCount(20)},
			wantPage: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := pagebar.New(pagebar.Config{}, tc.opts...)
			m, msgs := send(m, tc.key)

			assert.Equal(t, tc.wantMsgs, msgs)
			assert.Equal(t, tc.wantPage, m.Controller().Page())
		})
	}
}

func TestControlledPage(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{},
		pagination.WithPageCount(20),
		pagination.WithPage(4),
	)

	m, msgs := send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 5}}, msgs)
	assert.Equal(t, 4, m.Controller().Page())
	assert.Contains(t, plain(m), " 4 ")

	m.Controller().ControlPage(5)
	assert.Equal(t, 5, m.Controller().Page())
}

func TestQuickJumper(t *testing.T) {
	t.Parallel()

	cfg := pagebar.Config{ShowQuickJumper: true}
	m := pagebar.New(cfg, pagination.WithPageCount(10), pagination.WithDefaultPage(2))
	assert.Contains(t, plain(m), "Goto")

	m, _ = send(m, runes(":"))
	require.True(t, m.JumperFocused())

	// Letters are rejected by the input.
	m, _ = send(m, runes("a"))
	assert.Empty(t, m.Controller().JumperText())

	// Out of range input is kept and nothing changes.
	m, _ = send(m, runes("4"))
	m, _ = send(m, runes("2"))
	m, msgs := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, msgs)
	assert.True(t, m.JumperFocused())
	assert.Equal(t, "42", m.Controller().JumperText())
	assert.Equal(t, 2, m.Controller().Page())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(m, runes("7"))
	m, msgs = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 7}}, msgs)
	assert.False(t, m.JumperFocused())
	assert.Empty(t, m.Controller().JumperText())
	assert.Equal(t, 7, m.Controller().Page())

	// Navigation keys work again once the jumper is released.
	m, msgs = send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 8}}, msgs)

	m, _ = send(m, runes(":"))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.JumperFocused())
}

func TestQuickJumperHidden(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{}, pagination.WithPageCount(10))
	m, _ = send(m, runes(":"))
	assert.False(t, m.JumperFocused())
	assert.NotContains(t, plain(m), "Goto")
}

func TestSizePicker(t *testing.T) {
	t.Parallel()

	cfg := pagebar.Config{ShowSizePicker: true}
	m := pagebar.New(cfg,
		pagination.WithPageSizes(10, 20, 50),
		pagination.WithItemCount(95),
	)
	assert.Contains(t, plain(m), "10 / page")
	assert.Equal(t, 10, m.Controller().PageCount())

	m, msgs := send(m, runes("+"))
	assert.Equal(t, []tea.Msg{pagebar.PageSizeChangedMsg{PageSize: 20}}, msgs)
	assert.Equal(t, 5, m.Controller().PageCount())
	assert.Contains(t, plain(m), "20 / page")

	m, msgs = send(m, runes("-"))
	assert.Equal(t, []tea.Msg{pagebar.PageSizeChangedMsg{PageSize: 10}}, msgs)

	m, msgs = send(m, runes("-"))
	assert.Equal(t, []tea.Msg{pagebar.PageSizeChangedMsg{PageSize: 50}}, msgs)

	m.Controller().SetDisabled(true)
	_, msgs = send(m, runes("+"))
	assert.Empty(t, msgs)
}

func TestMouse(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{}, pagination.WithPageCount(20))
	assert.Equal(t, "‹  1  2  3  4  5  6  7  …  20  ›", strings.TrimSpace(plain(m)))

	m, msgs := send(m, click(column(t, m, "5")))
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 5}}, msgs)

	m, msgs = send(m, click(column(t, m, "›")))
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 6}}, msgs)

	m, msgs = send(m, click(column(t, m, "‹")))
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 5}}, msgs)

	// Clicking the active page does not notify.
	m, msgs = send(m, click(column(t, m, "5")))
	assert.Empty(t, msgs)

	// Clicks on other rows are ignored.
	miss := click(column(t, m, "7"))
	miss.Y = 3
	m, msgs = send(m, miss)
	assert.Empty(t, msgs)

	// The fast-forward marker jumps slot-4 pages.
	m, msgs = send(m, click(column(t, m, "…")))
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 10}}, msgs)
	assert.Equal(t, 10, m.Controller().Page())
}

func TestMousePosition(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{}, pagination.WithPageCount(5))
	m.SetPosition(10, 2)

	msg := click(10 + column(t, m, "3"))
	msg.Y = 2
	_, msgs := send(m, msg)
	assert.Equal(t, []tea.Msg{pagebar.PageChangedMsg{Page: 3}}, msgs)
}

func TestHover(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{}, pagination.WithPageCount(20))
	x := column(t, m, "…")

	m, _ = send(m, tea.MouseMsg{X: x, Action: tea.MouseActionMotion})
	assert.True(t, m.Controller().FastForwardHovered())
	assert.Contains(t, plain(m), "»")
	assert.NotContains(t, plain(m), "…")

	m, _ = send(m, tea.MouseMsg{X: 0, Action: tea.MouseActionMotion})
	assert.False(t, m.Controller().FastForwardHovered())
	assert.Contains(t, plain(m), "…")
}

func TestInfo(t *testing.T) {
	t.Parallel()

	l, err := locale.New("de-DE")
	require.NoError(t, err)

	cfg := pagebar.Config{ShowInfo: true, Locale: l}
	m := pagebar.New(cfg,
		pagination.WithItemCount(95),
		pagination.WithDefaultPage(10),
	)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(plain(m)), "91-95 von 95"))

	m = pagebar.New(cfg)
	assert.NotContains(t, plain(m), "von")
}

func TestDisabledView(t *testing.T) {
	uitest.SetupColorProfile()

	th := theme.New("github")
	m := pagebar.New(pagebar.Config{Theme: th, ShowQuickJumper: true},
		pagination.WithPageCount(3),
		pagination.WithDefaultPage(2),
	)

	active, ok := uitest.Find(uitest.Segments(m.View()), "2")
	require.True(t, ok)
	assert.True(t, active.Bold)

	m.Controller().SetDisabled(true)

	segs := uitest.Segments(m.View())
	for _, text := range []string{"1", "2", "3", "Goto"} {
		s, ok := uitest.Find(segs, text)
		require.True(t, ok, text)
		assert.True(t, s.Faint, text)
	}

	_, msgs := send(m, click(column(t, m, "3")))
	assert.Empty(t, msgs)

	m, _ = send(m, runes(":"))
	assert.False(t, m.JumperFocused())
}

func TestProgram(t *testing.T) {
	t.Parallel()

	m := pagebar.New(pagebar.Config{}, pagination.WithPageCount(3))
	tm := uitest.NewTestModel(t, m, uitest.Compact)

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	require.NoError(t, tm.Quit())

	final := uitest.FinalModel[pagebar.Model](t, tm, 3*time.Second)
	assert.Equal(t, 3, final.Controller().Page())
}
