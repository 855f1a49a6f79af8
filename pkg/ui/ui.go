// Package ui provides the pagebar application: a document pager whose page
// and page size are owned by the application and driven by the page bar.
package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	xstrings "github.com/charmbracelet/x/exp/strings"

	"github.com/macropower/pagebar/pkg/keys"
	"github.com/macropower/pagebar/pkg/pagination"
	"github.com/macropower/pagebar/pkg/ui/locale"
	"github.com/macropower/pagebar/pkg/ui/overlay"
	"github.com/macropower/pagebar/pkg/ui/pagebar"
	"github.com/macropower/pagebar/pkg/ui/statusbar"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

// StatusTimeout is how long status messages stay visible.
const StatusTimeout = 3 * time.Second

const (
	defaultWidth      = 80
	helpWidthFraction = 0.8
)

type (
	// ConfigReloadedMsg carries a new configuration, or the error that
	// prevented loading it.
	ConfigReloadedMsg struct {
		Config *Config
		Err    error
	}

	statusTimeoutMsg struct {
		id int
	}

	pageCopiedMsg struct {
		err   error
		lines int
	}
)

// Options are the initial values of the application-owned state.
type Options struct {
	// Clipboard receives copied pages. Defaults to the system clipboard.
	Clipboard func(text string) error
	Page      int
	PageSize  int
	Disabled  bool
}

// Model is the application model.
type Model struct {
	cfg    *Config
	copyFn func(text string) error
	theme  *theme.Theme
	locale *locale.Locale
	kb     *KeyBinds
	bar    pagebar.Model
	doc    Document
	status string

	page     int
	pageSize int

	width    int
	height   int
	statusID int

	statusErr bool
	showHelp  bool
}

// NewProgram returns a new Tea program.
func NewProgram(m *Model) *tea.Program {
	slog.Debug("starting pagebar ui",
		slog.String("title", m.doc.Title),
		slog.Int("lines", len(m.doc.Lines)),
	)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if *m.cfg.EnableMouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	return tea.NewProgram(m, opts...)
}

// New creates the application model. Page and page size in opts default to
// 1 and the configured page size; the page is clamped to the document.
func New(cfg *Config, doc Document, opts Options) *Model {
	cfg.EnsureDefaults()

	m := &Model{
		cfg:      cfg,
		doc:      doc,
		kb:       cfg.KeyBinds,
		copyFn:   opts.Clipboard,
		page:     max(opts.Page, 1),
		pageSize: opts.PageSize,
	}
	if m.copyFn == nil {
		m.copyFn = clipboard.WriteAll
	}
	if m.pageSize < 1 {
		m.pageSize = cfg.PageSize()
	}

	m.page = min(m.page, doc.PageCount(m.pageSize))

	m.loadStyle()

	m.bar = pagebar.New(m.barConfig(),
		pagination.WithPage(m.page),
		pagination.WithPageSize(m.pageSize),
		pagination.WithPageSizes(cfg.PageSizes...),
		pagination.WithPageSlot(*cfg.PageSlot),
		pagination.WithItemCount(len(doc.Lines)),
		pagination.WithDisabled(opts.Disabled),
	)

	return m
}

func (m *Model) loadStyle() {
	if err := m.cfg.RegisterThemes(); err != nil {
		slog.Warn("register themes", slog.Any("err", err))
	}

	if !theme.Exists(m.cfg.Theme) {
		attrs := []any{slog.String("theme", m.cfg.Theme)}
		if suggestions := theme.Suggest(m.cfg.Theme, 3); len(suggestions) > 0 {
			attrs = append(attrs, slog.String("did_you_mean", xstrings.EnglishJoin(suggestions, true)))
		}

		slog.Warn("unknown theme, using fallback style", attrs...)
	}

	m.theme = theme.New(m.cfg.Theme)

	l, err := locale.New(m.cfg.Locale)
	if err != nil {
		slog.Warn("fall back to default locale", slog.Any("err", err))

		l = locale.Default
	}

	m.locale = l
}

func (m *Model) barConfig() pagebar.Config {
	return pagebar.Config{
		Theme:           m.theme,
		Locale:          m.locale,
		KeyBinds:        m.kb.Pagebar,
		ShowSizePicker:  *m.cfg.ShowSizePicker,
		ShowQuickJumper: *m.cfg.ShowQuickJumper,
		ShowInfo:        *m.cfg.ShowInfo,
	}
}

// Page returns the application-owned page.
func (m *Model) Page() int {
	return m.page
}

// PageSize returns the application-owned page size.
func (m *Model) PageSize() int {
	return m.pageSize
}

// Bar returns the page bar.
func (m *Model) Bar() pagebar.Model {
	return m.bar
}

func (m *Model) Init() tea.Cmd {
	return m.bar.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pagebar.PageChangedMsg:
		m.setPage(msg.Page)

	case pagebar.PageSizeChangedMsg:
		m.setPageSize(msg.PageSize)

	case ConfigReloadedMsg:
		cmds = append(cmds, m.reload(msg))

	case pageCopiedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setStatus(fmt.Sprintf("copy page: %v", msg.err), true))
		} else {
			cmds = append(cmds, m.setStatus("copied "+m.locale.Lines(msg.lines), false))
		}

	case statusTimeoutMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
	}

	var cmd tea.Cmd

	m.bar, cmd = m.bar.Update(msg)
	cmds = append(cmds, cmd)

	m.bar.SetPosition(0, m.barRow())

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	// The jumper keeps all keys except ctrl+c.
	if m.bar.JumperFocused() && key != "ctrl+c" {
		return nil, false
	}

	switch {
	case m.kb.Common.Quit.Match(key):
		return tea.Quit, true
	case m.kb.Common.Suspend.Match(key):
		return tea.Suspend, true
	case m.kb.Common.Copy.Match(key):
		return m.copyPage(), true
	case m.kb.Common.Help.Match(key):
		m.showHelp = !m.showHelp

		return nil, true
	}

	return nil, false
}

func (m *Model) copyPage() tea.Cmd {
	lines := m.doc.Page(m.page, m.pageSize)
	text := strings.Join(lines, "\n")
	copyFn := m.copyFn

	return func() tea.Msg {
		return pageCopiedMsg{lines: len(lines), err: copyFn(text)}
	}
}

func (m *Model) setPage(page int) {
	m.page = min(max(page, 1), m.doc.PageCount(m.pageSize))
	m.bar.Controller().ControlPage(m.page)
}

// setPageSize applies a page size and pulls the page back into range.
func (m *Model) setPageSize(size int) {
	m.pageSize = size
	m.bar.Controller().ControlPageSize(size)
	m.setPage(m.page)

	slog.Debug("page size applied",
		slog.Int("page_size", size),
		slog.Int("page", m.page),
		slog.Int("page_count", m.doc.PageCount(size)),
	)
}

func (m *Model) reload(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("reload config", slog.Any("err", msg.Err))

		return m.setStatus(msg.Err.Error(), true)
	}

	cfg := msg.Config
	cfg.EnsureDefaults()

	m.cfg = cfg
	m.kb = cfg.KeyBinds
	m.loadStyle()

	ctrl := m.bar.Controller()
	ctrl.SetPageSizes(cfg.PageSizes)
	ctrl.SetPageSlot(*cfg.PageSlot)
	m.bar.Apply(m.barConfig())

	slog.Info("config reloaded")

	return m.setStatus("config reloaded", false)
}

func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.statusID++
	m.status = s
	m.statusErr = isErr

	id := m.statusID

	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{id: id}
	})
}

func (m *Model) View() string {
	body := m.body()
	if m.showHelp {
		o := overlay.New(m.theme)
		o.SetSize(m.viewWidth(), m.bodyRows())
		body = o.Place(body, m.help(), helpWidthFraction, m.theme.OverlayStyle)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.bar.View(), m.statusBar())
}

func (m *Model) header() string {
	title := m.doc.Title
	if title == "" {
		title = "pagebar"
	}

	info := strings.Join([]string{
		m.locale.Lines(len(m.doc.Lines)),
		humanize.Bytes(uint64(max(m.doc.Size, 0))),
	}, " · ")

	return m.theme.HeaderStyle.Render(title) + " " + m.theme.HelpDescStyle.Render(info)
}

func (m *Model) statusBar() string {
	opts := []statusbar.Opt{statusbar.WithHelpKey(m.kb.Common.Help.String())}

	switch {
	case m.status != "" && m.statusErr:
		opts = append(opts, statusbar.WithError(m.status))
	case m.status != "":
		opts = append(opts, statusbar.WithMessage(m.status))
	}

	progress := m.locale.PageOf(m.page, m.doc.PageCount(m.pageSize))

	return statusbar.New(m.theme, m.viewWidth(), opts...).Render(m.doc.Title, progress)
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}

	return m.width
}

// bodyRows is the number of rows between the header and the bar. The
// header, bar and status bar take one row each.
func (m *Model) bodyRows() int {
	if m.height <= 0 {
		return m.pageSize
	}

	return max(1, min(m.pageSize, m.height-3))
}

func (m *Model) barRow() int {
	return 1 + m.bodyRows()
}

func (m *Model) body() string {
	lines := m.doc.Page(m.page, m.pageSize)
	rows := m.bodyRows()

	numWidth := len(strconv.Itoa(len(m.doc.Lines)))
	first := (m.page - 1) * m.pageSize

	out := make([]string, 0, rows)
	for i := range rows {
		if i >= len(lines) {
			out = append(out, "")

			continue
		}

		line := lines[i]
		if *m.cfg.ShowLineNumbers {
			num := fmt.Sprintf("%*d", numWidth, first+i+1)
			line = m.theme.LineNumberStyle.Render(num) + "  " + m.theme.TextStyle.Render(line)
		}

		if m.width > 0 {
			line = truncate.StringWithTail(line, uint(m.width), keys.Ellipsis)
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func (m *Model) help() string {
	r := keys.HelpRenderer{
		KeyStyle:  m.theme.HelpKeyStyle,
		DescStyle: m.theme.HelpDescStyle,
	}

	pb := m.kb.Pagebar
	r.AddColumn(pb.Prev, pb.Next, pb.FastBackward, pb.FastForward)
	r.AddColumn(pb.First, pb.Last, pb.SizeNext, pb.SizePrev)
	r.AddColumn(pb.Jump, pb.Commit, pb.Cancel)
	r.AddColumn(m.kb.Common.Copy, m.kb.Common.Help, m.kb.Common.Quit)

	width := int(float64(m.viewWidth())*helpWidthFraction) - m.theme.OverlayStyle.GetHorizontalFrameSize()

	return r.Render(max(0, width))
}
