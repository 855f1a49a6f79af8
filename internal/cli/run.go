package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/pagebar/pkg/config"
	"github.com/macropower/pagebar/pkg/log"
	"github.com/macropower/pagebar/pkg/ui"
	"github.com/macropower/pagebar/pkg/ui/locale"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

const (
	cmdExamples = `  # Page through a file:
  pagebar ./CHANGELOG.md

  # Read from stdin:
  git log --oneline | pagebar -

  # Start on page 3, 50 lines per page:
  pagebar ./CHANGELOG.md --page 3 --page-size 50

  # Offer different page sizes and a wider page row:
  pagebar ./CHANGELOG.md --page-sizes 5,15,30 --page-slot 11

  # Use German number formatting and labels:
  pagebar ./CHANGELOG.md --locale de-DE

  # Reload the configuration when it changes:
  pagebar ./CHANGELOG.md --watch

  # Print one page (disables TUI):
  pagebar ./CHANGELOG.md --page 2 > page2.txt`
)

var ErrNoInput = errors.New("no input")

type RunArgs struct {
	*RootArgs

	Path        string
	ConfigPath  string
	Theme       string
	Locale      string
	PageSizes   []int
	Page        int
	PageSize    int
	PageSlot    int
	SizePicker  bool
	QuickJumper bool
	Disabled    bool
	Watch       bool
	WriteConfig bool
	ShowConfig  bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the pagebar configuration file")
	cmd.Flags().IntVarP(&ra.Page, "page", "p", 1, "Initial page")
	cmd.Flags().IntVarP(&ra.PageSize, "page-size", "s", 0, "Initial page size, defaults to the first page size")
	cmd.Flags().IntSliceVar(&ra.PageSizes, "page-sizes", nil, "Page sizes offered by the size picker")
	cmd.Flags().IntVar(&ra.PageSlot, "page-slot", 0, "Number of items in the page row")
	cmd.Flags().BoolVar(&ra.SizePicker, "size-picker", true, "Show the page size picker")
	cmd.Flags().BoolVar(&ra.QuickJumper, "quick-jumper", true, "Show the go-to-page input")
	cmd.Flags().BoolVar(&ra.Disabled, "disabled", false, "Render the page bar disabled")
	cmd.Flags().StringVar(&ra.Locale, "locale", "", "Locale for labels and numbers, e.g. en-US or de-DE")
	cmd.Flags().StringVar(&ra.Theme, "theme", "", "Theme name, or auto, dark or light")
	cmd.Flags().BoolVarP(&ra.Watch, "watch", "w", false, "Reload the configuration when it changes")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration files and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("locale",
		cobra.FixedCompletions(localeNames(), cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(fmt.Errorf("register locale completion: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("theme", themeCompletion)
	if err != nil {
		panic(fmt.Errorf("register theme completion: %w", err))
	}
}

func NewRunCmd(ra *RunArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "run [path]",
		Short:             "Default command, can be used explicitly if the path is ambiguous",
		Example:           cmdExamples,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: runCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			ra.Path = ""
			if len(args) > 0 {
				ra.Path = args[0]
			}

			return run(cmd, ra)
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func localeNames() []string {
	names := make([]string, 0, len(locale.Supported))
	for _, tag := range locale.Supported {
		names = append(names, tag.String())
	}

	return names
}

func runCompletion(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	return nil, cobra.ShellCompDirectiveNoFileComp
}

// applyFlags copies explicitly set flags over the loaded configuration.
func (ra *RunArgs) applyFlags(cmd *cobra.Command, c *ui.Config) {
	flags := cmd.Flags()

	if flags.Changed("theme") {
		c.Theme = ra.Theme
	}

	if flags.Changed("locale") {
		c.Locale = ra.Locale
	}

	if flags.Changed("page-sizes") {
		c.PageSizes = ra.PageSizes
	}

	if flags.Changed("page-size") {
		c.DefaultPageSize = &ra.PageSize
	}

	if flags.Changed("page-slot") {
		c.PageSlot = &ra.PageSlot
	}

	if flags.Changed("size-picker") {
		c.ShowSizePicker = &ra.SizePicker
	}

	if flags.Changed("quick-jumper") {
		c.ShowQuickJumper = &ra.QuickJumper
	}
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	configPath := ra.ConfigPath
	if configPath == "" {
		configPath = config.GetPath()
	}

	err := config.WriteDefaultConfig(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}

	if ra.WriteConfig {
		// Any error writing is fatal here.
		return err
	}

	cfg, err := loadConfig(configPath, isTerminal(os.Stderr))
	if err != nil {
		return err
	}

	ra.applyFlags(cmd, cfg.UI)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if ra.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		return showConfig(cmd.OutOrStdout(), cfg, isTerminal(os.Stdout))
	}

	doc, err := readInput(cmd, ra.Path)
	if err != nil {
		return err
	}

	opts := ui.Options{
		Page:     ra.Page,
		PageSize: cfg.UI.PageSize(),
		Disabled: ra.Disabled,
	}

	// If stdout is not a terminal, print the page.
	if !isTerminal(os.Stdout) {
		return writePage(cmd.OutOrStdout(), doc, opts)
	}

	logBuf := log.NewBacklog(log.DefaultBacklogSize)

	logHandler, err := log.NewHandler(logBuf, ra.LogLevel, ra.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	err = runUI(cmd.Context(), cmd, ra, cfg, configPath, doc, opts)
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

func loadConfig(path string, color bool) (*config.Config, error) {
	l, err := config.NewLoaderFromFile(path, config.WithColor(color))
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))

		return config.NewConfig(), nil
	}

	cfg, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

func showConfig(w io.Writer, cfg *config.Config, color bool) error {
	b, err := cfg.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if !color {
		_, err = w.Write(b)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	t := theme.New(cfg.UI.Theme)

	it, err := lexers.Get("yaml").Tokenise(nil, string(b))
	if err != nil {
		return fmt.Errorf("tokenise config: %w", err)
	}

	err = formatters.TTY256.Format(w, t.ChromaStyle, it)
	if err != nil {
		return fmt.Errorf("format config: %w", err)
	}

	return nil
}

// readInput reads the document at path. An empty path or "-" reads stdin,
// which must not be a terminal.
func readInput(cmd *cobra.Command, path string) (ui.Document, error) {
	if path == "" || path == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && isTerminal(f) {
			return ui.Document{}, fmt.Errorf("%w: pass a path or pipe text to stdin", ErrNoInput)
		}

		return ui.ReadDocument(in, "stdin") //nolint:wrapcheck // Already wrapped.
	}

	f, err := os.Open(path) //nolint:gosec // G304: Path is user supplied.
	if err != nil {
		return ui.Document{}, fmt.Errorf("open input: %w", err)
	}

	defer func() {
		err := f.Close()
		if err != nil {
			slog.Debug("close input", slog.Any("err", err))
		}
	}()

	return ui.ReadDocument(f, filepath.Base(path)) //nolint:wrapcheck // Already wrapped.
}

func writePage(w io.Writer, doc ui.Document, opts ui.Options) error {
	page := min(max(opts.Page, 1), doc.PageCount(opts.PageSize))

	for _, line := range doc.Page(page, opts.PageSize) {
		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.Backlog) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Len()),
		slog.Int("max", buf.Cap()),
		slog.Int("dropped", buf.Dropped()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}

// runUI starts the UI program, reloading configPath on change when watching.
func runUI(
	ctx context.Context,
	cmd *cobra.Command,
	ra *RunArgs,
	cfg *config.Config,
	configPath string,
	doc ui.Document,
	opts ui.Options,
) error {
	p := ui.NewProgram(ui.New(cfg.UI, doc, opts))

	if ra.Watch {
		prev := configYAML(cfg)

		w, err := config.NewWatcher(configPath, func(c *config.Config, err error) {
			msg := ui.ConfigReloadedMsg{Err: err}
			if c != nil {
				ra.applyFlags(cmd, c.UI)
				msg.Config = c.UI

				next := configYAML(c)
				slog.Debug("config changed",
					slog.String("diff", udiff.Unified("before", "after", prev, next)),
				)

				prev = next
			}

			p.Send(msg)
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}

		ctx, cancel := context.WithCancel(ctx)

		defer func() {
			cancel()

			err := w.Close()
			if err != nil {
				slog.Error("close config watcher", slog.Any("err", err))
			}
		}()

		go w.Run(ctx)
	}

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tea: %w", err)
	}

	return nil
}

func configYAML(c *config.Config) string {
	b, err := c.MarshalYAML()
	if err != nil {
		return ""
	}

	return string(b)
}

func themeCompletion(_ *cobra.Command, _ []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if toComplete == "" {
		return theme.Names(), cobra.ShellCompDirectiveNoFileComp
	}

	return theme.Suggest(toComplete, 10), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: File descriptors fit in int.
}
