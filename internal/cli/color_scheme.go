package cli

import (
	"image/color"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	lipglossv2 "charm.land/lipgloss/v2"

	"github.com/macropower/pagebar/pkg/config"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

// ColorSchemeFunc uses the theme from the config file, falling back to the
// default theme when the file cannot be loaded.
func ColorSchemeFunc(c lipglossv2.LightDarkFunc) fang.ColorScheme {
	return ThemeColorScheme(themeFromFile(config.GetPath()), c)
}

func themeFromFile(path string) *theme.Theme {
	l, err := config.NewLoaderFromFile(path)
	if err != nil {
		return theme.New("auto")
	}

	cfg, err := l.Load()
	if err != nil {
		return theme.New("auto")
	}

	_ = cfg.UI.RegisterThemes() //nolint:errcheck // Falls back to the default style.

	return theme.New(cfg.UI.Theme)
}

func ThemeColorScheme(t *theme.Theme, c lipglossv2.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           t.TextStyle.GetForeground(),
		Title:          t.HeaderStyle.GetBackground(),
		Codeblock:      c(charmtone.Salt, lipglossv2.Color("#2F2E36")),
		Program:        t.HelpKeyStyle.GetForeground(),
		Command:        t.HelpKeyStyle.GetForeground(),
		DimmedArgument: t.InfoStyle.GetForeground(),
		Comment:        t.InfoStyle.GetForeground(),
		Flag:           t.ButtonStyle.GetForeground(),
		Argument:       t.TextStyle.GetForeground(),
		Description:    t.TextStyle.GetForeground(),
		FlagDefault:    t.MarkerStyle.GetForeground(),
		QuotedString:   t.TextStyle.GetForeground(),
		ErrorHeader: [2]color.Color{
			t.HeaderStyle.GetForeground(),
			t.ErrorStyle.GetForeground(),
		},
	}
}
