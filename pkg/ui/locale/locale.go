// Package locale provides the translated labels of the page bar.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var ErrInvalidLocale = errors.New("invalid locale")

// Message keys.
const (
	keyGoto       = "Goto"
	keySizeOption = "%d / page"
	keyRange      = "%d-%d of %d"
	keyPage       = "Page %d of %d"
	keyLines      = "%d lines"
)

// Supported lists the locales with translations; the first is the fallback.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.SimplifiedChinese,
	language.MustParse("ja-JP"),
	language.MustParse("de-DE"),
}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

// Default is the en-US locale.
var Default = mustNew("en-US")

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))

	set := func(tag language.Tag, msgs map[string]string) {
		for k, v := range msgs {
			if err := b.SetString(tag, k, v); err != nil {
				panic(fmt.Sprintf("locale %s: %v", tag, err))
			}
		}
	}

	set(Supported[0], map[string]string{
		keyGoto:       "Goto",
		keySizeOption: "%d / page",
		keyRange:      "%d-%d of %d",
		keyPage:       "Page %d of %d",
		keyLines:      "%d lines",
	})
	set(Supported[1], map[string]string{
		keyGoto:       "跳至",
		keySizeOption: "%d / 页",
		keyRange:      "第 %d-%d 条，共 %d 条",
		keyPage:       "第 %d 页，共 %d 页",
		keyLines:      "%d 行",
	})
	set(Supported[2], map[string]string{
		keyGoto:       "ページジャンプ",
		keySizeOption: "%d / ページ",
		keyRange:      "%d-%d 件目 / 全 %d 件",
		keyPage:       "%d / %d ページ",
		keyLines:      "%d 行",
	})
	set(Supported[3], map[string]string{
		keyGoto:       "Gehe zu",
		keySizeOption: "%d / Seite",
		keyRange:      "%d-%d von %d",
		keyPage:       "Seite %d von %d",
		keyLines:      "%d Zeilen",
	})

	return b
}

// Locale formats page bar labels for one language.
type Locale struct {
	printer *message.Printer
	tag     language.Tag
}

// New returns the closest supported locale for a BCP 47 name such as
// "de-DE". An empty name selects en-US. Well-formed names without a
// translation fall back to en-US.
func New(name string) (*Locale, error) {
	if name == "" {
		name = Supported[0].String()
	}

	t, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, name, err)
	}

	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		idx = 0
	}

	tag := Supported[idx]

	return &Locale{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

func mustNew(name string) *Locale {
	l, err := New(name)
	if err != nil {
		panic(err)
	}

	return l
}

// Tag returns the matched language.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// Goto labels the quick jumper.
func (l *Locale) Goto() string {
	return l.printer.Sprintf(keyGoto)
}

// SizeOption labels a page size choice, e.g. "20 / page".
func (l *Locale) SizeOption(size int) string {
	return l.printer.Sprintf(keySizeOption, size)
}

// Range describes the items on the current page, e.g. "11-20 of 95".
func (l *Locale) Range(start, end, total int) string {
	return l.printer.Sprintf(keyRange, start, end, total)
}

// PageOf describes the position in the page row, e.g. "Page 2 of 10".
func (l *Locale) PageOf(page, count int) string {
	return l.printer.Sprintf(keyPage, page, count)
}

// Lines counts lines, e.g. "1,204 lines".
func (l *Locale) Lines(n int) string {
	return l.printer.Sprintf(keyLines, n)
}
