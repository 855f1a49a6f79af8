package ui

import (
	"errors"
	"fmt"

	"github.com/macropower/pagebar/pkg/pagination"
	"github.com/macropower/pagebar/pkg/ui/locale"
	"github.com/macropower/pagebar/pkg/ui/theme"
)

var ErrInvalidConfig = errors.New("invalid ui config")

// Config contains TUI-specific configuration.
type Config struct {
	// KeyBinds overrides key bindings.
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Bindings"`
	// Themes registers custom themes by name. Each maps a token name
	// (background, comment, keyword, nameTag, genericInserted, genericDeleted)
	// to a chroma style entry such as "bold #800080".
	Themes map[string]map[string]string `json:"themes,omitempty" jsonschema:"title=Custom Themes"`
	// DefaultPageSize is the initial page size. Defaults to the first entry
	// of PageSizes.
	DefaultPageSize *int `json:"defaultPageSize,omitempty" jsonschema:"title=Default Page Size,minimum=1"`
	// PageSlot is the number of items in the page row.
	PageSlot *int `json:"pageSlot,omitempty" jsonschema:"title=Page Slot,minimum=1"`
	// ShowSizePicker shows the page size picker.
	ShowSizePicker *bool `json:"showSizePicker,omitempty" jsonschema:"title=Show Size Picker"`
	// ShowQuickJumper shows the go-to-page input.
	ShowQuickJumper *bool `json:"showQuickJumper,omitempty" jsonschema:"title=Show Quick Jumper"`
	// ShowInfo shows the range of lines on the current page.
	ShowInfo *bool `json:"showInfo,omitempty" jsonschema:"title=Show Info"`
	// ShowLineNumbers prefixes lines with their number.
	ShowLineNumbers *bool `json:"showLineNumbers,omitempty" jsonschema:"title=Show Line Numbers"`
	// EnableMouse enables clicks and hover on the page bar.
	EnableMouse *bool `json:"enableMouse,omitempty" jsonschema:"title=Enable Mouse"`
	// Theme is a chroma style name, or auto, dark or light.
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
	// Locale is a BCP 47 language tag, e.g. en-US or de-DE.
	Locale string `json:"locale,omitempty" jsonschema:"title=Locale"`
	// PageSizes are the sizes offered by the size picker.
	PageSizes []int `json:"pageSizes,omitempty" jsonschema:"title=Page Sizes"`
}

func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.KeyBinds == nil {
		c.KeyBinds = NewKeyBinds()
	} else {
		c.KeyBinds.EnsureDefaults()
	}

	if c.Theme == "" {
		c.Theme = "auto"
	}

	if c.Locale == "" {
		c.Locale = "en-US"
	}

	if len(c.PageSizes) == 0 {
		c.PageSizes = []int{10, 20, 50, 100}
	}

	setDefault(&c.PageSlot, pagination.DefaultPageSlot)
	setDefault(&c.ShowSizePicker, true)
	setDefault(&c.ShowQuickJumper, true)
	setDefault(&c.ShowInfo, true)
	setDefault(&c.ShowLineNumbers, true)
	setDefault(&c.EnableMouse, true)
}

func setDefault[T any](p **T, v T) {
	if *p == nil {
		*p = &v
	}
}

// Validate checks values a schema cannot express.
func (c *Config) Validate() error {
	var errs []error

	for _, size := range c.PageSizes {
		if size < 1 {
			errs = append(errs, fmt.Errorf("%w: page size %d must be positive", ErrInvalidConfig, size))
		}
	}

	if c.DefaultPageSize != nil && *c.DefaultPageSize < 1 {
		errs = append(errs, fmt.Errorf("%w: default page size %d must be positive", ErrInvalidConfig, *c.DefaultPageSize))
	}

	if _, err := locale.New(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}

	if c.KeyBinds != nil {
		if err := c.KeyBinds.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}

// RegisterThemes registers the custom themes.
func (c *Config) RegisterThemes() error {
	for name, entries := range c.Themes {
		if err := theme.Register(name, entries); err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
	}

	return nil
}

// PageSize returns the initial page size.
func (c *Config) PageSize() int {
	if c.DefaultPageSize != nil {
		return *c.DefaultPageSize
	}

	if len(c.PageSizes) > 0 {
		return c.PageSizes[0]
	}

	return pagination.DefaultPageSizes[0]
}
