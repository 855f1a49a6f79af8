package ui

import (
	"errors"

	"github.com/macropower/pagebar/pkg/keys"
	"github.com/macropower/pagebar/pkg/ui/pagebar"
)

type KeyBinds struct {
	Common  *CommonKeyBinds   `json:"common,omitempty"  jsonschema:"title=Common Key Bindings"`
	Pagebar *pagebar.KeyBinds `json:"pagebar,omitempty" jsonschema:"title=Page Bar Key Bindings"`
}

func NewKeyBinds() *KeyBinds {
	kb := &KeyBinds{}
	kb.EnsureDefaults()

	return kb
}

func (kb *KeyBinds) EnsureDefaults() {
	if kb.Common == nil {
		kb.Common = &CommonKeyBinds{}
	}

	if kb.Pagebar == nil {
		kb.Pagebar = &pagebar.KeyBinds{}
	}

	kb.Common.EnsureDefaults()
	kb.Pagebar.EnsureDefaults()
}

func (kb *KeyBinds) Validate() error {
	return errors.Join(
		keys.ValidateBinds(kb.Common.GetKeyBinds(), kb.Pagebar.Navigation()),
		keys.ValidateBinds(kb.Pagebar.Jumper()),
	)
}

type CommonKeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"    jsonschema:"title=Quit"`
	Suspend *keys.KeyBind `json:"suspend,omitempty" jsonschema:"title=Suspend"`
	Copy    *keys.KeyBind `json:"copy,omitempty"    jsonschema:"title=Copy Page"`
	Help    *keys.KeyBind `json:"help,omitempty"    jsonschema:"title=Toggle Help"`
}

func (kb *CommonKeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// ctrl+c always quits.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Suspend,
		keys.NewBind("suspend",
			keys.New("ctrl+z", keys.WithAlias("⌃z"), keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy page",
			keys.New("y"),
		))
	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
}

func (kb *CommonKeyBinds) GetKeyBinds() []*keys.KeyBind {
	return []*keys.KeyBind{
		kb.Quit,
		kb.Suspend,
		kb.Copy,
		kb.Help,
	}
}
