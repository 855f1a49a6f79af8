package pagebar

import (
	"github.com/macropower/pagebar/pkg/keys"
)

type KeyBinds struct {
	Prev         *keys.KeyBind `json:"prev,omitempty"         jsonschema:"title=Previous Page"`
	Next         *keys.KeyBind `json:"next,omitempty"         jsonschema:"title=Next Page"`
	FastBackward *keys.KeyBind `json:"fastBackward,omitempty" jsonschema:"title=Fast Backward"`
	FastForward  *keys.KeyBind `json:"fastForward,omitempty"  jsonschema:"title=Fast Forward"`
	First        *keys.KeyBind `json:"first,omitempty"        jsonschema:"title=First Page"`
	Last         *keys.KeyBind `json:"last,omitempty"         jsonschema:"title=Last Page"`
	SizeNext     *keys.KeyBind `json:"sizeNext,omitempty"     jsonschema:"title=Next Page Size"`
	SizePrev     *keys.KeyBind `json:"sizePrev,omitempty"     jsonschema:"title=Previous Page Size"`

	// Quick jumper.
	Jump   *keys.KeyBind `json:"jump,omitempty"   jsonschema:"title=Focus Jumper"`
	Commit *keys.KeyBind `json:"commit,omitempty" jsonschema:"title=Commit Jumper"`
	Cancel *keys.KeyBind `json:"cancel,omitempty" jsonschema:"title=Cancel Jumper"`
}

func NewKeyBinds() *KeyBinds {
	kb := &KeyBinds{}
	kb.EnsureDefaults()

	return kb
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Prev,
		keys.NewBind("previous page",
			keys.New("left", keys.WithAlias("←")),
			keys.New("h"),
		))
	keys.SetDefaultBind(&kb.Next,
		keys.NewBind("next page",
			keys.New("right", keys.WithAlias("→")),
			keys.New("l"),
		))
	keys.SetDefaultBind(&kb.FastBackward,
		keys.NewBind("jump back",
			keys.New("shift+left", keys.WithAlias("⇧←")),
			keys.New("H"),
		))
	keys.SetDefaultBind(&kb.FastForward,
		keys.NewBind("jump forward",
			keys.New("shift+right", keys.WithAlias("⇧→")),
			keys.New("L"),
		))
	keys.SetDefaultBind(&kb.First,
		keys.NewBind("first page",
			keys.New("home"),
			keys.New("g"),
		))
	keys.SetDefaultBind(&kb.Last,
		keys.NewBind("last page",
			keys.New("end"),
			keys.New("G"),
		))
	keys.SetDefaultBind(&kb.SizeNext,
		keys.NewBind("larger pages",
			keys.New("+"),
			keys.New("]"),
		))
	keys.SetDefaultBind(&kb.SizePrev,
		keys.NewBind("smaller pages",
			keys.New("-"),
			keys.New("["),
		))
	keys.SetDefaultBind(&kb.Jump,
		keys.NewBind("go to page",
			keys.New(":"),
		))
	keys.SetDefaultBind(&kb.Commit,
		keys.NewBind("confirm",
			keys.New("enter", keys.WithAlias("↵")),
		))
	keys.SetDefaultBind(&kb.Cancel,
		keys.NewBind("cancel",
			keys.New("esc"),
		))
}

// Navigation returns the binds active while the jumper is not focused.
func (kb *KeyBinds) Navigation() []*keys.KeyBind {
	return []*keys.KeyBind{
		kb.Prev,
		kb.Next,
		kb.FastBackward,
		kb.FastForward,
		kb.First,
		kb.Last,
		kb.SizeNext,
		kb.SizePrev,
		kb.Jump,
	}
}

// Jumper returns the binds active while the jumper is focused.
func (kb *KeyBinds) Jumper() []*keys.KeyBind {
	return []*keys.KeyBind{
		kb.Commit,
		kb.Cancel,
	}
}

func (kb *KeyBinds) Validate() error {
	return keys.ValidateBinds(kb.Navigation())
}
