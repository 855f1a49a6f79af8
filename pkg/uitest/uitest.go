package uitest

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
)

// Size is a terminal size.
type Size struct {
	Width  int
	Height int
}

var (
	Compact = Size{Width: 80, Height: 24}
	Wide    = Size{Width: 160, Height: 50}
)

// Model is a Bubble Tea model whose Update returns its concrete type.
type Model[T any] interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
}

type adapter[T Model[T]] struct {
	model T
}

func (a adapter[T]) Init() tea.Cmd {
	return a.model.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (a adapter[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.model.Update(msg)
	return adapter[T]{model: m}, cmd
}

func (a adapter[T]) View() string {
	return a.model.View()
}

// NewTestModel starts m under teatest with the given terminal size.
func NewTestModel[T Model[T]](tb testing.TB, m T, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, adapter[T]{model: m},
		teatest.WithInitialTermSize(size.Width, size.Height))
}

// FinalModel waits for the program to exit and returns the last model.
func FinalModel[T Model[T]](tb testing.TB, tm *teatest.TestModel, timeout time.Duration) T {
	tb.Helper()

	fm := tm.FinalModel(tb, teatest.WithFinalTimeout(timeout))

	a, ok := fm.(adapter[T])
	if !ok {
		tb.Fatalf("unexpected final model %T", fm)
	}

	return a.model
}

// WaitForText waits until the ANSI-stripped output contains text.
func WaitForText(tb testing.TB, r io.Reader, text string) {
	tb.Helper()

	teatest.WaitFor(tb, r, func(b []byte) bool {
		return bytes.Contains([]byte(ansi.Strip(string(b))), []byte(text))
	}, teatest.WithDuration(3*time.Second))
}
