// Package uitest helps test Bubble Tea models: it runs models that return
// their concrete type from Update under teatest, and splits styled output
// into segments so tests can check how a piece of text was drawn.
//
//	tm := uitest.NewTestModel(t, pagebar.New(cfg), uitest.Compact)
//	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
//	uitest.WaitForText(t, tm.Output(), "[2]")
package uitest
