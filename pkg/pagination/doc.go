// Package pagination implements the state and layout behind a pagination
// control.
//
// It has two parts:
//
//   - [ComputeItems] decides which page numbers and fast-jump markers are
//     shown for a current page, a page count and a slot budget. It is pure and
//     safe to call on every render.
//   - [Controller] owns the current page and page size. Each value may be
//     supplied by the owner (controlled) or tracked internally (uncontrolled),
//     see [Cell]. Gestures such as [Controller.Forward] clamp their targets and
//     notify registered handlers only when the merged value changes.
//
// The package has no rendering code; see package
// github.com/macropower/pagebar/pkg/ui/pagebar for the Bubble Tea widget.
package pagination
