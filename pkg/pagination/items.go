package pagination

import (
	"strconv"
	"strings"
)

// MinPageSlot is the smallest slot budget [ComputeItems] lays out. Smaller
// budgets are raised to it: anchors, their neighbors and the current page
// need five slots.
const MinPageSlot = 5

// ItemKind is the variant of an [Item].
type ItemKind int

const (
	// ItemPage is a numbered page.
	ItemPage ItemKind = iota
	// ItemFastBackward collapses the pages between page 1 and the window.
	ItemFastBackward
	// ItemFastForward collapses the pages between the window and the last page.
	ItemFastForward
)

func (k ItemKind) String() string {
	switch k {
	case ItemPage:
		return "page"
	case ItemFastBackward:
		return "fastBackward"
	case ItemFastForward:
		return "fastForward"
	}

	return "unknown"
}

// Item describes one slot of the page row.
type Item struct {
	Kind ItemKind
	// Page is the page number for [ItemPage], zero otherwise.
	Page   int
	Active bool
}

// String renders the item as plain text, e.g. "4", "[5]" or "«".
func (it Item) String() string {
	switch it.Kind {
	case ItemFastBackward:
		return "«"
	case ItemFastForward:
		return "»"
	}

	s := strconv.Itoa(it.Page)
	if it.Active {
		return "[" + s + "]"
	}

	return s
}

// FormatItems joins the plain text of items with single spaces.
func FormatItems(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.String())
	}

	return strings.Join(parts, " ")
}

// ComputeItems lays out the page row for the current page.
//
// When every page fits in slot, all pages are returned. Otherwise the row is
// page 1, a fast-backward marker or page 2, a window of slot-4 pages around
// the current page, a fast-forward marker or the second to last page, and the
// last page. A marker always stands for at least two pages, and the row is
// exactly slot items long.
//
// A pageCount below 1 is treated as 1, and slot is raised to [MinPageSlot].
func ComputeItems(page, pageCount, slot int) []Item {
	pageCount = max(pageCount, 1)
	slot = max(slot, MinPageSlot)

	if pageCount <= slot {
		items := make([]Item, 0, pageCount)
		for p := 1; p <= pageCount; p++ {
			items = append(items, newPageItem(p, page))
		}

		return items
	}

	first, last := 1, pageCount

	// The window holds (slot-5) neighbors plus the current page, with the
	// extra neighbor on the right for even budgets. It is pushed inward so
	// that it never touches the anchors or the pages next to them.
	delta := slot - 5
	windowEnd := page + (delta+1)/2
	windowEnd = min(max(windowEnd, first+slot-3), last-2)
	windowStart := page - delta/2
	windowStart = max(min(windowStart, last-slot+3), first+2)

	items := make([]Item, 0, slot)
	items = append(items, newPageItem(first, page))

	if windowStart > first+2 {
		items = append(items, Item{Kind: ItemFastBackward})
	} else {
		items = append(items, newPageItem(first+1, page))
	}

	for p := windowStart; p <= windowEnd; p++ {
		items = append(items, newPageItem(p, page))
	}

	if windowEnd < last-2 {
		items = append(items, Item{Kind: ItemFastForward})
	} else {
		items = append(items, newPageItem(last-1, page))
	}

	items = append(items, newPageItem(last, page))

	return items
}

func newPageItem(p, current int) Item {
	return Item{Kind: ItemPage, Page: p, Active: p == current}
}
