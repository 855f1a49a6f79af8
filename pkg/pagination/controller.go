package pagination

import (
	"log/slog"
	"slices"
)

type handlers struct {
	updatePage     []func(int)
	updatePageSize []func(int)

	// Legacy names, called after the primary handlers with the same value.
	change         []func(int)
	pageSizeChange []func(int)
}

// Controller owns the page and page size of a pagination control and
// translates gestures into state changes.
//
// Page, page size and page count are [Cell]s: the owner may control them
// with the Control* methods, in which case gestures still update the
// internal values but the merged values only change when the owner supplies
// new ones.
//
// A Controller is not safe for concurrent use; it is meant to be driven from
// a single UI event loop.
type Controller struct {
	page      *Cell[int]
	pageSize  *Cell[int]
	pageCount *Cell[int]

	handlers   handlers
	jumperText string
	pageSizes  []int

	itemCount       int
	defaultPageSize int
	pageSlot        int

	hasItemCount      bool
	disabled          bool
	fastBackwardHover bool
	fastForwardHover  bool
}

// New creates a new [Controller].
func New(opts ...Opt) *Controller {
	c := &Controller{
		page:      NewCell(DefaultPage),
		pageSize:  NewCell(0),
		pageCount: NewCell(DefaultPageCount),
		pageSizes: slices.Clone(DefaultPageSizes),
		pageSlot:  DefaultPageSlot,
	}
	for _, opt := range opts {
		opt(c)
	}

	size := c.defaultPageSize
	if size <= 0 {
		size = c.pageSizes[0]
	}

	c.pageSize.Set(size)

	return c
}

// Page returns the merged current page.
func (c *Controller) Page() int {
	return c.page.Get()
}

// PageSize returns the merged page size.
func (c *Controller) PageSize() int {
	return c.pageSize.Get()
}

// PageCount returns the effective page count, which is at least 1.
//
// A controlled page count wins. Otherwise, when an item count is known the
// page count is derived from it, and the uncontrolled page count is used
// last.
func (c *Controller) PageCount() int {
	if !c.pageCount.Overridden() && c.hasItemCount {
		size := c.PageSize()
		if size <= 0 {
			return 1
		}

		return max(1, (c.itemCount+size-1)/size)
	}

	return max(1, c.pageCount.Get())
}

// ItemCount returns the item count and whether one is set.
func (c *Controller) ItemCount() (int, bool) {
	return c.itemCount, c.hasItemCount
}

// PageSizes returns a copy of the selectable page sizes.
func (c *Controller) PageSizes() []int {
	return slices.Clone(c.pageSizes)
}

// PageSlot returns the slot budget after clamping to [MinPageSlot].
func (c *Controller) PageSlot() int {
	return c.pageSlot
}

// Disabled reports whether gestures are ignored.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// Items lays out the page row for the current state.
func (c *Controller) Items() []Item {
	return ComputeItems(c.Page(), c.PageCount(), c.pageSlot)
}

// Range returns the 1-based indexes of the first and last item on the
// current page. It returns zeros when no item count is known or the page is
// past the end.
func (c *Controller) Range() (int, int) {
	if !c.hasItemCount || c.itemCount <= 0 {
		return 0, 0
	}

	size := c.PageSize()
	start := (c.Page()-1)*size + 1
	if start < 1 || start > c.itemCount {
		return 0, 0
	}

	return start, min(start+size-1, c.itemCount)
}

// CanBackward reports whether the backward button is usable.
func (c *Controller) CanBackward() bool {
	page := c.Page()
	return !c.disabled && page > 1 && page <= c.PageCount()
}

// CanForward reports whether the forward button is usable.
func (c *Controller) CanForward() bool {
	page := c.Page()
	return !c.disabled && page >= 1 && page < c.PageCount()
}

// GoToPage moves to page without clamping. Callers clamp first. Nothing
// happens when page is already the merged page; otherwise the internal page
// is updated and page-changed handlers fire once.
func (c *Controller) GoToPage(page int) {
	current := c.page.Get()
	if page == current {
		return
	}

	c.page.Set(page)

	slog.Debug("page changed",
		slog.Int("from", current),
		slog.Int("to", page),
		slog.Bool("controlled", c.page.Overridden()),
	)

	for _, fn := range c.handlers.updatePage {
		fn(page)
	}
	for _, fn := range c.handlers.change {
		fn(page)
	}
}

// Forward moves one page ahead, stopping at the last page.
func (c *Controller) Forward() {
	if c.disabled {
		return
	}

	c.GoToPage(min(c.Page()+1, c.PageCount()))
}

// Backward moves one page back, stopping at page 1.
func (c *Controller) Backward() {
	if c.disabled {
		return
	}

	c.GoToPage(max(c.Page()-1, 1))
}

// FastForward jumps [Controller.JumpSize] pages ahead, stopping at the last
// page.
func (c *Controller) FastForward() {
	if c.disabled {
		return
	}

	c.GoToPage(min(c.Page()+c.JumpSize(), c.PageCount()))
}

// FastBackward jumps [Controller.JumpSize] pages back, stopping at page 1.
func (c *Controller) FastBackward() {
	if c.disabled {
		return
	}

	c.GoToPage(max(c.Page()-c.JumpSize(), 1))
}

// First moves to page 1.
func (c *Controller) First() {
	if c.disabled {
		return
	}

	c.GoToPage(1)
}

// Last moves to the last page.
func (c *Controller) Last() {
	if c.disabled {
		return
	}

	c.GoToPage(c.PageCount())
}

// JumpSize is the number of pages skipped by the fast gestures.
func (c *Controller) JumpSize() int {
	return c.pageSlot - 4
}

// SetPageSize selects a page size. Nothing happens when size is already the
// merged page size; otherwise the internal size is updated and
// page-size-changed handlers fire once.
//
// The page is left alone. The owner knows how the page count follows from
// the page size and is expected to bring the page back into range.
func (c *Controller) SetPageSize(size int) {
	current := c.pageSize.Get()
	if size == current {
		return
	}

	c.pageSize.Set(size)

	slog.Debug("page size changed",
		slog.Int("from", current),
		slog.Int("to", size),
		slog.Bool("controlled", c.pageSize.Overridden()),
	)

	for _, fn := range c.handlers.updatePageSize {
		fn(size)
	}
	for _, fn := range c.handlers.pageSizeChange {
		fn(size)
	}
}

// JumperText returns the quick jumper buffer.
func (c *Controller) JumperText() string {
	return c.jumperText
}

// SetJumperText replaces the quick jumper buffer.
func (c *Controller) SetJumperText(s string) {
	c.jumperText = s
}

// CommitJumper goes to the page typed into the quick jumper.
//
// Text that is not a number, or a number outside [1, PageCount], is kept and
// nothing else happens. On success the buffer is cleared and CommitJumper
// returns true, telling the caller to release input focus.
func (c *Controller) CommitJumper() bool {
	if c.disabled {
		return false
	}

	page, ok := ParsePage(c.jumperText)
	if !ok || page < 1 || page > c.PageCount() {
		slog.Debug("ignore quick jumper input",
			slog.String("text", c.jumperText),
			slog.Int("page_count", c.PageCount()),
		)

		return false
	}

	c.GoToPage(page)
	c.jumperText = ""

	return true
}

// Activate handles a click on a page row item.
func (c *Controller) Activate(it Item) {
	if c.disabled {
		return
	}

	switch it.Kind {
	case ItemPage:
		c.GoToPage(it.Page)
	case ItemFastBackward:
		c.FastBackward()
	case ItemFastForward:
		c.FastForward()
	}
}

// Hover marks a fast marker as hovered. Other items are ignored.
func (c *Controller) Hover(it Item) {
	c.setHover(it, true)
}

// Leave clears the hover state set by [Controller.Hover].
func (c *Controller) Leave(it Item) {
	c.setHover(it, false)
}

func (c *Controller) setHover(it Item, hovered bool) {
	if c.disabled {
		return
	}

	switch it.Kind {
	case ItemFastBackward:
		c.fastBackwardHover = hovered
	case ItemFastForward:
		c.fastForwardHover = hovered
	case ItemPage:
	}
}

// FastBackwardHovered reports whether the fast-backward marker is hovered.
func (c *Controller) FastBackwardHovered() bool {
	return c.fastBackwardHover
}

// FastForwardHovered reports whether the fast-forward marker is hovered.
func (c *Controller) FastForwardHovered() bool {
	return c.fastForwardHover
}

// OnUpdatePage registers a page-changed handler.
func (c *Controller) OnUpdatePage(fn func(page int)) {
	c.handlers.updatePage = append(c.handlers.updatePage, fn)
}

// OnUpdatePageSize registers a page-size-changed handler.
func (c *Controller) OnUpdatePageSize(fn func(pageSize int)) {
	c.handlers.updatePageSize = append(c.handlers.updatePageSize, fn)
}

// ControlPage supplies the page from the owner. It does not notify.
func (c *Controller) ControlPage(page int) {
	c.page.Override(page)
}

// ReleasePage returns the page to internal tracking.
func (c *Controller) ReleasePage() {
	c.page.Release()
}

// ControlPageSize supplies the page size from the owner. It does not notify.
func (c *Controller) ControlPageSize(size int) {
	c.pageSize.Override(size)
}

// ReleasePageSize returns the page size to internal tracking.
func (c *Controller) ReleasePageSize() {
	c.pageSize.Release()
}

// ControlPageCount supplies the page count from the owner.
func (c *Controller) ControlPageCount(n int) {
	c.pageCount.Override(n)
}

// ReleasePageCount returns the page count to the item count or default.
func (c *Controller) ReleasePageCount() {
	c.pageCount.Release()
}

// SetItemCount sets the total item count.
func (c *Controller) SetItemCount(n int) {
	c.itemCount = max(n, 0)
	c.hasItemCount = true
}

// ClearItemCount forgets the item count.
func (c *Controller) ClearItemCount() {
	c.itemCount = 0
	c.hasItemCount = false
}

// SetPageSizes replaces the selectable page sizes. Non-positive entries are
// dropped; an empty result falls back to [DefaultPageSizes].
func (c *Controller) SetPageSizes(sizes []int) {
	valid := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s > 0 {
			valid = append(valid, s)
		}
	}

	if len(valid) == 0 {
		valid = slices.Clone(DefaultPageSizes)
	}

	c.pageSizes = valid
}

// SetPageSlot sets the slot budget, raised to [MinPageSlot].
func (c *Controller) SetPageSlot(slot int) {
	c.pageSlot = max(slot, MinPageSlot)
}

// SetDisabled enables or disables gestures. Disabling clears hover state.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.fastBackwardHover = false
		c.fastForwardHover = false
	}
}
