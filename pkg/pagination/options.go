package pagination

// Defaults used when the corresponding option is not given.
const (
	DefaultPage      = 1
	DefaultPageCount = 1
	DefaultPageSlot  = 9
)

// DefaultPageSizes is the size list used when none is configured.
var DefaultPageSizes = []int{10}

// Opt configures a [Controller].
type Opt func(*Controller)

// WithPage controls the current page. See [Controller.ControlPage].
func WithPage(page int) Opt {
	return func(c *Controller) {
		c.page.Override(page)
	}
}

// WithDefaultPage sets the initial uncontrolled page.
func WithDefaultPage(page int) Opt {
	return func(c *Controller) {
		c.page.Set(page)
	}
}

// WithPageCount controls the page count.
func WithPageCount(n int) Opt {
	return func(c *Controller) {
		c.pageCount.Override(n)
	}
}

// WithDefaultPageCount sets the uncontrolled page count.
func WithDefaultPageCount(n int) Opt {
	return func(c *Controller) {
		c.pageCount.Set(n)
	}
}

// WithItemCount sets the total item count. Unless a page count is
// controlled, the page count is derived from it and the page size.
func WithItemCount(n int) Opt {
	return func(c *Controller) {
		c.SetItemCount(n)
	}
}

// WithPageSize controls the page size.
func WithPageSize(size int) Opt {
	return func(c *Controller) {
		c.pageSize.Override(size)
	}
}

// WithDefaultPageSize sets the initial uncontrolled page size. Without it,
// the first entry of the page size list is used.
func WithDefaultPageSize(size int) Opt {
	return func(c *Controller) {
		c.defaultPageSize = size
	}
}

// WithPageSizes sets the selectable page sizes.
func WithPageSizes(sizes ...int) Opt {
	return func(c *Controller) {
		c.SetPageSizes(sizes)
	}
}

// WithPageSlot sets the number of page item slots.
func WithPageSlot(slot int) Opt {
	return func(c *Controller) {
		c.SetPageSlot(slot)
	}
}

// WithDisabled disables all gestures.
func WithDisabled(disabled bool) Opt {
	return func(c *Controller) {
		c.disabled = disabled
	}
}

// WithOnUpdatePage registers a page-changed handler.
func WithOnUpdatePage(fn func(page int)) Opt {
	return func(c *Controller) {
		c.OnUpdatePage(fn)
	}
}

// WithOnUpdatePageSize registers a page-size-changed handler.
func WithOnUpdatePageSize(fn func(pageSize int)) Opt {
	return func(c *Controller) {
		c.OnUpdatePageSize(fn)
	}
}

// WithOnChange registers a legacy page-changed handler.
//
// Deprecated: use [WithOnUpdatePage].
func WithOnChange(fn func(page int)) Opt {
	return func(c *Controller) {
		c.handlers.change = append(c.handlers.change, fn)
	}
}

// WithOnPageSizeChange registers a legacy page-size-changed handler.
//
// Deprecated: use [WithOnUpdatePageSize].
func WithOnPageSizeChange(fn func(pageSize int)) Opt {
	return func(c *Controller) {
		c.handlers.pageSizeChange = append(c.handlers.pageSizeChange, fn)
	}
}
