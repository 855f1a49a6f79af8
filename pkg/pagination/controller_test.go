package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagebar/pkg/pagination"
)

// recorder collects notifications from a [pagination.Controller].
type recorder struct {
	pages          []int
	legacyPages    []int
	pageSizes      []int
	legacyPageSize []int
}

func (r *recorder) opts() []pagination.Opt {
	return []pagination.Opt{
		pagination.WithOnUpdatePage(func(p int) { r.pages = append(r.pages, p) }),
		pagination.WithOnChange(func(p int) { r.legacyPages = append(r.legacyPages, p) }),
		pagination.WithOnUpdatePageSize(func(s int) { r.pageSizes = append(r.pageSizes, s) }),
		pagination.WithOnPageSizeChange(func(s int) { r.legacyPageSize = append(r.legacyPageSize, s) }),
	}
}

func newController(r *recorder, opts ...pagination.Opt) *pagination.Controller {
	return pagination.New(append(r.opts(), opts...)...)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	c := pagination.New()
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 10, c.PageSize())
	assert.Equal(t, 1, c.PageCount())
	assert.Equal(t, 9, c.PageSlot())
	assert.Equal(t, []int{10}, c.PageSizes())
	assert.False(t, c.Disabled())
	assert.Equal(t, "[1]", pagination.FormatItems(c.Items()))
}

func TestNewPageSize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts []pagination.Opt
		want int
	}{
		"first configured size": {
			opts: []pagination.Opt{pagination.WithPageSizes(20, 50)},
			want: 20,
		},
		"default page size wins over list": {
			opts: []pagination.Opt{pagination.WithPageSizes(20, 50), pagination.WithDefaultPageSize(50)},
			want: 50,
		},
		"controlled page size wins over default": {
			opts: []pagination.Opt{pagination.WithDefaultPageSize(50), pagination.WithPageSize(30)},
			want: 30,
		},
		"invalid sizes fall back": {
			opts: []pagination.Opt{pagination.WithPageSizes(0, -1)},
			want: 10,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := pagination.New(tc.opts...)
			assert.Equal(t, tc.want, c.PageSize())
		})
	}
}

func TestGoToPage(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r, pagination.WithPageCount(10))

	c.GoToPage(1)
	assert.Empty(t, r.pages, "same page must not notify")

	c.GoToPage(4)
	assert.Equal(t, 4, c.Page())
	assert.Equal(t, []int{4}, r.pages)
	assert.Equal(t, r.pages, r.legacyPages)

	// GoToPage does not clamp.
	c.GoToPage(99)
	assert.Equal(t, 99, c.Page())
	assert.Equal(t, []int{4, 99}, r.pages)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		gesture   func(*pagination.Controller)
		want      []int
		page      int
		pageCount int
		slot      int
		noCount   bool
	}{
		"forward": {
			gesture: (*pagination.Controller).Forward,
			page:    3, pageCount: 10,
			want: []int{4},
		},
		"forward at last page": {
			gesture: (*pagination.Controller).Forward,
			page:    10, pageCount: 10,
		},
		"forward without page count": {
			gesture: (*pagination.Controller).Forward,
			page:    1, noCount: true,
		},
		"backward": {
			gesture: (*pagination.Controller).Backward,
			page:    3, pageCount: 10,
			want: []int{2},
		},
		"backward at first page": {
			gesture: (*pagination.Controller).Backward,
			page:    1, pageCount: 10,
		},
		"fast forward": {
			gesture: (*pagination.Controller).FastForward,
			page:    5, pageCount: 20, slot: 9,
			want: []int{10},
		},
		"fast forward clamps": {
			gesture: (*pagination.Controller).FastForward,
			page:    18, pageCount: 20, slot: 9,
			want: []int{20},
		},
		"fast forward with small slot": {
			gesture: (*pagination.Controller).FastForward,
			page:    5, pageCount: 20, slot: 7,
			want: []int{8},
		},
		"fast backward": {
			gesture: (*pagination.Controller).FastBackward,
			page:    12, pageCount: 20, slot: 9,
			want: []int{7},
		},
		"fast backward clamps": {
			gesture: (*pagination.Controller).FastBackward,
			page:    3, pageCount: 20, slot: 9,
			want: []int{1},
		},
		"first": {
			gesture: (*pagination.Controller).First,
			page:    7, pageCount: 20,
			want: []int{1},
		},
		"last": {
			gesture: (*pagination.Controller).Last,
			page:    7, pageCount: 20,
			want: []int{20},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := &recorder{}
			opts := []pagination.Opt{pagination.WithDefaultPage(tc.page)}
			if !tc.noCount {
				opts = append(opts, pagination.WithPageCount(tc.pageCount))
			}
			if tc.slot != 0 {
				opts = append(opts, pagination.WithPageSlot(tc.slot))
			}

			c := newController(r, opts...)
			tc.gesture(c)

			assert.Equal(t, tc.want, r.pages)
			assert.Equal(t, tc.want, r.legacyPages)
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r,
		pagination.WithDefaultPage(5),
		pagination.WithPageCount(20),
		pagination.WithDisabled(true),
	)

	c.Forward()
	c.Backward()
	c.FastForward()
	c.FastBackward()
	c.First()
	c.Last()
	c.Activate(pagination.Item{Kind: pagination.ItemPage, Page: 2})
	c.Hover(pagination.Item{Kind: pagination.ItemFastForward})
	c.SetJumperText("3")
	assert.False(t, c.CommitJumper())

	assert.Empty(t, r.pages)
	assert.Equal(t, 5, c.Page())
	assert.False(t, c.FastForwardHovered())
	assert.False(t, c.CanForward())
	assert.False(t, c.CanBackward())

	c.SetDisabled(false)
	c.Forward()
	assert.Equal(t, []int{6}, r.pages)
}

func TestSetPageSize(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r,
		pagination.WithPageSizes(10, 20, 50),
		pagination.WithDefaultPage(4),
		pagination.WithItemCount(95),
	)
	require.Equal(t, 10, c.PageSize())
	require.Equal(t, 10, c.PageCount())

	c.SetPageSize(10)
	assert.Empty(t, r.pageSizes, "same size must not notify")

	c.SetPageSize(50)
	assert.Equal(t, []int{50}, r.pageSizes)
	assert.Equal(t, r.pageSizes, r.legacyPageSize)
	assert.Equal(t, 50, c.PageSize())
	assert.Equal(t, 2, c.PageCount())

	// The page is left for the owner to fix.
	assert.Equal(t, 4, c.Page())
	assert.Empty(t, r.pages)
}

func TestControlledPage(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r, pagination.WithPage(3), pagination.WithPageCount(10))

	c.Forward()
	assert.Equal(t, []int{4}, r.pages)
	assert.Equal(t, 3, c.Page(), "controlled page only moves when the owner supplies it")

	// The shadow value was still written.
	c.Forward()
	assert.Equal(t, []int{4, 4}, r.pages)

	c.ControlPage(4)
	assert.Equal(t, 4, c.Page())

	c.ReleasePage()
	assert.Equal(t, 4, c.Page(), "released page falls back to the internal value")
}

func TestControlledPageSize(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r, pagination.WithPageSizes(10, 20), pagination.WithPageSize(20))

	c.SetPageSize(20)
	assert.Empty(t, r.pageSizes)

	c.SetPageSize(10)
	assert.Equal(t, []int{10}, r.pageSizes)
	assert.Equal(t, 20, c.PageSize())

	c.ReleasePageSize()
	assert.Equal(t, 10, c.PageSize())
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts []pagination.Opt
		want int
	}{
		"default": {
			want: 1,
		},
		"uncontrolled": {
			opts: []pagination.Opt{pagination.WithDefaultPageCount(7)},
			want: 7,
		},
		"controlled": {
			opts: []pagination.Opt{pagination.WithDefaultPageCount(7), pagination.WithPageCount(3)},
			want: 3,
		},
		"derived from item count": {
			opts: []pagination.Opt{pagination.WithItemCount(101), pagination.WithPageSizes(10)},
			want: 11,
		},
		"controlled wins over item count": {
			opts: []pagination.Opt{pagination.WithItemCount(101), pagination.WithPageCount(4)},
			want: 4,
		},
		"zero items is one page": {
			opts: []pagination.Opt{pagination.WithItemCount(0)},
			want: 1,
		},
		"non-positive count is one page": {
			opts: []pagination.Opt{pagination.WithPageCount(-3)},
			want: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := pagination.New(tc.opts...)
			assert.Equal(t, tc.want, c.PageCount())
		})
	}
}

func TestCommitJumper(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text      string
		wantText  string
		want      []int
		committed bool
	}{
		"not a number": {
			text:     "abc",
			wantText: "abc",
		},
		"empty": {
			text:     "",
			wantText: "",
		},
		"valid": {
			text:      "7",
			want:      []int{7},
			committed: true,
		},
		"trailing garbage is ignored": {
			text:      " 8px",
			want:      []int{8},
			committed: true,
		},
		"zero": {
			text:     "0",
			wantText: "0",
		},
		"above page count": {
			text:     "11",
			wantText: "11",
		},
		"negative": {
			text:     "-2",
			wantText: "-2",
		},
		"current page clears without notifying": {
			text:      "2",
			committed: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := &recorder{}
			c := newController(r, pagination.WithDefaultPage(2), pagination.WithPageCount(10))
			c.SetJumperText(tc.text)

			assert.Equal(t, tc.committed, c.CommitJumper())
			assert.Equal(t, tc.want, r.pages)
			assert.Equal(t, tc.wantText, c.JumperText())
		})
	}
}

func TestActivate(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c := newController(r,
		pagination.WithDefaultPage(10),
		pagination.WithPageCount(30),
		pagination.WithPageSlot(9),
	)

	c.Activate(pagination.Item{Kind: pagination.ItemPage, Page: 12})
	c.Activate(pagination.Item{Kind: pagination.ItemFastForward})
	c.Activate(pagination.Item{Kind: pagination.ItemFastBackward})

	assert.Equal(t, []int{12, 17, 12}, r.pages)
}

func TestHover(t *testing.T) {
	t.Parallel()

	c := pagination.New(pagination.WithPageCount(30))

	c.Hover(pagination.Item{Kind: pagination.ItemPage, Page: 3})
	assert.False(t, c.FastBackwardHovered())
	assert.False(t, c.FastForwardHovered())

	c.Hover(pagination.Item{Kind: pagination.ItemFastForward})
	assert.True(t, c.FastForwardHovered())
	assert.False(t, c.FastBackwardHovered())

	c.Hover(pagination.Item{Kind: pagination.ItemFastBackward})
	c.Leave(pagination.Item{Kind: pagination.ItemFastForward})
	assert.False(t, c.FastForwardHovered())
	assert.True(t, c.FastBackwardHovered())

	c.SetDisabled(true)
	assert.False(t, c.FastBackwardHovered(), "disabling clears hover")
}

func TestRange(t *testing.T) {
	t.Parallel()

	c := pagination.New(pagination.WithPageSizes(10))

	start, end := c.Range()
	assert.Zero(t, start)
	assert.Zero(t, end)

	c.SetItemCount(25)
	start, end = c.Range()
	assert.Equal(t, 1, start)
	assert.Equal(t, 10, end)

	c.GoToPage(3)
	start, end = c.Range()
	assert.Equal(t, 21, start)
	assert.Equal(t, 25, end)

	c.GoToPage(4)
	start, end = c.Range()
	assert.Zero(t, start)
	assert.Zero(t, end)

	c.ClearItemCount()
	_, ok := c.ItemCount()
	assert.False(t, ok)
}

func TestCanNavigate(t *testing.T) {
	t.Parallel()

	c := pagination.New(pagination.WithPageCount(3))
	assert.False(t, c.CanBackward())
	assert.True(t, c.CanForward())

	c.Last()
	assert.True(t, c.CanBackward())
	assert.False(t, c.CanForward())
}
