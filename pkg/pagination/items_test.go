package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagebar/pkg/pagination"
)

func TestComputeItems(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want      string
		page      int
		pageCount int
		slot      int
	}{
		"single page": {
			page: 1, pageCount: 1, slot: 9,
			want: "[1]",
		},
		"all pages fit": {
			page: 3, pageCount: 9, slot: 9,
			want: "1 2 [3] 4 5 6 7 8 9",
		},
		"zero page count is one page": {
			page: 1, pageCount: 0, slot: 9,
			want: "[1]",
		},
		"first page": {
			page: 1, pageCount: 20, slot: 9,
			want: "[1] 2 3 4 5 6 7 » 20",
		},
		"page five shows page two instead of a one page gap": {
			page: 5, pageCount: 20, slot: 9,
			want: "1 2 3 4 [5] 6 7 » 20",
		},
		"page six opens the backward gap": {
			page: 6, pageCount: 20, slot: 9,
			want: "1 « 4 5 [6] 7 8 » 20",
		},
		"middle": {
			page: 10, pageCount: 20, slot: 9,
			want: "1 « 8 9 [10] 11 12 » 20",
		},
		"near the end": {
			page: 16, pageCount: 20, slot: 9,
			want: "1 « 14 15 [16] 17 18 19 20",
		},
		"last page": {
			page: 20, pageCount: 20, slot: 9,
			want: "1 « 14 15 16 17 18 19 [20]",
		},
		"one page over budget": {
			page: 6, pageCount: 10, slot: 9,
			want: "1 « 4 5 [6] 7 8 9 10",
		},
		"even budget puts the extra neighbor on the right": {
			page: 10, pageCount: 20, slot: 8,
			want: "1 « 9 [10] 11 12 » 20",
		},
		"minimum budget": {
			page: 10, pageCount: 20, slot: 5,
			want: "1 « [10] » 20",
		},
		"budget below minimum is raised": {
			page: 10, pageCount: 20, slot: 1,
			want: "1 « [10] » 20",
		},
		"page out of range has no active item": {
			page: 30, pageCount: 20, slot: 9,
			want: "1 « 14 15 16 17 18 19 20",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pagination.ComputeItems(tc.page, tc.pageCount, tc.slot)
			assert.Equal(t, tc.want, pagination.FormatItems(got))
		})
	}
}

func TestComputeItemsInvariants(t *testing.T) {
	t.Parallel()

	for slot := 1; slot <= 13; slot++ {
		for pageCount := 1; pageCount <= 40; pageCount++ {
			for page := 1; page <= pageCount; page++ {
				items := pagination.ComputeItems(page, pageCount, slot)
				budget := max(slot, pagination.MinPageSlot)

				require.LessOrEqual(t, len(items), budget, "page=%d count=%d slot=%d", page, pageCount, slot)

				var (
					active, fastBackward, fastForward int
					lastPage                          int
				)

				for i, it := range items {
					switch it.Kind {
					case pagination.ItemPage:
						require.Greater(t, it.Page, lastPage, "pages must ascend")

						lastPage = it.Page
						if it.Active {
							active++

							assert.Equal(t, page, it.Page)
						}

					case pagination.ItemFastBackward:
						fastBackward++

						require.Positive(t, i)
						gapStart := items[i-1].Page + 1
						gapEnd := items[i+1].Page - 1
						assert.Greater(t, gapEnd-gapStart+1, 1, "marker must hide more than one page")

					case pagination.ItemFastForward:
						fastForward++

						require.Less(t, i, len(items)-1)
						gapStart := items[i-1].Page + 1
						gapEnd := items[i+1].Page - 1
						assert.Greater(t, gapEnd-gapStart+1, 1, "marker must hide more than one page")
					}
				}

				assert.Equal(t, 1, active)
				assert.LessOrEqual(t, fastBackward, 1)
				assert.LessOrEqual(t, fastForward, 1)
				assert.Equal(t, 1, items[0].Page)
				assert.Equal(t, pageCount, items[len(items)-1].Page)

				if pageCount <= budget {
					assert.Len(t, items, pageCount)
					assert.Zero(t, fastBackward+fastForward)
				}
			}
		}
	}
}

func TestComputeItemsIdempotent(t *testing.T) {
	t.Parallel()

	a := pagination.ComputeItems(7, 50, 9)
	b := pagination.ComputeItems(7, 50, 9)
	assert.Equal(t, a, b)
}

func TestItemKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "page", pagination.ItemPage.String())
	assert.Equal(t, "fastBackward", pagination.ItemFastBackward.String())
	assert.Equal(t, "fastForward", pagination.ItemFastForward.String())
	assert.Equal(t, "unknown", pagination.ItemKind(42).String())
}
