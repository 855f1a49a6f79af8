package ui_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pagebar/pkg/ui"
)

func TestReadDocument(t *testing.T) {
	t.Parallel()

	doc, err := ui.ReadDocument(strings.NewReader("a\r\nbb\nccc"), "test.txt")
	require.NoError(t, err)
	assert.Equal(t, "test.txt", doc.Title)
	assert.Equal(t, []string{"a", "bb", "ccc"}, doc.Lines)
	assert.Equal(t, int64(10), doc.Size)

	_, err = ui.ReadDocument(iotest.ErrReader(assert.AnError), "broken")
	require.ErrorIs(t, err, assert.AnError)
}

func TestDocumentPage(t *testing.T) {
	t.Parallel()

	doc := ui.Document{Lines: []string{"1", "2", "3", "4", "5"}}

	tcs := map[string]struct {
		want      []string
		page      int
		size      int
		wantCount int
	}{
		"first":        {page: 1, size: 2, want: []string{"1", "2"}, wantCount: 3},
		"last partial": {page: 3, size: 2, want: []string{"5"}, wantCount: 3},
		"past end":     {page: 4, size: 2, wantCount: 3},
		"zero page":    {page: 0, size: 2, wantCount: 3},
		"zero size":    {page: 1, size: 0, wantCount: 1},
		"all":          {page: 1, size: 10, want: []string{"1", "2", "3", "4", "5"}, wantCount: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doc.Page(tc.page, tc.size))
			assert.Equal(t, tc.wantCount, doc.PageCount(tc.size))
		})
	}

	assert.Equal(t, 1, ui.Document{}.PageCount(10))
}
