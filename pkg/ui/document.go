package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line read by [ReadDocument].
const maxLineSize = 1 << 20

// Document is the text being paged.
type Document struct {
	Title string
	Lines []string
	Size  int64
}

// ReadDocument reads r line by line. Trailing carriage returns are dropped.
func ReadDocument(r io.Reader, title string) (Document, error) {
	doc := Document{Title: title}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := sc.Text()
		doc.Size += int64(len(line)) + 1
		doc.Lines = append(doc.Lines, strings.TrimSuffix(line, "\r"))
	}

	if err := sc.Err(); err != nil {
		return Document{}, fmt.Errorf("read %s: %w", title, err)
	}

	return doc, nil
}

// Page returns the lines on a 1-based page. Pages outside the document are
// empty.
func (d Document) Page(page, size int) []string {
	if page < 1 || size < 1 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(d.Lines) {
		return nil
	}

	return d.Lines[start:min(start+size, len(d.Lines))]
}

// PageCount returns the number of pages of size lines, at least 1.
func (d Document) PageCount(size int) int {
	if size < 1 {
		return 1
	}

	return max(1, (len(d.Lines)+size-1)/size)
}
