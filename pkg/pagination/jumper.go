package pagination

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePage reads a page number the way the quick jumper does: leading
// whitespace and an optional sign are accepted, then as many digits as
// follow. Anything after the digits is ignored, so "12abc" is 12.
// It reports false when no digits are found.
func ParsePage(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range, which is never a valid page.
		return 0, false
	}

	return n, true
}
