package uitest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// SetupColorProfile forces true color so styled output is deterministic.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// Segment is a run of text drawn with one SGR state.
type Segment struct {
	Text       string
	Foreground string
	Background string
	Bold       bool
	Faint      bool
}

// Segments splits styled output into runs of printable text.
func Segments(s string) []Segment {
	var (
		segs  []Segment
		cur   Segment
		text  strings.Builder
		state byte
	)

	flush := func() {
		if text.Len() > 0 {
			cur.Text = text.String()
			segs = append(segs, cur)
			text.Reset()
		}
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	in := []byte(s)
	for len(in) > 0 {
		seq, width, n, next := ansi.DecodeSequence(in, state, p)

		switch {
		case ansi.HasCsiPrefix(seq) && seq[len(seq)-1] == 'm':
			flush()
			cur = applySGR(cur, p.Params())
		case width > 0 || string(seq) == " ":
			text.Write(seq)
		case string(seq) == "\n":
			flush()
		}

		in = in[n:]
		state = next
	}

	flush()

	return segs
}

// Find returns the first segment containing text.
func Find(segs []Segment, text string) (Segment, bool) {
	for _, s := range segs {
		if strings.Contains(s.Text, text) {
			return s, true
		}
	}

	return Segment{}, false
}

func applySGR(s Segment, params ansi.Params) Segment {
	if len(params) == 0 {
		return Segment{}
	}

	for i := 0; i < len(params); i++ {
		switch v := params[i].Param(0); v {
		case 0:
			s = Segment{}
		case 1:
			s.Bold = true
		case 2:
			s.Faint = true
		case 22:
			s.Bold, s.Faint = false, false
		case 38, 48:
			if i+4 < len(params) && params[i+1].Param(0) == 2 {
				c := fmt.Sprintf("#%02X%02X%02X",
					params[i+2].Param(0), params[i+3].Param(0), params[i+4].Param(0))
				if v == 38 {
					s.Foreground = c
				} else {
					s.Background = c
				}

				i += 4
			}
		case 39:
			s.Foreground = ""
		case 49:
			s.Background = ""
		}
	}

	return s
}
