package dropdown

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Segment is a run of label text; Match marks an occurrence of the search term.
type Segment struct {
	Text  string
	Match bool
}

// folded is a case-folded string with, for every folded byte, the byte
// range of the original rune it came from.
type folded struct {
	text  string
	start []int
	end   []int
}

// fold case-folds s rune by rune so that matches in the folded text can be
// mapped back onto whole runes of s.
func fold(c cases.Caser, s string) folded {
	var b strings.Builder
	f := folded{
		start: make([]int, 0, len(s)),
		end:   make([]int, 0, len(s)),
	}
	for i := 0; i < len(s); {
		// An invalid byte decodes as U+FFFD of size 1.
		r, size := utf8.DecodeRuneInString(s[i:])
		out := c.String(string(r))
		b.WriteString(out)
		for range len(out) {
			f.start = append(f.start, i)
			f.end = append(f.end, i+size)
		}
		i += size
	}
	f.text = b.String()
	return f
}

// LabelContains reports whether label contains term, ignoring case.
// Every label contains the empty term.
func LabelContains(label, term string) bool {
	if term == "" {
		return true
	}
	c := cases.Fold()
	return strings.Contains(fold(c, label).text, c.String(term))
}

// Filter returns the options whose label contains term, ignoring case,
// in their original order. An empty term returns a copy of all options.
func Filter(options []Option, term string) []Option {
	if term == "" {
		return slices.Clone(options)
	}
	c := cases.Fold()
	needle := c.String(term)
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if strings.Contains(fold(c, o.Label).text, needle) {
			out = append(out, o)
		}
	}
	return out
}

// Highlight splits label into segments, marking every case-insensitive
// occurrence of term. The term is matched literally. An empty term yields
// the label as a single unmarked segment.
func Highlight(label, term string) []Segment {
	if term == "" || label == "" {
		return []Segment{{Text: label}}
	}

	c := cases.Fold()
	needle := c.String(term)
	if needle == "" {
		return []Segment{{Text: label}}
	}
	hay := fold(c, label)

	// Collect matched byte ranges of the original label.
	type span struct{ from, to int }
	var spans []span
	for off := 0; off < len(hay.text); {
		i := strings.Index(hay.text[off:], needle)
		if i < 0 {
			break
		}
		fs := off + i
		fe := fs + len(needle)
		s := span{from: hay.start[fs], to: hay.end[fe-1]}
		if n := len(spans); n > 0 && s.from <= spans[n-1].to {
			if s.to > spans[n-1].to {
				spans[n-1].to = s.to
			}
		} else {
			spans = append(spans, s)
		}
		off = fe
	}

	if len(spans) == 0 {
		return []Segment{{Text: label}}
	}

	segs := make([]Segment, 0, 2*len(spans)+1)
	prev := 0
	for _, s := range spans {
		if s.from > prev {
			segs = append(segs, Segment{Text: label[prev:s.from]})
		}
		segs = append(segs, Segment{Text: label[s.from:s.to], Match: true})
		prev = s.to
	}
	if prev < len(label) {
		segs = append(segs, Segment{Text: label[prev:]})
	}
	return segs
}
