package dropdown

import "strings"

// Selection is the widget's current choice. In single mode it holds at most
// one option; in multiple mode it holds an ordered list.
type Selection struct {
	multiple bool
	options  []Option
}

// Single returns a single-mode selection of o.
func Single(o Option) Selection {
	return Selection{options: []Option{o}}
}

// Multi returns a multiple-mode selection of opts, in order.
func Multi(opts ...Option) Selection {
	return Selection{multiple: true, options: append([]Option{}, opts...)}
}

// Empty returns an empty selection for the given mode.
func Empty(multiple bool) Selection {
	return Selection{multiple: multiple}
}

// Multiple reports whether this is a multiple-mode selection.
func (s Selection) Multiple() bool { return s.multiple }

// Len returns the number of selected options.
func (s Selection) Len() int { return len(s.options) }

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool { return len(s.options) == 0 }

// Option returns the selected option in single mode.
// ok is false when nothing is selected or the selection is multiple.
func (s Selection) Option() (o Option, ok bool) {
	if s.multiple || len(s.options) == 0 {
		return Option{}, false
	}
	return s.options[0], true
}

// Options returns a copy of the selected options.
func (s Selection) Options() []Option {
	return append([]Option{}, s.options...)
}

// Contains reports whether o is selected under eq.
func (s Selection) Contains(o Option, eq Equality) bool {
	for _, sel := range s.options {
		if eq(sel, o) {
			return true
		}
	}
	return false
}

// Value returns the selection in its callback shape: nil when a single
// selection is empty, the Option for a single selection, and a (possibly
// empty) []Option for a multiple selection.
func (s Selection) Value() any {
	if s.multiple {
		return s.Options()
	}
	if o, ok := s.Option(); ok {
		return o
	}
	return nil
}

// String joins the selected labels with ", ".
func (s Selection) String() string {
	labels := make([]string, len(s.options))
	for i, o := range s.options {
		labels[i] = o.Label
	}
	return strings.Join(labels, ", ")
}

// toggle adds o, or removes every option equal to it.
func (s Selection) toggle(o Option, eq Equality) Selection {
	if s.Contains(o, eq) {
		return s.remove(o, eq)
	}
	return Multi(append(s.Options(), o)...)
}

// remove drops every option equal to o.
func (s Selection) remove(o Option, eq Equality) Selection {
	kept := make([]Option, 0, len(s.options))
	for _, sel := range s.options {
		if !eq(sel, o) {
			kept = append(kept, sel)
		}
	}
	return Selection{multiple: s.multiple, options: kept}
}
