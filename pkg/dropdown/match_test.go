package dropdown

import (
	"reflect"
	"testing"
)

func TestLabelContains(t *testing.T) {
	tests := []struct {
		label, term string
		want        bool
	}{
		{"Apple", "", true},
		{"", "", true},
		{"", "a", false},
		{"Apple", "app", true},
		{"Apple", "PLE", true},
		{"Apple", "pear", false},
		{"Straße", "STRASSE", true},
		{"ΣΊΣΥΦΟΣ", "σίσυφος", true},
		{"a.b", ".", true},
		{"ab", ".", false},
	}
	for _, tt := range tests {
		if got := LabelContains(tt.label, tt.term); got != tt.want {
			t.Errorf("LabelContains(%q, %q) = %v, want %v", tt.label, tt.term, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	opts := []Option{
		{Label: "Option 1", Value: "1"},
		{Label: "option 2", Value: "2"},
		{Label: "Other", Value: "3"},
		{Label: "", Value: "4"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term keeps all", "", []string{"Option 1", "option 2", "Other", ""}},
		{"case insensitive", "OPTION", []string{"Option 1", "option 2"}},
		{"order preserved", "o", []string{"Option 1", "option 2", "Other"}},
		{"single match", "2", []string{"option 2"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, o := range Filter(opts, tt.term) {
				got = append(got, o.Label)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestFilter_IsSubsetInOrder(t *testing.T) {
	opts := []Option{{Label: "ab"}, {Label: "b"}, {Label: "ba"}, {Label: "c"}}
	got := Filter(opts, "A")

	i := 0
	for _, o := range got {
		for i < len(opts) && opts[i] != o {
			i++
		}
		if i == len(opts) {
			t.Fatalf("%v is not an in-order subset of %v", got, opts)
		}
		if !LabelContains(o.Label, "A") {
			t.Errorf("%q does not contain the term", o.Label)
		}
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		label string
		term  string
		want  []Segment
	}{
		{"empty term", "Apple", "", []Segment{{Text: "Apple"}}},
		{"empty label", "", "a", []Segment{{Text: ""}}},
		{"no match", "Apple", "x", []Segment{{Text: "Apple"}}},
		{"prefix keeps case", "Apple", "ap", []Segment{{Text: "Ap", Match: true}, {Text: "ple"}}},
		{"every occurrence", "Apple Pie", "p", []Segment{
			{Text: "A"}, {Text: "pp", Match: true}, {Text: "le "}, {Text: "P", Match: true}, {Text: "ie"},
		}},
		{"whole label", "abc", "ABC", []Segment{{Text: "abc", Match: true}}},
		{"adjacent matches merge", "aaaa", "aa", []Segment{{Text: "aaaa", Match: true}}},
		{"literal term", "a.b", ".", []Segment{{Text: "a"}, {Text: ".", Match: true}, {Text: "b"}}},
		{"pattern characters do not match", "ab", "a*", []Segment{{Text: "ab"}}},
		{"folding maps back to runes", "Straße", "ss", []Segment{{Text: "Stra"}, {Text: "ß", Match: true}, {Text: "e"}}},
		{"invalid byte alone", "\xff", "\uFFFD", []Segment{{Text: "\xff", Match: true}}},
		{"invalid byte inside", "ab\xffc", "b\uFFFD", []Segment{{Text: "a"}, {Text: "b\xff", Match: true}, {Text: "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.label, tt.term)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Highlight(%q, %q) = %+v, want %+v", tt.label, tt.term, got, tt.want)
			}
		})
	}
}

func TestHighlight_ConcatenatesToLabel(t *testing.T) {
	labels := []string{"Option 1", "Ünïcödé", "Straße", "aaaa", "日本語テキスト", "caf\xe9", "\xff\xfe"}
	terms := []string{"", "o", "Ö", "SS", "a", "テ", "\uFFFD"}

	for _, label := range labels {
		for _, term := range terms {
			var joined string
			for _, s := range Highlight(label, term) {
				joined += s.Text
			}
			if joined != label {
				t.Errorf("Highlight(%q, %q) joins to %q", label, term, joined)
			}
		}
	}
}
