package dropdown

import "github.com/vango-dev/dropdown/pkg/dom"

// Default texts.
const (
	DefaultNoResultsText     = "No results found"
	DefaultSearchPlaceholder = "Search..."
)

// Config configures a Dropdown. Start from DefaultConfig; the zero value
// hides the search field.
type Config struct {
	// ID names the element the option list is rendered into. When no element
	// with this id exists in the document, the list renders inline.
	ID string

	// WithSearch shows the filter input at the top of the open list.
	WithSearch bool

	// Options is the candidate set, in display order.
	Options []Option

	// Multiple enables multi-select with removable chips.
	Multiple bool

	// Placeholder is shown in the trigger while nothing is selected.
	Placeholder string

	// OnChange is called synchronously after every selection change.
	OnChange func(Selection)

	// Outlined highlights occurrences of the search term in option labels.
	Outlined bool

	// Equal decides option identity for toggling, chip removal and selected
	// marking. Defaults to ByValue.
	Equal Equality

	// Locator measures the trigger when the list opens. Without one the
	// list is positioned at the origin with automatic width.
	Locator dom.Locator

	// Class adds classes to the outer container.
	Class string

	// NoResultsText replaces DefaultNoResultsText.
	NoResultsText string

	// SearchPlaceholder replaces DefaultSearchPlaceholder.
	SearchPlaceholder string
}

// DefaultConfig returns a config with search enabled.
func DefaultConfig() Config {
	return Config{
		WithSearch:        true,
		Equal:             ByValue,
		NoResultsText:     DefaultNoResultsText,
		SearchPlaceholder: DefaultSearchPlaceholder,
	}
}

func (c Config) withDefaults() Config {
	if c.Equal == nil {
		c.Equal = ByValue
	}
	if c.NoResultsText == "" {
		c.NoResultsText = DefaultNoResultsText
	}
	if c.SearchPlaceholder == "" {
		c.SearchPlaceholder = DefaultSearchPlaceholder
	}
	// Detach from the caller's slice.
	c.Options = append([]Option{}, c.Options...)
	return c
}
