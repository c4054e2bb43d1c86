package stories

import (
	_ "embed"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/dropdown/internal/errors"
	"github.com/vango-dev/dropdown/pkg/dropdown"
)

// FileName is the name of the embedded catalogue.
const FileName = "stories.yaml"

//go:embed stories.yaml
var embeddedCatalogue []byte

// Catalogue is a set of named dropdown stories sharing a label and a
// default option list.
type Catalogue struct {
	Title   string       `yaml:"title"`
	Label   string       `yaml:"label"`
	Options []OptionSpec `yaml:"options"`
	Stories []Story      `yaml:"stories"`

	byName map[string]int
}

// Story is one dropdown configuration.
type Story struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Args        Args   `yaml:"args"`

	// Options replaces the catalogue options when present, even if empty.
	Options []OptionSpec `yaml:"options,omitempty"`
}

// Args are the dropdown arguments of a story.
type Args struct {
	ID          string `yaml:"id,omitempty"`
	WithSearch  *bool  `yaml:"withSearch,omitempty"`
	Multiple    bool   `yaml:"multiple,omitempty"`
	OptionLabel string `yaml:"optionLabel,omitempty"`
	Outlined    bool   `yaml:"outlined,omitempty"`
}

// OptionSpec is an option as written in the catalogue. Value is a string or
// a number.
type OptionSpec struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// Embedded returns the catalogue shipped with the binary.
func Embedded() (*Catalogue, error) {
	return Parse(embeddedCatalogue, FileName)
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a catalogue. file is only used in errors.
func Parse(data []byte, file string) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		e := errors.New("E201").
			WithDetail(err.Error()).
			Wrap(err)
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ := strconv.Atoi(m[1])
			e = e.WithLocation(file, line, 0)
		}
		return nil, e
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalogue) validate() error {
	if err := validateOptions("catalogue", c.Options); err != nil {
		return err
	}
	c.byName = make(map[string]int, len(c.Stories))
	for i, s := range c.Stories {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("E203").
				WithDetail("Story #" + strconv.Itoa(i+1) + " has no name")
		}
		key := strings.ToLower(s.Name)
		if _, dup := c.byName[key]; dup {
			return errors.New("E202").
				WithDetail("Story " + strconv.Quote(s.Name) + " is defined twice")
		}
		if err := validateOptions("story "+strconv.Quote(s.Name), s.Options); err != nil {
			return err
		}
		c.byName[key] = i
	}
	return nil
}

func validateOptions(owner string, opts []OptionSpec) error {
	for i, o := range opts {
		if o.Value == nil {
			return errors.New("E203").
				WithDetail("Option #" + strconv.Itoa(i+1) + " of " + owner + " has no value").
				WithExample(`- { value: "Option 1", label: "Option 1" }`)
		}
	}
	return nil
}

// Names returns the story names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.Stories))
	for i, s := range c.Stories {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a story by name, ignoring case.
func (c *Catalogue) Lookup(name string) (Story, error) {
	if i, ok := c.byName[strings.ToLower(name)]; ok {
		return c.Stories[i], nil
	}
	known := c.Names()
	sort.Strings(known)
	return Story{}, errors.New("E200").
		WithDetail("No story named " + strconv.Quote(name)).
		WithSuggestion("Available stories: " + strings.Join(known, ", "))
}

// Config returns the dropdown configuration of s.
func (c *Catalogue) Config(s Story) dropdown.Config {
	cfg := dropdown.DefaultConfig()
	cfg.ID = s.Args.ID
	if s.Args.WithSearch != nil {
		cfg.WithSearch = *s.Args.WithSearch
	}
	cfg.Multiple = s.Args.Multiple
	cfg.Placeholder = s.Args.OptionLabel
	cfg.Outlined = s.Args.Outlined

	specs := c.Options
	if s.Options != nil {
		specs = s.Options
	}
	cfg.Options = make([]dropdown.Option, len(specs))
	for i, o := range specs {
		cfg.Options[i] = dropdown.Option{Label: o.Label, Value: o.Value}
	}
	return cfg
}

// App is the demo page story: single select with search over the
// catalogue options.
func (c *Catalogue) App() Story {
	on := true
	return Story{
		Name: "App",
		Args: Args{WithSearch: &on},
	}
}
