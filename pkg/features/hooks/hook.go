package hooks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

// AttrKey is the attribute the thin client scans for hooks.
const AttrKey = "v-hook"

// Hook creates a hook attribute for an element.
// The config is serialized to JSON and packed into the attribute value
// as "HookName:{...}".
func Hook(name string, config any) vdom.Attr {
	b, err := json.Marshal(config)
	if err != nil || string(b) == "null" {
		b = []byte("{}")
	}
	return vdom.Attr{
		Key:   AttrKey,
		Value: fmt.Sprintf("%s:%s", name, b),
	}
}

// Spec is a decoded hook attribute.
type Spec struct {
	Name   string
	Config map[string]any
}

// Bool returns a boolean config value, false when absent.
func (s Spec) Bool(key string) bool {
	b, _ := s.Config[key].(bool)
	return b
}

// Parse decodes a hook attribute value produced by Hook.
func Parse(value string) (Spec, error) {
	name, raw, ok := strings.Cut(value, ":")
	if !ok || name == "" {
		return Spec{}, fmt.Errorf("hooks: malformed hook %q", value)
	}
	spec := Spec{Name: name, Config: map[string]any{}}
	if err := json.Unmarshal([]byte(raw), &spec.Config); err != nil {
		return Spec{}, fmt.Errorf("hooks: decode %s config: %w", name, err)
	}
	return spec, nil
}

// Find returns the hooks attached to elements of the tree, in document order.
// Malformed hook attributes are skipped.
func Find(root *vdom.VNode, name string) []Spec {
	var specs []Spec
	vdom.Walk(root, func(n *vdom.VNode) bool {
		v := n.Attr(AttrKey)
		if v == "" {
			return true
		}
		if spec, err := Parse(v); err == nil && spec.Name == name {
			specs = append(specs, spec)
		}
		return true
	})
	return specs
}
