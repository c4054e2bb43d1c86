package standard

import (
	"github.com/vango-dev/dropdown/pkg/features/hooks"
	"github.com/vango-dev/dropdown/pkg/vdom"
)

// DropdownHookName is the client hook name for dropdown lists.
const DropdownHookName = "Dropdown"

// DropdownConfig configures the Dropdown hook.
type DropdownConfig struct {
	// CloseOnOutside asks the client to report document pointer-downs
	// while the element is attached.
	CloseOnOutside bool `json:"closeOnOutside,omitempty"`
}

// Dropdown creates a Dropdown hook attribute.
func Dropdown(config DropdownConfig) vdom.Attr {
	return hooks.Hook(DropdownHookName, config)
}

// WantsOutsideClicks reports whether any Dropdown hook in the tree asks for
// document pointer-downs.
func WantsOutsideClicks(root *vdom.VNode) bool {
	for _, spec := range hooks.Find(root, DropdownHookName) {
		if spec.Bool("closeOnOutside") {
			return true
		}
	}
	return false
}
