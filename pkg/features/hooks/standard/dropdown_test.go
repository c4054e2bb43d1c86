package standard

import (
	"testing"

	"github.com/vango-dev/dropdown/pkg/vdom"
)

func TestDropdown(t *testing.T) {
	attr := Dropdown(DropdownConfig{CloseOnOutside: true})
	if attr.Value != `Dropdown:{"closeOnOutside":true}` {
		t.Errorf("Value = %v", attr.Value)
	}

	empty := Dropdown(DropdownConfig{})
	if empty.Value != "Dropdown:{}" {
		t.Errorf("Value = %v, want Dropdown:{}", empty.Value)
	}
}

func TestWantsOutsideClicks(t *testing.T) {
	if WantsOutsideClicks(vdom.Div(vdom.Div(Dropdown(DropdownConfig{})))) {
		t.Error("hook without closeOnOutside should not want outside clicks")
	}
	if !WantsOutsideClicks(vdom.Div(vdom.Div(Dropdown(DropdownConfig{CloseOnOutside: true})))) {
		t.Error("expected outside clicks to be wanted")
	}
	if WantsOutsideClicks(nil) {
		t.Error("nil tree wants nothing")
	}
}
