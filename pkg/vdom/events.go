package vdom

// OnClick handles click events.
func OnClick(handler func()) EventHandler {
	if handler == nil {
		return EventHandler{}
	}
	return EventHandler{Event: "onclick", Handler: handler}
}

// OnInput handles input events. The handler receives the field's value.
func OnInput(handler func(string)) EventHandler {
	if handler == nil {
		return EventHandler{}
	}
	return EventHandler{Event: "oninput", Handler: handler}
}
