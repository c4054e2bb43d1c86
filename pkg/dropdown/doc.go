// Package dropdown implements a searchable dropdown selection widget for
// server-driven UIs.
//
// The widget supports single and multiple selection, an optional filter
// field with case-insensitive substring matching, highlighting of matched
// text, and rendering the option list into a separate container (for
// overlays) by id.
//
//	dd := dropdown.New(dropdown.Config{
//	    WithSearch: true,
//	    Options:    []dropdown.Option{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}},
//	    OnChange: func(s dropdown.Selection) {
//	        log.Println("selected", s)
//	    },
//	})
//	dd.Mount(page)       // installs the outside-click listener
//	defer dd.Unmount()   // removes it
//	node := dd.Render()
//
// Options are identified by Config.Equal, ByValue unless configured. The
// same equality drives toggling in multiple mode, chip removal and the
// selected marking in the list.
package dropdown
