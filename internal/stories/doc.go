// Package stories holds the dropdown story catalogue.
//
// The catalogue is a YAML file embedded in the binary. Each story names a
// dropdown configuration; stories share the catalogue's label and option
// list unless they bring their own options:
//
//	options:
//	  - { value: "Option 1", label: "Option 1" }
//	stories:
//	  - name: Default
//	    args:
//	      id: sdd-1
//	      withSearch: true
//
// Story pages lay the label and the dropdown out in a row. A story with an
// id also renders the container its list is portalled into.
package stories
