package clientdist

import _ "embed"

// DropdownJS is the thin client served to live pages.
//
// It is served at "/_dropdown/client.js".
//
//go:embed dropdown.js
var DropdownJS []byte
