// Package errors provides structured, actionable error messages for the
// dropdown CLI and demo server.
//
// Every error has a code that maps to a category, a short message and a
// detailed explanation:
//   - E1xx: configuration (dropdown.json, .env, environment overrides)
//   - E2xx: the story catalogue
//   - E3xx: the CLI and the demo server
//
// # Usage
//
//	err := errors.New("E101").
//	    WithOffset("dropdown.json", data, syntaxErr.Offset).
//	    WithSuggestion("Check for a trailing comma")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid configuration file
//	//
//	//   dropdown.json:3:18
//	//
//	//        1 │ {
//	//        2 │   "port": 3000,
//	//   →    3 │   "logLevel": "info",
//	//          │                  ^
//	//        4 │ }
//	//
//	//   Hint: Check for a trailing comma
//
// Library packages return plain wrapped errors; only the CLI layer and the
// configuration loader produce DropdownErrors.
package errors
