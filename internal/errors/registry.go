package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (E1xx)
	"E100": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration file",
		Detail:   "The configuration file exists but could not be read.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "dropdown.json is not valid JSON or has fields of the wrong type.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 1 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid log format",
		Detail:   "The log format must be text or json.",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Cannot load environment file",
		Detail:   "The .env file exists but could not be parsed.",
	},
	"E106": {
		Category: CategoryConfig,
		Message:  "Invalid environment override",
		Detail:   "An environment variable override could not be parsed.",
	},
	"E107": {
		Category: CategoryConfig,
		Message:  "Invalid page TTL",
		Detail:   "The page TTL must be a positive duration such as \"2m\".",
	},

	// Story catalogue (E2xx)
	"E200": {
		Category: CategoryStory,
		Message:  "Story not found",
		Detail:   "No story with this name is registered in the catalogue.",
	},
	"E201": {
		Category: CategoryStory,
		Message:  "Invalid story catalogue",
		Detail:   "The story catalogue is not valid YAML or has fields of the wrong type.",
	},
	"E202": {
		Category: CategoryStory,
		Message:  "Duplicate story name",
		Detail:   "Story names must be unique within the catalogue.",
	},
	"E203": {
		Category: CategoryStory,
		Message:  "Invalid story",
		Detail:   "A story is missing its name or has an option without a value.",
	},

	// Server and CLI (E3xx)
	"E300": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The demo server stopped with an error.",
	},
	"E301": {
		Category: CategoryServer,
		Message:  "Port already in use",
		Detail:   "Another process is listening on the configured port.",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Render failed",
		Detail:   "The story could not be rendered to HTML.",
	},
	"E303": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
		Detail:   "The command was called with missing or invalid arguments.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
