package errors

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryStory  Category = "story"
	CategoryServer Category = "server"
	CategoryCLI    Category = "cli"
)

// Location represents a position in a configuration or catalogue file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// DropdownError is a structured error with a code, location and suggestion.
type DropdownError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains the surrounding file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct form.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DropdownError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DropdownError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position and the lines around it.
func (e *DropdownError) WithLocation(file string, line, column int) *DropdownError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithOffset adds a file position given as a byte offset, as reported by
// encoding/json.
func (e *DropdownError) WithOffset(file string, data []byte, offset int64) *DropdownError {
	line, col := 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return e.WithLocation(file, line, col)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DropdownError) WithSuggestion(s string) *DropdownError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *DropdownError) WithExample(ex string) *DropdownError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DropdownError) WithDetail(d string) *DropdownError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *DropdownError) Wrap(err error) *DropdownError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a DropdownError from a registered error code.
func New(code string) *DropdownError {
	template, ok := registry[code]
	if !ok {
		return &DropdownError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DropdownError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// FromError wraps a standard error in a DropdownError.
func FromError(err error, code string) *DropdownError {
	if err == nil {
		return nil
	}
	var de *DropdownError
	if errors.As(err, &de) {
		return de
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a DropdownError with code.
func HasCode(err error, code string) bool {
	var de *DropdownError
	return errors.As(err, &de) && de.Code == code
}
