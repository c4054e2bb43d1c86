package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	white = color.New(color.FgWhite).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off ANSI colors for all output of this package.
func DisableColors() { color.NoColor = true }

// EnableColors turns ANSI colors back on.
func EnableColors() { color.NoColor = false }

// detailWidth is the column Detail text is wrapped at.
const detailWidth = 70

// Format renders the error for a terminal: a headline, the offending file
// lines with a caret under the column, then detail, cause, hint and
// example blocks for whichever are set.
func (e *DropdownError) Format() string {
	var b strings.Builder

	head := e.Message
	if e.Code != "" {
		head = bold(e.Code+": ") + head
	}
	fmt.Fprintf(&b, "\n%s%s\n\n", red(bold("ERROR ")), white(head))

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", cyan(e.Location.String()))
		e.writeContext(&b)
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", gray("Cause: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", cyan("Hint: "), e.Suggestion)
	}
	if e.Example != "" {
		fmt.Fprintf(&b, "  %s\n", cyan("Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writeContext prints the lines read by WithLocation, marking the
// offending one.
func (e *DropdownError) writeContext(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	first := max(e.Location.Line-2, 1)
	for i, line := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, gray(" │ "), line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", red("→ "), n, gray(" │ "), line)
		if e.Location.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", gray("│ "), strings.Repeat(" ", e.Location.Column-1), red("^"))
		}
	}
	b.WriteString("\n")
}

// wrapText splits text into lines of at most width bytes, breaking on
// whitespace. Words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// PrintError writes err to stderr, formatted when it is a *DropdownError.
func PrintError(err error) {
	var de *DropdownError
	if errors.As(err, &de) {
		fmt.Fprint(os.Stderr, de.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}
