// Package output renders parsed log entries for export and display.
package output

import (
	"fmt"
	"io"

	"ufwlog/pkg/parser"
)

// Formatter renders a sequence of entries in a specific format.
type Formatter interface {
	// Format renders the entries to the given writer.
	Format(entries []*parser.Entry, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes the less common fields in text output.
	Verbose bool
}

// New returns the formatter for the given format name.
func New(format string, opts FormatOptions) (Formatter, error) {
	switch format {
	case "json":
		return NewJSONFormatter(opts), nil
	case "text":
		return NewTextFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text or json)", format)
	}
}
