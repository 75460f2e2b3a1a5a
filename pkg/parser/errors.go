package parser

import "fmt"

// MalformedLineError reports a line that does not conform to the UFW token
// grammar. Component names the expected piece that was missing or
// unparsable; Token holds the offending token when there was one.
type MalformedLineError struct {
	Component string
	Token     string
	cause     error
}

func (e *MalformedLineError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("malformed line: bad %s %q", e.Component, e.Token)
	}
	return fmt.Sprintf("malformed line: missing %s", e.Component)
}

func (e *MalformedLineError) Unwrap() error {
	return e.cause
}
