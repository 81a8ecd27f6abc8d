package formulation

import "fmt"

// ParseError reports a malformed formula string, carrying the offending
// term when a single term is at fault.
type ParseError struct {
	Formula string // the full input string
	Token   string // the term that failed, "" when the whole string is at fault
	Message string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parse formula %q: %s (term %q)", e.Formula, e.Message, e.Token)
	}
	return fmt.Sprintf("parse formula %q: %s", e.Formula, e.Message)
}
