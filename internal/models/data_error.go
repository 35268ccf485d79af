package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is the sentinel every DataError unwraps to
var ErrInvalidRecord = errors.New("invalid transaction record")

// DataError describes one malformed input record. Index is the record's
// position in the payload, or -1 when the payload itself is unusable.
type DataError struct {
	Index  int
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	switch {
	case e.Index < 0 && e.Field == "":
		return e.Reason
	case e.Index < 0:
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	case e.Field == "":
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("record %d: %s: %s", e.Index, e.Field, e.Reason)
	}
}

func (e *DataError) Unwrap() error {
	return ErrInvalidRecord
}

// DataErrors collects every violation found in a payload
type DataErrors []*DataError

func (es DataErrors) Error() string {
	messages := make([]string, 0, len(es))
	for _, e := range es {
		messages = append(messages, e.Error())
	}
	return strings.Join(messages, "; ")
}

func (es DataErrors) Unwrap() []error {
	errs := make([]error, 0, len(es))
	for _, e := range es {
		errs = append(errs, e)
	}
	return errs
}

// Details renders each violation as one line, for API error details
func (es DataErrors) Details() []string {
	details := make([]string, 0, len(es))
	for _, e := range es {
		details = append(details, e.Error())
	}
	return details
}
