package logtable

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFileError reports that an input log does not exist.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("log file not found: %s", e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// MalformedRowError reports a row whose field count disagrees with the
// header, or a field that does not parse as a number.
//
// Line is 1-based and counts physical lines, header included. Column is the
// 1-based field position, or 0 when the whole row is at fault.
type MalformedRowError struct {
	Path   string
	Line   int
	Column int
	Field  string
	Reason string
}

func (e *MalformedRowError) Error() string {
	loc := fmt.Sprintf("%s:%d", e.Path, e.Line)
	if e.Column > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Column)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: malformed row: %s (%q)", loc, e.Reason, e.Field)
	}
	return fmt.Sprintf("%s: malformed row: %s", loc, e.Reason)
}

// UnknownColumnError reports a lookup of a column the table does not have.
type UnknownColumnError struct {
	Column    string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q (have: %s)", e.Column, strings.Join(e.Available, ", "))
}

// IsMissingFile returns true if err is or wraps a MissingFileError.
func IsMissingFile(err error) bool {
	var me *MissingFileError
	return errors.As(err, &me)
}

// IsMalformedRow returns true if err is or wraps a MalformedRowError.
func IsMalformedRow(err error) bool {
	var me *MalformedRowError
	return errors.As(err, &me)
}

// IsUnknownColumn returns true if err is or wraps an UnknownColumnError.
func IsUnknownColumn(err error) bool {
	var ue *UnknownColumnError
	return errors.As(err, &ue)
}
