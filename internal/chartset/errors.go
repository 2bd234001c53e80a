package chartset

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a chart set that failed YAML decoding, the schema,
// or the cross-field checks. Problems holds one message per violation.
type ValidationError struct {
	Source   string
	Problems []string
}

func (e *ValidationError) Error() string {
	src := e.Source
	if src == "" {
		src = "chart set"
	}
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", src, e.Problems[0])
	}
	return fmt.Sprintf("%s: %d problems:\n  %s", src, len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// IsValidation returns true if err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// UnknownPresetError is returned by Preset for a name that is not built in.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
