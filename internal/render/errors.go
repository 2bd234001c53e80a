package render

import (
	"errors"
	"fmt"
)

// RenderError reports a chart that could not be drawn or written.
//
// Op is one of "format", "draw", "create", "write" or "rename". Whatever
// the Op, no file is left at Path by the failed render.
type RenderError struct {
	Path string
	Op   string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IsRenderError returns true if err is or wraps a RenderError.
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
