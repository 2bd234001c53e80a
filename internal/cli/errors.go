package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/roach88/logchart/internal/chartset"
	"github.com/roach88/logchart/internal/logtable"
	"github.com/roach88/logchart/internal/render"
	"github.com/roach88/logchart/internal/store"
)

// Error codes for CLI output.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeMissingFile   = "E002" // Input or chart-set file not found
	ErrCodeMalformedRow  = "E003" // Log row could not be parsed
	ErrCodeUnknownColumn = "E004" // Chart names a column the log lacks
	ErrCodeRenderFailed  = "E005" // Chart could not be drawn or written
	ErrCodeInvalidChart  = "E006" // Invalid chart set or chart flags
	ErrCodeDatabase      = "E007" // SQLite store error
	ErrCodeNotFound      = "E008" // Unknown preset or archived table
	ErrCodeUsage         = "E009" // Bad flags or arguments
	ErrCodeCancelled     = "E010" // Interrupted
)

// classify maps an error from the library packages to an error code and
// exit code.
func classify(err error) (string, int) {
	var (
		malformed  *logtable.MalformedRowError
		unknownCol *logtable.UnknownColumnError
		renderErr  *render.RenderError
		invalid    *chartset.ValidationError
		preset     *chartset.UnknownPresetError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return ErrCodeCancelled, ExitFailure
	case logtable.IsMissingFile(err):
		return ErrCodeMissingFile, ExitCommandError
	case errors.As(err, &malformed):
		return ErrCodeMalformedRow, ExitFailure
	case errors.As(err, &unknownCol):
		return ErrCodeUnknownColumn, ExitFailure
	case errors.As(err, &invalid), errors.Is(err, render.ErrInvalidSpec):
		return ErrCodeInvalidChart, ExitCommandError
	case errors.Is(err, chartset.ErrNoTableSource):
		return ErrCodeUsage, ExitCommandError
	case errors.As(err, &preset), errors.Is(err, store.ErrTableNotFound):
		return ErrCodeNotFound, ExitCommandError
	case errors.As(err, &renderErr):
		return ErrCodeRenderFailed, ExitFailure
	case errors.Is(err, fs.ErrNotExist):
		// Checked after RenderError, whose create failures also wrap it.
		return ErrCodeMissingFile, ExitCommandError
	}
	return ErrCodeGeneric, ExitFailure
}

// errorDetails returns structured context for JSON output and verbose text.
func errorDetails(err error) interface{} {
	var (
		malformed  *logtable.MalformedRowError
		unknownCol *logtable.UnknownColumnError
		renderErr  *render.RenderError
		invalid    *chartset.ValidationError
	)
	switch {
	case errors.As(err, &malformed):
		return map[string]interface{}{
			"path":   malformed.Path,
			"line":   malformed.Line,
			"column": malformed.Column,
			"field":  malformed.Field,
		}
	case errors.As(err, &unknownCol):
		return map[string]interface{}{
			"column":    unknownCol.Column,
			"available": unknownCol.Available,
		}
	case errors.As(err, &invalid):
		return invalid.Problems
	case errors.As(err, &renderErr):
		return map[string]interface{}{
			"path": renderErr.Path,
			"op":   renderErr.Op,
		}
	}
	return nil
}

// fail reports err through the formatter and returns the ExitError the
// command should return.
func fail(f *OutputFormatter, err error) error {
	code, exit := classify(err)
	_ = f.Error(code, err.Error(), errorDetails(err))
	return WrapExitError(exit, code, err)
}

// failDatabase reports a store failure, which classify cannot tell apart
// from other generic errors.
func failDatabase(f *OutputFormatter, err error) error {
	err = fmt.Errorf("database: %w", err)
	_ = f.Error(ErrCodeDatabase, err.Error(), nil)
	return WrapExitError(ExitCommandError, ErrCodeDatabase, err)
}
