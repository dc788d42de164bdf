package cli

import (
	"errors"
	"fmt"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable
// hints, so a caller can tell "fix your input" from "pipeline bug".
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var annErr *plan.AnnotationError
	if errors.As(err, &annErr) {
		return NewCLIError(
			annErr.Error(),
			"Check that the document is valid UTF-8 text and not excessively large",
			err,
		)
	}

	var asmErr *plan.AssemblyError
	if errors.As(err, &asmErr) {
		return NewCLIError(
			asmErr.Error(),
			"This is a pipeline fault, not an input problem — please report it",
			err,
		)
	}

	if errors.Is(err, plan.ErrEmptyDocument) {
		return NewCLIError(
			"document is empty",
			"Provide a document with at least one sentence of text",
			err,
		)
	}

	return err
}
