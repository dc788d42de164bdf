package plan

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument rejects empty or whitespace-only input before any
// annotation work happens.
var ErrEmptyDocument = errors.New("document text is empty")

// AnnotationError wraps a failure of the annotation engine. It occurs before
// the sentence stream exists, so the whole analysis aborts.
type AnnotationError struct {
	Err error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("annotation failed: %v", e.Err)
}

func (e *AnnotationError) Unwrap() error { return e.Err }

// AssemblyError wraps an unexpected failure while assembling groups,
// requirements or phases into the final plan. No partial plan is returned.
type AssemblyError struct {
	Stage string
	Err   error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("plan assembly failed during %s: %v", e.Stage, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }
