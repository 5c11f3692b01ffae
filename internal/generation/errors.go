package generation

import (
	"errors"
	"fmt"
)

// Stage identifies which pipeline stage produced a failure.
type Stage string

// Pipeline stages, in execution order.
const (
	StageFetch      Stage = "fetch"
	StageSynthesize Stage = "synthesize"
	StageValidate   Stage = "validate"
)

// Fetch errors. All wrap ErrFetch so callers can classify any scraping
// failure with a single errors.Is check.
var (
	// ErrFetch is the base error for all source-content retrieval failures.
	ErrFetch = errors.New("failed to fetch source content")

	// ErrFetchTimeout is returned when the source URL does not respond
	// within the fetch timeout.
	ErrFetchTimeout = fmt.Errorf("%w: timeout", ErrFetch)

	// ErrFetchStatus is returned when the source URL responds with a
	// non-2xx status.
	ErrFetchStatus = fmt.Errorf("%w: unexpected status", ErrFetch)

	// ErrFetchNetwork is returned when the request fails before a response
	// is received.
	ErrFetchNetwork = fmt.Errorf("%w: network error", ErrFetch)
)

// Synthesis errors.
var (
	// ErrBackendFailure is returned when the generative backend call fails
	// or produces no usable text.
	ErrBackendFailure = errors.New("generative backend call failed")

	// ErrInvalidJSON is returned when the backend response cannot be parsed
	// as a JSON slide array. Parse failures are terminal; the backend call
	// is not retried.
	ErrInvalidJSON = errors.New("backend response is not a valid JSON slide array")
)

// Validation errors.
var (
	// ErrSchemaViolation is returned when a slide violates an invariant the
	// validator cannot repair, such as the kind-ordering rule.
	ErrSchemaViolation = errors.New("deck violates slide schema")

	// ErrCountViolation is returned when a deck has fewer slides than the
	// active mode's floor. Over-production is repaired by truncation, never
	// rejected.
	ErrCountViolation = errors.New("deck slide count out of range")
)

// PipelineError wraps a stage failure with the stage that produced it.
// The orchestrator returns the first failure encountered; no partial decks
// are ever returned.
type PipelineError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface for PipelineError.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("generation failed at %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}
