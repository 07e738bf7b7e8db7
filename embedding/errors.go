// SPDX-License-Identifier: MIT

package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEmbedding is the failure a Finder reports when no embedding exists
	// or the search gave up. Selector retries it.
	ErrNoEmbedding = errors.New("embedding: no embedding found")

	// ErrInvalidEmbedding indicates an embedding that breaks chain rules.
	ErrInvalidEmbedding = errors.New("embedding: invalid embedding")

	// ErrInfeasibleRange indicates an offset-range intersection narrower than
	// the selector's minimum width.
	ErrInfeasibleRange = errors.New("embedding: offset range too narrow")

	// ErrExhausted indicates that every attempt of a Selector failed.
	ErrExhausted = errors.New("embedding: attempts exhausted")

	// ErrNilGraph indicates a nil source or target graph.
	ErrNilGraph = errors.New("embedding: graph is nil")

	// ErrBadSelector indicates a selector without a finder or factory, or
	// with a non-positive attempt budget.
	ErrBadSelector = errors.New("embedding: selector misconfigured")
)

// SearchError is the typed failure of an embedding search or of composite
// construction. The Selector counts it as a consumed attempt.
type SearchError struct {
	// Stage names where the attempt failed: "find", "validate", "composite".
	Stage string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("embedding: %s: %v", e.Stage, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// ExhaustedError is returned by Select when no attempt succeeded.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("embedding: attempts exhausted after %d tries", len(e.Attempts))
}

// Is makes errors.Is(err, ErrExhausted) hold.
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

// isSearchFailure reports whether err is a retryable search failure.
func isSearchFailure(err error) bool {
	var se *SearchError
	return errors.As(err, &se) || errors.Is(err, ErrNoEmbedding)
}
