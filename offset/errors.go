// SPDX-License-Identifier: MIT

package offset

import "errors"

var (
	// ErrUnknownPolicy indicates a policy tag that ParsePolicy does not know.
	ErrUnknownPolicy = errors.New("offset: unknown policy")

	// ErrNoRanges indicates an intersection over zero ranges.
	ErrNoRanges = errors.New("offset: no ranges to intersect")

	// ErrQubitOutOfRange indicates a chain qubit outside [0, qubitCount).
	ErrQubitOutOfRange = errors.New("offset: qubit index out of range")

	// ErrMissingVariable indicates a chain whose logical variable has no offset.
	ErrMissingVariable = errors.New("offset: no offset for variable")

	// ErrBadExpression indicates an expression policy that fails to compile
	// or evaluates to a non-finite number.
	ErrBadExpression = errors.New("offset: bad expression")
)
