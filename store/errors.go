// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound indicates a missing graph or experiment.
	ErrNotFound = errors.New("store: not found")

	// ErrPathRequired indicates a persistent store opened without a path.
	ErrPathRequired = errors.New("store: path is required for persistent database")

	// ErrInvalidRecord indicates a record that cannot be keyed or encoded,
	// such as a non-finite penalty or chain strength.
	ErrInvalidRecord = errors.New("store: invalid record")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("store: closed")
)
