// SPDX-License-Identifier: MIT

package hardware

import "errors"

var (
	// ErrNilSampler indicates that a nil Sampler was supplied.
	ErrNilSampler = errors.New("hardware: nil sampler")

	// ErrBadParams indicates invalid sampling parameters.
	ErrBadParams = errors.New("hardware: invalid parameters")

	// ErrUnknownQubit indicates a qubit outside the sampler's topology.
	ErrUnknownQubit = errors.New("hardware: unknown qubit")

	// ErrNotCoupled indicates a coupling between qubits with no coupler.
	ErrNotCoupled = errors.New("hardware: qubits are not coupled")

	// ErrUnembedded indicates a logical variable without a chain.
	ErrUnembedded = errors.New("hardware: variable has no chain")

	// ErrBrokenChain indicates a chain that is not connected on the device.
	ErrBrokenChain = errors.New("hardware: chain not connected")

	// ErrBadChainStrength indicates a non-positive or non-finite chain strength.
	ErrBadChainStrength = errors.New("hardware: chain strength must be finite and > 0")
)
