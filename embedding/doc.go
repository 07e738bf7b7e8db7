// SPDX-License-Identifier: MIT

// Package embedding maps logical problem variables onto physical qubits and
// selects an embedding whose qubits share a usable anneal-offset range.
//
// An Embedding assigns each logical variable a chain: a non-empty set of
// physical qubits that together represent it. Chains of different variables
// never share a qubit.
//
// Finding an embedding is delegated to a Finder (a black box; NativeFinder
// and FixedFinder are deterministic, PathFinder is a seeded greedy
// heuristic that differs per call). The Selector wraps a
// Finder in a bounded retry loop:
//
//  1. find an embedding;
//  2. flatten its chains into a qubit list;
//  3. build a Composite bound to the embedding and read the per-qubit
//     anneal-offset ranges it reports;
//  4. intersect the ranges of the embedded qubits; accept when the width
//     reaches MinWidth (0.1 by default).
//
// Every attempt ends in one Outcome: Success, Infeasible (range too narrow)
// or SearchFailure (the Finder or Composite failed). Only those two failure
// kinds are retried. Context cancellation and errors the Finder does not
// type as search failures abort the loop. After Tries failed attempts Select
// returns an *ExhaustedError matching ErrExhausted.
//
// Attempts are strictly sequential: a Composite may hold a hardware session.
package embedding
