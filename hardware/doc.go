// SPDX-License-Identifier: MIT

// Package hardware is the execution boundary: samplers that accept physical
// Ising problems and the FixedEmbedding composite that maps a logical model
// onto them.
//
// A Sampler reports its Properties (qubit count, coupler graph, per-qubit
// anneal-offset ranges) and samples physical problems. Simulator is an
// in-process Sampler driven by a seeded simulated-annealing schedule; it
// stands in for a QPU in tests and in the CLI.
//
// FixedEmbedding binds a Sampler to one embedding:
//   - each logical bias is split evenly across its chain;
//   - each logical coupling is split evenly across the physical couplers
//     joining the two chains;
//   - couplers inside a chain carry −chainStrength;
//   - samples are unembedded by majority vote per chain, ties resolved to +1,
//     and the share of broken chains is reported per sample.
//
// Returned rows carry binary configurations and the logical energy including
// the Ising offset G, i.e. the QUBO energy of the configuration.
package hardware
