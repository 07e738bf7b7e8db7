// Package builder provides deterministic constructors for the graphs this
// module works with: hardware topologies (Chimera) and small logical
// problem graphs (Complete, Cycle, Path, RandomSparse).
//
// The package offers the following key components:
//
//   - BuildGraph: one orchestrator that creates a core.Graph, resolves the
//     builder configuration and applies constructors in order.
//   - Constructor: a closure that mutates a graph under a resolved config.
//   - BuilderOption: functional options (WithSeed).
//
// Guarantees:
//
//   - Vertex indices are dense and deterministic for a given constructor.
//   - Edge emission order is fixed, so a fixed seed reproduces a graph.
//   - Invalid parameters return sentinel errors; constructors never panic.
package builder
