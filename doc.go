// Package qlp prepares minimum dominating set problems for quantum
// annealers and records what the annealer returns.
//
// A run goes through these packages, leaf first:
//
//	matrix/    dense numeric kernels (sums, transpose, triangles)
//	core/      thread-safe int-labelled graphs for problems and qubits
//	builder/   topology constructors: Chimera, Complete, Cycle, Path, RandomSparse
//	bfs/       breadth-first search and chain connectivity
//	qubo/      QUBO matrices and the dominating-set formulation
//	ising/     QUBO → Ising (J, h, g) transform
//	offset/    anneal-offset policies and their expansion onto chains
//	embedding/ bounded embedding search with offset-range feasibility
//	hardware/  sampler interface, fixed-embedding composite, simulator
//	summary/   corrected energies, constraint checks, record summaries
//	store/     badger-backed graph/experiment/data records
//	config/    YAML + QLP_* environment configuration
//	logging/   slog handler construction
//	pipeline/  one end-to-end run
//	cmd/qlp    the CLI
//
// Quick example (see pipeline tests for a complete run):
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Path(3))
//	p, _ := qubo.DominatingSet(g, 2)
//	m, _ := ising.FromQUBO(p.QUBO)
//	// m.J, m.H, m.G: couplings, biases and the constant offset
package qlp
