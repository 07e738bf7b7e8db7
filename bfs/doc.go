// Package bfs is breadth-first search over a core.Graph, sized for what
// embedding code needs: layered walks from a qubit and connectivity of
// qubit sets.
//
// Search returns a Tree (visit order, depth, parent). Within restricts the
// walk to an induced subgraph, which is how Components and Connected
// decide whether a chain of physical qubits holds together on the device.
//
// Edge weights are ignored. Neighbors come from core.Graph in ascending
// order, so every result is reproducible.
package bfs
