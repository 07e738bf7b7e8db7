// SPDX-License-Identifier: MIT

// Package store persists graphs, experiments and measurements.
//
// Records are deduplicated by content: a graph is identified by its tag and
// adjacency hash, an experiment by its graph, machine, settings hash,
// penalty, chain strength and tag. GetOrCreate* return the existing record
// when the identity matches, so inserting the same content twice stores one
// row. Data records are appended per experiment with a measurement number
// that starts at 0 and increases by one per record.
//
// The Badger implementation keeps JSON values under prefixed keys:
//
//	graph/<key>                     GraphRecord
//	exp/<key>                       ExperimentRecord
//	data/<expKey>/<%016d measure>   DataRecord
//	seq/<expKey>                    next measurement number
package store
