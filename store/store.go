// SPDX-License-Identifier: MIT

package store

import "context"

// Store is the persistence boundary.
type Store interface {
	// GetOrCreateGraph returns the stored graph with g's identity, creating
	// it from g when absent. created reports which happened.
	GetOrCreateGraph(ctx context.Context, g GraphRecord) (rec GraphRecord, created bool, err error)

	// GetOrCreateExperiment binds e to graphKey and gets or creates it.
	// Returns ErrNotFound when graphKey is unknown.
	GetOrCreateExperiment(ctx context.Context, graphKey string, e ExperimentRecord) (rec ExperimentRecord, created bool, err error)

	// AppendData stores rows under expKey, assigning consecutive measurement
	// numbers after the last stored one. Returns the stored rows.
	AppendData(ctx context.Context, expKey string, rows []DataRecord) ([]DataRecord, error)

	// Data lists an experiment's rows by measurement.
	Data(ctx context.Context, expKey string) ([]DataRecord, error)

	// Graphs lists stored graphs by key.
	Graphs(ctx context.Context) ([]GraphRecord, error)

	// Experiments lists stored experiments by key.
	Experiments(ctx context.Context) ([]ExperimentRecord, error)

	Close() error
}
