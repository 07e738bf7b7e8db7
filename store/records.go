// SPDX-License-Identifier: MIT

package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
)

// GraphRecord describes a problem graph.
type GraphRecord struct {
	Tag           string   `json:"tag"`
	TotalVertices int      `json:"total_vertices"`
	TotalEdges    int      `json:"total_edges"`
	MaxEdges      int      `json:"max_edges"`
	Adjacency     [][2]int `json:"adjacency"`
	AdjacencyHash string   `json:"adjacency_hash"`
}

// Key is the content identity of the graph.
func (g GraphRecord) Key() string {
	return contentKey([]any{g.Tag, g.AdjacencyHash})
}

// ExperimentRecord describes one machine configuration run on a graph.
// Settings exclude per-run offset vectors.
type ExperimentRecord struct {
	GraphKey      string         `json:"graph"`
	Machine       string         `json:"machine"`
	Settings      map[string]any `json:"settings"`
	SettingsHash  string         `json:"settings_hash"`
	Penalty       float64        `json:"p"`
	ChainStrength float64        `json:"chain_strength"`
	Tag           string         `json:"tag"`
}

// Key is the content identity of the experiment.
func (e ExperimentRecord) Key() string {
	return contentKey([]any{e.GraphKey, e.Machine, e.SettingsHash, e.Penalty, e.ChainStrength, e.Tag})
}

// validate rejects fields that JSON cannot encode and Key could not tell apart.
func (e ExperimentRecord) validate() error {
	for name, v := range map[string]float64{"p": e.Penalty, "chain_strength": e.ChainStrength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%g: %w", name, v, ErrInvalidRecord)
		}
	}

	return nil
}

// DataRecord is one summarized sample.
type DataRecord struct {
	ExperimentKey          string  `json:"experiment"`
	Measurement            int     `json:"measurement"`
	SpinConfig             []int8  `json:"spin_config"`
	ChainBreakFraction     float64 `json:"chain_break_fraction"`
	Energy                 float64 `json:"energy"`
	ConstraintSatisfaction bool    `json:"constraint_satisfaction"`
}

// contentKey is the md5 hex digest of the JSON encoding of parts.
func contentKey(parts []any) string {
	// callers validate floats first; strings always encode
	raw, _ := json.Marshal(parts)
	sum := md5.Sum(raw)

	return hex.EncodeToString(sum[:])
}
