// SPDX-License-Identifier: MIT

package summary

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/store"
)

// ExcludedSettings are per-run keys never stored with an experiment.
var ExcludedSettings = []string{"anneal_offsets"}

// GraphSummary describes g for persistence. Adjacency pairs are normalized
// (from < to) and sorted; the hash is md5 over their compact JSON form, e.g.
// "[[0,1],[1,2]]".
func GraphSummary(tag string, g *core.Graph) (store.GraphRecord, error) {
	if g == nil {
		return store.GraphRecord{}, fmt.Errorf("GraphSummary: nil graph: %w", ErrBadMeta)
	}
	edges := g.Edges()
	adj := make([][2]int, len(edges))
	for i, e := range edges {
		adj[i] = [2]int{e.From, e.To}
	}
	hash, err := AdjacencyHash(adj)
	if err != nil {
		return store.GraphRecord{}, err
	}

	return store.GraphRecord{
		Tag:           tag,
		TotalVertices: g.VertexCount(),
		TotalEdges:    len(adj),
		MaxEdges:      g.MaxDegree(),
		Adjacency:     adj,
		AdjacencyHash: hash,
	}, nil
}

// AdjacencyHash normalizes and sorts a copy of adj and returns its md5 hex.
func AdjacencyHash(adj [][2]int) (string, error) {
	norm := make([][2]int, len(adj))
	for i, p := range adj {
		if p[0] > p[1] {
			p[0], p[1] = p[1], p[0]
		}
		norm[i] = p
	}
	sort.Slice(norm, func(i, j int) bool {
		if norm[i][0] != norm[j][0] {
			return norm[i][0] < norm[j][0]
		}
		return norm[i][1] < norm[j][1]
	})

	return md5JSON(norm)
}

// ExperimentSummary builds an experiment record. Keys listed in
// ExcludedSettings are dropped; the hash covers the remaining settings as
// key-sorted [key, value] pairs.
func ExperimentSummary(machine string, settings map[string]any, penalty, chainStrength float64, tag string) (store.ExperimentRecord, error) {
	kept := make(map[string]any, len(settings))
	for k, v := range settings {
		kept[k] = v
	}
	for _, k := range ExcludedSettings {
		delete(kept, k)
	}
	hash, err := SettingsHash(kept)
	if err != nil {
		return store.ExperimentRecord{}, err
	}

	return store.ExperimentRecord{
		Machine:       machine,
		Settings:      kept,
		SettingsHash:  hash,
		Penalty:       penalty,
		ChainStrength: chainStrength,
		Tag:           tag,
	}, nil
}

// SettingsHash is md5 over the JSON list of key-sorted [key, value] pairs.
func SettingsHash(settings map[string]any) (string, error) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]any, len(keys))
	for i, k := range keys {
		pairs[i] = [2]any{k, settings[k]}
	}

	return md5JSON(pairs)
}

func md5JSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("summary: hash: %w", err)
	}
	sum := md5.Sum(raw)

	return hex.EncodeToString(sum[:]), nil
}
