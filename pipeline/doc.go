// Package pipeline runs one dominating-set optimization end to end:
// QUBO → Ising → embedding selection → anneal offsets → sampling →
// summaries → store.
//
// A Runner is bound to one sampler and one store. Run is safe to call
// repeatedly; each call gets its own run id for log correlation, and
// records of repeated runs with identical settings land under the same
// graph and experiment keys.
package pipeline
