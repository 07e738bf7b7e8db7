package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlp/core"
	"github.com/katalvlaran/qlp/embedding"
	"github.com/katalvlaran/qlp/matrix"
)

// fields yields the non-empty, non-comment lines of r split on whitespace.
func fields(r io.Reader, fn func(line int, f []string) error) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(n, strings.Fields(text)); err != nil {
			return err
		}
	}
	return sc.Err()
}

// readEdges parses "u v" lines into an unweighted graph. A single label on
// a line adds an isolated vertex.
func readEdges(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	err := fields(r, func(line int, f []string) error {
		if len(f) > 2 {
			return fmt.Errorf("line %d: want \"u v\", got %d fields", line, len(f))
		}
		ids := make([]int, len(f))
		for i, s := range f {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			ids[i] = v
		}
		if len(ids) == 1 {
			return g.AddVertex(ids[0])
		}
		if err := g.AddEdge(ids[0], ids[1], 0); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return nil, errors.New("empty graph")
	}

	return g, nil
}

// readMatrix parses whitespace-separated rows.
func readMatrix(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	err := fields(r, func(line int, f []string) error {
		row := make([]float64, len(f))
		for i, s := range f {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(rows)
}

func readEmbedding(r io.Reader) (embedding.Embedding, error) {
	var emb embedding.Embedding
	if err := json.NewDecoder(r).Decode(&emb); err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if err := emb.Validate(); err != nil {
		return nil, err
	}

	return emb, nil
}

// parseRandom parses the "n,p" of a G(n,p) graph.
func parseRandom(s string) (n int, p float64, err error) {
	ns, ps, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("random graph %q: want \"n,p\"", s)
	}
	if n, err = strconv.Atoi(strings.TrimSpace(ns)); err != nil {
		return 0, 0, fmt.Errorf("random graph %q: %w", s, err)
	}
	if p, err = strconv.ParseFloat(strings.TrimSpace(ps), 64); err != nil {
		return 0, 0, fmt.Errorf("random graph %q: %w", s, err)
	}

	return n, p, nil
}

func withFile[T any](path string, fn func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := fn(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func readEdgesFile(path string) (*core.Graph, error) { return withFile(path, readEdges) }

func readMatrixFile(path string) (*matrix.Dense, error) { return withFile(path, readMatrix) }

func readEmbeddingFile(path string) (embedding.Embedding, error) {
	return withFile(path, readEmbedding)
}
