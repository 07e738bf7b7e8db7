// SPDX-License-Identifier: MIT

package embedding

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/qlp/bfs"
	"github.com/katalvlaran/qlp/core"
)

// PathFinder is a greedy minor-embedding heuristic. Variables are placed in
// breadth-first order of the source; each lands on the free qubit nearest
// to an embedded neighbor, and its chain then grows along shortest free
// paths until it touches the chain of every embedded neighbor.
//
// Every Find draws its own placement from the finder's seeded generator, so
// Selector retries explore different embeddings. Safe for concurrent use.
type PathFinder struct {
	// MaxPath bounds the number of couplers on a path joining two chains;
	// 0 means unbounded.
	MaxPath int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPathFinder returns a PathFinder seeded with seed. maxPath < 0 is
// treated as 0.
func NewPathFinder(seed int64, maxPath int) *PathFinder {
	return &PathFinder{MaxPath: max(maxPath, 0), rng: rand.New(rand.NewSource(seed))}
}

// errReached stops a bfs.Search at the first qubit a visit callback wants.
var errReached = errors.New("reached")

// Find implements Finder. Dead ends are reported as ErrNoEmbedding.
func (f *PathFinder) Find(ctx context.Context, source, target *core.Graph) (Embedding, error) {
	if source == nil || target == nil {
		return nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source.VertexCount() > target.VertexCount() {
		return nil, fmt.Errorf("PathFinder: %d variables on %d qubits: %w",
			source.VertexCount(), target.VertexCount(), ErrNoEmbedding)
	}
	order, err := placementOrder(ctx, source)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(1))
	}
	seed := f.rng.Int63()
	f.mu.Unlock()

	p := &placer{
		ctx:     ctx,
		target:  target,
		maxPath: f.MaxPath,
		rng:     rand.New(rand.NewSource(seed)),
		emb:     make(Embedding, len(order)),
		owner:   make(map[int]int, len(order)),
	}
	for _, v := range order {
		if err = p.place(source, v); err != nil {
			return nil, err
		}
	}
	if err = p.emb.Verify(source, target); err != nil {
		return nil, &SearchError{Stage: "find", Err: err}
	}

	return p.emb, nil
}

// placementOrder lists source vertices component by component, each in
// breadth-first order from its highest-degree vertex, so every vertex but a
// component's first has an earlier neighbor.
func placementOrder(ctx context.Context, source *core.Graph) ([]int, error) {
	pieces, err := bfs.Components(source, source.Vertices())
	if err != nil {
		return nil, err
	}
	order := make([]int, 0, source.VertexCount())
	for _, piece := range pieces {
		root, best := piece[0], -1
		for _, v := range piece {
			if d, _ := source.Degree(v); d > best {
				root, best = v, d
			}
		}
		t, err := bfs.Search(source, root, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		order = append(order, t.Order...)
	}

	return order, nil
}

// placer holds the partial embedding of one Find.
type placer struct {
	ctx     context.Context
	target  *core.Graph
	maxPath int
	rng     *rand.Rand
	emb     Embedding
	owner   map[int]int // qubit -> variable
}

func (p *placer) place(source *core.Graph, v int) error {
	nbrs, err := source.Neighbors(v)
	if err != nil {
		return err
	}
	var placed []int
	for _, u := range nbrs {
		if _, ok := p.emb[u]; ok {
			placed = append(placed, u)
		}
	}

	root, err := p.root(placed)
	if err != nil {
		return fmt.Errorf("PathFinder: variable %d: %w", v, err)
	}
	p.claim(v, root)
	for _, u := range placed {
		if p.emb.coupled(p.target, u, v) {
			continue
		}
		if err = p.connect(v, u); err != nil {
			return fmt.Errorf("PathFinder: variable %d to %d: %w", v, u, err)
		}
	}

	return nil
}

// root picks the first qubit of a new chain: a random free qubit when no
// neighbor is embedded yet, else the free qubit nearest to the first
// neighbor's chain.
func (p *placer) root(placed []int) (int, error) {
	if len(placed) == 0 {
		var free []int
		for _, q := range p.target.Vertices() {
			if _, used := p.owner[q]; !used {
				free = append(free, q)
			}
		}
		if len(free) == 0 {
			return 0, ErrNoEmbedding
		}
		return free[p.rng.Intn(len(free))], nil
	}

	chain := p.emb[placed[0]]
	start := chain[p.rng.Intn(len(chain))]
	found := -1
	_, err := p.search(start, chain, func(q int) bool {
		if _, used := p.owner[q]; !used {
			found = q
			return true
		}
		return false
	})
	if err != nil {
		return 0, err
	}
	if found < 0 {
		return 0, ErrNoEmbedding
	}

	return found, nil
}

// connect extends v's chain along a shortest free path until it neighbors
// u's chain.
func (p *placer) connect(v, u int) error {
	chain := p.emb[v]
	found := -1
	t, err := p.search(chain[0], append(append([]int(nil), chain...), p.emb[u]...), func(q int) bool {
		if w, used := p.owner[q]; used && w == u {
			found = q
			return true
		}
		return false
	})
	if err != nil {
		return err
	}
	if found < 0 {
		return ErrNoEmbedding
	}
	path, err := t.PathTo(found)
	if err != nil {
		return err
	}
	for _, q := range path[:len(path)-1] {
		if _, used := p.owner[q]; !used {
			p.claim(v, q)
		}
	}

	return nil
}

// search walks the target breadth-first from start through free qubits and
// the qubits in also, halting at the first qubit stop accepts. The tree is
// nil when nothing matched.
func (p *placer) search(start int, also []int, stop func(q int) bool) (*bfs.Tree, error) {
	set := append([]int(nil), also...)
	for _, q := range p.target.Vertices() {
		if _, used := p.owner[q]; !used {
			set = append(set, q)
		}
	}
	t, err := bfs.Search(p.target, start,
		bfs.WithContext(p.ctx),
		bfs.WithMaxDepth(p.maxPath),
		bfs.Within(set),
		bfs.WithVisit(func(q, _ int) error {
			if stop(q) {
				return errReached
			}
			return nil
		}),
	)
	switch {
	case errors.Is(err, errReached):
		return t, nil
	case err != nil:
		return nil, err
	}

	return nil, nil
}

func (p *placer) claim(v, q int) {
	p.emb[v] = append(p.emb[v], q)
	p.owner[q] = v
}
