// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"slices"
)

// Tree is the result of a Search: the visit order plus depth and parent
// links of every reached vertex. The root has no parent entry.
type Tree struct {
	Root   int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether v was visited.
func (t *Tree) Reached(v int) bool {
	_, ok := t.Depth[v]
	return ok
}

// PathTo returns the root → v path of the tree.
func (t *Tree) PathTo(v int) ([]int, error) {
	if !t.Reached(v) {
		return nil, fmt.Errorf("PathTo(%d): %w", v, ErrUnreachable)
	}
	path := make([]int, 0, t.Depth[v]+1)
	for cur := v; ; {
		path = append(path, cur)
		prev, ok := t.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
