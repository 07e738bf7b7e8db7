package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qlp/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Unweighted by default; individual tests may override
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(3))

	require.NoError(s.g.AddVertex(3))
	require.NoError(s.g.AddVertex(3))
	require.True(s.g.HasVertex(3))
	require.Equal(1, s.g.VertexCount(), "adding duplicate vertex should not increase count")

	require.ErrorIs(s.g.AddVertex(-1), core.ErrNegativeVertex)
}

func (s *GraphSuite) TestAddEdgeNormalizesEndpoints() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(5, 2, 0))

	require.True(s.g.HasEdge(2, 5))
	require.True(s.g.HasEdge(5, 2), "undirected edge must be visible from both ends")
	require.Equal([]core.Edge{{From: 2, To: 5}}, s.g.Edges())

	// Re-adding does not create a parallel edge
	require.NoError(s.g.AddEdge(2, 5, 0))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejections() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)
	require.ErrorIs(s.g.AddEdge(0, 1, 2), core.ErrBadWeight, "unweighted graph rejects non-zero weight")
	require.ErrorIs(s.g.AddEdge(-1, 1, 0), core.ErrNegativeVertex)

	wg := core.NewGraph(core.WithWeighted())
	require.ErrorIs(wg.AddEdge(0, 1, math.NaN()), core.ErrBadWeight)
	require.NoError(wg.AddEdge(0, 1, -1.5))
	w, err := wg.Weight(1, 0)
	require.NoError(err)
	require.Equal(-1.5, w)

	_, err = wg.Weight(0, 2)
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestNeighborsAndDegree() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 3, 0))
	require.NoError(s.g.AddEdge(0, 1, 0))
	require.NoError(s.g.AddEdge(2, 0, 0))

	nb, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, nb, "Neighbors must be sorted")

	d, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(3, d)
	require.Equal(3, s.g.MaxDegree())

	_, err = s.g.Neighbors(9)
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree(9)
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Equal([]int{0, 1, 2, 3}, s.g.Vertices())
}

func (s *GraphSuite) TestInducedSubgraphAndClone() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1, 0))
	require.NoError(s.g.AddEdge(1, 2, 0))
	require.NoError(s.g.AddEdge(2, 3, 0))

	sub := core.InducedSubgraph(s.g, map[int]bool{1: true, 2: true, 3: true})
	require.Equal([]int{1, 2, 3}, sub.Vertices())
	require.Equal([]core.Edge{{From: 1, To: 2}, {From: 2, To: 3}}, sub.Edges())

	c := s.g.Clone()
	require.NoError(c.AddEdge(0, 3, 0))
	require.False(s.g.HasEdge(0, 3), "clone must not share storage with source")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestConcurrentAddEdge hammers AddEdge from several goroutines; run with -race.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.AddEdge(offset*100+i, offset*100+i+1, 0)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, 8*50, g.EdgeCount())
}
