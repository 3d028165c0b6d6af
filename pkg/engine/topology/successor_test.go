package topology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/server"
)

func TestFindSuccessorsScenarios(t *testing.T) {
	ctx := context.Background()
	resolver := NewSuccessorResolver(newSnapshot(t, scenarioEdges()), testLogger())

	cases := []struct {
		name string
		ref  datastructure.EdgeRef
		want []int64
	}{
		{"edge 1 forward enters edge 2 at node 20", datastructure.NewEdgeRef(1, ""), []int64{2}},
		{"edge 1 reversed exits at node 10", datastructure.NewEdgeRef(-1, ""), []int64{}},
		{"edge 2 forward exits at node 30", datastructure.NewEdgeRef(2, ""), []int64{}},
		{"edge 2 reversed enters edge 1 reversed at node 20", datastructure.NewEdgeRef(-2, ""), []int64{-1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set, err := resolver.FindSuccessors(ctx, c.ref)
			require.NoError(t, err)
			assert.Equal(t, c.want, directedIDs(set))
		})
	}

	set, err := resolver.FindSuccessors(ctx, datastructure.NewEdgeRef(-2, ""))
	require.NoError(t, err)
	// reversed geometry of edge 1
	assert.Equal(t, coords(1, 1, 0, 0), set.Edges[0].Coords)
}

func TestFindSuccessorsUnknownEdge(t *testing.T) {
	resolver := NewSuccessorResolver(newSnapshot(t, scenarioEdges()), testLogger())

	set, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(42, ""))
	require.NoError(t, err)
	assert.NotNil(t, set.Edges)
	assert.Empty(t, set.Edges)

	// meta is part of the key
	set, err = resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, "other"))
	require.NoError(t, err)
	assert.Empty(t, set.Edges)
}

func TestFindSuccessorsEmptyStore(t *testing.T) {
	resolver := NewSuccessorResolver(newSnapshot(t, nil), testLogger())
	set, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	require.NoError(t, err)
	assert.Empty(t, set.Edges)
}

func TestFindSuccessorsFlowRules(t *testing.T) {
	edges := []datastructure.StoredEdge{
		datastructure.NewStoredEdge(1, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 10,
			coords(0, 0, 0, 0.001), 1, 2, datastructure.FlowForwardOnly),
		// leaves node 2 forward
		datastructure.NewStoredEdge(2, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 10,
			coords(0, 0.001, 0, 0.002), 2, 3, datastructure.FlowTwoWay),
		// ends at node 2, only drivable against stored order
		datastructure.NewStoredEdge(3, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 10,
			coords(0.001, 0.001, 0, 0.001), 4, 2, datastructure.FlowReverseOnly),
		// ends at node 2, forward only: not enterable from 2
		datastructure.NewStoredEdge(4, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 10,
			coords(-0.001, 0.001, 0, 0.001), 5, 2, datastructure.FlowForwardOnly),
		// starts at node 2, reverse only: not enterable from 2
		datastructure.NewStoredEdge(5, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 10,
			coords(0, 0.001, 0.001, 0.002), 2, 6, datastructure.FlowReverseOnly),
		// loop at node 2 in both directions
		datastructure.NewStoredEdge(6, "", datastructure.FowRoundabout, datastructure.FRC3, 10,
			coords(0, 0.001, 0.0005, 0.0015, 0, 0.001), 2, 2, datastructure.FlowTwoWay),
	}
	resolver := NewSuccessorResolver(newSnapshot(t, edges), testLogger())

	set, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, -3, 6, -6}, directedIDs(set))

	for _, e := range set.Edges {
		assert.NotEqual(t, uint64(1), e.StoredID())
	}
}

func TestFindSuccessorsSelfExclusion(t *testing.T) {
	edges := []datastructure.StoredEdge{
		// a two way loop can never be its own successor
		datastructure.NewStoredEdge(9, "", datastructure.FowRoundabout, datastructure.FRC3, 10,
			coords(0, 0, 0.001, 0.001, 0, 0), 7, 7, datastructure.FlowTwoWay),
	}
	resolver := NewSuccessorResolver(newSnapshot(t, edges), testLogger())
	for _, id := range []int64{9, -9} {
		set, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(id, ""))
		require.NoError(t, err)
		assert.Empty(t, set.Edges)
	}
}

func TestFindSuccessorsIntegrityFault(t *testing.T) {
	edges := scenarioEdges()
	edges[1].Flow = datastructure.Flow(9)
	resolver := NewSuccessorResolver(&stubRepository{edges: edges}, testLogger())

	_, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	require.Error(t, err)
	assert.Equal(t, server.ErrInternalServerError, server.CodeOf(err))
	assert.ErrorIs(t, err, datastructure.ErrInvalidFlow)

	edges = scenarioEdges()
	edges[0].Geometry = coords(0, 0)
	resolver = NewSuccessorResolver(&stubRepository{edges: edges}, testLogger())
	_, err = resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	assert.Equal(t, server.ErrInternalServerError, server.CodeOf(err))
}

func TestFindSuccessorsBackendFailure(t *testing.T) {
	resolver := NewSuccessorResolver(&stubRepository{edges: scenarioEdges(), findErr: errBackendDown}, testLogger())
	_, err := resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	assert.Equal(t, server.ErrUnavailable, server.CodeOf(err))
	assert.ErrorIs(t, err, errBackendDown)

	resolver = NewSuccessorResolver(&stubRepository{edges: scenarioEdges(), atNodeErr: errBackendDown}, testLogger())
	_, err = resolver.FindSuccessors(context.Background(), datastructure.NewEdgeRef(1, ""))
	assert.Equal(t, server.ErrUnavailable, server.CodeOf(err))
}
