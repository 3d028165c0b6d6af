package topology

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func coords(latLon ...float64) []datastructure.Coordinate {
	out := make([]datastructure.Coordinate, 0, len(latLon)/2)
	for i := 0; i+1 < len(latLon); i += 2 {
		out = append(out, datastructure.NewCoordinate(latLon[i], latLon[i+1]))
	}
	return out
}

// two edges sharing node 20: 1 = 10->20 two way, 2 = 20->30 forward only.
func scenarioEdges() []datastructure.StoredEdge {
	return []datastructure.StoredEdge{
		datastructure.NewStoredEdge(1, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 157000,
			coords(0, 0, 1, 1), 10, 20, datastructure.FlowTwoWay),
		datastructure.NewStoredEdge(2, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 157000,
			coords(1, 1, 2, 2), 20, 30, datastructure.FlowForwardOnly),
	}
}

func newSnapshot(t *testing.T, edges []datastructure.StoredEdge) *repository.Snapshot {
	s, err := repository.NewSnapshot(edges)
	require.NoError(t, err)
	return s
}

func directedIDs(set datastructure.EdgeSet) []int64 {
	out := make([]int64, 0, set.Len())
	for _, e := range set.Edges {
		out = append(out, e.ID)
	}
	return out
}

// stubRepository edge store with per method overrides.
type stubRepository struct {
	edges     []datastructure.StoredEdge
	spatial   func(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error)
	atNodeErr error
	findErr   error
}

var errBackendDown = errors.New("backend down")

func (r *stubRepository) LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error) {
	return r.edges, nil
}

func (r *stubRepository) FindByID(ctx context.Context, id uint64, meta string) (datastructure.StoredEdge, bool, error) {
	if r.findErr != nil {
		return datastructure.StoredEdge{}, false, r.findErr
	}
	for _, e := range r.edges {
		if e.ID == id && e.Meta == meta {
			return e, true, nil
		}
	}
	return datastructure.StoredEdge{}, false, nil
}

func (r *stubRepository) SpatialCandidates(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
	if r.spatial != nil {
		return r.spatial(ctx, point, radius)
	}
	return r.edges, nil
}

func (r *stubRepository) EdgesAtNode(ctx context.Context, node int64) ([]datastructure.StoredEdge, error) {
	if r.atNodeErr != nil {
		return nil, r.atNodeErr
	}
	out := make([]datastructure.StoredEdge, 0)
	for _, e := range r.edges {
		if e.FromInt == node || e.ToInt == node {
			out = append(out, e)
		}
	}
	return out, nil
}
