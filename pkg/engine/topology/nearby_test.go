package topology

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/kv"
	"lintang/mapagent/pkg/server"
)

// three parallel east-west edges 0, ~111m and ~222m north of the equator.
func parallelEdges() []datastructure.StoredEdge {
	return []datastructure.StoredEdge{
		datastructure.NewStoredEdge(1, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 111,
			coords(0, 0, 0, 0.001), 1, 2, datastructure.FlowTwoWay),
		datastructure.NewStoredEdge(2, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 111,
			coords(0.001, 0, 0.001, 0.001), 3, 4, datastructure.FlowForwardOnly),
		datastructure.NewStoredEdge(3, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 111,
			coords(0.002, 0, 0.002, 0.001), 5, 6, datastructure.FlowReverseOnly),
	}
}

func TestFindNearby(t *testing.T) {
	ctx := context.Background()
	resolver := NewNearbyResolver(newSnapshot(t, parallelEdges()), testLogger())
	point := datastructure.NewCoordinate(0, 0.0005)

	cases := []struct {
		radius float64
		want   []int64
	}{
		{radius: 50, want: []int64{1, -1}},
		{radius: 120, want: []int64{1, -1, 2}},
		{radius: 250, want: []int64{1, -1, 2, -3}},
	}
	for _, c := range cases {
		set, err := resolver.FindNearby(ctx, point, c.radius)
		require.NoError(t, err)
		assert.Equal(t, c.want, directedIDs(set), "radius %v", c.radius)
	}

	// radius 0 still matches an edge passing through the point
	set, err := resolver.FindNearby(ctx, datastructure.NewCoordinate(0, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -1}, directedIDs(set))

	set, err = resolver.FindNearby(ctx, point, 250)
	require.NoError(t, err)
	assert.Equal(t, coords(0.002, 0.001, 0.002, 0), set.Edges[3].Coords)
}

func TestFindNearbyMonotonicInRadius(t *testing.T) {
	ctx := context.Background()
	resolver := NewNearbyResolver(newSnapshot(t, parallelEdges()), testLogger())
	point := datastructure.NewCoordinate(0.0013, 0.0002)

	prev := map[int64]bool{}
	for _, radius := range []float64{0, 10, 40, 80, 120, 160, 300, 1000} {
		set, err := resolver.FindNearby(ctx, point, radius)
		require.NoError(t, err)
		got := map[int64]bool{}
		for _, id := range directedIDs(set) {
			got[id] = true
		}
		for id := range prev {
			assert.True(t, got[id], "edge %d lost when radius grew to %v", id, radius)
		}
		prev = got
	}
	assert.Len(t, prev, 4)
}

func TestFindNearbyEmptyStore(t *testing.T) {
	resolver := NewNearbyResolver(newSnapshot(t, nil), testLogger())
	set, err := resolver.FindNearby(context.Background(), datastructure.NewCoordinate(0, 0), 1e6)
	require.NoError(t, err)
	assert.NotNil(t, set.Edges)
	assert.Empty(t, set.Edges)
}

func TestFindNearbyGeometryFaults(t *testing.T) {
	edges := parallelEdges()
	edges[0].Geometry = nil
	resolver := NewNearbyResolver(&stubRepository{edges: edges}, testLogger())

	set, err := resolver.FindNearby(context.Background(), datastructure.NewCoordinate(0, 0.0005), 120)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, directedIDs(set))

	edges = parallelEdges()
	edges[1].Geometry = coords(0.001, 0)
	resolver = NewNearbyResolver(&stubRepository{edges: edges}, testLogger())
	_, err = resolver.FindNearby(context.Background(), datastructure.NewCoordinate(0, 0.0005), 120)
	require.Error(t, err)
	assert.Equal(t, server.ErrInternalServerError, server.CodeOf(err))
	assert.ErrorIs(t, err, datastructure.ErrInvalidGeometry)
}

func TestFindNearbyInvalidFlow(t *testing.T) {
	edges := parallelEdges()
	edges[0].Flow = datastructure.Flow(7)
	resolver := NewNearbyResolver(&stubRepository{edges: edges}, testLogger())
	_, err := resolver.FindNearby(context.Background(), datastructure.NewCoordinate(0, 0.0005), 10)
	assert.Equal(t, server.ErrInternalServerError, server.CodeOf(err))
}

func TestFindNearbyBackendFailure(t *testing.T) {
	repo := &stubRepository{spatial: func(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
		return nil, errBackendDown
	}}
	resolver := NewNearbyResolver(repo, testLogger())
	_, err := resolver.FindNearby(context.Background(), datastructure.NewCoordinate(0, 0), 10)
	assert.Equal(t, server.ErrUnavailable, server.CodeOf(err))
	assert.ErrorIs(t, err, errBackendDown)
}

func TestFindNearbyRadiusIsInclusive(t *testing.T) {
	ctx := context.Background()
	edges := parallelEdges()[:1]
	resolver := NewNearbyResolver(newSnapshot(t, edges), testLogger())
	point := datastructure.NewCoordinate(0.0005, 0.0005)

	d, _, err := geo.DistanceToPolyline(point, edges[0].Geometry)
	require.NoError(t, err)
	require.Greater(t, d, 0.0)

	set, err := resolver.FindNearby(ctx, point, d)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -1}, directedIDs(set))

	set, err = resolver.FindNearby(ctx, point, math.Nextafter(d, 0))
	require.NoError(t, err)
	assert.Empty(t, set.Edges)
}

// long segments whose great circle arcs leave the latitude band of their vertices.
func longArcEdges() []datastructure.StoredEdge {
	edges := parallelEdges()
	return append(edges,
		datastructure.NewStoredEdge(7, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 22300,
			coords(60, 0, 60, 0.4), 70, 71, datastructure.FlowForwardOnly),
		datastructure.NewStoredEdge(8, "", datastructure.FowMotorway, datastructure.FRC0, 76000,
			coords(70, 0, 70, 2), 80, 81, datastructure.FlowTwoWay),
	)
}

func arcMidpoint(t *testing.T, line []datastructure.Coordinate) datastructure.Coordinate {
	mid := datastructure.NewCoordinate((line[0].Lat+line[1].Lat)/2, (line[0].Lon+line[1].Lon)/2)
	_, onArc, err := geo.DistanceToPolyline(mid, line)
	require.NoError(t, err)
	return onArc
}

func TestFindNearbyBackendsMatchFullScan(t *testing.T) {
	ctx := context.Background()
	edges := longArcEdges()

	store, err := kv.OpenStore(kv.EngineBadger, "")
	require.NoError(t, err)
	kvdb := kv.NewKVDB(store)
	t.Cleanup(func() { _ = kvdb.Close() })
	require.NoError(t, kvdb.BuildEdgeStore(ctx, edges))

	repos := map[string]EdgeRepository{
		"snapshot": newSnapshot(t, edges),
		"kv":       kvdb,
	}
	fullScan := NewNearbyResolver(&stubRepository{edges: edges}, testLogger())

	cases := []struct {
		name   string
		point  datastructure.Coordinate
		radius float64
		want   []int64
	}{
		{name: "equator parallel edges", point: datastructure.NewCoordinate(0, 0.0005), radius: 120, want: []int64{1, -1, 2}},
		{name: "arc midpoint at 60N", point: arcMidpoint(t, edges[3].Geometry), radius: 1, want: []int64{7}},
		{name: "arc midpoint at 70N", point: arcMidpoint(t, edges[4].Geometry), radius: 1, want: []int64{8, -8}},
		{name: "radius past the cell disk", point: datastructure.NewCoordinate(60.2, 0.2), radius: 30000, want: []int64{7}},
		{name: "nothing near", point: datastructure.NewCoordinate(-40, 100), radius: 500, want: []int64{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want, err := fullScan.FindNearby(ctx, c.point, c.radius)
			require.NoError(t, err)
			assert.Equal(t, c.want, directedIDs(want))

			for name, repo := range repos {
				got, err := NewNearbyResolver(repo, testLogger()).FindNearby(ctx, c.point, c.radius)
				require.NoError(t, err, name)
				assert.Equal(t, directedIDs(want), directedIDs(got), name)
			}
		})
	}
}
