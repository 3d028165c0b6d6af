package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/mapagent/pkg/datastructure"
)

func testEdges() []datastructure.StoredEdge {
	c := datastructure.NewCoordinate
	return []datastructure.StoredEdge{
		datastructure.NewStoredEdge(1, "", datastructure.FowSingleCarriageway, datastructure.FRC3, 111,
			[]datastructure.Coordinate{c(0, 0), c(0, 0.001)}, 10, 20, datastructure.FlowTwoWay),
		datastructure.NewStoredEdge(2, "way:7", datastructure.FowMotorway, datastructure.FRC0, 1113,
			[]datastructure.Coordinate{c(0, 0.001), c(0, 0.011)}, 20, 30, datastructure.FlowForwardOnly),
		datastructure.NewStoredEdge(2, "way:8", datastructure.FowSlipRoad, datastructure.FRC1, 111,
			[]datastructure.Coordinate{c(0, 0.011), c(0.001, 0.011)}, 30, 40, datastructure.FlowReverseOnly),
		datastructure.NewStoredEdge(3, "", datastructure.FowOther, datastructure.FRC7, 111,
			[]datastructure.Coordinate{c(45, 45), c(45.001, 45)}, 50, 60, datastructure.FlowTwoWay),
	}
}

func forEachEngine(t *testing.T, fn func(t *testing.T, kvdb *KVDB)) {
	for _, engine := range []string{EngineBadger, EnginePebble} {
		t.Run(engine, func(t *testing.T) {
			store, err := OpenStore(engine, "")
			require.NoError(t, err)
			kvdb := NewKVDB(store)
			t.Cleanup(func() { _ = kvdb.Close() })

			require.NoError(t, kvdb.BuildEdgeStore(context.Background(), testEdges()))
			fn(t, kvdb)
		})
	}
}

func storedIDs(edges []datastructure.StoredEdge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Meta+"#"+string(rune('0'+e.ID)))
	}
	return out
}

func TestKVDBLoadAll(t *testing.T) {
	forEachEngine(t, func(t *testing.T, kvdb *KVDB) {
		edges, err := kvdb.LoadAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testEdges(), edges)
	})
}

func TestKVDBFindByID(t *testing.T) {
	forEachEngine(t, func(t *testing.T, kvdb *KVDB) {
		ctx := context.Background()
		e, found, err := kvdb.FindByID(ctx, 2, "way:8")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, testEdges()[2], e)

		_, found, err = kvdb.FindByID(ctx, 2, "")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestKVDBEdgesAtNode(t *testing.T) {
	forEachEngine(t, func(t *testing.T, kvdb *KVDB) {
		ctx := context.Background()
		edges, err := kvdb.EdgesAtNode(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, []string{"way:7#2", "way:8#2"}, storedIDs(edges))

		edges, err = kvdb.EdgesAtNode(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, edges)
		assert.Empty(t, edges)
	})
}

func TestKVDBSpatialCandidates(t *testing.T) {
	forEachEngine(t, func(t *testing.T, kvdb *KVDB) {
		ctx := context.Background()

		// middle of the 1.1km motorway, far from its end points
		edges, err := kvdb.SpatialCandidates(ctx, datastructure.NewCoordinate(0.0002, 0.006), 50)
		require.NoError(t, err)
		assert.Contains(t, storedIDs(edges), "way:7#2")
		assert.NotContains(t, storedIDs(edges), "#3")

		edges, err = kvdb.SpatialCandidates(ctx, datastructure.NewCoordinate(-30, -30), 100)
		require.NoError(t, err)
		assert.Empty(t, edges)

		// radius too large for a grid disk falls back to a scan
		edges, err = kvdb.SpatialCandidates(ctx, datastructure.NewCoordinate(0, 0), 2_000_000)
		require.NoError(t, err)
		assert.Equal(t, []string{"#1", "way:7#2", "way:8#2"}, storedIDs(edges))
	})
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("e;"), prefixUpperBound([]byte("e:")))
	assert.Equal(t, []byte{0x01}, prefixUpperBound([]byte{0x00, 0xff}))
	assert.Nil(t, prefixUpperBound([]byte{0xff, 0xff}))
}

func TestOpenStoreUnknownEngine(t *testing.T) {
	_, err := OpenStore("rocksdb", "")
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestEncodeLoadEdges(t *testing.T) {
	bb, err := encodeEdges(testEdges())
	require.NoError(t, err)
	edges, err := loadEdges(bb)
	require.NoError(t, err)
	assert.Equal(t, testEdges(), edges)

	_, err = loadEdges([]byte("not zstd"))
	assert.Error(t, err)
}

func TestKVDBLoopIndexedOnce(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore(EngineBadger, "")
	require.NoError(t, err)
	kvdb := NewKVDB(store)
	t.Cleanup(func() { _ = kvdb.Close() })

	c := datastructure.NewCoordinate
	loop := datastructure.NewStoredEdge(9, "", datastructure.FowRoundabout, datastructure.FRC3, 50,
		[]datastructure.Coordinate{c(0, 0), c(0.0001, 0.0001), c(0, 0)}, 5, 5, datastructure.FlowForwardOnly)
	require.NoError(t, kvdb.BuildEdgeStore(ctx, []datastructure.StoredEdge{loop}))

	edges, err := kvdb.EdgesAtNode(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}
