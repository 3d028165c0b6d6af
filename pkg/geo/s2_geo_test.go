package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/mapagent/pkg/datastructure"
)

func TestDistanceToPolyline(t *testing.T) {
	line := []datastructure.Coordinate{
		datastructure.NewCoordinate(47.667324, -122.118989),
		datastructure.NewCoordinate(47.667338, -122.121784),
	}

	t.Run("point on a vertex", func(t *testing.T) {
		dist, nearest, err := DistanceToPolyline(line[0], line)
		require.NoError(t, err)
		assert.InDelta(t, 0, dist, 1e-6)
		assert.InDelta(t, line[0].Lat, nearest.Lat, 1e-9)
	})

	t.Run("point beside the segment projects onto its interior", func(t *testing.T) {
		q := datastructure.NewCoordinate(47.667447, -122.120561)
		dist, nearest, err := DistanceToPolyline(q, line)
		require.NoError(t, err)
		// ~0.00011 deg of latitude north of the line
		assert.InDelta(t, 12.8, dist, 1.0)
		assert.InDelta(t, -122.120561, nearest.Lon, 1e-5)
	})

	t.Run("point past the end uses the end vertex", func(t *testing.T) {
		q := datastructure.NewCoordinate(47.667338, -122.131784)
		dist, _, err := DistanceToPolyline(q, line)
		require.NoError(t, err)
		assert.InDelta(t, GeodesicDistance(q, line[1]), dist, 0.01)
	})

	t.Run("empty polyline", func(t *testing.T) {
		_, _, err := DistanceToPolyline(line[0], nil)
		assert.ErrorIs(t, err, ErrEmptyPolyline)
	})
}

func TestGeodesicDistance(t *testing.T) {
	// one degree of longitude on the equator of WGS84
	d := GeodesicDistance(datastructure.NewCoordinate(0, 0), datastructure.NewCoordinate(0, 1))
	assert.InDelta(t, 111319.49, d, 0.1)
}

func TestPolylineLength(t *testing.T) {
	line := []datastructure.Coordinate{
		datastructure.NewCoordinate(0, 0),
		datastructure.NewCoordinate(0, 1),
		datastructure.NewCoordinate(0, 2),
	}
	assert.InDelta(t, 2*111319.49, PolylineLength(line), 0.2)
	assert.Equal(t, 0.0, PolylineLength(line[:1]))
}

func TestSearchBounds(t *testing.T) {
	p := datastructure.NewCoordinate(-7.55, 110.78)
	boxes := SearchBounds(p, 500)
	require.Len(t, boxes, 1)

	b := boxes[0]
	assert.Less(t, b.Edges[0][0], p.Lat)
	assert.Greater(t, b.Edges[0][1], p.Lat)
	assert.Less(t, b.Edges[1][0], p.Lon)
	assert.Greater(t, b.Edges[1][1], p.Lon)

	// the box must contain a point 500m due north
	north := datastructure.NewCoordinate(p.Lat+500.0/111000.0, p.Lon)
	assert.LessOrEqual(t, north.Lat, b.Edges[0][1])

	t.Run("antimeridian", func(t *testing.T) {
		boxes := SearchBounds(datastructure.NewCoordinate(0, 179.9999), 1000)
		require.Len(t, boxes, 2)
		assert.Equal(t, 180.0, boxes[0].Edges[1][1])
		assert.Equal(t, -180.0, boxes[1].Edges[1][0])
	})
}

func TestEdgeBounds(t *testing.T) {
	t.Run("arc bulges past the vertex latitude", func(t *testing.T) {
		line := []datastructure.Coordinate{
			datastructure.NewCoordinate(60, 0),
			datastructure.NewCoordinate(60, 0.4),
		}
		boxes := EdgeBounds(line)
		require.Len(t, boxes, 1)

		_, mid, err := DistanceToPolyline(datastructure.NewCoordinate(60, 0.2), line)
		require.NoError(t, err)
		// the great circle midpoint sits ~17m north of latitude 60
		assert.Greater(t, mid.Lat, 60.00005)
		assert.GreaterOrEqual(t, boxes[0].Edges[0][1], mid.Lat)
		assert.LessOrEqual(t, boxes[0].Edges[0][0], 60.0)
		assert.LessOrEqual(t, boxes[0].Edges[1][0], 0.0)
		assert.GreaterOrEqual(t, boxes[0].Edges[1][1], 0.4)
	})

	t.Run("antimeridian", func(t *testing.T) {
		line := []datastructure.Coordinate{
			datastructure.NewCoordinate(0, 179.9999),
			datastructure.NewCoordinate(0, -179.9999),
		}
		boxes := EdgeBounds(line)
		require.Len(t, boxes, 2)
		assert.Equal(t, 180.0, boxes[0].Edges[1][1])
		assert.Equal(t, -180.0, boxes[1].Edges[1][0])

		whole := EdgeBound(line)
		assert.Equal(t, -180.0, whole.Edges[1][0])
		assert.Equal(t, 180.0, whole.Edges[1][1])
	})

	assert.Empty(t, EdgeBounds(nil))
}

func TestDensifyPolyline(t *testing.T) {
	line := []datastructure.Coordinate{
		datastructure.NewCoordinate(0, 0),
		datastructure.NewCoordinate(0, 0.01),
	}
	dense := DensifyPolyline(line, 100)
	// ~1113m split into 12 pieces
	assert.Len(t, dense, 13)
	assert.Equal(t, line[0], dense[0])
	assert.Equal(t, line[1], dense[len(dense)-1])
	for i := 1; i < len(dense); i++ {
		assert.LessOrEqual(t, GeodesicDistance(dense[i-1], dense[i]), 100.0)
	}

	assert.Equal(t, line[:1], DensifyPolyline(line[:1], 100))
	assert.Len(t, DensifyPolyline(line, 0), 2)
}
