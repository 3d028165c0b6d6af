package datastructure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEdge(flow Flow) StoredEdge {
	return NewStoredEdge(7, "N", FowSingleCarriageway, FRC3, 120,
		[]Coordinate{
			NewCoordinate(-7.5500, 110.7800),
			NewCoordinate(-7.5505, 110.7810),
			NewCoordinate(-7.5512, 110.7815),
		}, 100, 200, flow)
}

func TestBuildForward(t *testing.T) {
	e := sampleEdge(FlowTwoWay)
	fwd := BuildForward(e)

	assert.Equal(t, int64(7), fwd.ID)
	assert.Equal(t, e.Meta, fwd.Meta)
	assert.Equal(t, e.Fow, fwd.Fow)
	assert.Equal(t, e.Frc, fwd.Frc)
	assert.Equal(t, e.Length, fwd.Length)
	assert.Equal(t, e.Geometry, fwd.Coords)
	assert.False(t, fwd.IsReversed())

	fwd.Coords[0] = NewCoordinate(0, 0)
	assert.NotEqual(t, fwd.Coords[0], e.Geometry[0], "directed edge must not alias the stored geometry")
}

func TestBuildReversed(t *testing.T) {
	e := sampleEdge(FlowTwoWay)
	rev := BuildReversed(e)

	assert.Equal(t, int64(-7), rev.ID)
	assert.Equal(t, uint64(7), rev.StoredID())
	assert.True(t, rev.IsReversed())
	require.Len(t, rev.Coords, 3)
	assert.Equal(t, e.Geometry[2], rev.Coords[0])
	assert.Equal(t, e.Geometry[1], rev.Coords[1])
	assert.Equal(t, e.Geometry[0], rev.Coords[2])
	assert.Equal(t, NewCoordinate(-7.5500, 110.7800), e.Geometry[0], "stored geometry must stay in stored order")
}

func TestReversalInvolution(t *testing.T) {
	e := sampleEdge(FlowTwoWay)
	rev := BuildReversed(e)
	twice := BuildReversed(StoredEdge{ID: e.ID, Geometry: rev.Coords})

	assert.Equal(t, e.Geometry, twice.Coords)
}

func TestEmit(t *testing.T) {
	t.Run("forward only", func(t *testing.T) {
		out, err := Emit(sampleEdge(FlowForwardOnly))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, int64(7), out[0].ID)
	})

	t.Run("reverse only", func(t *testing.T) {
		e := sampleEdge(FlowReverseOnly)
		out, err := Emit(e)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, int64(-7), out[0].ID)
		assert.Equal(t, e.Geometry[0], out[0].Coords[len(out[0].Coords)-1])
	})

	t.Run("two way", func(t *testing.T) {
		e := sampleEdge(FlowTwoWay)
		out, err := Emit(e)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, int64(7), out[0].ID)
		assert.Equal(t, int64(-7), out[1].ID)
		assert.Equal(t, e.Geometry, out[0].Coords)
		assert.Equal(t, BuildReversed(e).Coords, out[1].Coords)
	})

	t.Run("unknown flow", func(t *testing.T) {
		_, err := Emit(sampleEdge(Flow(9)))
		assert.ErrorIs(t, err, ErrInvalidFlow)
	})
}

func TestStoredEdgeValidate(t *testing.T) {
	e := sampleEdge(FlowTwoWay)
	assert.NoError(t, e.Validate())

	short := sampleEdge(FlowTwoWay)
	short.Geometry = short.Geometry[:1]
	assert.ErrorIs(t, short.Validate(), ErrInvalidGeometry)

	badFlow := sampleEdge(Flow(3))
	assert.ErrorIs(t, badFlow.Validate(), ErrInvalidFlow)

	badFow := sampleEdge(FlowTwoWay)
	badFow.Fow = FOW(8)
	assert.ErrorIs(t, badFow.Validate(), ErrInvalidFow)

	badFrc := sampleEdge(FlowTwoWay)
	badFrc.Frc = FRC(8)
	assert.ErrorIs(t, badFrc.Validate(), ErrInvalidFrc)
}

func TestEnumText(t *testing.T) {
	b, err := json.Marshal(BuildReversed(sampleEdge(FlowTwoWay)))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"fow":"SINGLE_CARRIAGEWAY"`)
	assert.Contains(t, string(b), `"frc":"FRC3"`)

	var flow Flow
	require.NoError(t, flow.UnmarshalText([]byte("REVERSE_ONLY")))
	assert.Equal(t, FlowReverseOnly, flow)
	assert.Error(t, flow.UnmarshalText([]byte("SIDEWAYS")))

	var fow FOW
	require.NoError(t, fow.UnmarshalText([]byte("SLIP_ROAD")))
	assert.Equal(t, FowSlipRoad, fow)

	var frc FRC
	require.NoError(t, frc.UnmarshalText([]byte("FRC6")))
	assert.Equal(t, FRC6, frc)
	assert.Error(t, frc.UnmarshalText([]byte("FRC9")))
}

func TestFlowEnterability(t *testing.T) {
	assert.True(t, FlowForwardOnly.EnterableForward())
	assert.False(t, FlowForwardOnly.EnterableReversed())
	assert.False(t, FlowReverseOnly.EnterableForward())
	assert.True(t, FlowReverseOnly.EnterableReversed())
	assert.True(t, FlowTwoWay.EnterableForward())
	assert.True(t, FlowTwoWay.EnterableReversed())
}

func TestPolyline(t *testing.T) {
	path := []Coordinate{NewCoordinate(38.5, -120.2), NewCoordinate(40.7, -120.95), NewCoordinate(43.252, -126.453)}
	s := CreatePolyline(path)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", s)

	decoded, err := DecodePolyline(s)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 43.252, decoded[2].Lat, 1e-6)
}
