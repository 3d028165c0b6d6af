package grpcserver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	pb "lintang/mapagent/api/openlr_services"
	"lintang/mapagent/pkg/datastructure"
)

func TestEdgeWireLayout(t *testing.T) {
	// Edge{id=-3, meta="w7", fow=SINGLE_CARRIAGEWAY, frc=FRC2, len=120, coords=[{1.5, -2}]}
	var coord []byte
	coord = protowire.AppendTag(coord, 1, protowire.Fixed64Type)
	coord = protowire.AppendFixed64(coord, math.Float64bits(1.5))
	coord = protowire.AppendTag(coord, 2, protowire.Fixed64Type)
	coord = protowire.AppendFixed64(coord, math.Float64bits(-2))

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	id := int64(-3)
	b = protowire.AppendVarint(b, uint64(id))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "w7")
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, 3)
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, 2)
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, 120)
	b = protowire.AppendTag(b, 6, protowire.BytesType)
	b = protowire.AppendBytes(b, coord)

	want := &pb.Edge{Id: -3, Meta: "w7", Fow: pb.FOW_SINGLE_CARRIAGEWAY, Frc: pb.FRC_FRC2, Len: 120,
		Coords: []*pb.Coordinate{{Longitude: 1.5, Latitude: -2}}}
	encoded, err := proto.MarshalOptions{Deterministic: true}.Marshal(want)
	require.NoError(t, err)
	assert.Equal(t, b, encoded)

	got := &pb.Edge{}
	require.NoError(t, proto.Unmarshal(b, got))
	assert.True(t, proto.Equal(want, got))
}

func TestUnknownFieldsSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	// meta with the wrong wire type is kept as an unknown field
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, 5)

	req := &pb.NextEdgesRequest{}
	require.NoError(t, proto.Unmarshal(b, req))
	assert.Equal(t, int64(42), req.GetId())
	assert.Equal(t, "", req.GetMeta())
}

func TestTruncatedMessage(t *testing.T) {
	b, err := proto.Marshal(&pb.NextEdgesRequest{Id: 1, Meta: "abc"})
	require.NoError(t, err)
	assert.Error(t, proto.Unmarshal(b[:len(b)-1], &pb.NextEdgesRequest{}))
}

func TestEmptyEdgeSetsSurvive(t *testing.T) {
	b, err := proto.Marshal(&pb.RadiusSearchResponse{EdgeSets: []*pb.EdgeSet{{}, {}}})
	require.NoError(t, err)
	got := &pb.RadiusSearchResponse{}
	require.NoError(t, proto.Unmarshal(b, got))
	assert.Len(t, got.GetEdgeSets(), 2)
}

func TestEdgeSetRoundTrip(t *testing.T) {
	set := datastructure.NewEdgeSet([]datastructure.DirectedEdge{
		{ID: 5, Meta: "way:1", Fow: datastructure.FowRoundabout, Frc: datastructure.FRC4, Length: 30,
			Coords: []datastructure.Coordinate{datastructure.NewCoordinate(1, 2), datastructure.NewCoordinate(3, 4)}},
		{ID: -5, Meta: "way:1", Fow: datastructure.FowRoundabout, Frc: datastructure.FRC4, Length: 30,
			Coords: []datastructure.Coordinate{datastructure.NewCoordinate(3, 4), datastructure.NewCoordinate(1, 2)}},
	})
	msg := EdgeSetToProto(set)
	assert.Equal(t, pb.FOW_ROUNDABOUT, msg.GetEdges()[0].GetFow())
	assert.Equal(t, 2.0, msg.GetEdges()[0].GetCoords()[0].GetLongitude())
	assert.Equal(t, set, EdgeSetFromProto(msg))

	assert.Equal(t, datastructure.NewEdgeSet(nil), EdgeSetFromProto(nil))
	assert.Equal(t, []datastructure.Coordinate{{}}, CoordinatesFromProto([]*pb.Coordinate{nil}))
}
