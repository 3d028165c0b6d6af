package grpcserver

import (
	pb "lintang/mapagent/api/openlr_services"
	"lintang/mapagent/pkg/datastructure"
)

func edgeToProto(e datastructure.DirectedEdge) *pb.Edge {
	return &pb.Edge{
		Id:     e.ID,
		Meta:   e.Meta,
		Fow:    pb.FOW(e.Fow),
		Frc:    pb.FRC(e.Frc),
		Len:    e.Length,
		Coords: CoordinatesToProto(e.Coords),
	}
}

func EdgeSetToProto(set datastructure.EdgeSet) *pb.EdgeSet {
	edges := make([]*pb.Edge, 0, len(set.Edges))
	for _, e := range set.Edges {
		edges = append(edges, edgeToProto(e))
	}
	return &pb.EdgeSet{Edges: edges}
}

// EdgeSetFromProto wire enum values outside the FOW/FRC enumerations are kept as is.
func EdgeSetFromProto(set *pb.EdgeSet) datastructure.EdgeSet {
	edges := make([]datastructure.DirectedEdge, 0, len(set.GetEdges()))
	for _, e := range set.GetEdges() {
		edges = append(edges, datastructure.DirectedEdge{
			ID:     e.GetId(),
			Meta:   e.GetMeta(),
			Fow:    datastructure.FOW(e.GetFow()),
			Frc:    datastructure.FRC(e.GetFrc()),
			Length: e.GetLen(),
			Coords: CoordinatesFromProto(e.GetCoords()),
		})
	}
	return datastructure.NewEdgeSet(edges)
}

// CoordinatesFromProto nil entries read as the zero coordinate.
func CoordinatesFromProto(cs []*pb.Coordinate) []datastructure.Coordinate {
	out := make([]datastructure.Coordinate, 0, len(cs))
	for _, c := range cs {
		out = append(out, datastructure.NewCoordinate(c.GetLatitude(), c.GetLongitude()))
	}
	return out
}

func CoordinatesToProto(cs []datastructure.Coordinate) []*pb.Coordinate {
	out := make([]*pb.Coordinate, 0, len(cs))
	for _, c := range cs {
		out = append(out, &pb.Coordinate{Longitude: c.Lon, Latitude: c.Lat})
	}
	return out
}
