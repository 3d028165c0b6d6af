package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	pb "lintang/mapagent/api/openlr_services"
	"lintang/mapagent/pkg/datastructure"
)

// Client generated MapService client with domain typed helpers.
type Client struct {
	pb.MapServiceClient
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{MapServiceClient: pb.NewMapServiceClient(cc)}
}

// FindNearby RadiusSearch for plain coordinates, radius in meters.
func (c *Client) FindNearby(ctx context.Context, points []datastructure.Coordinate, radius uint32, opts ...grpc.CallOption) ([]datastructure.EdgeSet, error) {
	resp, err := c.RadiusSearch(ctx, &pb.RadiusSearchRequest{
		Points: CoordinatesToProto(points),
		Radius: radius,
	}, opts...)
	if err != nil {
		return nil, err
	}
	sets := make([]datastructure.EdgeSet, 0, len(resp.GetEdgeSets()))
	for _, s := range resp.GetEdgeSets() {
		sets = append(sets, EdgeSetFromProto(s))
	}
	return sets, nil
}

func (c *Client) Successors(ctx context.Context, ref datastructure.EdgeRef, opts ...grpc.CallOption) (datastructure.EdgeSet, error) {
	resp, err := c.NextEdges(ctx, &pb.NextEdgesRequest{Id: ref.ID, Meta: ref.Meta}, opts...)
	if err != nil {
		return datastructure.EdgeSet{}, err
	}
	return EdgeSetFromProto(resp), nil
}
