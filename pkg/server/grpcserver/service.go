package grpcserver

//go:generate protoc -I ../../../api --go_out=../../.. --go_opt=module=lintang/mapagent --go-grpc_out=../../.. --go-grpc_opt=module=lintang/mapagent ../../../api/openlr_services.proto

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	pb "lintang/mapagent/api/openlr_services"
	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/engine/topology"
	"lintang/mapagent/pkg/server"
)

var ServiceName = pb.MapService_ServiceDesc.ServiceName

type MapService interface {
	RadiusSearch(ctx context.Context, points []datastructure.Coordinate, radius float64) ([]topology.PointResult, error)
	NextEdges(ctx context.Context, ref datastructure.EdgeRef) (datastructure.EdgeSet, error)
}

// MapServer pb.MapServiceServer over the topology service.
type MapServer struct {
	pb.UnimplementedMapServiceServer

	svc     MapService
	metrics *server.Metrics
	logger  *slog.Logger
}

func NewMapServer(svc MapService, m *server.Metrics, logger *slog.Logger) *MapServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MapServer{
		svc:     svc,
		metrics: m,
		logger:  logger,
	}
}

// RadiusSearch the response has no per point error slot, so the whole call fails
// with the error of the lowest index failing point.
func (s *MapServer) RadiusSearch(ctx context.Context, req *pb.RadiusSearchRequest) (*pb.RadiusSearchResponse, error) {
	results, err := s.svc.RadiusSearch(ctx, CoordinatesFromProto(req.GetPoints()), float64(req.GetRadius()))
	if err != nil {
		return nil, err
	}
	if err := topology.FirstError(results); err != nil {
		return nil, err
	}

	resp := &pb.RadiusSearchResponse{EdgeSets: make([]*pb.EdgeSet, 0, len(results))}
	for _, res := range results {
		s.metrics.ObserveEdges("RadiusSearch", res.EdgeSet.Len())
		resp.EdgeSets = append(resp.EdgeSets, EdgeSetToProto(res.EdgeSet))
	}
	return resp, nil
}

func (s *MapServer) NextEdges(ctx context.Context, req *pb.NextEdgesRequest) (*pb.EdgeSet, error) {
	set, err := s.svc.NextEdges(ctx, datastructure.NewEdgeRef(req.GetId(), req.GetMeta()))
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveEdges("NextEdges", set.Len())
	return EdgeSetToProto(set), nil
}

// NewServer grpc server with the request interceptor and the map service registered.
func NewServer(svc MapService, m *server.Metrics, logger *slog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryInterceptor(m, logger)),
	}, opts...)
	s := grpc.NewServer(opts...)
	pb.RegisterMapServiceServer(s, NewMapServer(svc, m, logger))
	return s
}
