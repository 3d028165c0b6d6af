package topology

import (
	"context"
	"log/slog"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/server"
)

const ctxCheckInterval = 256

// NearbyResolver directed edges lying within a radius of a point.
type NearbyResolver struct {
	repo   EdgeRepository
	logger *slog.Logger
}

func NewNearbyResolver(repo EdgeRepository, logger *slog.Logger) *NearbyResolver {
	return &NearbyResolver{repo: repo, logger: logger}
}

// FindNearby every candidate whose geodesic distance to point is <= radius meters, expanded by flow.
// order follows the repository's candidate order, forward before reversed.
func (r *NearbyResolver) FindNearby(ctx context.Context, point datastructure.Coordinate, radius float64) (datastructure.EdgeSet, error) {
	candidates, err := r.repo.SpatialCandidates(ctx, point, radius)
	if err != nil {
		return datastructure.EdgeSet{}, backendError(ctx, err, "spatial candidates")
	}

	edges := make([]datastructure.DirectedEdge, 0)
	for i := range candidates {
		if i%ctxCheckInterval == 0 {
			if err := contextError(ctx); err != nil {
				return datastructure.EdgeSet{}, err
			}
		}
		candidate := &candidates[i]

		switch len(candidate.Geometry) {
		case 0:
			r.logger.Warn("skipping edge without geometry", "edge_id", candidate.ID, "meta", candidate.Meta)
			continue
		case 1:
			return datastructure.EdgeSet{}, integrityError(r.logger, candidate, datastructure.ErrInvalidGeometry)
		}

		dist, _, err := geo.DistanceToPolyline(point, candidate.Geometry)
		if err != nil {
			return datastructure.EdgeSet{}, server.WrapErrorf(err, server.ErrInternalServerError, "distance to edge %d", candidate.ID)
		}
		if dist > radius {
			continue
		}

		if err := candidate.Validate(); err != nil {
			return datastructure.EdgeSet{}, integrityError(r.logger, candidate, err)
		}
		emitted, err := datastructure.Emit(*candidate)
		if err != nil {
			return datastructure.EdgeSet{}, integrityError(r.logger, candidate, err)
		}
		edges = append(edges, emitted...)
	}

	return datastructure.NewEdgeSet(edges), nil
}
