package topology

import (
	"context"

	"lintang/mapagent/pkg/datastructure"
)

// EdgeRepository read side of an edge store. implementations must be safe for concurrent use.
type EdgeRepository interface {
	// LoadAll every stored edge.
	LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error)
	// FindByID found=false when no edge has this id and meta.
	FindByID(ctx context.Context, id uint64, meta string) (datastructure.StoredEdge, bool, error)
	// SpatialCandidates superset of the edges lying within radius meters of point.
	SpatialCandidates(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error)
	// EdgesAtNode edges whose FromInt or ToInt equals node.
	EdgesAtNode(ctx context.Context, node int64) ([]datastructure.StoredEdge, error)
}
