package topology

import (
	"context"
	"log/slog"

	"lintang/mapagent/pkg/datastructure"
)

// SuccessorResolver directed edges enterable right after a directed edge.
type SuccessorResolver struct {
	repo   EdgeRepository
	logger *slog.Logger
}

func NewSuccessorResolver(repo EdgeRepository, logger *slog.Logger) *SuccessorResolver {
	return &SuccessorResolver{repo: repo, logger: logger}
}

// FindSuccessors edges leaving the exit node of ref, excluding ref's own stored edge.
// an unknown ref yields an empty set.
func (r *SuccessorResolver) FindSuccessors(ctx context.Context, ref datastructure.EdgeRef) (datastructure.EdgeSet, error) {
	id := ref.StoredID()
	source, found, err := r.repo.FindByID(ctx, id, ref.Meta)
	if err != nil {
		return datastructure.EdgeSet{}, backendError(ctx, err, "find edge")
	}
	if !found {
		return datastructure.NewEdgeSet(nil), nil
	}
	if err := source.Validate(); err != nil {
		return datastructure.EdgeSet{}, integrityError(r.logger, &source, err)
	}

	exitNode := source.ToInt
	if !ref.Forward() {
		exitNode = source.FromInt
	}

	candidates, err := r.repo.EdgesAtNode(ctx, exitNode)
	if err != nil {
		return datastructure.EdgeSet{}, backendError(ctx, err, "edges at node")
	}

	edges := make([]datastructure.DirectedEdge, 0)
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.ID == id {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return datastructure.EdgeSet{}, integrityError(r.logger, candidate, err)
		}

		if candidate.FromInt == exitNode && candidate.Flow.EnterableForward() {
			edges = append(edges, datastructure.BuildForward(*candidate))
		}
		if candidate.ToInt == exitNode && candidate.Flow.EnterableReversed() {
			edges = append(edges, datastructure.BuildReversed(*candidate))
		}
	}

	if err := contextError(ctx); err != nil {
		return datastructure.EdgeSet{}, err
	}
	return datastructure.NewEdgeSet(edges), nil
}
