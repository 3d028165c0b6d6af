package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/snap"
)

var (
	ErrDuplicateEdge = errors.New("duplicate edge id and meta")
)

type edgeKey struct {
	id   uint64
	meta string
}

// Snapshot immutable in-memory edge store. reads need no locking.
type Snapshot struct {
	edges   []datastructure.StoredEdge
	byID    map[edgeKey]int
	byNode  map[int64][]int
	snapper *snap.RoadSnapper
}

func NewSnapshot(edges []datastructure.StoredEdge) (*Snapshot, error) {
	edges = append([]datastructure.StoredEdge(nil), edges...)
	s := &Snapshot{
		edges:  edges,
		byID:   make(map[edgeKey]int, len(edges)),
		byNode: make(map[int64][]int),
	}

	for i := range edges {
		e := &edges[i]
		key := edgeKey{id: e.ID, meta: e.Meta}
		if _, ok := s.byID[key]; ok {
			return nil, fmt.Errorf("%w: %d %q", ErrDuplicateEdge, e.ID, e.Meta)
		}
		s.byID[key] = i

		s.byNode[e.FromInt] = append(s.byNode[e.FromInt], i)
		if !e.IsLoop() {
			s.byNode[e.ToInt] = append(s.byNode[e.ToInt], i)
		}
	}

	s.snapper = snap.NewRoadSnapper(datastructure.NewRtree(25, 50))
	s.snapper.BuildRoadSnapper(edges)

	slog.Info("edge snapshot built", "edges", len(edges), "nodes", len(s.byNode))
	return s, nil
}

// NewSnapshotFromFile snapshot of an edge file.
func NewSnapshotFromFile(path string) (*Snapshot, error) {
	edges, err := ReadEdgeFile(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(edges)
}

// NewSnapshotFrom snapshot of everything another edge store holds.
func NewSnapshotFrom(ctx context.Context, src interface {
	LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error)
}) (*Snapshot, error) {
	edges, err := src.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	return NewSnapshot(edges)
}

func (s *Snapshot) Len() int {
	return len(s.edges)
}

func (s *Snapshot) LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error) {
	out := make([]datastructure.StoredEdge, len(s.edges))
	copy(out, s.edges)
	return out, nil
}

func (s *Snapshot) FindByID(ctx context.Context, id uint64, meta string) (datastructure.StoredEdge, bool, error) {
	idx, ok := s.byID[edgeKey{id: id, meta: meta}]
	if !ok {
		return datastructure.StoredEdge{}, false, nil
	}
	return s.edges[idx], true, nil
}

func (s *Snapshot) SpatialCandidates(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
	indexes := s.snapper.SnapToRoadsWithinRadius(point, radius)
	out := make([]datastructure.StoredEdge, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, s.edges[idx])
	}
	return out, nil
}

func (s *Snapshot) EdgesAtNode(ctx context.Context, node int64) ([]datastructure.StoredEdge, error) {
	indexes := s.byNode[node]
	out := make([]datastructure.StoredEdge, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, s.edges[idx])
	}
	return out, nil
}
