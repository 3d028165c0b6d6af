package snap

import (
	"log/slog"
	"sort"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/util"
)

type Rtree interface {
	InsertLeaf(bound datastructure.RtreeBoundingBox, index int)
	Search(bound datastructure.RtreeBoundingBox) []datastructure.RtreeLeaf
}

// RoadSnapper spatial index over an edge arena. leaves carry arena indexes.
type RoadSnapper struct {
	rtree Rtree
}

func NewRoadSnapper(rtree Rtree) *RoadSnapper {
	return &RoadSnapper{rtree: rtree}
}

// BuildRoadSnapper inserts the arc aware bounds of every edge geometry, one leaf per box. edges without geometry are never candidates.
func (rs *RoadSnapper) BuildRoadSnapper(edges []datastructure.StoredEdge) {
	for idx, edge := range edges {
		if len(edge.Geometry) == 0 {
			continue
		}
		if (idx+1)%100000 == 0 {
			slog.Debug("inserting edges to r-tree", "count", idx+1)
		}
		for _, bound := range geo.EdgeBounds(edge.Geometry) {
			rs.rtree.InsertLeaf(bound, idx)
		}
	}
}

// SnapToRoadsWithinRadius arena indexes, ascending, of edges whose bounds intersect the
// search cap of radius meters around p. a superset of the edges within radius.
func (rs *RoadSnapper) SnapToRoadsWithinRadius(p datastructure.Coordinate, radius float64) []int {
	indexes := make([]int, 0)
	for _, bound := range geo.SearchBounds(p, radius) {
		for _, leaf := range rs.rtree.Search(bound) {
			indexes = append(indexes, leaf.Index)
		}
	}
	indexes = util.Dedup(indexes, func(i int) int { return i })
	sort.Ints(indexes)
	return indexes
}
