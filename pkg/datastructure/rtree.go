package datastructure

import (
	"github.com/dhconnelly/rtreego"
)

const (
	// bounds of a leaf are padded so zero-width segments (vertical or horizontal lines) stay valid rectangles.
	boundPadding = 1e-9
)

type RtreeBoundingBox struct {
	// number of dimensions
	Dim int
	// Edges[i][0] = low value, Edges[i][1] = high value
	// i = 0,...,Dim
	Edges [][2]float64
}

func NewRtreeBoundingBox(dim int, minVal []float64, maxVal []float64) RtreeBoundingBox {
	b := RtreeBoundingBox{Dim: dim, Edges: make([][2]float64, dim)}
	for axis := 0; axis < dim; axis++ {
		b.Edges[axis] = [2]float64{minVal[axis], maxVal[axis]}
	}

	return b
}

func (b RtreeBoundingBox) rect() rtreego.Rect {
	minPoint := make(rtreego.Point, b.Dim)
	maxPoint := make(rtreego.Point, b.Dim)
	for axis := 0; axis < b.Dim; axis++ {
		minPoint[axis] = b.Edges[axis][0] - boundPadding
		maxPoint[axis] = b.Edges[axis][1] + boundPadding
	}
	r, err := rtreego.NewRectFromPoints(minPoint, maxPoint)
	if err != nil {
		// only possible when min > max; padding keeps the box non-degenerate otherwise.
		r, _ = rtreego.NewRectFromPoints(maxPoint, minPoint)
	}
	return r
}

// Overlaps checks if two bounding boxes overlap (touching counts).
func Overlaps(b RtreeBoundingBox, bb RtreeBoundingBox) bool {
	for axis := 0; axis < b.Dim; axis++ {
		if b.Edges[axis][0] > bb.Edges[axis][1] || bb.Edges[axis][0] > b.Edges[axis][1] {
			return false
		}
	}
	return true
}

// RtreeLeaf. item stored in the rtree, Index points into the owner's edge arena.
type RtreeLeaf struct {
	Index int
	Bound RtreeBoundingBox
	rect  rtreego.Rect
}

func (l *RtreeLeaf) Bounds() rtreego.Rect {
	return l.rect
}

// Rtree. 2d rtree over edge bounds, built once then read only.
type Rtree struct {
	tree *rtreego.Rtree
	Size int
}

func NewRtree(minChildItems, maxChildItems int) *Rtree {
	return &Rtree{
		tree: rtreego.NewTree(2, minChildItems, maxChildItems),
	}
}

func (rt *Rtree) InsertLeaf(bound RtreeBoundingBox, index int) {
	rt.tree.Insert(&RtreeLeaf{
		Index: index,
		Bound: bound,
		rect:  bound.rect(),
	})
	rt.Size++
}

// Search returns every leaf whose bound intersects bound.
func (rt *Rtree) Search(bound RtreeBoundingBox) []RtreeLeaf {
	if rt.Size == 0 {
		return []RtreeLeaf{}
	}
	found := rt.tree.SearchIntersect(bound.rect())
	results := make([]RtreeLeaf, 0, len(found))
	for _, obj := range found {
		results = append(results, *obj.(*RtreeLeaf))
	}
	return results
}
