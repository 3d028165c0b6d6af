package concurrent

import (
	"lintang/mapagent/pkg/datastructure"
)

// RadiusSearchParam one point of a batch radius search.
type RadiusSearchParam struct {
	Index  int
	Point  datastructure.Coordinate
	Radius float64
}

func NewRadiusSearchParam(index int, point datastructure.Coordinate, radius float64) RadiusSearchParam {
	return RadiusSearchParam{
		Index:  index,
		Point:  point,
		Radius: radius,
	}
}

// SaveEdgesJobItem edges written under one kv key.
type SaveEdgesJobItem struct {
	Key   []byte
	Edges []datastructure.StoredEdge
}

func NewSaveEdgesJobItem(key []byte, edges []datastructure.StoredEdge) SaveEdgesJobItem {
	return SaveEdgesJobItem{
		Key:   key,
		Edges: edges,
	}
}

type JobI interface {
	RadiusSearchParam | SaveEdgesJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

type JobFunc[T JobI, G any] func(job T) G

type Result[G any] struct {
	ID    int
	Value G
}
