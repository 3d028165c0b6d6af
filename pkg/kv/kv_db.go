package kv

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"lintang/mapagent/pkg/concurrent"
	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/util"
)

var (
	prefixEdge = []byte("e:")
	prefixCell = []byte("c:")
	prefixNode = []byte("n:")
)

const batchSize = 1000

// KVDB edge store on an embedded kv engine.
// e:<id><meta> holds one edge, c:<h3 cell> every edge crossing the cell, n:<node> every edge ending at the node.
type KVDB struct {
	db Store
}

func NewKVDB(db Store) *KVDB {
	return &KVDB{db}
}

func edgeKey(id uint64, meta string) []byte {
	key := make([]byte, 0, len(prefixEdge)+8+len(meta))
	key = append(key, prefixEdge...)
	key = binary.BigEndian.AppendUint64(key, id)
	return append(key, meta...)
}

func nodeKey(node int64) []byte {
	key := make([]byte, 0, len(prefixNode)+8)
	key = append(key, prefixNode...)
	return binary.BigEndian.AppendUint64(key, uint64(node))
}

func cellKey(cell string) []byte {
	return append(append([]byte{}, prefixCell...), cell...)
}

// BuildEdgeStore writes edges and their cell and node buckets.
func (k *KVDB) BuildEdgeStore(ctx context.Context, edges []datastructure.StoredEdge) error {
	slog.Info("creating & saving h3 indexed edges to key-value db...", "edges", len(edges))

	cells := make(map[string][]datastructure.StoredEdge)
	nodes := make(map[int64][]datastructure.StoredEdge)
	items := make([]concurrent.SaveEdgesJobItem, 0, len(edges))

	for i := range edges {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("context cancelled: %w", err)
			}
		}
		e := edges[i]
		items = append(items, concurrent.NewSaveEdgesJobItem(edgeKey(e.ID, e.Meta), []datastructure.StoredEdge{e}))

		for _, cell := range geometryCells(e.Geometry) {
			cells[cell.String()] = append(cells[cell.String()], e)
		}
		nodes[e.FromInt] = append(nodes[e.FromInt], e)
		if !e.IsLoop() {
			nodes[e.ToInt] = append(nodes[e.ToInt], e)
		}
	}
	for cell, bucket := range cells {
		items = append(items, concurrent.NewSaveEdgesJobItem(cellKey(cell), bucket))
	}
	for node, bucket := range nodes {
		items = append(items, concurrent.NewSaveEdgesJobItem(nodeKey(node), bucket))
	}

	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		if err := k.saveBatchEdges(ctx, items[start:end]); err != nil {
			return err
		}
	}

	slog.Info("creating & saving h3 indexed edges to key-value db done", "cells", len(cells), "nodes", len(nodes))
	return nil
}

type encodedItem struct {
	key []byte
	val []byte
	err error
}

// saveBatchEdges encodes the batch on a worker pool then writes it in one engine batch.
func (k *KVDB) saveBatchEdges(ctx context.Context, items []concurrent.SaveEdgesJobItem) error {
	workers := concurrent.NewWorkerPool[concurrent.SaveEdgesJobItem, encodedItem](runtime.NumCPU(), len(items))
	for _, item := range items {
		workers.AddJob(item)
	}
	workers.Close()
	workers.Start(func(item concurrent.SaveEdgesJobItem) encodedItem {
		val, err := encodeEdges(item.Edges)
		return encodedItem{key: item.Key, val: val, err: err}
	})
	workers.Wait()

	batch := k.db.NewBatch()
	defer batch.Cancel()

	for _, enc := range workers.CollectOrdered() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}
		if enc.err != nil {
			return enc.err
		}
		if err := batch.Set(enc.key, enc.val); err != nil {
			return err
		}
	}

	if err := batch.Flush(); err != nil {
		slog.Error("error saving edges", "error", err)
		return err
	}
	slog.Debug("saving edge batch done", "keys", len(items))
	return nil
}

func (k *KVDB) getEdges(key []byte) ([]datastructure.StoredEdge, error) {
	val, err := k.db.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return loadEdges(val)
}

func (k *KVDB) LoadAll(ctx context.Context) ([]datastructure.StoredEdge, error) {
	edges := make([]datastructure.StoredEdge, 0)
	err := k.db.IteratePrefix(prefixEdge, func(key, val []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		decoded, err := loadEdges(val)
		if err != nil {
			return fmt.Errorf("edge key %x: %w", key, err)
		}
		edges = append(edges, decoded...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (k *KVDB) FindByID(ctx context.Context, id uint64, meta string) (datastructure.StoredEdge, bool, error) {
	edges, err := k.getEdges(edgeKey(id, meta))
	if err != nil {
		return datastructure.StoredEdge{}, false, err
	}
	if len(edges) == 0 {
		return datastructure.StoredEdge{}, false, nil
	}
	return edges[0], true, nil
}

// SpatialCandidates union of the cell buckets around point, ordered by id then meta.
func (k *KVDB) SpatialCandidates(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
	cells, ok := searchCells(point, radius)
	if !ok {
		return k.scanWithinBounds(ctx, point, radius)
	}

	type key struct {
		id   uint64
		meta string
	}
	edges := make([]datastructure.StoredEdge, 0)
	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bucket, err := k.getEdges(cellKey(cell.String()))
		if err != nil {
			return nil, err
		}
		edges = append(edges, bucket...)
	}
	edges = util.Dedup(edges, func(e datastructure.StoredEdge) key { return key{e.ID, e.Meta} })
	sortEdges(edges)
	return edges, nil
}

// scanWithinBounds every edge whose bounds meet the search bounds of a large radius.
func (k *KVDB) scanWithinBounds(ctx context.Context, point datastructure.Coordinate, radius float64) ([]datastructure.StoredEdge, error) {
	bounds := geo.SearchBounds(point, radius)
	all, err := k.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	edges := make([]datastructure.StoredEdge, 0)
	for _, e := range all {
		if len(e.Geometry) == 0 {
			continue
		}
		if anyOverlap(geo.EdgeBounds(e.Geometry), bounds) {
			edges = append(edges, e)
		}
	}
	return edges, nil
}

func anyOverlap(a, b []datastructure.RtreeBoundingBox) bool {
	for _, x := range a {
		for _, y := range b {
			if datastructure.Overlaps(x, y) {
				return true
			}
		}
	}
	return false
}

func (k *KVDB) EdgesAtNode(ctx context.Context, node int64) ([]datastructure.StoredEdge, error) {
	edges, err := k.getEdges(nodeKey(node))
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = []datastructure.StoredEdge{}
	}
	sortEdges(edges)
	return edges, nil
}

func sortEdges(edges []datastructure.StoredEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].ID != edges[j].ID {
			return edges[i].ID < edges[j].ID
		}
		return edges[i].Meta < edges[j].Meta
	})
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
