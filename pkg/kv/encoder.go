package kv

import (
	"fmt"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"

	"lintang/mapagent/pkg/datastructure"
)

// values are binary encoded edge lists, zstd compressed.

func encodeEdges(edges []datastructure.StoredEdge) ([]byte, error) {
	bb, err := binary.Marshal(edges)
	if err != nil {
		return nil, fmt.Errorf("encode edges: %w", err)
	}

	bbCompressed, err := zstd.CompressLevel(nil, bb, zstd.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("compress edges: %w", err)
	}
	return bbCompressed, nil
}

func loadEdges(bbCompressed []byte) ([]datastructure.StoredEdge, error) {
	bb, err := zstd.Decompress(nil, bbCompressed)
	if err != nil {
		return nil, fmt.Errorf("decompress edges: %w", err)
	}

	var edges []datastructure.StoredEdge
	if err := binary.Unmarshal(bb, &edges); err != nil {
		return nil, fmt.Errorf("decode edges: %w", err)
	}
	return edges, nil
}
