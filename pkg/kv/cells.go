package kv

import (
	"math"

	"github.com/uber/h3-go/v4"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
)

const (
	cellResolution = 9
	// edges are sampled at this spacing when bucketed, well under a res 9 cell edge.
	sampleStepMeters = 60.0
	// past this ring size a spatial query scans every edge instead.
	maxGridDiskK = 100
)

func cellOf(c datastructure.Coordinate) h3.Cell {
	return h3.LatLngToCell(h3.NewLatLng(c.Lat, c.Lon), cellResolution)
}

// geometryCells distinct res 9 cells touched by the densified geometry.
func geometryCells(geometry []datastructure.Coordinate) []h3.Cell {
	seen := make(map[h3.Cell]struct{})
	cells := make([]h3.Cell, 0, 2)
	for _, c := range geo.DensifyPolyline(geometry, sampleStepMeters) {
		cell := cellOf(c)
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}
	return cells
}

// hexEdgeMeters edge length of a regular hexagon with the cell's area.
func hexEdgeMeters(cell h3.Cell) float64 {
	areaM2 := h3.CellAreaKm2(cell) * 1e6
	return math.Sqrt(2 * areaM2 / (3 * math.Sqrt(3)))
}

// searchCells cells that may hold an edge passing within radius meters of p.
// ok=false when the disk would be too large to enumerate.
func searchCells(p datastructure.Coordinate, radius float64) ([]h3.Cell, bool) {
	origin := cellOf(p)
	edgeLen := hexEdgeMeters(origin)
	// neighbouring centers are sqrt(3)*edge apart, dividing by edge alone leaves room for distortion.
	k := int(math.Ceil((radius*1.01+sampleStepMeters)/edgeLen)) + 1
	if k > maxGridDiskK {
		return nil, false
	}
	return h3.GridDisk(origin, k), true
}
