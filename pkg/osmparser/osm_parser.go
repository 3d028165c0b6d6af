package osmparser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"lintang/mapagent/pkg/datastructure"
	"lintang/mapagent/pkg/geo"
	"lintang/mapagent/pkg/util"
)

type NodeType uint8

const (
	END_NODE NodeType = iota + 1
	BETWEEN_NODE
	JUNCTION_NODE
)

type node struct {
	id    int64
	coord datastructure.Coordinate
}

// ScannerFactory opens a fresh scanner over the same osm data. Parse reads the data twice.
type ScannerFactory func(ctx context.Context) (osm.Scanner, error)

type OsmParser struct {
	wayNodeMap      map[int64]NodeType
	acceptedNodeMap map[int64]datastructure.Coordinate
	edges           []datastructure.StoredEdge
}

func NewOSMParser() *OsmParser {
	return &OsmParser{
		wayNodeMap:      make(map[int64]NodeType),
		acceptedNodeMap: make(map[int64]datastructure.Coordinate),
	}
}

var (
	skipHighway = map[string]struct{}{
		"footway":                {},
		"construction":           {},
		"proposed":               {},
		"cycleway":               {},
		"path":                   {},
		"pedestrian":             {},
		"busway":                 {},
		"steps":                  {},
		"bridleway":              {},
		"corridor":               {},
		"street_lamp":            {},
		"bus_stop":               {},
		"crossing":               {},
		"cyclist_waiting_aid":    {},
		"elevator":               {},
		"emergency_bay":          {},
		"emergency_access_point": {},
		"give_way":               {},
		"phone":                  {},
		"ladder":                 {},
		"milestone":              {},
		"passing_place":          {},
		"platform":               {},
		"speed_camera":           {},
		"track":                  {},
		"bus_guideway":           {},
		"speed_display":          {},
		"stop":                   {},
		"toll_gantry":            {},
		"traffic_mirror":         {},
		"traffic_signals":        {},
		"trailhead":              {},
	}
)

// ParseFile stored edges of every drivable way of an .osm.pbf file.
func (p *OsmParser) ParseFile(ctx context.Context, mapFile string) ([]datastructure.StoredEdge, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("open osm file: %w", err)
	}
	defer f.Close()

	return p.Parse(ctx, func(ctx context.Context) (osm.Scanner, error) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1)), nil
	})
}

// Parse first pass classifies way nodes, second pass collects node coordinates then splits ways at junctions.
// a way is split at every node shared with another accepted way, one stored edge per piece.
func (p *OsmParser) Parse(ctx context.Context, open ScannerFactory) ([]datastructure.StoredEdge, error) {
	scanner, err := open(ctx)
	if err != nil {
		return nil, err
	}
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			slog.Info("reading openstreetmap ways", "count", countWays+1)
		}
		countWays++

		for i, n := range way.Nodes {
			id := int64(n.ID)
			if _, ok := p.wayNodeMap[id]; !ok {
				if i == 0 || i == len(way.Nodes)-1 {
					p.wayNodeMap[id] = END_NODE
				} else {
					p.wayNodeMap[id] = BETWEEN_NODE
				}
			} else {
				p.wayNodeMap[id] = JUNCTION_NODE
			}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scan osm ways: %w", err)
	}
	scanner.Close()

	// nodes come before ways in osm files, so coordinates need their own pass.
	scanner, err = open(ctx)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	ways := make([]*osm.Way, 0, countWays)
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			if _, ok := p.wayNodeMap[int64(o.ID)]; ok {
				p.acceptedNodeMap[int64(o.ID)] = datastructure.NewCoordinate(o.Lat, o.Lon)
			}
		case *osm.Way:
			if len(o.Nodes) < 2 || !acceptOsmWay(o) {
				continue
			}
			ways = append(ways, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm nodes: %w", err)
	}

	for _, way := range ways {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.processWay(way)
	}

	slog.Info("openstreetmap parsed", "ways", len(ways), "edges", len(p.edges))
	return p.edges, nil
}

func (p *OsmParser) processWay(way *osm.Way) {
	flow, drivable := wayFlow(way)
	if !drivable {
		return
	}
	fow := wayFow(way)
	frc := wayFrc(way.Tags.Find("highway"))
	meta := strconv.FormatInt(int64(way.ID), 10)

	waySegment := []node{}
	for i, wayNode := range way.Nodes {
		coord, ok := p.acceptedNodeMap[int64(wayNode.ID)]
		if !ok {
			// node outside the extract, the way is cut here.
			if len(waySegment) > 1 {
				p.processSegment(waySegment, meta, fow, frc, flow)
			}
			waySegment = []node{}
			continue
		}
		nodeData := node{id: int64(wayNode.ID), coord: coord}
		waySegment = append(waySegment, nodeData)

		if i > 0 && p.isJunctionNode(nodeData.id) && len(waySegment) > 1 {
			p.processSegment(waySegment, meta, fow, frc, flow)
			waySegment = []node{nodeData}
		}
	}
	if len(waySegment) > 1 {
		p.processSegment(waySegment, meta, fow, frc, flow)
	}
}

func (p *OsmParser) processSegment(segment []node, meta string, fow datastructure.FOW, frc datastructure.FRC,
	flow datastructure.Flow) {
	if len(segment) == 2 && segment[0].id == segment[1].id {
		return
	}
	if segment[0].id == segment[len(segment)-1].id && len(segment) > 2 {
		// closed way without junctions, split before the last node
		p.addEdge(segment[:len(segment)-1], meta, fow, frc, flow)
		p.addEdge(segment[len(segment)-2:], meta, fow, frc, flow)
		return
	}
	p.addEdge(segment, meta, fow, frc, flow)
}

func (p *OsmParser) addEdge(segment []node, meta string, fow datastructure.FOW, frc datastructure.FRC,
	flow datastructure.Flow) {
	geometry := make([]datastructure.Coordinate, len(segment))
	for i, n := range segment {
		geometry[i] = n.coord
	}
	length := util.RoundFloat(geo.PolylineLength(geometry), 0)

	p.edges = append(p.edges, datastructure.NewStoredEdge(uint64(len(p.edges)+1), meta, fow, frc,
		uint32(min(length, math.MaxUint32)), geometry, segment[0].id, segment[len(segment)-1].id, flow))
}

func (p *OsmParser) isJunctionNode(nodeID int64) bool {
	return p.wayNodeMap[nodeID] == JUNCTION_NODE
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := skipHighway[highway]; !ok {
			return true
		}
	} else if way.Tags.Find("route") == "road" {
		return true
	} else if junction != "" {
		return true
	}
	return false
}
