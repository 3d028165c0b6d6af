package datastructure

import (
	"fmt"

	"lintang/mapagent/pkg/util"
)

// BuildForward directed view of e in stored order.
func BuildForward(e StoredEdge) DirectedEdge {
	coords := make([]Coordinate, len(e.Geometry))
	copy(coords, e.Geometry)
	return DirectedEdge{
		ID:     int64(e.ID),
		Meta:   e.Meta,
		Fow:    e.Fow,
		Frc:    e.Frc,
		Length: e.Length,
		Coords: coords,
	}
}

// BuildReversed directed view of e traversed from ToInt to FromInt.
func BuildReversed(e StoredEdge) DirectedEdge {
	return DirectedEdge{
		ID:     -int64(e.ID),
		Meta:   e.Meta,
		Fow:    e.Fow,
		Frc:    e.Frc,
		Length: e.Length,
		Coords: util.ReverseG(e.Geometry),
	}
}

// Emit expands a stored edge into every directed edge its flow permits.
// two-way edges yield forward first, then reversed.
func Emit(e StoredEdge) ([]DirectedEdge, error) {
	switch e.Flow {
	case FlowForwardOnly:
		return []DirectedEdge{BuildForward(e)}, nil
	case FlowReverseOnly:
		return []DirectedEdge{BuildReversed(e)}, nil
	case FlowTwoWay:
		return []DirectedEdge{BuildForward(e), BuildReversed(e)}, nil
	default:
		return nil, fmt.Errorf("edge %d (%q): %w: %d", e.ID, e.Meta, ErrInvalidFlow, e.Flow)
	}
}
