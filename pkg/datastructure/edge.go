package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry = errors.New("edge geometry must have at least 2 points")
	ErrInvalidFlow     = errors.New("edge flow outside enumeration")
	ErrInvalidFow      = errors.New("edge form of way outside enumeration")
	ErrInvalidFrc      = errors.New("edge functional road class outside enumeration")
)

// FOW form of way.
type FOW uint8

const (
	FowUndefined FOW = iota
	FowMotorway
	FowMultipleCarriageway
	FowSingleCarriageway
	FowRoundabout
	FowTrafficSquare
	FowSlipRoad
	FowOther
)

var fowNames = [...]string{
	"UNDEFINED",
	"MOTORWAY",
	"MULTIPLE_CARRIAGEWAY",
	"SINGLE_CARRIAGEWAY",
	"ROUNDABOUT",
	"TRAFFIC_SQUARE",
	"SLIP_ROAD",
	"OTHER",
}

func (f FOW) Valid() bool {
	return int(f) < len(fowNames)
}

func (f FOW) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FOW(%d)", uint8(f))
	}
	return fowNames[f]
}

func (f FOW) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, ErrInvalidFow
	}
	return []byte(f.String()), nil
}

func (f *FOW) UnmarshalText(b []byte) error {
	for i, name := range fowNames {
		if name == string(b) {
			*f = FOW(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidFow, string(b))
}

// FRC functional road class. FRC0 is the most important road.
type FRC uint8

const (
	FRC0 FRC = iota
	FRC1
	FRC2
	FRC3
	FRC4
	FRC5
	FRC6
	FRC7
)

func (f FRC) Valid() bool {
	return f <= FRC7
}

func (f FRC) String() string {
	return fmt.Sprintf("FRC%d", uint8(f))
}

func (f FRC) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, ErrInvalidFrc
	}
	return []byte(f.String()), nil
}

func (f *FRC) UnmarshalText(b []byte) error {
	var v uint8
	if _, err := fmt.Sscanf(string(b), "FRC%d", &v); err != nil || FRC(v) > FRC7 {
		return fmt.Errorf("%w: %q", ErrInvalidFrc, string(b))
	}
	*f = FRC(v)
	return nil
}

// Flow traversal permission of a stored edge. numbering follows the flowdir
// attribute of the road table: 0 forward, 1 both directions, 2 reverse.
type Flow uint8

const (
	FlowForwardOnly Flow = iota
	FlowTwoWay
	FlowReverseOnly
)

func (f Flow) Valid() bool {
	return f <= FlowReverseOnly
}

func (f Flow) String() string {
	switch f {
	case FlowForwardOnly:
		return "FORWARD_ONLY"
	case FlowTwoWay:
		return "TWO_WAY"
	case FlowReverseOnly:
		return "REVERSE_ONLY"
	default:
		return fmt.Sprintf("Flow(%d)", uint8(f))
	}
}

func (f Flow) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, ErrInvalidFlow
	}
	return []byte(f.String()), nil
}

func (f *Flow) UnmarshalText(b []byte) error {
	switch string(b) {
	case "FORWARD_ONLY":
		*f = FlowForwardOnly
	case "TWO_WAY":
		*f = FlowTwoWay
	case "REVERSE_ONLY":
		*f = FlowReverseOnly
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFlow, string(b))
	}
	return nil
}

// EnterableForward reports whether the edge can be traversed in stored order.
func (f Flow) EnterableForward() bool {
	return f == FlowForwardOnly || f == FlowTwoWay
}

// EnterableReversed reports whether the edge can be traversed against stored order.
func (f Flow) EnterableReversed() bool {
	return f == FlowReverseOnly || f == FlowTwoWay
}

// StoredEdge. direction-agnostic road segment as held by the backend.
// Geometry runs from FromInt to ToInt, FromInt/ToInt never swap.
type StoredEdge struct {
	ID       uint64       `json:"id"`
	Meta     string       `json:"meta"`
	Fow      FOW          `json:"fow"`
	Frc      FRC          `json:"frc"`
	Length   uint32       `json:"len"`
	Geometry []Coordinate `json:"geometry"`
	FromInt  int64        `json:"from_int"`
	ToInt    int64        `json:"to_int"`
	Flow     Flow         `json:"flow"`
}

func NewStoredEdge(id uint64, meta string, fow FOW, frc FRC, length uint32, geometry []Coordinate,
	fromInt, toInt int64, flow Flow) StoredEdge {
	return StoredEdge{
		ID:       id,
		Meta:     meta,
		Fow:      fow,
		Frc:      frc,
		Length:   length,
		Geometry: geometry,
		FromInt:  fromInt,
		ToInt:    toInt,
		Flow:     flow,
	}
}

// Validate reports data-integrity faults of a stored record.
func (e *StoredEdge) Validate() error {
	if len(e.Geometry) < 2 {
		return fmt.Errorf("edge %d (%q): %w", e.ID, e.Meta, ErrInvalidGeometry)
	}
	if !e.Flow.Valid() {
		return fmt.Errorf("edge %d (%q): %w: %d", e.ID, e.Meta, ErrInvalidFlow, e.Flow)
	}
	if !e.Fow.Valid() {
		return fmt.Errorf("edge %d (%q): %w: %d", e.ID, e.Meta, ErrInvalidFow, e.Fow)
	}
	if !e.Frc.Valid() {
		return fmt.Errorf("edge %d (%q): %w: %d", e.ID, e.Meta, ErrInvalidFrc, e.Frc)
	}
	return nil
}

// IsLoop true if the edge starts and ends at the same intersection.
func (e *StoredEdge) IsLoop() bool {
	return e.FromInt == e.ToInt
}

// DirectedEdge. traversal-direction view of a StoredEdge.
// positive ID = stored order, negative ID = reversed.
type DirectedEdge struct {
	ID     int64        `json:"id"`
	Meta   string       `json:"meta"`
	Fow    FOW          `json:"fow"`
	Frc    FRC          `json:"frc"`
	Length uint32       `json:"len"`
	Coords []Coordinate `json:"coords"`
}

func (d DirectedEdge) IsReversed() bool {
	return d.ID < 0
}

// StoredID magnitude of the directed id.
func (d DirectedEdge) StoredID() uint64 {
	if d.ID < 0 {
		return uint64(-d.ID)
	}
	return uint64(d.ID)
}

type EdgeSet struct {
	Edges []DirectedEdge `json:"edges"`
}

func NewEdgeSet(edges []DirectedEdge) EdgeSet {
	if edges == nil {
		edges = []DirectedEdge{}
	}
	return EdgeSet{Edges: edges}
}

func (s EdgeSet) Len() int {
	return len(s.Edges)
}

// EdgeRef references a directed edge by signed id and meta.
type EdgeRef struct {
	ID   int64
	Meta string
}

func NewEdgeRef(id int64, meta string) EdgeRef {
	return EdgeRef{ID: id, Meta: meta}
}

// StoredID magnitude of the referenced id. callers must reject math.MinInt64 first.
func (r EdgeRef) StoredID() uint64 {
	if r.ID < 0 {
		return uint64(-r.ID)
	}
	return uint64(r.ID)
}

// Forward true when the reference traverses the edge in stored order.
func (r EdgeRef) Forward() bool {
	return r.ID >= 0
}
