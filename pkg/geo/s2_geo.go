package geo

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"lintang/mapagent/pkg/datastructure"
)

var (
	ErrEmptyPolyline = errors.New("polyline has no points")
)

const (
	// slack between the spherical search cap and the ellipsoidal distance predicate.
	capSlackFactor = 1.01
	capSlackMeters = 1.0
)

func toS2(c datastructure.Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

func fromS2(p s2.Point) datastructure.Coordinate {
	ll := s2.LatLngFromPoint(p)
	return datastructure.NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// ProjectPointToLineCoord nearest point to snap on the great circle segment nearestStPoint->secondNearestStPoint.
func ProjectPointToLineCoord(nearestStPoint datastructure.Coordinate, secondNearestStPoint datastructure.Coordinate,
	snap datastructure.Coordinate) datastructure.Coordinate {
	if nearestStPoint == secondNearestStPoint {
		return nearestStPoint
	}
	projection := s2.Project(toS2(snap), toS2(nearestStPoint), toS2(secondNearestStPoint))
	return fromS2(projection)
}

// DistanceToPolyline geodesic distance in meters from p to the nearest point lying on line,
// line treated as connected segments. also returns that nearest point.
func DistanceToPolyline(p datastructure.Coordinate, line []datastructure.Coordinate) (float64, datastructure.Coordinate, error) {
	if len(line) == 0 {
		return 0, datastructure.Coordinate{}, ErrEmptyPolyline
	}
	if len(line) == 1 {
		return GeodesicDistance(p, line[0]), line[0], nil
	}

	minDist := math.Inf(1)
	var nearest datastructure.Coordinate
	// vertices first so a query point lying on a vertex measures exactly 0.
	for _, v := range line {
		dist := GeodesicDistance(p, v)
		if dist < minDist {
			minDist = dist
			nearest = v
		}
	}
	for i := 0; i < len(line)-1; i++ {
		projection := ProjectPointToLineCoord(line[i], line[i+1], p)
		dist := GeodesicDistance(p, projection)
		if dist < minDist {
			minDist = dist
			nearest = projection
		}
	}
	return minDist, nearest, nil
}

// SearchBounds lat/lon boxes covering every point within radiusM meters of p.
// two boxes are returned when the cap crosses the antimeridian.
func SearchBounds(p datastructure.Coordinate, radiusM float64) []datastructure.RtreeBoundingBox {
	angle := s1.Angle((radiusM*capSlackFactor + capSlackMeters) / earthRadiusM)
	return rectBoxes(s2.CapFromCenterAngle(toS2(p), angle).RectBound())
}

// EdgeBounds lat/lon boxes containing every point of line, including the great circle arcs
// between vertices, which bulge poleward of the vertex extent. two boxes when line crosses the antimeridian.
func EdgeBounds(line []datastructure.Coordinate) []datastructure.RtreeBoundingBox {
	if len(line) == 0 {
		return nil
	}
	rb := s2.NewRectBounder()
	for _, c := range line {
		rb.AddPoint(toS2(c))
	}
	return rectBoxes(rb.RectBound())
}

// EdgeBound single box enclosing EdgeBounds(line). spans every longitude when line crosses the antimeridian.
func EdgeBound(line []datastructure.Coordinate) datastructure.RtreeBoundingBox {
	boxes := EdgeBounds(line)
	switch len(boxes) {
	case 0:
		return datastructure.NewRtreeBoundingBox(2, []float64{0, 0}, []float64{0, 0})
	case 1:
		return boxes[0]
	}
	b := boxes[0]
	return datastructure.NewRtreeBoundingBox(2, []float64{b.Edges[0][0], -180}, []float64{b.Edges[0][1], 180})
}

func rectBoxes(rect s2.Rect) []datastructure.RtreeBoundingBox {
	minLat, maxLat := rect.Lat.Lo*180/math.Pi, rect.Lat.Hi*180/math.Pi
	box := func(lo, hi float64) datastructure.RtreeBoundingBox {
		return datastructure.NewRtreeBoundingBox(2, []float64{minLat, lo}, []float64{maxLat, hi})
	}

	if rect.Lng.IsFull() {
		return []datastructure.RtreeBoundingBox{box(-180, 180)}
	}
	lo, hi := rect.Lng.Lo*180/math.Pi, rect.Lng.Hi*180/math.Pi
	if rect.Lng.IsInverted() {
		return []datastructure.RtreeBoundingBox{box(lo, 180), box(-180, hi)}
	}
	return []datastructure.RtreeBoundingBox{box(lo, hi)}
}

// DensifyPolyline line with extra points along each great circle segment so that consecutive
// points are at most stepM meters apart. original vertices are kept.
func DensifyPolyline(line []datastructure.Coordinate, stepM float64) []datastructure.Coordinate {
	if len(line) < 2 || stepM <= 0 {
		return append([]datastructure.Coordinate(nil), line...)
	}
	out := make([]datastructure.Coordinate, 0, len(line))
	out = append(out, line[0])
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		n := int(math.Ceil(GeodesicDistance(a, b) / stepM))
		pa, pb := toS2(a), toS2(b)
		for j := 1; j < n; j++ {
			out = append(out, fromS2(s2.Interpolate(float64(j)/float64(n), pa, pb)))
		}
		out = append(out, b)
	}
	return out
}
