package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"lintang/mapagent/pkg/datastructure"
)

// marshalGeometry WKT linestring, lon lat order. empty geometry = "".
func marshalGeometry(coords []datastructure.Coordinate) string {
	if len(coords) == 0 {
		return ""
	}
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = orb.Point{c.Lon, c.Lat}
	}
	return wkt.MarshalString(ls)
}

func unmarshalGeometry(s string) ([]datastructure.Coordinate, error) {
	if s == "" {
		return nil, nil
	}
	ls, err := wkt.UnmarshalLineString(s)
	if err != nil {
		return nil, err
	}
	coords := make([]datastructure.Coordinate, len(ls))
	for i, p := range ls {
		coords[i] = datastructure.NewCoordinate(p.Lat(), p.Lon())
	}
	return coords, nil
}
