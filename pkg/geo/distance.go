package geo

import (
	"github.com/tidwall/geodesic"

	"lintang/mapagent/pkg/datastructure"
)

const (
	earthRadiusM = 6371007
)

// GeodesicDistance shortest distance in meters between a and b over the WGS84 ellipsoid.
func GeodesicDistance(a, b datastructure.Coordinate) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12
}

// PolylineLength geodesic length in meters along coords.
func PolylineLength(coords []datastructure.Coordinate) float64 {
	length := 0.0
	for i := 1; i < len(coords); i++ {
		length += GeodesicDistance(coords[i-1], coords[i])
	}
	return length
}
