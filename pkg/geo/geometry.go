package geo

import (
	"github.com/golang/geo/s2"
	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = earthRadiusKM * 1000

	MetricMercator  = "mercator"
	MetricSpherical = "spherical"
)

// DistanceFunc returns the distance in meters between two WGS84 points given in degrees.
type DistanceFunc func(latStart, lonStart, latEnd, lonEnd float64) float64

// ToMercator reprojects a WGS84 lat/lon pair in degrees to pseudo-mercator (EPSG:3857) meters.
func ToMercator(lat, lon float64) orb.Point {
	return project.Point(orb.Point{lon, lat}, project.WGS84.ToMercator)
}

// MercatorDistance returns the euclidean distance between both points after projecting
// them to web mercator. Only meaningful at city scale, the projection stretches
// distances by 1/cos(lat).
// e.g.: Start Point -> 40.4400607 / -3.6425358 End Point -> 40.4234825 / -3.6292625 is ~2839 m.
func MercatorDistance(latStart, lonStart, latEnd, lonEnd float64) float64 {
	start := ToMercator(latStart, lonStart)
	finish := ToMercator(latEnd, lonEnd)
	return planar.Distance(start, finish)
}

// SphericalDistance is the great circle distance in meters on a sphere of radius earthRadiusKM.
func SphericalDistance(latStart, lonStart, latEnd, lonEnd float64) float64 {
	start := s2.LatLngFromDegrees(latStart, lonStart)
	finish := s2.LatLngFromDegrees(latEnd, lonEnd)
	return start.Distance(finish).Radians() * earthRadiusM
}

// MetricByName resolves the distance_metric config value.
func MetricByName(name string) (DistanceFunc, error) {
	switch name {
	case "", MetricMercator:
		return MercatorDistance, nil
	case MetricSpherical:
		return SphericalDistance, nil
	default:
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown distance metric %q", name)
	}
}
