package datastructure

import (
	"github.com/kristinawk/bicimad-nearest/pkg/geo"
	"github.com/paulmach/orb"
)

// Station model info
// @Description BiciMAD station, one row of the station inventory file.
type Station struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	DockBikes      int       `json:"dock_bikes"`            // bikes available at the station
	RawCoordinates string    `json:"geometry.coordinates"`  // "[lon, lat]" as read from the file
	Coordinates    orb.Point `json:"coordinates,omitempty"` // parsed RawCoordinates, x = lon, y = lat
	Longitude      float64   `json:"longitude"`
	Latitude       float64   `json:"latitude"`
}

// NormalizeCoordinates parses RawCoordinates (GeoJSON order, longitude first) and fills
// Coordinates, Longitude and Latitude on this station only.
func (s *Station) NormalizeCoordinates() error {
	lon, lat, err := geo.ParseCoordinates(s.RawCoordinates)
	if err != nil {
		return err
	}
	s.Coordinates = orb.Point{lon, lat}
	s.Longitude = lon
	s.Latitude = lat
	return nil
}
