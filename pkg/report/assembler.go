// Package report turns nearest station assignments into the public report table, stores it as CSV
// and answers single place lookups against it.
package report

import (
	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

// DefaultHeader is the header existing consumers of nearest_bicimad.csv expect, "locaiton" included.
var DefaultHeader = []string{
	"Place of Interest",
	"Type of place",
	"Place address",
	"BiciMAD station",
	"Station locaiton",
	"Available bikes",
}

// Assemble joins each assignment with its place and its station and projects the result onto the
// report columns, the category tag being the second one.
func Assemble(assignments []datastructure.NearestAssignment, places []datastructure.FlatPlace,
	stations []datastructure.Station, categoryTag string) ([]datastructure.OutputRow, error) {
	placeByID := make(map[string]int, len(places))
	for i, place := range places {
		if _, ok := placeByID[place.ID]; !ok {
			placeByID[place.ID] = i
		}
	}

	stationByID := make(map[string]int, len(stations))
	for i, station := range stations {
		if _, ok := stationByID[station.ID]; !ok {
			stationByID[station.ID] = i
		}
	}

	rows := make([]datastructure.OutputRow, 0, len(assignments))
	for _, a := range assignments {
		pi, ok := placeByID[a.PlaceID]
		if !ok {
			return nil, pkg.WrapErrorf(nil, pkg.ErrJoinIntegrity, "assignment references unknown place %s", a.PlaceID)
		}
		si, ok := stationByID[a.StationID]
		if !ok {
			return nil, pkg.WrapErrorf(nil, pkg.ErrJoinIntegrity, "assignment references unknown station %s", a.StationID)
		}

		place, station := places[pi], stations[si]
		rows = append(rows, datastructure.OutputRow{
			PlaceTitle:     place.Title,
			CategoryTag:    categoryTag,
			PlaceAddress:   place.StreetAddress,
			StationName:    station.Name,
			StationAddress: station.Address,
			AvailableBikes: station.DockBikes,
		})
	}
	return rows, nil
}
