// Package nearest pairs every place with every station, measures each pair and keeps the
// closest station per place. There is no spatial index, all pairs are measured.
package nearest

import (
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

// CrossJoin returns every (place, station) combination exactly once, place-major and station-minor.
// len(result) == len(places) * len(stations).
func CrossJoin(places []datastructure.FlatPlace, stations []datastructure.Station) []datastructure.Pair {
	pairs := make([]datastructure.Pair, 0, len(places)*len(stations))
	for i, place := range places {
		for j, station := range stations {
			pairs = append(pairs, datastructure.Pair{
				PlaceIndex:   i,
				StationIndex: j,
				PlaceID:      place.ID,
				StationID:    station.ID,
			})
		}
	}
	return pairs
}
