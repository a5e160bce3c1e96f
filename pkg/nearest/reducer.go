package nearest

import (
	"math"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

// Reduce keeps, for each place id, the first pair with the smallest distance. Assignments come out in
// the order place ids are first seen in pairs. Every id in placeIDs must own at least one pair.
func Reduce(pairs []datastructure.Pair, placeIDs []string) ([]datastructure.NearestAssignment, error) {
	groups := pkg.NewIDMap()
	nearest := make([]datastructure.NearestAssignment, 0)

	for _, pair := range pairs {
		group := groups.GetID(pair.PlaceID)
		if group == len(nearest) {
			nearest = append(nearest, assignment(pair))
			continue
		}

		if closer(pair.Distance, nearest[group].Distance) {
			nearest[group] = assignment(pair)
		}
	}

	for _, id := range placeIDs {
		if _, ok := groups.Lookup(id); !ok {
			return nil, pkg.WrapErrorf(nil, pkg.ErrEmptyGroup, "place %s has no candidate station", id)
		}
	}

	return nearest, nil
}

// closer is a strict comparison so ties keep the earlier pair. NaN never wins over a number.
func closer(candidate, current float64) bool {
	if math.IsNaN(current) {
		return !math.IsNaN(candidate)
	}
	return candidate < current
}

func assignment(pair datastructure.Pair) datastructure.NearestAssignment {
	return datastructure.NearestAssignment{
		PlaceID:   pair.PlaceID,
		StationID: pair.StationID,
		Distance:  pair.Distance,
	}
}
