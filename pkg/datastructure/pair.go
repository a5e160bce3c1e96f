package datastructure

// Pair is one (place, station) candidate. Indexes point into the slices the pairs were built from.
type Pair struct {
	PlaceIndex   int
	StationIndex int
	PlaceID      string
	StationID    string
	Distance     float64 // meters
}

// NearestAssignment is the closest station found for one place.
type NearestAssignment struct {
	PlaceID   string  `json:"place_id"`
	StationID string  `json:"station_id"`
	Distance  float64 `json:"distance"`
}

// OutputRow model info
// @Description one row of the nearest station report.
type OutputRow struct {
	PlaceTitle     string `json:"place_of_interest"`
	CategoryTag    string `json:"type_of_place"`
	PlaceAddress   string `json:"place_address"`
	StationName    string `json:"bicimad_station"`
	StationAddress string `json:"station_location"`
	AvailableBikes int    `json:"available_bikes"`
}
