package stations

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"

	"go.uber.org/zap"
)

const (
	ColumnID        = "id"
	ColumnName      = "name"
	ColumnAddress   = "address"
	ColumnDockBikes = "dock_bikes"

	DefaultCoordinateColumn = "geometry.coordinates"
)

// Loader reads the BiciMAD station inventory, a tab separated file whose first column is the row index.
type Loader struct {
	coordinateColumn string
	log              *zap.Logger
}

func NewLoader(coordinateColumn string, log *zap.Logger) *Loader {
	if coordinateColumn == "" {
		coordinateColumn = DefaultCoordinateColumn
	}
	return &Loader{
		coordinateColumn: coordinateColumn,
		log:              log,
	}
}

func (l *Loader) Load(path string) ([]datastructure.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInvalidStationFile, "opening station file %s", path)
	}
	defer f.Close()

	stations, err := l.Read(f)
	if err != nil {
		return nil, err
	}

	l.log.Info("stations loaded", zap.String("path", path), zap.Int("stations", len(stations)))
	return stations, nil
}

// Read parses the station rows and normalizes their coordinates. A malformed coordinate aborts the read.
func (l *Loader) Read(r io.Reader) ([]datastructure.Station, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, pkg.WrapErrorf(nil, pkg.ErrInvalidStationFile, "station file is empty")
	}
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInvalidStationFile, "reading station header")
	}

	columns, err := l.locateColumns(header)
	if err != nil {
		return nil, err
	}

	var stations []datastructure.Station
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrInvalidStationFile, "reading station line %d", line)
		}
		if len(record) < len(header) {
			return nil, pkg.WrapErrorf(nil, pkg.ErrInvalidStationFile,
				"station line %d has %d fields, header has %d", line, len(record), len(header))
		}

		dockBikes, err := parseCount(record[columns.dockBikes])
		if err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrInvalidStationFile, "station line %d: %s", line, ColumnDockBikes)
		}

		station := datastructure.Station{
			ID:             strings.TrimSpace(record[columns.id]),
			Name:           record[columns.name],
			Address:        record[columns.address],
			DockBikes:      dockBikes,
			RawCoordinates: record[columns.coordinates],
		}
		if err := station.NormalizeCoordinates(); err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrMalformedCoordinate, "station line %d", line)
		}
		stations = append(stations, station)
	}

	return stations, nil
}

type columnIndex struct {
	id, name, address, dockBikes, coordinates int
}

func (l *Loader) locateColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	var missing []string
	find := func(name string) int {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
		}
		return i
	}

	columns := columnIndex{
		id:          find(ColumnID),
		name:        find(ColumnName),
		address:     find(ColumnAddress),
		dockBikes:   find(ColumnDockBikes),
		coordinates: find(l.coordinateColumn),
	}
	if len(missing) > 0 {
		return columnIndex{}, pkg.WrapErrorf(nil, pkg.ErrInvalidStationFile,
			"station file is missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

// parseCount accepts "12" as well as "12.0", which is how pandas writes integer columns holding NaN.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
