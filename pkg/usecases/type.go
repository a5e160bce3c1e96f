package usecases

import (
	"context"

	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
	"github.com/kristinawk/bicimad-nearest/pkg/report"
)

type StationSource interface {
	Load(path string) ([]datastructure.Station, error)
}

type PlaceCatalog interface {
	FetchPlaces(ctx context.Context, datasetPath string) ([]datastructure.Place, error)
}

type TableBuilder interface {
	BuildTable(ctx context.Context) (report.Table, error)
}
