package usecases

import (
	"context"
	"io"

	"github.com/kristinawk/bicimad-nearest/pkg/catalog"
	"github.com/kristinawk/bicimad-nearest/pkg/config"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
	"github.com/kristinawk/bicimad-nearest/pkg/geo"
	"github.com/kristinawk/bicimad-nearest/pkg/nearest"
	"github.com/kristinawk/bicimad-nearest/pkg/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NearestService runs the whole pipeline: load, flatten, pair, measure, reduce and assemble.
type NearestService struct {
	log      *zap.Logger
	cfg      *config.Config
	stations StationSource
	catalog  PlaceCatalog
	progress io.Writer
}

// NewNearestService builds the service. progress may be nil to disable the progress bar.
func NewNearestService(log *zap.Logger, cfg *config.Config, stations StationSource, catalog PlaceCatalog,
	progress io.Writer) *NearestService {
	return &NearestService{
		log:      log,
		cfg:      cfg,
		stations: stations,
		catalog:  catalog,
		progress: progress,
	}
}

func (s *NearestService) BuildTable(ctx context.Context) (report.Table, error) {
	log := s.log.With(zap.String("run_id", uuid.NewString()))

	metric, err := geo.MetricByName(s.cfg.DistanceMetric)
	if err != nil {
		return report.Table{}, err
	}
	required, err := catalog.ParseNestedFields(s.cfg.RequiredFields)
	if err != nil {
		return report.Table{}, err
	}

	stations, places, err := s.load(ctx, log)
	if err != nil {
		return report.Table{}, err
	}

	flat, err := catalog.Flatten(places, required)
	if err != nil {
		return report.Table{}, err
	}
	log.Info("catalog flattened", zap.Int("places", len(places)), zap.Int("complete", len(flat)))

	if s.cfg.PlaceLimit > 0 && len(flat) > s.cfg.PlaceLimit {
		flat = flat[:s.cfg.PlaceLimit]
		log.Info("places truncated", zap.Int("limit", s.cfg.PlaceLimit))
	}

	pairs := nearest.CrossJoin(flat, stations)
	log.Debug("pairs formed", zap.Int("pairs", len(pairs)))

	var opts []nearest.MeasureOption
	if s.cfg.ShowProgress && s.progress != nil {
		opts = append(opts, nearest.WithProgress(s.progress))
	}
	measured := nearest.Measure(pairs, flat, stations, metric, opts...)

	placeIDs := make([]string, 0, len(flat))
	if len(stations) == 0 {
		log.Warn("station file has no stations, report will be empty")
	} else {
		for _, place := range flat {
			placeIDs = append(placeIDs, place.ID)
		}
	}
	assignments, err := nearest.Reduce(measured, placeIDs)
	if err != nil {
		return report.Table{}, err
	}

	rows, err := report.Assemble(assignments, flat, stations, s.cfg.CategoryTag)
	if err != nil {
		return report.Table{}, err
	}
	log.Info("nearest stations assigned", zap.Int("rows", len(rows)))

	return report.NewTable(s.cfg.OutputColumns, rows)
}

// load reads the station file and fetches the catalog concurrently. The first failure cancels the fetch.
func (s *NearestService) load(ctx context.Context, log *zap.Logger) ([]datastructure.Station, []datastructure.Place, error) {
	var (
		stations []datastructure.Station
		places   []datastructure.Place
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stations, err = s.stations.Load(s.cfg.InputPath)
		return err
	})
	g.Go(func() error {
		var err error
		places, err = s.catalog.FetchPlaces(gctx, s.cfg.DatasetPath)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("loading inputs", zap.Error(err))
		return nil, nil, err
	}

	log.Info("inputs loaded", zap.Int("stations", len(stations)), zap.Int("places", len(places)))
	return stations, places, nil
}

// ExportTable builds the table and writes it to the configured output path, which it returns.
func (s *NearestService) ExportTable(ctx context.Context) (string, error) {
	table, err := s.BuildTable(ctx)
	if err != nil {
		return "", err
	}
	if err := report.WriteCSVFile(s.cfg.OutputPath, table); err != nil {
		return "", err
	}
	s.log.Info("report written", zap.String("path", s.cfg.OutputPath), zap.Int("rows", len(table.Rows)))
	return s.cfg.OutputPath, nil
}
