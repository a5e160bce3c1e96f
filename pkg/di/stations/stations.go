package stations_di

import (
	"github.com/kristinawk/bicimad-nearest/pkg/config"
	"github.com/kristinawk/bicimad-nearest/pkg/stations"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger) *stations.Loader {
	return stations.NewLoader(cfg.StationCoordinateColumn, log)
}
