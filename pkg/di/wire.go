//go:build wireinject

//go:generate wire
package di

import (
	"io"

	"github.com/kristinawk/bicimad-nearest/pkg/catalog"
	catalog_di "github.com/kristinawk/bicimad-nearest/pkg/di/catalog"
	"github.com/kristinawk/bicimad-nearest/pkg/di/config"
	logger_di "github.com/kristinawk/bicimad-nearest/pkg/di/logger"
	stations_di "github.com/kristinawk/bicimad-nearest/pkg/di/stations"
	"github.com/kristinawk/bicimad-nearest/pkg/stations"
	"github.com/kristinawk/bicimad-nearest/pkg/usecases"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	catalog_di.New,
	stations_di.New,
	wire.Bind(new(usecases.PlaceCatalog), new(*catalog.Client)),
	wire.Bind(new(usecases.StationSource), new(*stations.Loader)),
)

var nearestSet = wire.NewSet(
	defaultSet,
	usecases.NewNearestService,
)

var querySet = wire.NewSet(
	nearestSet,
	usecases.NewQueryService,
	wire.Bind(new(usecases.TableBuilder), new(*usecases.NearestService)),
)

func InitializeNearestService(progress io.Writer) (*usecases.NearestService, func(), error) {

	panic(wire.Build(nearestSet))
}

func InitializeQueryService(progress io.Writer) (*usecases.QueryService, func(), error) {

	panic(wire.Build(querySet))
}
