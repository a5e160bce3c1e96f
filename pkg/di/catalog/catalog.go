package catalog_di

import (
	"github.com/kristinawk/bicimad-nearest/pkg/catalog"
	"github.com/kristinawk/bicimad-nearest/pkg/config"

	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger) *catalog.Client {
	return catalog.NewClient(cfg.APIEndpoint, catalog.NewHTTPClient(cfg.FetchTimeout), log)
}
