package logger_di

import (
	"github.com/kristinawk/bicimad-nearest/pkg/config"
	myZap "github.com/kristinawk/bicimad-nearest/pkg/logger/zap"

	"go.uber.org/zap"
)

func New(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := myZap.New(cfg.Logger())
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
