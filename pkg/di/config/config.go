package config

import (
	"github.com/kristinawk/bicimad-nearest/pkg/config"
)

// New loads the configuration from the working directory.
func New() (*config.Config, error) {
	return config.Load(".")
}
