// Package config loads the run configuration from defaults, an optional config.yaml, an optional .env
// file and BICIMAD_ prefixed environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kristinawk/bicimad-nearest/pkg"
	logConfig "github.com/kristinawk/bicimad-nearest/pkg/logger/config"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BICIMAD"

	DefaultInputPath   = "./data/bicimad_stations.csv"
	DefaultOutputPath  = "./data/nearest_bicimad.csv"
	DefaultAPIEndpoint = "https://datos.madrid.es/egob"
	DefaultDatasetPath = "/catalogo/300356-0-monumentos-ciudad-madrid.json"
	DefaultCategoryTag = "Monuments"
)

type Config struct {
	InputPath               string        `mapstructure:"input_path" validate:"required"`
	OutputPath              string        `mapstructure:"output_path" validate:"required"`
	APIEndpoint             string        `mapstructure:"api_endpoint" validate:"required,url"`
	DatasetPath             string        `mapstructure:"dataset_path" validate:"required,startswith=/"`
	RequiredFields          []string      `mapstructure:"required_fields" validate:"required,unique,dive,oneof=address location organization"`
	CategoryTag             string        `mapstructure:"category_tag" validate:"required"`
	OutputColumns           []string      `mapstructure:"output_columns" validate:"len=6,dive,required"`
	PlaceLimit              int           `mapstructure:"place_limit" validate:"gte=0"`
	DistanceMetric          string        `mapstructure:"distance_metric" validate:"oneof=mercator spherical"`
	StationCoordinateColumn string        `mapstructure:"station_coordinate_column" validate:"required"`
	FetchTimeout            time.Duration `mapstructure:"fetch_timeout" validate:"gte=0"`
	ShowProgress            bool          `mapstructure:"show_progress"`
	QueryFromOutput         bool          `mapstructure:"query_from_output"`
	LogLevel                int           `mapstructure:"log_level" validate:"gte=0,lte=4"`
	LogTimeFormat           string        `mapstructure:"log_time_format" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input_path", DefaultInputPath)
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("api_endpoint", DefaultAPIEndpoint)
	v.SetDefault("dataset_path", DefaultDatasetPath)
	v.SetDefault("required_fields", []string{"address", "location", "organization"})
	v.SetDefault("category_tag", DefaultCategoryTag)
	v.SetDefault("output_columns", []string{
		"Place of Interest",
		"Type of place",
		"Place address",
		"BiciMAD station",
		"Station locaiton",
		"Available bikes",
	})
	v.SetDefault("place_limit", 0)
	v.SetDefault("distance_metric", "mercator")
	v.SetDefault("station_coordinate_column", "geometry.coordinates")
	v.SetDefault("fetch_timeout", time.Duration(0))
	v.SetDefault("show_progress", true)
	v.SetDefault("query_from_output", false)
	v.SetDefault("log_level", logConfig.INFO_LEVEL)
	v.SetDefault("log_time_format", time.RFC3339Nano)
}

// Load reads config.yaml and .env from dir when present. Neither file is required.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "decoding configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		return pkg.WrapErrorf(errors.Join(vv...), pkg.ErrBadParamInput, "invalid configuration")
	}

	if !slices.Contains(c.RequiredFields, "location") {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"required_fields must include location, places without coordinates cannot be measured")
	}
	return nil
}

func (c *Config) Logger() logConfig.Configuration {
	return logConfig.Configuration{
		Level:      c.LogLevel,
		TimeFormat: c.LogTimeFormat,
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
