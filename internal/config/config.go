package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/pdf"
	"github.com/at-ishikawa/acreage/internal/practice"
)

type Config struct {
	Practice  PracticeConfig  `mapstructure:"practice"`
	Display   DisplayConfig   `mapstructure:"display"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type PracticeConfig struct {
	MaxAcres int `mapstructure:"max_acres" validate:"gte=1,lte=1000"`
	// Empty means problems in both directions.
	Direction string          `mapstructure:"direction" validate:"omitempty,direction"`
	Tolerance ToleranceConfig `mapstructure:"tolerance"`
}

type ToleranceConfig struct {
	Acres      float64 `mapstructure:"acres" validate:"gt=0"`
	SquareFeet float64 `mapstructure:"square_feet" validate:"gt=0"`
}

type DisplayConfig struct {
	Color bool `mapstructure:"color"`
}

type TemplatesConfig struct {
	WorksheetTemplate string `mapstructure:"worksheet_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	WorksheetDirectory string `mapstructure:"worksheet_directory"`
	WorksheetPageSize  string `mapstructure:"worksheet_page_size" validate:"oneof=A4 A5 Letter Legal"`
}

// ConversionDirection returns the configured direction, empty when both directions are practiced.
func (c PracticeConfig) ConversionDirection() conversion.Direction {
	return conversion.Direction(c.Direction)
}

// Tolerances returns the configured tolerances of answers.
func (c PracticeConfig) Tolerances() practice.Tolerances {
	return practice.Tolerances{
		Acres:      c.Tolerance.Acres,
		SquareFeet: c.Tolerance.SquareFeet,
	}
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/acreage")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("practice.max_acres", practice.DefaultMaxAcres)
	v.SetDefault("practice.direction", "")
	v.SetDefault("practice.tolerance.acres", conversion.DefaultAcresTolerance)
	v.SetDefault("practice.tolerance.square_feet", conversion.DefaultSquareFeetTolerance)
	v.SetDefault("display.color", true)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.worksheet_template", "")
	v.SetDefault("outputs.worksheet_directory", filepath.Join("outputs", "worksheets"))
	v.SetDefault("outputs.worksheet_page_size", pdf.DefaultPageSize)

	if err := v.BindEnv("practice.max_acres", "ACREAGE_MAX_ACRES"); err != nil {
		return nil, fmt.Errorf("failed to bind ACREAGE_MAX_ACRES environment variable: %w", err)
	}
	if err := v.BindEnv("display.color", "ACREAGE_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind ACREAGE_COLOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
