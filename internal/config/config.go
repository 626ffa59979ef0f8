// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/YohanChabiduPerera/leasing-calculator/pkg/amortize"
	"github.com/YohanChabiduPerera/leasing-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for leasing-calculator.
type Configuration struct {
	Calculation CalculationConfig `yaml:"calculation,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	Output      OutputConfig      `yaml:"output,omitempty"`
}

// CalculationConfig holds the default lease terms applied when the CLI flags
// do not override them. The defaults mirror the original input form: a 20
// lakh lease over 5 years at 11%.
type CalculationConfig struct {
	Model               string  `yaml:"model,omitempty"`               // fixed-rate, declining-balance
	Principal           float64 `yaml:"principal,omitempty"`           // lease amount in LKR
	Years               int     `yaml:"years,omitempty"`               // duration in years
	AnnualRatePercent   float64 `yaml:"annualRatePercent,omitempty"`   // fixed-rate only
	RatePerLakhPerMonth float64 `yaml:"ratePerLakhPerMonth,omitempty"` // declining-balance only
	PreviewMonths       int     `yaml:"previewMonths,omitempty"`       // schedule rows to display; 0 shows all
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. If the file does not exist, defaults are returned
// without error so the CLI can run from flags alone.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configuration.ApplyDefaults()
			return &configuration, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in any calculation fields the config file left unset.
func (conf *Configuration) ApplyDefaults() {
	if conf.Calculation.Model == "" {
		conf.Calculation.Model = string(amortize.FixedRate)
	}
	if conf.Calculation.Principal == 0 {
		conf.Calculation.Principal = constants.DefaultPrincipal
	}
	if conf.Calculation.Years == 0 {
		conf.Calculation.Years = constants.DefaultDurationYears
	}
	if conf.Calculation.Model == string(amortize.FixedRate) && conf.Calculation.AnnualRatePercent == 0 {
		conf.Calculation.AnnualRatePercent = constants.DefaultAnnualRatePercent
	}
}

// Terms converts the calculation configuration into engine lease terms.
func (conf *Configuration) Terms() (amortize.LeaseTerms, error) {
	model, err := amortize.ParseModel(conf.Calculation.Model)
	if err != nil {
		return amortize.LeaseTerms{}, err
	}

	return amortize.LeaseTerms{
		Model:             model,
		Principal:         conf.Calculation.Principal,
		Years:             conf.Calculation.Years,
		AnnualRatePercent: conf.Calculation.AnnualRatePercent,
		RatePerLakh:       conf.Calculation.RatePerLakhPerMonth,
	}, nil
}
