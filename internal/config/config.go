// Package config defines the data structures related to configuration and
// includes functions for loading and processing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Currency  string        `yaml:"currency,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Mortgages []Mortgage    `yaml:"mortgages"`
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
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source such as an HTTP request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Currency == "" {
		configuration.Currency = constants.DefaultCurrencySymbol
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures are left to ProcessMortgages.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Mortgages) == 0 {
		warnings = append(warnings, "no mortgages configured; nothing to calculate")
	}

	seen := make(map[string]struct{})
	for _, m := range conf.Mortgages {
		if _, duplicate := seen[m.Name]; duplicate && m.Name != "" {
			warnings = append(warnings, fmt.Sprintf("duplicate mortgage name '%s'", m.Name))
		}
		seen[m.Name] = struct{}{}

		if m.AnnualInterestRate == 0 {
			warnings = append(warnings, fmt.Sprintf("mortgage '%s' has a zero interest rate", m.Name))
		}
		if m.TermYears > constants.LongTermWarningYears {
			warnings = append(warnings, fmt.Sprintf("mortgage '%s' has an unusually long term of %d years",
				m.Name, m.TermYears))
		}
	}

	return warnings
}
