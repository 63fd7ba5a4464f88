package bsp

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.flighttest/pkg/assert"
)

// Config controls console sink output.
type Config struct {
	// Color enables ANSI color codes.
	Color bool `yaml:"color" json:"color"`

	// Verbose shows flow and debug classifications that the
	// default filter drops.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Filter names the least severe classification still shown,
	// by abbreviation (e.g. "PASS", "INFO", "DEBUG"). An empty or
	// unknown value falls back to the Verbose default.
	Filter string `yaml:"filter" json:"filter"`
}

// DefaultConfig returns the standard console configuration: color
// enabled, everything up to PASS shown.
func DefaultConfig() Config {
	return Config{Color: true}
}

// maxShown resolves the filter threshold. Severity runs from most
// to least severe in the CaseType ordering, so the threshold is the
// last position still written.
func (c Config) maxShown() assert.CaseType {
	if ct, ok := ParseCaseType(c.Filter); ok {
		return ct
	}
	if c.Verbose {
		return assert.CaseDebug
	}
	return assert.CasePass
}

// LoadConfig reads a YAML sink configuration from path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf(
			"failed to read sink config %s: %w", path, err,
		)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf(
			"failed to parse sink config %s: %w", path, err,
		)
	}

	return cfg, nil
}

// ParseCaseType resolves a classification abbreviation (as
// returned by CaseType.Abbrev, case-insensitive) back to its
// CaseType value.
func ParseCaseType(s string) (assert.CaseType, bool) {
	if s == "" {
		return 0, false
	}
	for ct := assert.CaseAbort; ct <= assert.CaseDebug; ct++ {
		if strings.EqualFold(s, ct.Abbrev()) {
			return ct, true
		}
	}
	return 0, false
}
