// Package config reads the process configuration from the environment and
// the optional tunables file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"capquote/internal/normalizer"
	"capquote/internal/orderstate"

	"gopkg.in/yaml.v3"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

var ErrInvalidTunables = errors.New("invalid tunables")

type Config struct {
	Port              string
	PersistenceDriver string
	ThreadsTable      string
	PaymentsTable     string
	SQLitePath        string
	MySQL             MySQLConfig
	TunablesFile      string
	Tunables          Tunables
}

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Database string
}

// Tunables are the business constants a deployment may adjust.
type Tunables struct {
	Extraction ExtractionTunables  `yaml:"extraction"`
	Pricing    PricingTunables     `yaml:"pricing"`
	Defaults   normalizer.Defaults `yaml:"defaults"`
}

type ExtractionTunables struct {
	MaxCaptureLength int `yaml:"max_capture_length"`
}

type PricingTunables struct {
	Tolerance             float64 `yaml:"tolerance"`
	Breakpoints           []int   `yaml:"breakpoints"`
	DiscrepancyConfidence float64 `yaml:"discrepancy_confidence"`
}

func DefaultTunables() Tunables {
	p := orderstate.DefaultPricing()
	return Tunables{
		Extraction: ExtractionTunables{MaxCaptureLength: 50},
		Pricing: PricingTunables{
			Tolerance:             p.Tolerance,
			Breakpoints:           p.Breakpoints,
			DiscrepancyConfidence: p.DiscrepancyConfidence,
		},
	}
}

// Load reads the environment. A tunables file is only read when
// QUOTE_TUNABLES_FILE is set.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenvDefault("PORT", "8080"),
		PersistenceDriver: strings.ToLower(getenvDefault("PERSISTENCE_DRIVER", DriverDynamoDB)),
		ThreadsTable:      getenvDefault("THREADS_TABLE", "quote_threads"),
		PaymentsTable:     getenvDefault("PAYMENTS_TABLE", "quote_payments"),
		SQLitePath:        getenvDefault("SQLITE_PATH", "data/quotes.db"),
		MySQL: MySQLConfig{
			User:     getenvDefault("MYSQL_USER", "root"),
			Password: os.Getenv("MYSQL_PWD"),
			Host:     getenvDefault("MYSQL_HOST", "tcp(localhost:3306)"),
			Database: getenvDefault("MYSQL_DATABASE", "capquote"),
		},
		TunablesFile: os.Getenv("QUOTE_TUNABLES_FILE"),
	}

	switch cfg.PersistenceDriver {
	case DriverDynamoDB, DriverSQLite, DriverMySQL:
	default:
		return Config{}, fmt.Errorf("unsupported PERSISTENCE_DRIVER %q", cfg.PersistenceDriver)
	}

	tun, err := LoadTunables(cfg.TunablesFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Tunables = tun
	return cfg, nil
}

// LoadTunables overlays the YAML file at path on DefaultTunables. An empty
// path yields the defaults.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("read tunables %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parse tunables %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, fmt.Errorf("tunables %s: %w", path, err)
	}
	return t, nil
}

func (t Tunables) Validate() error {
	if t.Extraction.MaxCaptureLength <= 0 {
		return fmt.Errorf("%w: extraction.max_capture_length must be positive", ErrInvalidTunables)
	}
	if t.Pricing.Tolerance <= 0 || t.Pricing.Tolerance >= 1 {
		return fmt.Errorf("%w: pricing.tolerance must be within (0,1)", ErrInvalidTunables)
	}
	if t.Pricing.DiscrepancyConfidence <= 0 || t.Pricing.DiscrepancyConfidence > 1 {
		return fmt.Errorf("%w: pricing.discrepancy_confidence must be within (0,1]", ErrInvalidTunables)
	}
	if len(t.Pricing.Breakpoints) == 0 {
		return fmt.Errorf("%w: pricing.breakpoints is empty", ErrInvalidTunables)
	}
	if !sort.IntsAreSorted(t.Pricing.Breakpoints) || t.Pricing.Breakpoints[0] <= 0 {
		return fmt.Errorf("%w: pricing.breakpoints must be positive and ascending", ErrInvalidTunables)
	}
	return nil
}

func (t Tunables) PricingRules() orderstate.PricingRules {
	return orderstate.PricingRules{
		Breakpoints:           append([]int(nil), t.Pricing.Breakpoints...),
		Tolerance:             t.Pricing.Tolerance,
		DiscrepancyConfidence: t.Pricing.DiscrepancyConfidence,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
