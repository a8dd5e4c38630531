package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultOutputDir = "data/raw"
	DefaultDBPath    = "data/sqlite/ecommerce.db"

	DefaultCustomers        = 200
	DefaultProducts         = 80
	DefaultOrders           = 400
	DefaultMaxItemsPerOrder = 4

	// DefaultSeed makes repeated runs reproducible out of the box.
	// Pass --seed 0 to seed from the wall clock instead.
	DefaultSeed = 1337
)

type Config struct {
	OutputDir string   `json:"output_dir" mapstructure:"output_dir"`
	RawDir    string   `json:"raw_dir" mapstructure:"raw_dir"`
	DBPath    string   `json:"db_path" mapstructure:"db_path"`
	Generate  Generate `json:"generate" mapstructure:"generate"`
}

type Generate struct {
	Customers        int   `json:"customers" mapstructure:"customers"`
	Products         int   `json:"products" mapstructure:"products"`
	Orders           int   `json:"orders" mapstructure:"orders"`
	MaxItemsPerOrder int   `json:"max_items_per_order" mapstructure:"max_items_per_order"`
	Seed             int64 `json:"seed" mapstructure:"seed"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		RawDir:    DefaultOutputDir,
		DBPath:    DefaultDBPath,
		Generate: Generate{
			Customers:        DefaultCustomers,
			Products:         DefaultProducts,
			Orders:           DefaultOrders,
			MaxItemsPerOrder: DefaultMaxItemsPerOrder,
			Seed:             DefaultSeed,
		},
	}
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The loader reads where the generator wrote unless told otherwise.
	if cfg.RawDir == "" {
		cfg.RawDir = cfg.OutputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Generate.Customers <= 0 {
		return fmt.Errorf("--customers must be positive, got %d", c.Generate.Customers)
	}
	if c.Generate.Products <= 0 {
		return fmt.Errorf("--products must be positive, got %d", c.Generate.Products)
	}
	if c.Generate.Orders <= 0 {
		return fmt.Errorf("--orders must be positive, got %d", c.Generate.Orders)
	}
	if c.Generate.MaxItemsPerOrder < 1 {
		return fmt.Errorf("--max-items-per-order must be at least 1, got %d", c.Generate.MaxItemsPerOrder)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("--output-dir cannot be empty")
	}
	if c.RawDir == "" {
		return fmt.Errorf("--raw-dir cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("--db-path cannot be empty")
	}
	return nil
}
