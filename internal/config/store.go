package config

import "github.com/lgbarn/chess-rules-go/internal/errors"

// DefaultStoreDir is where saved games live unless configured otherwise.
const DefaultStoreDir = "games"

// StoreConfig holds settings for the saved-game directory.
type StoreConfig struct {
	// Dir is the directory holding <name>.json saves
	Dir string

	// Workers is the number of goroutines used to verify saves
	Workers int
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Dir:     DefaultStoreDir,
		Workers: 4,
	}
}

// Validate checks the store settings.
func (c *StoreConfig) Validate() error {
	if c.Dir == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty store directory")
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
