package config

import (
	"errors"
	"fmt"

	"lsetwatch/internal/lsetcsv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFormat() error {
	opts := lsetcsv.Options{DateFormat: c.Format.DateFormat, Locale: c.Format.Locale}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// FormatOptions returns the codec options the configuration describes.
func (c *Config) FormatOptions() lsetcsv.Options {
	return lsetcsv.Options{DateFormat: c.Format.DateFormat, Locale: c.Format.Locale}
}
