package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		return errors.New("paths.lock_dir must be set")
	}
	return nil
}

func (c *Config) validateConvert() error {
	if c.Convert.SourceExtension == "" {
		return errors.New("convert.source_extension must be set")
	}
	if strings.ContainsAny(c.Convert.SourceExtension, "/\\ ") {
		return fmt.Errorf("convert.source_extension %q is not a bare extension", c.Convert.SourceExtension)
	}
	for _, format := range c.Convert.OutputFormats {
		if strings.ContainsAny(format, "/\\ ") {
			return fmt.Errorf("convert.output_formats entry %q is not a bare extension", format)
		}
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
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
