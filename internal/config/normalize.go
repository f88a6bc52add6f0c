package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)

	c.Convert.SourceExtension = normalizeExtension(c.Convert.SourceExtension)
	if c.Convert.SourceExtension == "" {
		c.Convert.SourceExtension = defaultSourceExtension
	}

	formats := make([]string, 0, len(c.Convert.OutputFormats))
	for _, format := range c.Convert.OutputFormats {
		if normalized := normalizeExtension(format); normalized != "" {
			formats = append(formats, normalized)
		}
	}
	c.Convert.OutputFormats = formats

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// normalizeExtension lowercases an extension and strips a leading dot, so
// "MP3" and ".mp3" configure the same format.
func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
