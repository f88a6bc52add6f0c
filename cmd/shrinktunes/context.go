package main

import (
	"log/slog"
	"strings"
	"sync"

	"shrinktunes/internal/config"
	"shrinktunes/internal/ffmpeg"
	"shrinktunes/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ffmpegClient() (*ffmpeg.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return ffmpeg.New(cfg.FFmpeg.Binary), nil
}

// logger returns the batch log sink: a real logger when verbose is set, the
// no-op logger otherwise.
func (c *commandContext) logger(verbose bool) (*slog.Logger, error) {
	if !verbose {
		return logging.NewNop(), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}
