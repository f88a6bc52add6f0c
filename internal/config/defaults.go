package config

const (
	defaultSourceExtension = "wav"
	defaultLockDir         = "~/.local/share/shrinktunes"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			SourceExtension: defaultSourceExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Paths: Paths{
			LockDir: defaultLockDir,
		},
	}
}
