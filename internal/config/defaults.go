package config

import "lsetwatch/internal/lsetcsv"

const (
	defaultDatabasePath = "~/.local/share/lsetwatch/library.db"
	defaultLogDir       = "~/.local/share/lsetwatch/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabasePath: defaultDatabasePath,
			LogDir:       defaultLogDir,
		},
		Format: Format{
			DateFormat:  lsetcsv.DefaultDateFormat,
			WriteHeader: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
