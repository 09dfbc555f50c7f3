// Package testsupport provides helpers shared by package tests: temp-backed
// configurations, stores, and export files.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"lsetwatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DatabasePath = filepath.Join(base, "library.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLocale sets the format locale on the test config.
func WithLocale(locale string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Format.Locale = locale
	}
}

// WithDateFormat sets the format date pattern on the test config.
func WithDateFormat(pattern string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Format.DateFormat = pattern
	}
}

// WriteExport writes an export file with the given lines, CRLF-terminated,
// and returns its path.
func WriteExport(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	var content string
	for _, line := range lines {
		content += line + "\r\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write export %s: %v", path, err)
	}
	return path
}
