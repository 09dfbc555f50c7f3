package main

import (
	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/lsetcsv"
)

// formatFlags lets individual commands override the configured export
// format for one run.
type formatFlags struct {
	dateFormat string
	locale     string
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dateFormat, "date-format", "", "Override the configured date pattern, e.g. %d.%m.%Y")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Override the configured locale, e.g. de_DE.utf8")
}

func (f *formatFlags) options(cfg *config.Config) lsetcsv.Options {
	opts := cfg.FormatOptions()
	if f.dateFormat != "" {
		opts.DateFormat = f.dateFormat
	}
	if f.locale != "" {
		opts.Locale = f.locale
	}
	return opts
}
