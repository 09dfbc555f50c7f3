package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"lsetwatch/internal/lsetcsv"
)

type statusKind int

const (
	statusNeutral statusKind = iota
	statusGood
	statusWarn
	statusBad
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

func stateKind(state lsetcsv.SetStatus) statusKind {
	switch state {
	case lsetcsv.StatusSold, lsetcsv.StatusGifted:
		return statusGood
	case lsetcsv.StatusLoaned, lsetcsv.StatusPartsForSale:
		return statusWarn
	case lsetcsv.StatusLost:
		return statusBad
	default:
		return statusNeutral
	}
}

func shouldColorize(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(s string, kind statusKind, enabled bool) string {
	if !enabled {
		return s
	}
	switch kind {
	case statusGood:
		return ansiGreen + s + ansiReset
	case statusWarn:
		return ansiYellow + s + ansiReset
	case statusBad:
		return ansiRed + s + ansiReset
	default:
		return s
	}
}
