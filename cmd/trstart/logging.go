package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// logHeader tags every line the search writes.
const logHeader = "TR Start"

// newLogger builds the stderr logger: colored text on a terminal, logfmt
// when redirected.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          logHeader,
		Level:           lvl,
	})

	if term.IsTerminal(int(os.Stderr.Fd())) {
		styles := log.DefaultStyles()
		styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
		styles.Keys["reseeds"] = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
		logger.SetStyles(styles)
	} else {
		logger.SetFormatter(log.LogfmtFormatter)
	}

	return logger, nil
}

// mustLogger is newLogger for command handlers.
func mustLogger() *log.Logger {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
