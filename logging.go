package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Logging belongs to the CLI; the filelist package itself stays silent.
var logger = log.New(os.Stderr)

func initLogging() {
	logger.SetTimeFormat("")
	logger.SetLevel(log.WarnLevel)

	debugEnabled := len(os.Getenv("DEBUG")) > 0
	if debugEnabled {
		logger.SetLevel(log.DebugLevel)
	}
	if level := os.Getenv("CLIPFILES_LOG_LEVEL"); level != "" {
		logger.SetLevel(parseLogLevel(level))
	}

	path := os.Getenv("CLIPFILES_LOG_FILE")
	if path == "" && debugEnabled {
		path = filepath.Join(os.TempDir(), "clipfiles.log")
		_, _ = fmt.Fprintf(os.Stderr, "DEBUG logging to file %s\n", path)
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		logger.SetOutput(f)
		logger.SetReportTimestamp(true)
		logger.SetTimeFormat("2006-01-02 15:04:05.000000")
		logger.Debug("starting clipfiles...")
	}
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
