package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "animals",
	Level:  log.InfoLevel,
})

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	if enabled {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
		return
	}
	logger.SetLevel(log.InfoLevel)
	logger.SetReportTimestamp(false)
}

// SetLogOutput redirects log output; tests use it to silence the logger
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func debugLog(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}
