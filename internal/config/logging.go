package config

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/calckit/internal/logging"
)

const (
	outputTypeFile   = "file"
	outputTypeStderr = "stderr"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logCloser releases the current log file, if any.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle for proper cleanup
var logCloser io.Closer

// logMu protects concurrent access to logCloser and Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger rebuilds the global Logger from lc. When debug is set the
// level is forced to debug. A previously opened log file is closed first.
func InitLogger(lc LoggingConfig, debug bool) error {
	logMu.Lock()
	defer logMu.Unlock()

	cfg := lc.ToLoggingConfig()
	if debug {
		cfg.Level = zerolog.DebugLevel.String()
	}
	if cfg.Output == outputTypeFile {
		if err := ensureLogDirFor(cfg.File); err != nil {
			return err
		}
	}

	l, closer, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	closeLogFileLocked()
	Logger = l
	logCloser = closer
	return nil
}

// CloseLogFile closes the current log file, if any, and resets the Logger to
// console output so later writes never hit a closed file.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

func closeLogFileLocked() {
	if logCloser == nil {
		return
	}
	_ = logCloser.Close()
	logCloser = nil
	l, _, _ := logging.NewLogger(logging.Config{Level: Logger.GetLevel().String(), Output: outputTypeStderr})
	Logger = l
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

//nolint:gochecknoinits // intentional: package-level logger must be initialized before use
func init() {
	Logger, _, _ = logging.NewLogger(logging.Config{Level: "info", Output: outputTypeStderr})
}

// ToLoggingConfig converts LoggingConfig to logging.Config. A configured
// file switches the output to that file; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := outputTypeStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
