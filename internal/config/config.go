// Package config assembles runtime settings from flags and the environment.
package config

import (
	"os"
	"strings"

	"github.com/lumipallolabs/hashseek/internal/logging"
)

// Environment variables read by FromEnv
const (
	EnvLogDir     = "HASHSEEK_LOG_DIR"
	EnvNoColor    = "NO_COLOR"
	EnvCPUProfile = "CPUPROFILE"
	EnvStatsFile  = "HASHSEEK_STATS_FILE"
)

// Config holds process-wide settings
type Config struct {
	LogDir     string // empty means the working directory
	Debug      bool
	Plain      bool // no interactive progress display
	NoColor    bool
	CPUProfile string
	StatsFile  string // empty keeps usage totals in memory only
}

// FromEnv returns the defaults overridden by environment variables
func FromEnv() Config {
	return Config{
		LogDir:     os.Getenv(EnvLogDir),
		Debug:      os.Getenv(logging.DebugEnv) != "",
		NoColor:    isSet(os.Getenv(EnvNoColor)),
		CPUProfile: os.Getenv(EnvCPUProfile),
		StatsFile:  os.Getenv(EnvStatsFile),
	}
}

// LoggingOptions returns the options for opening the diagnostic sinks
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{Dir: c.LogDir, Debug: c.Debug}
}

func isSet(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	return v != "" && v != "0" && v != "false"
}
