package config

import (
	"fmt"
	"time"
)

const (
	// FATAL_LEVEL only fatal messages
	FATAL_LEVEL int = iota
	// ERROR_LEVEL errors and above
	ERROR_LEVEL
	// WARN_LEVEL warnings and above
	WARN_LEVEL
	// INFO_LEVEL informational messages and above
	INFO_LEVEL
	// DEBUG_LEVEL everything
	DEBUG_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < FATAL_LEVEL || c.Level > DEBUG_LEVEL {
		return fmt.Errorf("log level %d out of range [%d, %d]", c.Level, FATAL_LEVEL, DEBUG_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format is empty")
	}
	return nil
}

// DefaultConfiguration logs at INFO_LEVEL with RFC 3339 timestamps.
func DefaultConfiguration() Configuration {
	return Configuration{
		Level:      INFO_LEVEL,
		TimeFormat: time.RFC3339Nano,
	}
}
