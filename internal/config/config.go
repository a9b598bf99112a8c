// Package config wires up the shared services of the cheat code checker.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the logger that check diagnostics are reported
// through. Debug widens the level to include debug output, quiet narrows
// it so that only check errors remain visible.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
