// Package logger wires zerolog setup into a go-flags option group.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds the logging flags shared by all tools.
type Logger struct {
	Level string `long:"log-level" env:"LOG_LEVEL" description:"Logging level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	JSON  bool   `long:"log-json" env:"LOG_JSON" description:"Log in JSON format instead of console output"`
}

// Setup applies the selected level and output format to the global
// zerolog logger.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !l.JSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
