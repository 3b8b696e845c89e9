// Package main implements the toregexp CLI, which converts delimited pattern
// strings into compiled patterns and reports their arguments or matches.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNotConvertible) {
			log.Warn().Err(err).Msg("nothing to compile")
		} else {
			log.Error().Err(err).Msg("toregexp failed")
		}
		os.Exit(1)
	}
}
