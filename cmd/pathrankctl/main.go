// Command pathrankctl generates, ranks, expands, and compares
// information-theoretic graph rankings from the command line.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("pathrankctl failed")
	}
}
