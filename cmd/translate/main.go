package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := newRootCmd(log)
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("translation failed")
		os.Exit(1)
	}
}
