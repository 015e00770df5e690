// cmd/game/main.go
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("apple game exited")
		os.Exit(1)
	}
}
