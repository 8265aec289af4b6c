package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/internal/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := connectfour(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func connectfour() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
