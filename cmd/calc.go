package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/calc/internal/control/cli"
)

// MAIN
func main() {
	// set up stderr logger by default, cli.Run then logs through its own
	// logger on the writer it is given
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
