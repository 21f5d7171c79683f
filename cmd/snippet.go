package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/snippet/internal/control/cli"
)

// MAIN
func main() {
	// set up stderr logger by default, the editing session redirects it while
	// it owns the terminal
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// parse the flags
	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.Usage = "[options] [category] [snippet]"

	extraArgs, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error (e.g. flag parsing):\n > %s\n", err.Error())
		os.Exit(1)
	}

	err = cli.Execute(cli.Opts, extraArgs)
	if errors.Is(err, cli.ErrTooManyArguments) {
		fmt.Fprintln(os.Stderr, cli.Usage)
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
		os.Exit(1)
	}
}
