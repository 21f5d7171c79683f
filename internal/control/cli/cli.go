// Package cli provides the command-line interface for snippet.
package cli

import "errors"

// CommandLineOpts are the options and positional arguments for `go-flags` to
// parse the command line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	Catalog     string `short:"c" long:"catalog" description:"Specify the snippet catalog file (.yaml, .yml, .toml or .xml)" value-name:"<file>"`
	Fullscreen  bool   `short:"f" long:"fullscreen" description:"Edit on a full-screen terminal instead of the current line"`
	Interactive bool   `short:"i" long:"interactive" description:"Pick a missing category or snippet from a list"`

	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are shown after editing, warnings and up only)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	Args struct {
		Category string `positional-arg-name:"category"`
		Snippet  string `positional-arg-name:"snippet"`
	} `positional-args:"yes"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts

// Usage describes the positional arguments.
const Usage = `Usage: snippet [category] [snippet]
Run snippet without arguments to list categories,
or run snippet <category> for a list of snippets for that category`

// ErrTooManyArguments is returned when more positional arguments than
// category and snippet are given.
var ErrTooManyArguments = errors.New("too many arguments")
