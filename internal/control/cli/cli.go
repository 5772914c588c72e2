// Package cli provides the command-line interface for calc.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

// CommandLineOpts contains the global flags and the subcommands, for
// `go-flags` to parse command line args into.
type CommandLineOpts struct {
	Version  bool   `short:"v" long:"version" description:"Show the program version"`
	LogLevel string `long:"log-level" description:"verbosity of diagnostic output on stderr" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`

	AddCommand     AddCommand     `command:"add" description:"Add two numbers"`
	SubCommand     SubCommand     `command:"sub" description:"Subtract two numbers"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version"`

	env *environment
}

// environment is what commands need from the run that invoked them.
type environment struct {
	out io.Writer
	log zerolog.Logger
}

// NewOpts returns options whose commands write results to out.
func NewOpts(out io.Writer) *CommandLineOpts {
	env := &environment{out: out, log: zerolog.Nop()}

	opts := &CommandLineOpts{env: env}
	opts.AddCommand.env = env
	opts.SubCommand.env = env
	opts.VersionCommand.env = env
	return opts
}

// NewParser returns the parser for the given options.
//
// Help and errors are not printed by the parser itself; Run decides which
// stream they go to.
func NewParser(opts *CommandLineOpts) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "calc"
	parser.LongDescription = "A simple calculation tool"
	parser.SubcommandsOptional = false
	return parser
}

// rejectArgs fails on positional arguments left over after parsing; none of
// the commands take any.
func rejectArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return &flags.Error{
		Type:    flags.ErrUnknown,
		Message: fmt.Sprintf("unexpected argument(s): %s", strings.Join(args, " ")),
	}
}
