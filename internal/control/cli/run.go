package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
)

// Run parses the given command line arguments (excluding the program name),
// executes the selected command and returns the exit code for the process.
//
// Results go to stdout; help on request also goes to stdout. Everything else
// (usage on bad input, command errors, logs) goes to stderr. The version flag
// takes the place of whichever command was selected.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := NewOpts(stdout)
	parser := NewParser(opts)

	// the log level is only known once the flags are parsed, which is by the
	// time go-flags hands us the command
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		opts.env.log = newLogger(stderr, opts.LogLevel)
		if command == nil {
			return nil
		}
		// --version wins over whichever command was selected
		if opts.Version {
			return opts.VersionCommand.Execute(nil)
		}
		if parser.Active != nil {
			opts.env.log.Debug().Str("command", parser.Active.Name).Strs("args", args).Msg("executing command")
		}
		return command.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	if err == nil {
		return 0
	}

	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) {
		fmt.Fprintf(stderr, "exited with error:\n > %s\n", err.Error())
		return 1
	}

	switch {
	case flagsErr.Type == flags.ErrHelp:
		fmt.Fprint(stdout, flagsErr.Message)
		return 0
	case flagsErr.Type == flags.ErrCommandRequired && opts.Version:
		if err := opts.VersionCommand.Execute(nil); err != nil {
			fmt.Fprintf(stderr, "exited with error:\n > %s\n", err.Error())
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "flag parsing error:\n > %s\n\n", flagsErr.Message)
		parser.WriteHelp(stderr)
		return 1
	}
}
