package cli

import (
	"fmt"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand contains flags for the `version` command line command, for
// `go-flags` to parse command line args into.
type VersionCommand struct {
	env *environment
}

// Execute executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	if err := rejectArgs(args); err != nil {
		return err
	}

	fmt.Fprintf(command.env.out, "%s (%s)\n", version, hash)
	return nil
}
