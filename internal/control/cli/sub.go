package cli

import (
	"fmt"

	"github.com/ja-he/calc/internal/calc"
)

// SubCommand contains flags for the `sub` command line command, for
// `go-flags` to parse command line args into.
type SubCommand struct {
	Num1 int16 `long:"num1" description:"the first number" value-name:"<i16>" required:"true"`
	Num2 int16 `long:"num2" description:"the second number" value-name:"<i16>" required:"true"`

	env *environment
}

// Execute executes the sub command.
// (This gets called by `go-flags` when `sub` is provided on the command line)
func (command *SubCommand) Execute(args []string) error {
	if err := rejectArgs(args); err != nil {
		return err
	}

	command.env.log.Debug().Int16("num1", command.Num1).Int16("num2", command.Num2).Msg("subtracting")

	e, err := calc.Sub(command.Num1, command.Num2)
	if err != nil {
		return fmt.Errorf("cannot subtract: %w", err)
	}

	command.env.log.Debug().Int16("result", e.Result).Msg("subtracted")
	fmt.Fprintln(command.env.out, e)
	return nil
}
