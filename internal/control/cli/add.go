package cli

import (
	"fmt"

	"github.com/ja-he/calc/internal/calc"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into.
type AddCommand struct {
	Num1 uint16 `long:"num1" description:"the first number" value-name:"<u16>" required:"true"`
	Num2 uint16 `long:"num2" description:"the second number" value-name:"<u16>" required:"true"`

	env *environment
}

// Execute executes the add command.
// (This gets called by `go-flags` when `add` is provided on the command line)
func (command *AddCommand) Execute(args []string) error {
	if err := rejectArgs(args); err != nil {
		return err
	}

	command.env.log.Debug().Uint16("num1", command.Num1).Uint16("num2", command.Num2).Msg("adding")

	e, err := calc.Add(command.Num1, command.Num2)
	if err != nil {
		return fmt.Errorf("cannot add: %w", err)
	}

	command.env.log.Debug().Uint16("result", e.Result).Msg("added")
	fmt.Fprintln(command.env.out, e)
	return nil
}
