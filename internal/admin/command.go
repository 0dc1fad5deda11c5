package admin

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Command names understood by pollctl.
const (
	CommandInitDB   = "initdb"
	CommandClear    = "clear"
	CommandPopulate = "populate"
)

// ErrUsage is returned when no or an unknown command is given.
var ErrUsage = errors.New("usage: pollctl <initdb|clear|populate> [flags]")

// Command is a parsed pollctl invocation.
type Command struct {
	Name   string
	Backup bool
	Count  int
	Seed   int64
}

// ParseCommand parses pollctl arguments without the program name.
// Flag errors and -h output are written to output.
func ParseCommand(args []string, output io.Writer) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrUsage
	}

	cmd := Command{Name: args[0]}
	fs := flag.NewFlagSet("pollctl "+cmd.Name, flag.ContinueOnError)
	fs.SetOutput(output)

	switch cmd.Name {
	case CommandInitDB:
	case CommandClear:
		fs.BoolVar(&cmd.Backup, "backup", false, "Upload a JSON snapshot to object storage before clearing")
	case CommandPopulate:
		fs.IntVar(&cmd.Count, "count", 1, "Number of polls to generate")
		fs.Int64Var(&cmd.Seed, "seed", 0, "Seed offset for generated data")
	default:
		return Command{}, fmt.Errorf("unknown command %q: %w", cmd.Name, ErrUsage)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return Command{}, err
	}
	if fs.NArg() > 0 {
		return Command{}, fmt.Errorf("unexpected arguments %v: %w", fs.Args(), ErrUsage)
	}

	if cmd.Name == CommandPopulate && (cmd.Count < 1 || cmd.Count > MaxPopulateCount) {
		return Command{}, ErrCountOutOfRange
	}

	return cmd, nil
}
