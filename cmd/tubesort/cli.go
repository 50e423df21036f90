package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/tubesort/internal/config"
	"github.com/hpungsan/tubesort/internal/errors"
	"github.com/hpungsan/tubesort/internal/puzzle"
	"github.com/hpungsan/tubesort/internal/solver"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "tubesort",
		Usage:   "Water-sort puzzle solver",
		Version: Version,
		Description: `Puzzles use compact notation: tubes separated by commas, one character
per slot bottom-to-top, '.' for an empty slot. Example (capacity 4):

   tubesort solve YRRR,YRYY,....,....`,
		Commands: []*cli.Command{
			solveCmd(cfg),
			movesCmd(),
			checkCmd(),
			pourCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// solveCmd creates the solve command.
func solveCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Find a minimum-pour solution (puzzle from argument or stdin)",
		ArgsUsage: "[puzzle]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-expansions", Aliases: []string{"m"}, Value: -1, Usage: "Abort after this many expanded states (0 = unbounded)"},
			&cli.BoolFlag{Name: "steps", Usage: "Print human-readable pour steps instead of JSON"},
			&cli.BoolFlag{Name: "one-based", Usage: "Display 1-based tube indices with --steps"},
		},
		Action: func(c *cli.Context) error {
			state, err := puzzleArg(c)
			if err != nil {
				return outputError(err)
			}

			maxExpansions := cfg.MaxExpansions
			if c.Int("max-expansions") >= 0 {
				maxExpansions = c.Int("max-expansions")
			}

			out, err := solver.Solve(solver.SolveInput{
				State:         state,
				MaxExpansions: maxExpansions,
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("steps") {
				printSteps(out, c.Bool("one-based") || cfg.OneBased)
				return nil
			}
			return outputJSON(out)
		},
	}
}

// movesCmd creates the moves command.
func movesCmd() *cli.Command {
	return &cli.Command{
		Name:      "moves",
		Usage:     "List every legal pour for a puzzle state",
		ArgsUsage: "[puzzle]",
		Action: func(c *cli.Context) error {
			state, err := puzzleArg(c)
			if err != nil {
				return outputError(err)
			}
			moves := state.LegalMoves()
			return outputJSON(map[string]any{
				"count": len(moves),
				"moves": moves,
			})
		},
	}
}

// checkCmd creates the check command.
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report whether a puzzle state is solved, plus its heuristic estimate",
		ArgsUsage: "[puzzle]",
		Action: func(c *cli.Context) error {
			state, err := puzzleArg(c)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{
				"solved":    state.IsSolved(),
				"heuristic": state.Heuristic(),
			})
		},
	}
}

// pourCmd creates the pour command.
func pourCmd() *cli.Command {
	return &cli.Command{
		Name:      "pour",
		Usage:     "Apply a single pour and print the resulting state",
		ArgsUsage: "[puzzle]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "from", Aliases: []string{"f"}, Required: true, Usage: "Source tube index (0-based)"},
			&cli.IntFlag{Name: "to", Aliases: []string{"t"}, Required: true, Usage: "Destination tube index (0-based)"},
		},
		Action: func(c *cli.Context) error {
			state, err := puzzleArg(c)
			if err != nil {
				return outputError(err)
			}
			next, err := state.Apply(puzzle.Move{From: c.Int("from"), To: c.Int("to")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(map[string]any{
				"state":  next.Notation(),
				"solved": next.IsSolved(),
			})
		},
	}
}

// puzzleArg reads the puzzle notation from the first argument or from stdin.
func puzzleArg(c *cli.Context) (puzzle.State, error) {
	notation := c.Args().First()
	if notation == "" {
		if !stdinHasData() {
			return puzzle.State{}, errors.NewInvalidPuzzle("puzzle must be given as an argument or piped via stdin")
		}
		data, err := readStdin()
		if err != nil {
			return puzzle.State{}, errors.NewInternal(err)
		}
		notation = data
	}
	return puzzle.Parse(notation)
}

// printSteps renders a solve result as numbered pour steps.
func printSteps(out *solver.SolveOutput, oneBased bool) {
	if !out.Solved {
		fmt.Println("No solution exists.")
		return
	}
	if len(out.Moves) == 0 {
		fmt.Println("Already solved.")
		return
	}
	offset := 0
	if oneBased {
		offset = 1
	}
	for i, m := range out.Moves {
		fmt.Printf("Step %d: pour tube %d into tube %d\n", i+1, m.From+offset, m.To+offset)
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SolverError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
