package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/they4kman/sweepcore/game"
)

const shellHelp = `commands:
  r X Y   reveal a cell
  f X Y   toggle a flag
  c X Y   reveal around a satisfied number
  n       new game with the same board size
  dump    print the board layout as YAML
  q       quit
`

// runShell reads commands from in until it is exhausted or "q" is entered,
// rendering the board to out after every command.
func runShell(g *game.Game, in io.Reader, out io.Writer) error {
	if err := render(out, g.Snapshot()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var snapshot game.GameSnapshot
		switch fields[0] {
		case "q", "quit":
			return nil
		case "n", "new":
			var err error
			if snapshot, err = g.Restart(); err != nil {
				return err
			}
		case "dump":
			if err := dump(g, out); err != nil {
				return err
			}
			continue
		case "r", "f", "c":
			x, y, err := parseCoords(fields[1:])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			switch fields[0] {
			case "r":
				snapshot = g.Reveal(x, y)
			case "f":
				snapshot = g.ToggleFlag(x, y)
			default:
				snapshot = g.Chord(x, y)
			}
		default:
			fmt.Fprint(out, shellHelp)
			continue
		}

		if err := render(out, snapshot); err != nil {
			return err
		}
	}
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("expected 2 coordinates, got %d", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "x")
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "y")
	}
	return x, y, nil
}

func dump(g *game.Game, out io.Writer) error {
	layout := g.Layout()
	if layout == nil {
		return errors.WithStack(game.ErrNotStarted)
	}
	serialized, err := layout.Serialize()
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, serialized)
	return err
}
