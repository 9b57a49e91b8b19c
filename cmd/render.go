package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/sweepcore/game"
)

var cellGlyphs = map[game.CellState]byte{
	game.Unrevealed:     '#',
	game.Empty:          '.',
	game.Number1:        '1',
	game.Number2:        '2',
	game.Number3:        '3',
	game.Number4:        '4',
	game.Number5:        '5',
	game.Number6:        '6',
	game.Number7:        '7',
	game.Number8:        '8',
	game.Flag:           'F',
	game.FlagWrong:      'X',
	game.Mine:           'O',
	game.MineUnrevealed: 'O',
	game.MineLosing:     '*',
}

// render writes the remaining flag count, the phase and the grid with column
// and row indexes.
func render(out io.Writer, snapshot game.GameSnapshot) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%03d  %4ds", snapshot.RemainingFlags, snapshot.Elapsed)
	switch snapshot.Phase {
	case game.Won:
		builder.WriteString("   WIN!")
	case game.Lost:
		builder.WriteString("   LOSE :(")
	}
	builder.WriteByte('\n')

	builder.WriteString("    ")
	for x := 0; x < snapshot.Width; x++ {
		fmt.Fprintf(&builder, "%d", x%10)
	}
	builder.WriteByte('\n')

	for y, row := range snapshot.Cells {
		fmt.Fprintf(&builder, "%3d ", y)
		for _, cell := range row {
			builder.WriteByte(cellGlyphs[cell.State])
		}
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(out, builder.String())
	return err
}
