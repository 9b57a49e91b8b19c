package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLayout = `
seed: 42
board: |-
  O###O
  #####
  #O###
  ###O#
  ##O##
`

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout([]byte(scenarioLayout))
	require.NoError(t, err)
	assert.EqualValues(t, 42, layout.Seed)

	config, err := layout.Config()
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 5, Height: 5, MineCount: 5}, config)

	mines, err := layout.Mines()
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {1, 2}, {3, 3}, {2, 4}}, mines)

	board, err := layout.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, mines, board.Mines())
	assert.Zero(t, board.ExposedCount())
}

func TestLoadLayout_IgnoresRecordedState(t *testing.T) {
	layout, err := LoadLayout([]byte("board: \"*f.\\n#F#\""))
	require.NoError(t, err)

	board, err := layout.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {1, 1}}, board.Mines())
	assert.Zero(t, board.ExposedCount())
	assert.Zero(t, board.FlaggedCount())

	board.Cells(func(cell Cell) {
		assert.False(t, cell.IsDetonated())
	})
}

func TestLoadLayout_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":      "board: [",
		"empty":         "seed: 3",
		"ragged":        "board: \"O##\\n##\"",
		"unknown glyph": "board: \"O#x\"",
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLayout([]byte(in))
			require.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLayout_CreateBoardValidatesMineCount(t *testing.T) {
	_, err := (&Layout{Board: "###\n###"}).CreateBoard()
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = (&Layout{Board: "O"}).CreateBoard()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBoard_Layout(t *testing.T) {
	board, err := NewBoardWithMines(3, 3, []Point{{0, 0}, {2, 0}})
	require.NoError(t, err)

	require.NoError(t, board.ToggleFlag(2, 0))
	require.NoError(t, board.ToggleFlag(1, 0))
	_, err = Reveal(board, 1, 2)
	require.NoError(t, err)
	_, err = Reveal(board, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "*fF\n...\n...", board.Layout().Board)

	serialized, err := board.Layout().Serialize()
	require.NoError(t, err)
	loaded, err := LoadLayout([]byte(serialized))
	require.NoError(t, err)

	reloaded, err := loaded.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, board.Mines(), reloaded.Mines())
}
