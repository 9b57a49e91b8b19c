package random

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/director"
	"github.com/they4kman/sweepcore/game"
)

func TestNext_OnlyPicksHiddenCells(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	g := game.NewGame(game.WithSeed(3), game.WithLogger(log))
	_, err := g.StartLayout(&game.Layout{Board: "O###\n####\n###O"})
	require.NoError(t, err)
	g.ToggleFlag(0, 0)
	snapshot := g.Reveal(3, 0)

	d := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		move, ok := d.Next(snapshot)
		require.True(t, ok)
		require.Equal(t, director.Reveal, move.Kind)

		cell, ok := snapshot.Cell(move.X, move.Y)
		require.True(t, ok)
		require.False(t, cell.Exposed)
		require.False(t, cell.Flagged)
	}
}

func TestPlay_RandomGamesEnd(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	for seed := int64(0); seed < 10; seed++ {
		g := game.NewGame(game.WithSeed(seed), game.WithLogger(log))
		_, err := g.Start(game.Config{Width: 8, Height: 8, MineCount: 10})
		require.NoError(t, err)

		snapshot, err := director.Play(g, New(rand.New(rand.NewSource(seed))), nil)
		require.NoError(t, err)
		require.True(t, snapshot.Phase.IsTerminal())
	}
}

func TestNext_NothingHidden(t *testing.T) {
	_, ok := New(rand.New(rand.NewSource(1))).Next(game.GameSnapshot{})
	require.False(t, ok)
}
