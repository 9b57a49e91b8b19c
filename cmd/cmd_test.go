package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/game"
)

func writeFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(append([]string{"--tick", "1h"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestShell_WinsLayout(t *testing.T) {
	layout := writeFile(t, "layout.yaml", "board: |-\n  O####\n  #####\n  #####\n")

	out, err := execute(t, "f 0 0\nr 4 2\nq\n", "--layout", layout, "--seed", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "000     0s\n")
	assert.Contains(t, out, "WIN!")
	assert.Contains(t, out, "  0 F1...\n")
}

func TestShell_Commands(t *testing.T) {
	layout := writeFile(t, "layout.yaml", "board: \"O##\\n###\"")

	out, err := execute(t, "help\nr 1\nr x 1\nc 1 1\nr 0 0\ndump\nn\n", "--layout", layout, "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "commands:")
	assert.Contains(t, out, "expected 2 coordinates, got 1")
	assert.Contains(t, out, "LOSE :(")
	assert.Contains(t, out, "  0 *##\n")
	assert.Contains(t, out, "seed: 3\nboard:")
}

func TestDirector_PlaysToTheEnd(t *testing.T) {
	out, err := execute(t, "", "--preset", "easy", "--director", "--seed", "11")
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "WIN!") || strings.Contains(out, "LOSE :("), out)
	assert.Contains(t, out, "reveal (")
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := execute(t, "", "-w", "1", "-h", "1", "-m", "1")
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)

	_, err = execute(t, "", "--preset", "impossible")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown preset "impossible"`)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("GOSWEEP_PRESET", "tiny")
	t.Setenv("GOSWEEP_PRESETS_FILE", writeFile(t, "presets.yaml", "tiny: {width: 3, height: 2, mines: 1}\n"))

	out, err := execute(t, "q\n")
	require.NoError(t, err)
	assert.Contains(t, out, "001     0s\n    012\n  0 ###\n  1 ###\n")

	t.Setenv("GOSWEEP_LOG_LEVEL", "loud")
	_, err = execute(t, "q\n")
	require.Error(t, err)
}

func TestResolveConfig(t *testing.T) {
	opts := &options{preset: "medium", config: game.Config{Width: 20, Height: 7, MineCount: 3}}
	changed := map[string]bool{"preset": true, "width": true}

	config, err := resolveConfig(func(name string) bool { return changed[name] }, opts, envConfig{Preset: "easy"})
	require.NoError(t, err)
	assert.Equal(t, game.Config{Width: 20, Height: 16, MineCount: 40}, config)

	config, err = resolveConfig(func(string) bool { return false }, opts, envConfig{Preset: "easy"})
	require.NoError(t, err)
	assert.Equal(t, game.Config{Width: 10, Height: 10, MineCount: 10}, config)
}

func TestParsePresets(t *testing.T) {
	parsed, err := parsePresets([]byte("tiny: {width: 3, height: 3, mines: 2}\n"))
	require.NoError(t, err)
	assert.Equal(t, presets{"tiny": {Width: 3, Height: 3, Mines: 2}}, parsed)

	_, err = parsePresets([]byte("broken: {width: 1, height: 1, mines: 1}\n"))
	require.ErrorIs(t, err, game.ErrInvalidConfiguration)

	_, err = parsePresets([]byte("typo: {widht: 3}\n"))
	require.Error(t, err)

	assert.Equal(t, []string{"easy", "hard", "medium"}, builtinPresets().names())
}

func TestRender(t *testing.T) {
	g := game.NewGame()
	_, err := g.StartLayout(&game.Layout{Board: "O#O\n###"})
	require.NoError(t, err)
	g.ToggleFlag(1, 0)

	var out bytes.Buffer
	require.NoError(t, render(&out, g.Reveal(0, 0)))
	assert.Equal(t, "001     0s   LOSE :(\n    012\n  0 *XO\n  1 ###\n", out.String())
}
