package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/sweepcore/clock"
	"github.com/they4kman/sweepcore/director"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/game"
)

type options struct {
	config      game.Config
	preset      string
	presetsFile string
	layoutPath  string
	seed        int64
	useDirector bool
	tick        time.Duration
	logLevel    logLevelValue
}

func newRootCmd() *cobra.Command {
	opts := &options{logLevel: logLevelValue(logrus.WarnLevel)}

	rootCmd := &cobra.Command{
		Use:   "gosweep",
		Short: "Play manual or computer-driven Minesweeper",
		Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually on the "hard" preset
	gosweep

Pick a preset, or size the board yourself
	gosweep --preset easy
	gosweep -w 8 -h 8 -m 10

Use the director flag to make the computer play for you
	gosweep -director

Defaults may also come from GOSWEEP_PRESET, GOSWEEP_PRESETS_FILE,
GOSWEEP_LOG_LEVEL and GOSWEEP_SEED.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&opts.config.Width, "width", "w", 30, "Width of game board, in cells (overrides the preset)")
	rootCmd.Flags().IntVarP(&opts.config.Height, "height", "h", 16, "Height of game board, in cells (overrides the preset)")
	rootCmd.Flags().IntVarP(&opts.config.MineCount, "mines", "m", 99, "Number of mines to place in the game board (overrides the preset)")
	rootCmd.Flags().StringVarP(&opts.preset, "preset", "p", defaultPreset, "Named board size: easy, medium, hard, or one from --presets")
	rootCmd.Flags().StringVar(&opts.presetsFile, "presets", "", "YAML file of additional presets")
	rootCmd.Flags().StringVar(&opts.layoutPath, "layout", "", "YAML board layout to play instead of a random board")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&opts.useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().DurationVar(&opts.tick, "tick", time.Second, "Interval between clock ticks")
	rootCmd.Flags().Var(&opts.logLevel, "log-level", "Log level: debug, info, warning, error")

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	env, err := parseEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	if !flags.Changed("log-level") {
		if err := opts.logLevel.Set(env.LogLevel); err != nil {
			return errors.Wrap(err, "GOSWEEP_LOG_LEVEL")
		}
	}
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(logrus.Level(opts.logLevel))

	config, err := resolveConfig(flags.Changed, opts, env)
	if err != nil {
		return err
	}

	seed := opts.seed
	if !flags.Changed("seed") {
		seed = env.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ticker := clock.NewTicker(opts.tick)
	defer ticker.Stop()

	g := game.NewGame(
		game.WithSeed(seed),
		game.WithClock(ticker),
		game.WithLogger(logrus.WithField("seed", seed)),
	)

	if opts.layoutPath != "" {
		layout, err := readLayout(opts.layoutPath)
		if err != nil {
			return err
		}
		if _, err := g.StartLayout(layout); err != nil {
			return errors.Wrap(err, opts.layoutPath)
		}
	} else if _, err := g.Start(config); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.useDirector {
		return autoplay(g, rand.New(rand.NewSource(seed)), out)
	}
	return runShell(g, cmd.InOrStdin(), out)
}

// resolveConfig picks the preset from the flag or environment, then applies
// any explicit size flags on top of it.
func resolveConfig(changed func(string) bool, opts *options, env envConfig) (game.Config, error) {
	presetsFile := env.PresetsFile
	if changed("presets") {
		presetsFile = opts.presetsFile
	}
	all, err := loadPresets(presetsFile)
	if err != nil {
		return game.Config{}, err
	}

	name := env.Preset
	if changed("preset") {
		name = opts.preset
	}
	config, err := all.lookup(name)
	if err != nil {
		return game.Config{}, err
	}

	if changed("width") {
		config.Width = opts.config.Width
	}
	if changed("height") {
		config.Height = opts.config.Height
	}
	if changed("mines") {
		config.MineCount = opts.config.MineCount
	}
	return config, nil
}

func readLayout(path string) (*game.Layout, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read layout")
	}
	layout, err := game.LoadLayout(in)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return layout, nil
}

func autoplay(g *game.Game, rng *rand.Rand, out io.Writer) error {
	var renderErr error
	_, err := director.Play(g, constraint.New(rng), func(move director.Move, snapshot game.GameSnapshot) {
		if renderErr != nil {
			return
		}
		fmt.Fprintln(out, move)
		renderErr = render(out, snapshot)
	})
	if err != nil {
		return err
	}
	return renderErr
}

type logLevelValue logrus.Level

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}
