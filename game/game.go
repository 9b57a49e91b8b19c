package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Game is the single entry point for player actions. It owns the current
// Board and serialises every action, so a Clock may tick from another
// goroutine.
type Game struct {
	mu sync.Mutex

	board   *Board
	phase   Phase
	elapsed int

	// rebuilds the board on Restart
	newBoard func() (*Board, error)
	// bumped on every (re)start; stale clock ticks carry an older value
	generation uint64

	seed  int64
	rng   *rand.Rand
	clock Clock
	log   logrus.FieldLogger
}

type Option func(*Game)

// WithClock sets the collaborator advancing the elapsed counter
func WithClock(clock Clock) Option {
	return func(game *Game) {
		game.clock = clock
	}
}

// WithSeed makes mine placement reproducible
func WithSeed(seed int64) Option {
	return func(game *Game) {
		game.seed = seed
		game.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(game *Game) {
		game.log = log
	}
}

func NewGame(opts ...Option) *Game {
	game := &Game{
		phase: NotStarted,
		clock: noopClock{},
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(game)
	}
	if game.rng == nil {
		WithSeed(time.Now().UnixNano())(game)
	}
	return game
}

// Start begins a new game on a freshly generated board. An invalid config
// leaves the current game untouched.
func (game *Game) Start(config Config) (GameSnapshot, error) {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.begin(func() (*Board, error) {
		return Generate(config, game.rng)
	})
}

// StartLayout begins a new game with the mines of layout. Every cell starts
// hidden, whatever state the layout records.
func (game *Game) StartLayout(layout *Layout) (GameSnapshot, error) {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.begin(layout.CreateBoard)
}

// Restart begins a new game with the configuration of the current one
func (game *Game) Restart() (GameSnapshot, error) {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.newBoard == nil {
		return game.snapshot(), errors.WithStack(ErrNotStarted)
	}
	return game.begin(game.newBoard)
}

func (game *Game) begin(newBoard func() (*Board, error)) (GameSnapshot, error) {
	board, err := newBoard()
	if err != nil {
		game.log.WithError(err).Debug("Rejected game configuration")
		return game.snapshot(), err
	}

	game.clock.Stop()

	game.phase = NotStarted
	game.board = board
	game.newBoard = newBoard
	game.elapsed = 0
	game.generation++
	game.phase = InProgress

	generation := game.generation
	game.clock.Start(func() {
		game.tick(generation)
	})

	game.logger().Info("Game started")
	return game.snapshot(), nil
}

// Reveal exposes the cell at (x, y), losing the game on a mine and winning
// it once every safe cell is exposed.
func (game *Game) Reveal(x, y int) GameSnapshot {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.canPlay("reveal", x, y) {
		result, err := Reveal(game.board, x, y)
		game.settle("reveal", x, y, result, err)
	}
	return game.snapshot()
}

// Chord reveals the hidden neighbours of an exposed number whose flags are
// all placed.
func (game *Game) Chord(x, y int) GameSnapshot {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.canPlay("chord", x, y) {
		result, err := Chord(game.board, x, y)
		game.settle("chord", x, y, result, err)
	}
	return game.snapshot()
}

func (game *Game) ToggleFlag(x, y int) GameSnapshot {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.canPlay("flag", x, y) {
		if err := game.board.ToggleFlag(x, y); err != nil {
			game.logger().WithError(err).Debug("Ignored flag")
		}
	}
	return game.snapshot()
}

// Tick advances the elapsed counter while the game is in progress
func (game *Game) Tick() GameSnapshot {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.phase == InProgress {
		game.elapsed++
	}
	return game.snapshot()
}

func (game *Game) tick(generation uint64) {
	game.mu.Lock()
	defer game.mu.Unlock()

	if generation == game.generation && game.phase == InProgress {
		game.elapsed++
	}
}

func (game *Game) Snapshot() GameSnapshot {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.snapshot()
}

func (game *Game) Phase() Phase {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.phase
}

// Layout dumps the current board, or nil before the first start
func (game *Game) Layout() *Layout {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.board == nil {
		return nil
	}
	layout := game.board.Layout()
	layout.Seed = game.seed
	return layout
}

func (game *Game) canPlay(action string, x, y int) bool {
	if game.phase != InProgress {
		game.log.WithFields(logrus.Fields{
			"action": action,
			"x":      x,
			"y":      y,
			"phase":  game.phase,
		}).Debug("Ignored action outside of play")
		return false
	}
	return true
}

func (game *Game) settle(action string, x, y int, result RevealResult, err error) {
	if err != nil {
		game.logger().WithError(err).WithFields(logrus.Fields{
			"action": action,
			"x":      x,
			"y":      y,
		}).Debug("Ignored action")
		return
	}

	switch {
	case result.HitMine:
		game.end(Lost)
	case game.board.Cleared():
		game.end(Won)
	}
}

func (game *Game) end(phase Phase) {
	game.phase = phase
	game.clock.Stop()

	game.logger().Info("Game over")
}

func (game *Game) logger() logrus.FieldLogger {
	entry := game.log.WithField("phase", game.phase)
	if game.board != nil {
		entry = entry.WithFields(logrus.Fields{
			"board":   game.board.Config().String(),
			"exposed": game.board.ExposedCount(),
			"flags":   game.board.FlaggedCount(),
			"elapsed": game.elapsed,
		})
	}
	return entry
}

func (game *Game) snapshot() GameSnapshot {
	snapshot := GameSnapshot{
		Phase:   game.phase,
		Elapsed: game.elapsed,
	}
	if game.board == nil {
		return snapshot
	}

	snapshot.Width = game.board.Width()
	snapshot.Height = game.board.Height()
	snapshot.RemainingFlags = game.board.RemainingFlags()
	snapshot.Cells = game.board.view(game.phase)
	return snapshot
}
