package game

// Clock drives a game's elapsed counter from outside the game
type Clock interface {
	/**
	 * Begin calling tick periodically, replacing any previous callback
	 */
	Start(tick func())

	/**
	 * Stop calling tick. Must not block: the game calls it while
	 * holding its own lock.
	 */
	Stop()
}

type noopClock struct{}

func (noopClock) Start(func()) {}
func (noopClock) Stop()        {}
