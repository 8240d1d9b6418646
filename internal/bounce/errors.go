package bounce

import (
	"errors"
	"fmt"
)

var (
	// ErrInit reports that the simulation could not be set up. No tick has run.
	ErrInit = errors.New("bounce: initialization failed")

	// ErrStopped is returned when ticking a game that has already stopped.
	ErrStopped = errors.New("bounce: game stopped")
)

// TickError reports a failure inside a tick. The game is stopped when one
// is returned; state is left as it was at the point of failure.
type TickError struct {
	Tick  int   // Index of the failed tick
	Cause error // Underlying error, or the recovered panic value
}

func (e *TickError) Error() string {
	return fmt.Sprintf("bounce: tick %d failed: %v", e.Tick, e.Cause)
}

func (e *TickError) Unwrap() error {
	return e.Cause
}
