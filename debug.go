package birdloader

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	meshCount  int
}

// debugLog prints timing stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[birdloader] update: %v | draw: %v | meshes: %d\n",
		stats.updateTime, stats.drawTime, stats.meshCount)
}

// debugLogPhase prints a loader's phase transition to stderr.
func debugLogPhase(e PhaseEvent) {
	if e.Stopped {
		_, _ = fmt.Fprintf(os.Stderr, "[birdloader] loader %d: stopped at counter %d\n",
			e.LoaderID, e.Counter)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[birdloader] loader %d: phase %s counter %d delay %v beard pulse %t\n",
		e.LoaderID, e.Phase, e.Counter, e.Delay, e.BeardPulse)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("birdloader debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
