package garland

import (
	"fmt"
	"os"
	"time"
)

// globalDebug gates the stderr diagnostics and the extra tree-safety checks.
var globalDebug bool

// SetDebug enables or disables debug diagnostics. When on, Layer.Draw logs
// throttled per-frame stats to stderr and tree operations check for use of
// disposed nodes.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// frameStats holds per-frame draw metrics. Only populated when debug is on.
type frameStats struct {
	nodes        int
	vertices     int
	poolAcquires int
	poolHits     int
}

// debugLogInterval throttles the frame stats output.
const debugLogInterval = time.Second

var lastDebugLog time.Time

// debugLogFrame prints draw stats to stderr, at most once per interval.
func debugLogFrame(stats *frameStats) {
	now := time.Now()
	if now.Sub(lastDebugLog) < debugLogInterval {
		return
	}
	lastDebugLog = now
	_, _ = fmt.Fprintf(os.Stderr,
		"[garland] nodes: %d | vertices: %d | pool: %d/%d hits\n",
		stats.nodes, stats.vertices, stats.poolHits, stats.poolAcquires)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called when debug mode is on; in release
// mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("garland debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
