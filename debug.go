package tabletop

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// passStats holds per-pass timing. Only populated when Scene.debug is true.
type passStats struct {
	rebuildTime time.Duration
	pickTime    time.Duration
	rebuilt     bool
	picked      bool
	nodeCount   int
}

// debugLog writes the pass timings at debug level.
func (s *Scene) debugLog(stats passStats) {
	if !s.debug {
		return
	}
	s.log.Debug("pass",
		zap.Uint64("pass", s.passes),
		zap.Bool("rebuilt", stats.rebuilt),
		zap.Duration("rebuild", stats.rebuildTime),
		zap.Bool("picked", stats.picked),
		zap.Duration("pick", stats.pickTime),
		zap.Int("nodes", stats.nodeCount),
	)
}

// globalDebug mirrors the most recently set Scene debug flag so that graph
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugCheckChildCount warns if a node has more children than any table
// layout should need.
const debugMaxChildCount = 256

func debugCheckChildCount(log *zap.Logger, n *Node) {
	if len(n.children) > debugMaxChildCount {
		log.Warn("node child count exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}

// debugCheckGeneration panics if a rebuild left nodes from a previous
// generation under the root.
// created is the node count the latest population attached.
func debugCheckGeneration(g *Graph, created int) {
	if got := g.Len() - 1; got != created {
		panic(fmt.Sprintf("tabletop debug: root holds %d nodes after rebuild, population created %d", got, created))
	}
}
