package tabletop

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// RebuildSignal asks the scene to tear down and repopulate its root. It
// carries no payload; only its occurrence matters.
type RebuildSignal struct{}

// RebuildSignalType is the queue the controller drains once per pass.
var RebuildSignalType = events.NewEventType[RebuildSignal]()

// RebuildState is the observable state of a RebuildController.
type RebuildState uint8

const (
	RebuildIdle    RebuildState = iota // no pending signal
	RebuildPending                     // signal received, not yet applied
)

func (s RebuildState) String() string {
	if s == RebuildPending {
		return "pending"
	}
	return "idle"
}

// RebuildController tears down every descendant of a root and re-runs the
// population routine when a RebuildSignal has been queued. Multiple signals
// queued within one pass collapse into a single rebuild.
type RebuildController struct {
	world    donburi.World
	graph    *Graph
	root     Handle
	populate func(*Graph, Handle) Population
	log      *zap.Logger

	queued   int
	received int
	rebuilds int
}

// NewRebuildController creates a controller bound to root. populate is
// invoked against the emptied root on every rebuild.
func NewRebuildController(g *Graph, root Handle, populate func(*Graph, Handle) Population, log *zap.Logger) *RebuildController {
	if log == nil {
		log = zap.NewNop()
	}
	c := &RebuildController{
		world:    donburi.NewWorld(),
		graph:    g,
		root:     root,
		populate: populate,
		log:      log,
	}
	RebuildSignalType.Subscribe(c.world, c.onSignal)
	return c
}

func (c *RebuildController) onSignal(_ donburi.World, _ RebuildSignal) {
	c.received++
}

// Request queues a RebuildSignal. It takes effect on the next Process call.
func (c *RebuildController) Request() {
	RebuildSignalType.Publish(c.world, RebuildSignal{})
	c.queued++
}

// State reports whether a rebuild is waiting for the next pass.
func (c *RebuildController) State() RebuildState {
	if c.queued > 0 {
		return RebuildPending
	}
	return RebuildIdle
}

// Rebuilds returns the number of rebuilds applied so far.
func (c *RebuildController) Rebuilds() int {
	return c.rebuilds
}

// Process drains every queued signal and applies at most one rebuild.
// Reports whether a rebuild ran.
func (c *RebuildController) Process() bool {
	c.received = 0
	RebuildSignalType.ProcessEvents(c.world)
	c.queued = 0
	if c.received == 0 {
		return false
	}
	if !c.graph.Valid(c.root) {
		return false
	}

	c.graph.DestroyDescendants(c.root)
	c.log.Info("World cleared!", zap.Int("signals", c.received))

	pop := c.populate(c.graph, c.root)
	c.rebuilds++
	if globalDebug {
		debugCheckGeneration(c.graph, pop.Created)
	}
	return true
}

// SetLogger replaces the controller's logger.
func (c *RebuildController) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}
