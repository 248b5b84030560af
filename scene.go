package tabletop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene owns the node graph and its root anchor, the rebuild controller, the
// one-shot rebuild trigger and the pick dispatch. One call to Update is one
// pass; everything inside it runs to completion in order.
type Scene struct {
	graph  *Graph
	root   Handle
	layout Layout

	controller *RebuildController
	trigger    OnceTrigger

	camera *Camera
	input  InputSource
	store  PickStore
	log    *zap.Logger
	debug  bool
	hud    debugHUD

	// ClearColor fills the screen before the table is drawn.
	ClearColor Color

	handlers    handlerRegistry
	injectQueue []syntheticPointerEvent
	injectDown  bool
	testRunner  *TestRunner

	passes      uint64
	fingerprint uint64
	lastPop     Population
}

// NewScene creates the root anchor and runs the initial population of l.
func NewScene(l Layout) *Scene {
	g := NewGraph()
	root := g.CreateRoot()
	s := &Scene{
		graph:      g,
		root:       root,
		layout:     l,
		log:        zap.NewNop(),
		ClearColor: Color{R: 0.08, G: 0.08, B: 0.1, A: 1},
	}
	s.controller = NewRebuildController(g, root, s.populate, s.log)
	s.populate(g, root)
	return s
}

func (s *Scene) populate(g *Graph, parent Handle) Population {
	pop := Populate(g, parent, s.layout)
	s.lastPop = pop
	s.fingerprint = Fingerprint(g, parent)
	s.log.Debug("scene populated",
		zap.String("layout", s.layout.Name),
		zap.Int("nodes", pop.Created),
		zap.Uint64("fingerprint", s.fingerprint))
	return pop
}

// Update runs one pass: scripted input, the rebuild trigger, the rebuild
// itself, camera motion, then pointer picking. A rebuild always completes
// before a click in the same pass is hit-tested.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.passes++

	var stats passStats
	var t0 time.Time

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	if s.trigger.Poll() {
		s.controller.Request()
	}

	if s.debug {
		t0 = time.Now()
	}
	stats.rebuilt = s.controller.Process()
	if s.debug {
		stats.rebuildTime = time.Since(t0)
	}

	if s.camera != nil {
		s.camera.update(dt)
	}

	if s.debug {
		t0 = time.Now()
	}
	stats.picked = s.processInput()
	if s.debug {
		stats.pickTime = time.Since(t0)
		stats.nodeCount = s.graph.Len()
		s.debugLog(stats)
	}
}

// Root returns the permanent root anchor.
func (s *Scene) Root() Handle {
	return s.root
}

// Graph returns the scene's node graph. Callers must not retain node
// handles across a rebuild.
func (s *Scene) Graph() *Graph {
	return s.graph
}

// Layout returns the layout used by the next population.
func (s *Scene) Layout() Layout {
	return s.layout
}

// SetLayout replaces the layout. It takes effect at the next rebuild.
func (s *Scene) SetLayout(l Layout) {
	s.layout = l
}

// Cards returns the card and zone handles of the current generation, in
// layout order.
func (s *Scene) Cards() []Handle {
	return s.lastPop.Cards
}

// Table returns the table handle of the current generation.
func (s *Scene) Table() Handle {
	return s.lastPop.Table
}

// RequestRebuild queues a rebuild signal. This is the entry point for hosts
// that reload the scene.
func (s *Scene) RequestRebuild() {
	s.controller.Request()
}

// RebuildState reports whether a rebuild is waiting for the next pass.
func (s *Scene) RebuildState() RebuildState {
	return s.controller.State()
}

// RearmRebuildTrigger lets the one-shot trigger fire again on the next pass.
// Called by the host, never by the scene itself.
func (s *Scene) RearmRebuildTrigger() {
	s.trigger.Rearm()
}

// TriggerFires returns how many times the one-shot trigger has fired.
func (s *Scene) TriggerFires() int {
	return s.trigger.Fires()
}

// Generation returns how many rebuilds have replaced the boot population.
func (s *Scene) Generation() int {
	return s.controller.Rebuilds()
}

// Fingerprint returns the geometry hash of the current generation.
func (s *Scene) Fingerprint() uint64 {
	return s.fingerprint
}

// Passes returns the number of Update calls so far.
func (s *Scene) Passes() uint64 {
	return s.passes
}

// NewCamera creates a camera with the given viewport and makes it the
// scene's active camera.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	s.camera = NewCamera(viewport)
	return s.camera
}

// SetCamera sets the active camera. A nil camera disables picking.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the active camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetInput sets the pointer source read each pass.
func (s *Scene) SetInput(in InputSource) {
	s.input = in
}

// SetLogger sets the logging sink. nil installs a no-op logger.
func (s *Scene) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
	s.graph.SetLogger(log)
	s.controller.SetLogger(log)
}

// SetDebugMode enables or disables debug mode. When enabled, rebuilds are
// checked for leftover nodes, oversized child lists are reported and
// per-pass timings are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
