package tabletop

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// RunConfig configures the window and host behaviour for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Reload re-arms the scene's rebuild trigger each time it receives.
	// A nil channel never fires.
	Reload <-chan struct{}
	// RearmKeys re-arm the rebuild trigger when pressed.
	RearmKeys []ebiten.Key
	// Tick logs a repeating "tick" heartbeat at this interval. Zero disables it.
	Tick time.Duration

	Logger *zap.Logger
	Debug  bool
}

// game adapts a Scene to ebiten.Game and plays the host role: frame cadence,
// window input and trigger re-arming.
type game struct {
	scene *Scene
	input *EbitenInput
	cfg   RunConfig
	tick  tickLogger
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Logger != nil {
		scene.SetLogger(cfg.Logger)
	}
	scene.SetDebugMode(cfg.Debug)

	g := &game{
		scene: scene,
		input: NewEbitenInput(cfg.Width, cfg.Height),
		cfg:   cfg,
		tick:  newTickLogger(cfg.Tick, ebiten.TPS()),
	}
	scene.SetInput(g.input)
	if scene.Camera() == nil {
		scene.NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}

func (g *game) Update() error {
	g.pollReload()
	g.scene.Update()
	if g.tick.advance() {
		g.scene.log.Info("tick", zap.Int("count", g.tick.count))
	}
	return nil
}

// pollReload checks the host's re-arm sources once per pass.
func (g *game) pollReload() {
	select {
	case <-g.cfg.Reload:
		g.scene.RearmRebuildTrigger()
	default:
	}
	for _, k := range g.cfg.RearmKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.scene.RearmRebuildTrigger()
			return
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.SetSize(outsideWidth, outsideHeight)
	if cam := g.scene.Camera(); cam != nil {
		cam.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}
