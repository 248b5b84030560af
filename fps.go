package tabletop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how many Draw calls the debug HUD text is reused for.
const hudRefresh = 30

// debugHUD shows FPS, TPS and scene counters in the top-left corner while
// debug mode is on.
type debugHUD struct {
	text   string
	frames int
}

func (h *debugHUD) draw(dst *ebiten.Image, s *Scene) {
	if h.frames == 0 {
		h.text = hudText(s, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	h.frames = (h.frames + 1) % hudRefresh
	ebitenutil.DebugPrintAt(dst, h.text, 4, 4)
}

func hudText(s *Scene, fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nnodes: %d\nrebuilds: %d\ntrigger armed: %t",
		fps, tps, s.graph.Len(), s.Generation(), s.trigger.Armed())
}
