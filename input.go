package tabletop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is the window's pointer state as seen by one pass. The scene
// only reads it.
type InputSource interface {
	// CursorPosition returns the cursor in screen coordinates; ok is false
	// when the cursor is outside the window.
	CursorPosition() (x, y float64, ok bool)
	// LeftJustReleased reports whether the left button completed a
	// press-release cycle this pass.
	LeftJustReleased() bool
}

// EbitenInput reads the mouse through ebiten. The window size must be kept
// current with SetSize so positions outside the window read as absent.
type EbitenInput struct {
	width, height int
}

// NewEbitenInput returns an input source for a window of the given size.
func NewEbitenInput(width, height int) *EbitenInput {
	return &EbitenInput{width: width, height: height}
}

// SetSize updates the window extent used for the inside-window check.
func (in *EbitenInput) SetSize(width, height int) {
	in.width = width
	in.height = height
}

// CursorPosition implements InputSource.
func (in *EbitenInput) CursorPosition() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	if !insideWindow(mx, my, in.width, in.height) {
		return 0, 0, false
	}
	return float64(mx), float64(my), true
}

// LeftJustReleased implements InputSource.
func (in *EbitenInput) LeftJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func insideWindow(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

// pointerSample is the pointer state consumed by one pass.
type pointerSample struct {
	screenX, screenY float64
	inside           bool
	released         bool
}

func sampleInput(in InputSource) pointerSample {
	var p pointerSample
	p.released = in.LeftJustReleased()
	p.screenX, p.screenY, p.inside = in.CursorPosition()
	return p
}

// processInput resolves a completed left click to a pick. Reports whether a
// pick ran. Injected events take precedence over the real input source.
func (s *Scene) processInput() bool {
	p, ok := s.processInjectedInput()
	if !ok {
		if s.input == nil {
			return false
		}
		p = sampleInput(s.input)
	}
	if !p.released || !p.inside {
		return false
	}
	if s.camera == nil {
		return false
	}
	wx, wy, ok := s.camera.ScreenToWorld(p.screenX, p.screenY)
	if !ok {
		return false
	}
	s.PickAt(wx, wy)
	return true
}
