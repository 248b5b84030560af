package tabletop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// whitePixel is a 1x1 white image scaled and tinted for every rectangle.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Draw renders the table, cards and labels through the active camera. With
// no camera the world origin sits at the screen's top-left corner.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	view := identityTransform
	if s.camera != nil {
		view = s.camera.computeViewMatrix()
	}
	s.drawChildren(screen, s.root, Vec2{}, view)
	if s.debug {
		s.hud.draw(screen, s)
	}
}

func (s *Scene) drawChildren(dst *ebiten.Image, parent Handle, origin Vec2, view [6]float64) {
	for _, h := range s.graph.Children(parent) {
		n := s.graph.Node(h)
		if n == nil || !n.Visible {
			continue
		}
		pos := Vec2{origin.X + n.X, origin.Y + n.Y}
		switch n.Type {
		case NodeTypeTable, NodeTypeCard:
			drawRect(dst, view, CenteredRect(pos, n.Size()), n.Color)
		case NodeTypeLabel:
			sx, sy := transformPoint(view, pos.X, pos.Y)
			ebitenutil.DebugPrintAt(dst, n.Text, int(sx), int(sy))
		}
		s.drawChildren(dst, h, pos, view)
	}
}

func drawRect(dst *ebiten.Image, view [6]float64, r Rect, c Color) {
	m := multiplyAffine(view, rectTransform(r))
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(whiteImage(), &op)
}
