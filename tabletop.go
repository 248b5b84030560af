package tabletop

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. X and Y are the minimum corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenteredRect returns the rectangle of the given size centered on center.
func CenteredRect(center, size Vec2) Rect {
	return Rect{
		X:      center.X - size.X/2,
		Y:      center.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	}
}

// HitTest reports whether point lies inside the box with the given center and
// size. All four edges are inclusive.
func HitTest(center, size, point Vec2) bool {
	halfW := size.X / 2
	halfH := size.Y / 2
	return point.X >= center.X-halfW && point.X <= center.X+halfW &&
		point.Y >= center.Y-halfH && point.Y <= center.Y+halfH
}

// NodeType distinguishes the role of a node in the table scene.
type NodeType uint8

const (
	NodeTypeRoot  NodeType = iota // permanent world anchor
	NodeTypeTable                 // backdrop rectangle
	NodeTypeCard                  // card visual, optionally carrying Card data
	NodeTypeLabel                 // text label attached under a card
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeRoot:
		return "root"
	case NodeTypeTable:
		return "table"
	case NodeTypeCard:
		return "card"
	case NodeTypeLabel:
		return "label"
	default:
		return "unknown"
	}
}

