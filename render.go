package gamelib

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image scaled and tinted to draw sprites.
var whitePixel *ebiten.Image

func whitePixelImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// toRGBA converts to a non-premultiplied 8-bit color with alpha scaled by a.
func (c Color) toRGBA(a float64) color.NRGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A * a)}
}

// Draw renders the scene tree in child order: sprites as tinted rectangles,
// lines as stroked polylines. World transforms are refreshed first.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA(1))
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawNode(screen, s.root)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeSprite:
		drawSprite(dst, n)
	case NodeTypeLine:
		drawLine(dst, n)
	}
	for _, c := range n.children {
		s.drawNode(dst, c)
	}
}

func drawSprite(dst *ebiten.Image, n *Node) {
	if n.Width <= 0 || n.Height <= 0 || n.worldAlpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width, n.Height)
	var world ebiten.GeoM
	m := n.worldTransform
	world.SetElement(0, 0, m[0])
	world.SetElement(1, 0, m[1])
	world.SetElement(0, 1, m[2])
	world.SetElement(1, 1, m[3])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 2, m[5])
	op.GeoM.Concat(world)
	op.ColorScale.ScaleWithColor(n.Color.toRGBA(n.worldAlpha))
	dst.DrawImage(whitePixelImage(), &op)
}

func drawLine(dst *ebiten.Image, n *Node) {
	if len(n.Points) < 2 || n.worldAlpha <= 0 {
		return
	}
	width := n.LineWidth
	if width <= 0 {
		width = 1
	}
	clr := n.Color.toRGBA(n.worldAlpha)
	x0, y0 := n.LocalToWorld(n.Points[0].X, n.Points[0].Y)
	for _, p := range n.Points[1:] {
		x1, y1 := n.LocalToWorld(p.X, p.Y)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
		x0, y0 = x1, y1
	}
}
