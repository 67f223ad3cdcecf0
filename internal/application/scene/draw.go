package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/starfall/internal/application/system"
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/ecs"
	"github.com/younwookim/starfall/internal/infrastructure/assets"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Viewport maps scene coordinates (origin at the center, y up) to the
// logical screen (origin top-left, y down)
type Viewport struct {
	W, H float64
}

// ToScreen converts a scene point to screen pixels
func (v Viewport) ToScreen(p entity.Vec) (float64, float64) {
	return p.X + v.W/2, v.H/2 - p.Y
}

// DrawSprite draws an entity's template shape centered on pos
func (v Viewport) DrawSprite(screen *ebiten.Image, s ecs.Sprite, b ecs.Body, pos entity.Vec) {
	x, y := v.ToScreen(pos)
	w, h := b.Width, b.Height
	c := color.RGBA{s.Tint[0], s.Tint[1], s.Tint[2], s.Tint[3]}

	switch s.Shape {
	case assets.ShapeTriangle:
		// points down, toward the player
		fillPolygon(screen, c, x-w/2, y-h/2, x+w/2, y-h/2, x, y+h/2)
	case assets.ShapeShip:
		fillPolygon(screen, c, x, y-h/2, x+w/2, y+h/2, x, y+h/4, x-w/2, y+h/2)
	case assets.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(min(w, h)/2), c, true)
	default:
		ebitenutil.DrawRect(screen, x-w/2, y-h/2, w, h, c)
	}
}

// DrawParticles draws every particle of the given emitters, fading with age
func (v Viewport) DrawParticles(screen *ebiten.Image, emitters []*system.Emitter) {
	for _, e := range emitters {
		for _, p := range e.Particles() {
			x, y := v.ToScreen(p.Pos)
			c := p.Color
			c.A = uint8(float64(c.A) * p.Fade())
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Size/2), premultiply(c), false)
		}
	}
}

// DrawText draws a line of text anchored at (x, y) in screen pixels.
// Without a font it falls back to the debug printer.
func DrawText(screen *ebiten.Image, font *text.GoTextFaceSource, s string, size, x, y float64, clr color.Color, align text.Align) {
	if font == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{
		Source: font,
		Size:   size,
	}, op)
}

func fillPolygon(screen *ebiten.Image, c color.RGBA, pts ...float64) {
	var path vector.Path
	path.MoveTo(float32(pts[0]), float32(pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(float32(pts[i]), float32(pts[i+1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// premultiply converts a straight-alpha color to the premultiplied form
// the vector package expects
func premultiply(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(c.A) / 0xff),
		G: uint8(uint16(c.G) * uint16(c.A) / 0xff),
		B: uint8(uint16(c.B) * uint16(c.A) / 0xff),
		A: c.A,
	}
}
