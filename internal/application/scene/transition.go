package scene

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionKind selects the transition animation
type TransitionKind int

const (
	// DoorsOpenVertical splits the outgoing scene down the middle and slides
	// both halves out sideways, revealing the incoming scene
	DoorsOpenVertical TransitionKind = iota
	// DoorsCloseHorizontal slides the incoming scene's top and bottom halves
	// in over the outgoing scene until they meet in the middle
	DoorsCloseHorizontal
)

// String returns the string representation of the kind
func (k TransitionKind) String() string {
	switch k {
	case DoorsOpenVertical:
		return "DoorsOpenVertical"
	case DoorsCloseHorizontal:
		return "DoorsCloseHorizontal"
	default:
		return "Unknown"
	}
}

// Transition animates between two scenes for a fixed duration, then hands
// control to the incoming scene. Neither scene is updated meanwhile.
type Transition struct {
	from, to Scene
	kind     TransitionKind
	duration float64
	elapsed  float64

	fromImg, toImg *ebiten.Image
}

// NewTransition creates a transition from one scene to another
func NewTransition(from, to Scene, kind TransitionKind, duration float64) *Transition {
	return &Transition{
		from:     from,
		to:       to,
		kind:     kind,
		duration: duration,
	}
}

// Update advances the animation and returns the incoming scene once done
func (t *Transition) Update(dt float64) (Scene, error) {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		return t.to, nil
	}
	return nil, nil
}

// Progress returns how far the animation has run, in [0, 1]
func (t *Transition) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return min(t.elapsed/t.duration, 1)
}

// Kind returns the animation kind
func (t *Transition) Kind() TransitionKind { return t.kind }

// Duration returns the animation length in seconds
func (t *Transition) Duration() float64 { return t.duration }

// To returns the incoming scene
func (t *Transition) To() Scene { return t.to }

// Draw renders both scenes offscreen and composes the doors
func (t *Transition) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	t.fromImg = ensureImage(t.fromImg, w, h)
	t.toImg = ensureImage(t.toImg, w, h)

	t.fromImg.Clear()
	t.toImg.Clear()
	t.from.Draw(t.fromImg)
	t.to.Draw(t.toImg)

	p := t.Progress()

	switch t.kind {
	case DoorsOpenVertical:
		half := w / 2
		offset := p * float64(half)
		screen.DrawImage(t.toImg, nil)
		drawPart(screen, t.fromImg, image.Rect(0, 0, half, h), -offset, 0)
		drawPart(screen, t.fromImg, image.Rect(half, 0, w, h), float64(half)+offset, 0)

	case DoorsCloseHorizontal:
		half := h / 2
		offset := (1 - p) * float64(half)
		screen.DrawImage(t.fromImg, nil)
		drawPart(screen, t.toImg, image.Rect(0, 0, w, half), 0, -offset)
		drawPart(screen, t.toImg, image.Rect(0, half, w, h), 0, float64(half)+offset)
	}
}

// OnEnter implements Scene
func (t *Transition) OnEnter() {}

// OnExit implements Scene
func (t *Transition) OnExit() {}

func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		if s := img.Bounds().Size(); s.X == w && s.Y == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

func drawPart(dst, src *ebiten.Image, r image.Rectangle, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(src.SubImage(r).(*ebiten.Image), op)
}
