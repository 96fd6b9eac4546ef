package eventsystem

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenPointerSource reads mouse and touch state from Ebitengine.
type EbitenPointerSource struct {
	touchIDs []ebiten.TouchID
}

// MousePresent returns true; Ebitengine reports a cursor on every platform
// that has one and a fixed position elsewhere.
func (s *EbitenPointerSource) MousePresent() bool { return true }

// CursorPosition returns the cursor position in screen pixels.
func (s *EbitenPointerSource) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// IsMouseButtonPressed reports whether b is held.
func (s *EbitenPointerSource) IsMouseButtonPressed(b MouseButton) bool {
	return ebiten.IsMouseButtonPressed(ebitenButton(b))
}

// AppendTouches appends the active touches to dst.
func (s *EbitenPointerSource) AppendTouches(dst []Touch) []Touch {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return dst
}

func ebitenButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// Game is a minimal [ebiten.Game] that ticks every system in a registry.
// Embed it or wrap it when the game needs its own Update logic.
type Game struct {
	Registry *Registry
	// Width and Height are the logical screen size. Zero uses the outside size.
	Width, Height int
	// DrawFunc renders the frame. May be nil.
	DrawFunc func(screen *ebiten.Image)
	// Script, if set, feeds injected input before each tick.
	Script *ScriptRunner
	// ShowDebug prints the current system's state and FPS over the frame.
	ShowDebug bool

	focused bool
	started bool
	buf     []*EventSystem
}

// Update mirrors window focus into the systems and runs their Update.
func (g *Game) Update() error {
	g.tick(ebiten.IsFocused())
	return nil
}

// tick runs one frame with the given focus state. Systems only receive
// SetFocused when focus changes.
func (g *Game) tick(focused bool) {
	if g.Script != nil {
		g.Script.Step()
	}
	g.buf = append(g.buf[:0], g.Registry.Systems()...)
	if !g.started || focused != g.focused {
		for _, s := range g.buf {
			s.SetFocused(focused)
		}
		g.focused = focused
		g.started = true
	}
	for _, s := range g.buf {
		s.Update()
	}
}

// Draw calls DrawFunc if set, then the debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
	if g.ShowDebug && screen != nil {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	var state string
	if g.Registry != nil {
		if cur := g.Registry.Current(); cur != nil {
			state = cur.String()
		}
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), state)
}

// Layout returns Width and Height, or the outside size when they are zero.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by [Run].
type RunConfig struct {
	Title         string
	Width, Height int
	ShowDebug     bool
	// Script is replayed as injected input, one step per frame.
	Script *ScriptRunner
}

// Run opens a window and runs a [Game] over reg until the window closes.
func Run(reg *Registry, draw func(screen *ebiten.Image), cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(&Game{
		Registry:  reg,
		Width:     cfg.Width,
		Height:    cfg.Height,
		DrawFunc:  draw,
		Script:    cfg.Script,
		ShowDebug: cfg.ShowDebug,
	})
}
