package eventsystem

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTint fades a color between a normal and a selected value when its
// element is selected or deselected. Wire it with:
//
//	elem.OnSelect = tint.Select
//	elem.OnDeselect = tint.Deselect
//
// and call Update(dt) every frame. There is no global animation manager.
type ColorTint struct {
	Normal   Color
	Selected Color
	// FadeDuration is in seconds. Zero or less snaps immediately.
	FadeDuration float32
	// Ease defaults to ease.Linear.
	Ease ease.TweenFunc

	// Current is the color to draw with.
	Current Color

	tweens [4]*gween.Tween
	active bool
}

// NewColorTint creates a tint starting at normal.
func NewColorTint(normal, selected Color, fadeDuration float32) *ColorTint {
	return &ColorTint{
		Normal:       normal,
		Selected:     selected,
		FadeDuration: fadeDuration,
		Ease:         ease.Linear,
		Current:      normal,
	}
}

// Select starts fading toward Selected.
func (t *ColorTint) Select(*BaseEventData) { t.FadeTo(t.Selected) }

// Deselect starts fading toward Normal.
func (t *ColorTint) Deselect(*BaseEventData) { t.FadeTo(t.Normal) }

// FadeTo starts fading from Current toward to over FadeDuration.
func (t *ColorTint) FadeTo(to Color) {
	if t.FadeDuration <= 0 {
		t.Current = to
		t.active = false
		return
	}
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	t.tweens[0] = gween.New(float32(t.Current.R), float32(to.R), t.FadeDuration, fn)
	t.tweens[1] = gween.New(float32(t.Current.G), float32(to.G), t.FadeDuration, fn)
	t.tweens[2] = gween.New(float32(t.Current.B), float32(to.B), t.FadeDuration, fn)
	t.tweens[3] = gween.New(float32(t.Current.A), float32(to.A), t.FadeDuration, fn)
	t.active = true
}

// Update advances the fade by dt seconds.
func (t *ColorTint) Update(dt float32) {
	if !t.active {
		return
	}
	fields := [4]*float64{&t.Current.R, &t.Current.G, &t.Current.B, &t.Current.A}
	done := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			done = false
		}
	}
	t.active = !done
}

// Done reports whether no fade is running.
func (t *ColorTint) Done() bool {
	return !t.active
}
