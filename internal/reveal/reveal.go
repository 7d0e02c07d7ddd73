// Package reveal carries the fade-in timing rules for content entering the
// viewport. The server emits the numbers as data attributes; the actual
// transition runs in static/js/reveal.js. Presentation only — nothing here
// touches content correctness.
package reveal

import (
	"fmt"
	"time"
)

// Config is the shared transition timing. Values mirror the site's fade-in:
// slide up from a 10px offset over 450ms with an ease-out curve, triggered
// when the element crosses a viewport margin of -10%.
type Config struct {
	Duration time.Duration
	Offset   int
	Easing   string
	Margin   string
}

// Default returns the site-wide reveal timing.
func Default() Config {
	return Config{
		Duration: 450 * time.Millisecond,
		Offset:   10,
		Easing:   "ease-out",
		Margin:   "-10% 0px -10% 0px",
	}
}

// StaggerStep is the per-index delay increment for sibling elements.
const StaggerStep = 50 * time.Millisecond

// Stagger returns the reveal delay for the index-th sibling in a list.
// Negative indexes get no delay.
func Stagger(index int) time.Duration {
	if index <= 0 {
		return 0
	}
	return time.Duration(index) * StaggerStep
}

// DelayAttr formats a stagger delay for a data attribute, in milliseconds.
func DelayAttr(index int) string {
	return fmt.Sprintf("%d", Stagger(index).Milliseconds())
}

// Trigger is the one-shot latch behind the reveal: it fires the first time
// its element intersects the viewport and never again, no matter how the
// element scrolls afterwards.
type Trigger struct {
	fired bool
}

// Observe feeds one intersection observation. It returns true exactly once:
// on the first observation where the element intersects.
func (t *Trigger) Observe(intersecting bool) bool {
	if t.fired || !intersecting {
		return false
	}
	t.fired = true
	return true
}

// Fired reports whether the latch has gone off.
func (t *Trigger) Fired() bool { return t.fired }
