package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTriggerFiresOnce(t *testing.T) {
	var tr Trigger

	assert.False(t, tr.Observe(false))
	assert.False(t, tr.Fired())

	assert.True(t, tr.Observe(true))
	assert.True(t, tr.Fired())

	// Never replays, even if the element leaves and re-enters the viewport.
	assert.False(t, tr.Observe(false))
	assert.False(t, tr.Observe(true))
	assert.True(t, tr.Fired())
}

func TestStagger(t *testing.T) {
	assert.Equal(t, time.Duration(0), Stagger(-1))
	assert.Equal(t, time.Duration(0), Stagger(0))
	assert.Equal(t, 50*time.Millisecond, Stagger(1))
	assert.Equal(t, 200*time.Millisecond, Stagger(4))
}

func TestDelayAttr(t *testing.T) {
	assert.Equal(t, "0", DelayAttr(0))
	assert.Equal(t, "150", DelayAttr(3))
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 450*time.Millisecond, cfg.Duration)
	assert.Equal(t, 10, cfg.Offset)
	assert.Equal(t, "ease-out", cfg.Easing)
	assert.Equal(t, "-10% 0px -10% 0px", cfg.Margin)
}
