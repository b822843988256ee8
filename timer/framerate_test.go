package timer

import (
	"testing"

	"github.com/elliotmr/sdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramerateDefaults(t *testing.T) {
	ts, _ := newTimer(t)
	m := NewFPSManager(ts)
	assert.Equal(t, uint32(DefaultFramerate), m.Framerate())
	assert.Zero(t, m.FrameCount())
}

func TestSetFramerate(t *testing.T) {
	ts, _ := newTimer(t)
	m := NewFPSManager(ts)

	for _, rate := range []uint32{0, 201, 1000} {
		assert.ErrorIs(t, m.SetFramerate(rate), ErrInvalidFramerate, "rate %d", rate)
	}
	assert.Equal(t, uint32(DefaultFramerate), m.Framerate())

	require.NoError(t, m.SetFramerate(MinFramerate))
	require.NoError(t, m.SetFramerate(MaxFramerate))
	assert.Equal(t, uint32(MaxFramerate), m.Framerate())
}

func TestFramerateDelay(t *testing.T) {
	ts, lib := newTimer(t)
	lib.Advance(1)
	m := NewFPSManager(ts)
	require.NoError(t, m.SetFramerate(100))

	passed, err := m.Delay()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), passed)

	passed, err = m.Delay()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), passed)
	assert.Equal(t, uint32(2), m.FrameCount())
	assert.Equal(t, 2, lib.Count("Delay"))

	ms, err := ts.Ticks()
	require.NoError(t, err)
	assert.Equal(t, uint32(21), ms)

	// falling behind restarts the schedule without sleeping
	lib.Advance(100)
	passed, err = m.Delay()
	require.NoError(t, err)
	assert.Equal(t, uint32(110), passed)
	assert.Zero(t, m.FrameCount())
	assert.Equal(t, 2, lib.Count("Delay"))

	_, err = m.Delay()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), m.FrameCount())
	assert.Equal(t, 3, lib.Count("Delay"))
}

func TestFramerateAfterQuit(t *testing.T) {
	ts, _ := newTimer(t)
	m := NewFPSManager(ts)
	ts.Quit()
	_, err := m.Delay()
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
}
