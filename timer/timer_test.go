package timer

import (
	"math"
	"testing"
	"time"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys/systest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimer(t *testing.T) (*Subsystem, *systest.Fake) {
	t.Helper()
	lib := systest.New()
	ctx, err := sdl.Init(sdl.WithLibrary(lib))
	require.NoError(t, err)
	t.Cleanup(ctx.Quit)
	ts, err := Init(ctx)
	require.NoError(t, err)
	return ts, lib
}

func TestTicks(t *testing.T) {
	ts, lib := newTimer(t)
	lib.Advance(1500)

	ms, err := ts.Ticks()
	require.NoError(t, err)
	assert.Equal(t, uint32(1500), ms)

	d, err := ts.Elapsed()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestDelay(t *testing.T) {
	ts, lib := newTimer(t)
	require.NoError(t, ts.Delay(2500*time.Microsecond))
	assert.Equal(t, uint32(2), lib.Calls[len(lib.Calls)-1].Args[0])

	ms, err := ts.Ticks()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), ms)

	lib.Reset()
	require.NoError(t, ts.Delay(-time.Millisecond))
	require.NoError(t, ts.Delay(0))
	require.NoError(t, ts.Delay(999*time.Microsecond))
	assert.Zero(t, lib.Count("Delay"))

	require.NoError(t, ts.Delay(time.Duration(math.MaxUint32+5)*time.Millisecond))
	require.Equal(t, 1, lib.Count("Delay"))
	assert.Equal(t, uint32(math.MaxUint32), lib.Calls[len(lib.Calls)-1].Args[0])
}

func TestAfterQuit(t *testing.T) {
	ts, lib := newTimer(t)
	ts.Quit()
	lib.Reset()

	_, err := ts.Ticks()
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
	assert.ErrorIs(t, ts.Delay(time.Second), sdl.ErrSubsystemClosed)
	assert.Empty(t, lib.Calls)
}
