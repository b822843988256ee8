package joystick

import (
	"testing"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/elliotmr/sdl/sys/systest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJoystick(t *testing.T) (*Subsystem, *systest.Fake) {
	t.Helper()
	lib := systest.New()
	ctx, err := sdl.Init(sdl.WithLibrary(lib))
	require.NoError(t, err)
	t.Cleanup(ctx.Quit)
	js, err := Init(ctx)
	require.NoError(t, err)
	return js, lib
}

func TestDevices(t *testing.T) {
	js, lib := newJoystick(t)
	lib.Joysticks = []string{"Gamepad F310", "Flight Stick"}

	n, err := js.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	name, err := js.Name(1)
	require.NoError(t, err)
	assert.Equal(t, "Flight Stick", name)

	names, err := js.Names()
	require.NoError(t, err)
	assert.Equal(t, lib.Joysticks, names)

	lib.Reset()
	_, err = js.Name(2)
	assert.Error(t, err)
	_, err = js.Name(-1)
	assert.Error(t, err)
	assert.Zero(t, lib.Count("JoystickName"))
}

func TestEventPolling(t *testing.T) {
	js, lib := newJoystick(t)

	on, err := js.EventPolling()
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, js.SetEventPolling(true))
	on, err = js.EventPolling()
	require.NoError(t, err)
	assert.True(t, on)

	lib.Fail("JoystickEventState", sys.NoErrorCode, "Joystick subsystem not initialized")
	err = js.SetEventPolling(false)
	var serr *sdl.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Joystick subsystem not initialized", serr.Message)
}

func TestAfterQuit(t *testing.T) {
	js, lib := newJoystick(t)
	js.Quit()
	lib.Reset()

	_, err := js.Count()
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
	_, err = js.Names()
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
	assert.ErrorIs(t, js.SetEventPolling(true), sdl.ErrSubsystemClosed)
	assert.Empty(t, lib.Calls)
}
