package event

import (
	"testing"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/elliotmr/sdl/sys/systest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*sdl.Context, *systest.Fake) {
	t.Helper()
	lib := systest.New()
	ctx, err := sdl.Init(sdl.WithLibrary(lib))
	require.NoError(t, err)
	t.Cleanup(ctx.Quit)
	return ctx, lib
}

func TestInit(t *testing.T) {
	ctx, lib := newContext(t)
	es, err := Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, sdl.EventThread, es.Kind())
	assert.Equal(t, uint32(sys.InitEventThread), lib.Initialized())

	es.Quit()
	assert.Equal(t, uint32(0), lib.Initialized())
}

func TestPushPoll(t *testing.T) {
	ctx, lib := newContext(t)

	ev, ok := Poll(ctx)
	assert.False(t, ok)
	assert.Nil(t, ev)

	require.NoError(t, Push(ctx, Resize{W: 640, H: 480}))
	require.NoError(t, Push(ctx, Quit{}))
	assert.Len(t, lib.Events, 2)

	ev, ok = Poll(ctx)
	require.True(t, ok)
	assert.Equal(t, Resize{W: 640, H: 480}, ev)
	ev, ok = Poll(ctx)
	require.True(t, ok)
	assert.Equal(t, Quit{}, ev)
	_, ok = Poll(ctx)
	assert.False(t, ok)
}

func TestPushNotEncodable(t *testing.T) {
	ctx, lib := newContext(t)
	lib.Reset()

	err := Push(ctx, Unknown{Type: 99})
	assert.ErrorIs(t, err, ErrNotEncodable)
	assert.Empty(t, lib.Calls)
}

func TestPushFailure(t *testing.T) {
	ctx, lib := newContext(t)
	lib.Fail("PushEvent", sys.NoErrorCode, "Event queue is full")

	err := Push(ctx, Quit{})
	var serr *sdl.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Event queue is full", serr.Message)
}

func TestWait(t *testing.T) {
	ctx, lib := newContext(t)
	lib.Events = append(lib.Events, sys.Event{0: sys.KeyDown, 2: sys.Pressed})

	ev, err := Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, Keyboard{State: Down}, ev)

	_, err = Wait(ctx)
	var serr *sdl.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, sdl.CodeOther, serr.Code)
}

func TestClosedContext(t *testing.T) {
	ctx, lib := newContext(t)
	lib.Events = append(lib.Events, sys.Event{0: sys.QuitEvent})
	ctx.Quit()
	lib.Reset()

	_, ok := Poll(ctx)
	assert.False(t, ok)
	_, err := Wait(ctx)
	assert.ErrorIs(t, err, sdl.ErrContextClosed)
	assert.ErrorIs(t, Push(ctx, Quit{}), sdl.ErrContextClosed)
	assert.Empty(t, lib.Calls)
}
