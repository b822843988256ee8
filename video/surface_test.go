package video

import (
	"testing"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceFlip(t *testing.T) {
	vs, lib := newVideo(t)
	s, err := vs.Window("flip", 10, 10).Build()
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	assert.Equal(t, 1, lib.Count("Flip"))
	assert.Equal(t, s.Raw(), lib.Calls[len(lib.Calls)-1].Args[0])
}

func TestSurfaceFlipFailure(t *testing.T) {
	vs, lib := newVideo(t)
	s, err := vs.Window("flip", 10, 10).Build()
	require.NoError(t, err)

	lib.Fail("Flip", sys.NoErrorCode, "DirectDraw surface lost")
	err = s.Flip()
	var serr *sdl.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "DirectDraw surface lost", serr.Message)
	assert.Contains(t, err.Error(), "flip failed")
}

func TestSurfaceFreeOnce(t *testing.T) {
	vs, lib := newVideo(t)
	s, err := vs.Window("free", 10, 10).Build()
	require.NoError(t, err)
	raw := s.Raw()

	s.Free()
	s.Free()
	assert.Equal(t, 1, lib.Count("FreeSurface"))
	assert.True(t, s.Freed())
	assert.Zero(t, s.Raw())
	assert.False(t, lib.Live(raw))

	lib.Reset()
	assert.ErrorIs(t, s.Flip(), ErrSurfaceFreed)
	assert.Empty(t, lib.Calls)
}

func TestSurfaceAfterVideoQuit(t *testing.T) {
	vs, lib := newVideo(t)
	s, err := vs.Window("gone", 10, 10).Build()
	require.NoError(t, err)

	vs.Quit()
	lib.Reset()
	assert.ErrorIs(t, s.Flip(), sdl.ErrSubsystemClosed)
	s.Free()
	assert.Empty(t, lib.Calls)
	assert.True(t, s.Freed())
}
