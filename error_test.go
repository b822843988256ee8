package sdl

import (
	"testing"

	"github.com/elliotmr/sdl/sys"
	"github.com/elliotmr/sdl/sys/systest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetErrorCodes(t *testing.T) {
	tests := []struct {
		code     int
		text     string
		want     ErrorCode
		sentinel error
	}{
		{sys.ENoMem, "Out of memory", CodeNoMem, ErrNoMem},
		{sys.EFRead, "Error reading from datastream", CodeRead, ErrRead},
		{sys.EFWrite, "Error writing to datastream", CodeWrite, ErrWrite},
		{sys.EFSeek, "Error seeking in datastream", CodeSeek, ErrSeek},
		{sys.Unsupported, "Unknown SDL error", CodeUnsupported, ErrUnsupported},
	}
	for _, tt := range tests {
		lib := systest.New()
		lib.Fail("Flip", tt.code, tt.text)
		lib.Flip(0)

		err := GetError(lib)
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, tt.want, serr.Code)
		assert.Equal(t, tt.text, serr.Message)
		assert.ErrorIs(t, err, tt.sentinel)
		assert.ErrorIs(t, errors.Wrap(err, "flip"), tt.sentinel)
	}
}

func TestGetErrorOther(t *testing.T) {
	for _, code := range []int{sys.NoErrorCode, sys.LastError, 42} {
		lib := systest.New()
		lib.Fail("Init", code, "Couldn't open X11 display")
		lib.Init(0)

		err := GetError(lib)
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, CodeOther, serr.Code)
		assert.Equal(t, "sdl: Couldn't open X11 display", err.Error())
		assert.NotErrorIs(t, err, ErrUnsupported)
		assert.NotErrorIs(t, err, &Error{Code: CodeOther, Message: "Couldn't open X11 display"})
	}
}

func TestGetErrorIsOverwritten(t *testing.T) {
	lib := systest.New()
	lib.Fail("InitSubSystem", sys.NoErrorCode, "CD-ROM not supported")
	lib.InitSubSystem(sys.InitCDROM)
	lib.GetTicks()

	err := GetError(lib)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Empty(t, serr.Message)
}

func TestClearError(t *testing.T) {
	lib := systest.New()
	lib.Fail("Init", sys.ENoMem, "Out of memory")
	lib.Init(0)
	ClearError(lib)
	assert.Equal(t, 1, lib.Count("ClearError"))

	var serr *Error
	require.ErrorAs(t, GetError(lib), &serr)
	assert.Equal(t, CodeOther, serr.Code)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "sdl: error code: out of memory", ErrNoMem.Error())
	assert.Equal(t, "ErrorCode(9)", ErrorCode(9).String())
}
