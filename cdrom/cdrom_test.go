package cdrom

import (
	"testing"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/sys"
	"github.com/elliotmr/sdl/sys/systest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCDROM(t *testing.T) (*Subsystem, *systest.Fake) {
	t.Helper()
	lib := systest.New()
	ctx, err := sdl.Init(sdl.WithLibrary(lib))
	require.NoError(t, err)
	t.Cleanup(ctx.Quit)
	cs, err := Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(sys.InitCDROM), lib.Initialized())
	return cs, lib
}

func TestDrives(t *testing.T) {
	cs, lib := newCDROM(t)
	lib.Drives = []string{"/dev/cdrom", "/dev/sr1"}

	n, err := cs.NumDrives()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	name, err := cs.Name(0)
	require.NoError(t, err)
	assert.Equal(t, "/dev/cdrom", name)
}

func TestInvalidDrive(t *testing.T) {
	cs, _ := newCDROM(t)
	_, err := cs.Name(3)
	var serr *sdl.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Invalid CD-ROM drive index", serr.Message)
}

func TestNumDrivesFailure(t *testing.T) {
	cs, lib := newCDROM(t)
	lib.Fail("CDNumDrives", sys.NoErrorCode, "CD-ROM subsystem not initialized")
	_, err := cs.NumDrives()
	assert.Error(t, err)
}

func TestAfterQuit(t *testing.T) {
	cs, lib := newCDROM(t)
	cs.Quit()
	lib.Reset()
	_, err := cs.NumDrives()
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
	_, err = cs.Name(0)
	assert.ErrorIs(t, err, sdl.ErrSubsystemClosed)
	assert.Empty(t, lib.Calls)
}
