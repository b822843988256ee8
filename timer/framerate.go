package timer

import (
	"github.com/pkg/errors"
)

const (
	DefaultFramerate = 30
	MinFramerate     = 1
	MaxFramerate     = 200
)

// ErrInvalidFramerate is returned by SetFramerate for rates outside
// [MinFramerate, MaxFramerate].
var ErrInvalidFramerate = errors.New("timer: framerate out of range")

// FPSManager holds a loop to a constant frame rate. Call Delay once per
// frame; it sleeps until the frame's slot is due. When the loop falls
// behind the schedule is restarted from the current tick instead of
// trying to catch up.
type FPSManager struct {
	ts        *Subsystem
	count     uint32
	rate      uint32
	rateTicks float32
	baseTicks uint32
	lastTicks uint32
}

// NewFPSManager returns a manager running at DefaultFramerate.
func NewFPSManager(ts *Subsystem) *FPSManager {
	m := &FPSManager{ts: ts}
	m.reset(DefaultFramerate)
	return m
}

func (m *FPSManager) ticks() uint32 {
	t, err := m.ts.Ticks()
	if err != nil || t == 0 {
		// zero marks an unstarted schedule
		return 1
	}
	return t
}

func (m *FPSManager) reset(rate uint32) {
	m.count = 0
	m.rate = rate
	m.rateTicks = 1000 / float32(rate)
	m.baseTicks = m.ticks()
	m.lastTicks = m.baseTicks
}

// SetFramerate changes the target rate and restarts the frame count.
func (m *FPSManager) SetFramerate(rate uint32) error {
	if rate < MinFramerate || rate > MaxFramerate {
		return errors.Wrapf(ErrInvalidFramerate, "%d fps", rate)
	}
	m.count = 0
	m.rate = rate
	m.rateTicks = 1000 / float32(rate)
	return nil
}

func (m *FPSManager) Framerate() uint32 {
	return m.rate
}

// FrameCount returns the frames counted since the schedule last restarted.
func (m *FPSManager) FrameCount() uint32 {
	return m.count
}

// Delay waits for the next frame slot and returns the milliseconds that
// passed since the previous call.
func (m *FPSManager) Delay() (uint32, error) {
	if err := m.ts.Check(); err != nil {
		return 0, err
	}
	m.count++
	current := m.ticks()
	passed := current - m.lastTicks
	m.lastTicks = current
	target := m.baseTicks + uint32(float32(m.count)*m.rateTicks)

	if current <= target {
		m.ts.Context().Library().Delay(target - current)
	} else {
		m.count = 0
		m.baseTicks = m.ticks()
	}
	return passed, nil
}
