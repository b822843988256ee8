package sys

import "runtime"

// swapped in tests
var (
	lockThread   = runtime.LockOSThread
	unlockThread = runtime.UnlockOSThread
)

// initLocked pins the caller to its OS thread, since SDL 1.2 expects every
// video call to come from the initializing thread. The pin is dropped again
// when init fails, as no Quit will follow.
func initLocked(init func() int) int {
	lockThread()
	status := init()
	if status != 0 {
		unlockThread()
	}
	return status
}
