package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countLocks(t *testing.T) *int {
	t.Helper()
	locked := 0
	oldLock, oldUnlock := lockThread, unlockThread
	lockThread = func() { locked++ }
	unlockThread = func() { locked-- }
	t.Cleanup(func() { lockThread, unlockThread = oldLock, oldUnlock })
	return &locked
}

func TestInitLockedSuccess(t *testing.T) {
	locked := countLocks(t)
	assert.Equal(t, 0, initLocked(func() int { return 0 }))
	assert.Equal(t, 1, *locked)
}

func TestInitLockedFailure(t *testing.T) {
	locked := countLocks(t)
	assert.Equal(t, -1, initLocked(func() int { return -1 }))
	assert.Equal(t, 0, *locked)
}
