package autogen

import (
	"sync"
	"sync/atomic"
)

// objectiveLocks serializes generation per objective. Two concurrent
// completion requests (or a completion racing a manual generate call)
// must not both pass the "should I generate" check and create two sprints
// with the same day number. This is the engine's one hard mutual-exclusion
// requirement.
type objectiveLocks struct {
	mu    sync.Mutex
	locks map[string]*objectiveLock
}

type objectiveLock struct {
	mu sync.Mutex
	// generating is read by status queries without taking mu, so it is
	// atomic rather than guarded by the lock it describes.
	generating atomic.Bool
}

func newObjectiveLocks() *objectiveLocks {
	return &objectiveLocks{locks: make(map[string]*objectiveLock)}
}

func (l *objectiveLocks) get(objectiveID string) *objectiveLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[objectiveID]
	if !ok {
		lock = &objectiveLock{}
		l.locks[objectiveID] = lock
	}
	return lock
}

// tryAcquire attempts to take the generation lock without blocking.
// Returns false when generation is already in flight for the objective.
func (l *objectiveLocks) tryAcquire(objectiveID string) (*objectiveLock, bool) {
	lock := l.get(objectiveID)
	if !lock.mu.TryLock() {
		return nil, false
	}
	lock.generating.Store(true)
	return lock, true
}

func (l *objectiveLocks) release(lock *objectiveLock) {
	lock.generating.Store(false)
	lock.mu.Unlock()
}

// isGenerating reports whether generation is in flight for the objective.
func (l *objectiveLocks) isGenerating(objectiveID string) bool {
	return l.get(objectiveID).generating.Load()
}
