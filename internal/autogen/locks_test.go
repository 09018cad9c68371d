package autogen

import (
	"sync"
	"testing"
)

func TestObjectiveLocks_ConcurrentStatusReads(t *testing.T) {
	locks := newObjectiveLocks()
	const objectiveID = "obj-1"

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			lock, ok := locks.tryAcquire(objectiveID)
			if !ok {
				continue
			}
			if !locks.isGenerating(objectiveID) {
				t.Error("held lock not reported as generating")
				locks.release(lock)
				return
			}
			locks.release(lock)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			locks.isGenerating(objectiveID)
		}
	}()

	wg.Wait()

	if locks.isGenerating(objectiveID) {
		t.Error("released lock still reported as generating")
	}
}

func TestObjectiveLocks_IndependentObjectives(t *testing.T) {
	locks := newObjectiveLocks()

	lockA, ok := locks.tryAcquire("obj-a")
	if !ok {
		t.Fatal("acquire obj-a failed")
	}
	defer locks.release(lockA)

	if _, ok := locks.tryAcquire("obj-a"); ok {
		t.Error("second acquire of obj-a should fail while held")
	}
	if locks.isGenerating("obj-b") {
		t.Error("obj-b reported generating without any acquisition")
	}
	lockB, ok := locks.tryAcquire("obj-b")
	if !ok {
		t.Error("acquire obj-b should succeed while obj-a is held")
	}
	locks.release(lockB)
}
