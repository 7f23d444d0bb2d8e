package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(2)
	close(done)
}

func TestGoroutineChecker_WaitsForTimers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		time.AfterFunc(5*time.Millisecond, wg.Done)
		wg.Wait()
	})
}

func TestWaitForGoroutines(t *testing.T) {
	base := runtime.NumGoroutine()
	stop := make(chan struct{})
	for i := 0; i < 3; i++ {
		go func() {
			<-stop
		}()
	}
	close(stop)
	WaitForGoroutines(t, base, time.Second)
}
