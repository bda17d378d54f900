package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLauncher_StartsOnce(t *testing.T) {
	l := NewLauncher()
	var runs atomic.Int32
	release := make(chan struct{})

	task := func(ctx context.Context) {
		runs.Add(1)
		<-release
	}

	var wg sync.WaitGroup
	var started atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.StartIfNotRunning(context.Background(), task) {
				started.Add(1)
			}
		}()
	}
	wg.Wait()

	if started.Load() != 1 {
		t.Errorf("StartIfNotRunning() returned true %d times, want 1", started.Load())
	}
	if !l.Running() {
		t.Error("Running() = false while the task is blocked")
	}

	close(release)
	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}

	if runs.Load() != 1 {
		t.Errorf("task ran %d times, want 1", runs.Load())
	}
	if l.Running() {
		t.Error("Running() = true after the task returned")
	}
	if l.StartIfNotRunning(context.Background(), task) {
		t.Error("StartIfNotRunning() restarted a finished task")
	}
}
