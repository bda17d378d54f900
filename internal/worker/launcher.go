package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// Launcher runs a background task at most once per process
type Launcher struct {
	once    sync.Once
	running atomic.Bool
	done    chan struct{}
}

// NewLauncher creates a new launcher
func NewLauncher() *Launcher {
	return &Launcher{done: make(chan struct{})}
}

// StartIfNotRunning starts task in a new goroutine on the first call and
// reports whether this call started it. Later calls are no-ops.
func (l *Launcher) StartIfNotRunning(ctx context.Context, task func(context.Context)) bool {
	started := false
	l.once.Do(func() {
		started = true
		l.running.Store(true)
		go func() {
			defer close(l.done)
			defer l.running.Store(false)
			task(ctx)
		}()
	})
	return started
}

// Running reports whether the task is currently executing
func (l *Launcher) Running() bool {
	return l.running.Load()
}

// Done is closed when a started task returns
func (l *Launcher) Done() <-chan struct{} {
	return l.done
}
