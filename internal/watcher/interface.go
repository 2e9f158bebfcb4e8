package watcher

import "context"

// Watcher monitors the local inbox directory for newly dropped recordings
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler receives the path of a settled recording file. Each invocation
// runs on its own goroutine, bounded by the watcher's concurrency limit.
type Handler func(ctx context.Context, path string) error
