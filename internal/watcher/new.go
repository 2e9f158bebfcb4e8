package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/meetingmind/meetingmind/internal/logger"
)

// New creates a Watcher over inboxDir. maxConcurrent bounds how many
// recordings are handled at once; values below 1 fall back to 2.
func New(inboxDir string, handler Handler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	if err := fw.Add(inboxDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch inbox %s: %w", inboxDir, err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir:  inboxDir,
		handler:   handler,
		logger:    log,
		fw:        fw,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
