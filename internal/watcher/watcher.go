// Package watcher turns a local directory into an upload inbox: recordings
// dropped into it are picked up and handed to the meeting pipeline.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meetingmind/meetingmind/internal/logger"
)

// settleDelay gives the producing process time to finish writing before the
// recording is handled
const settleDelay = 500 * time.Millisecond

var recordingExts = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".mkv":  {},
	".webm": {},
	".m4v":  {},
}

type implWatcher struct {
	inboxDir  string
	handler   Handler
	logger    logger.Logger
	fw        *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start blocks, dispatching each new recording to the handler until the
// context is cancelled. In-flight handlers are drained before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching inbox %s (max concurrent: %d)", w.inboxDir, cap(w.semaphore))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Inbox watcher draining in-flight recordings")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed")
			}
			if !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !isRecording(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-recording file %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, path); err != nil {
						w.logger.Error(ctx, "Recording %s failed: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed")
			}
			w.logger.Error(ctx, "Inbox watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher
func (w *implWatcher) Stop() error {
	return w.fw.Close()
}

func isRecording(path string) bool {
	_, ok := recordingExts[strings.ToLower(filepath.Ext(path))]
	return ok
}
