package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meetingmind/meetingmind/internal/watcher"
	"github.com/meetingmind/meetingmind/internal/workflow"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox directory and process recordings as they arrive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if err := ensureDirectories(); err != nil {
			return err
		}
		p, err := buildPipeline(ctx)
		if err != nil {
			return err
		}

		handle := func(ctx context.Context, path string) error {
			loc, err := p.resolveLocator(ctx, path)
			if err != nil {
				return err
			}
			outcome := p.coordinator.Run(ctx, workflow.Request{Locator: loc})
			if outcome.Status == workflow.StatusFailed {
				return outcome.Err
			}
			log.Info(ctx, "Recording %s finished: %s", path, outcome.Status)
			return nil
		}

		w, err := watcher.New(cfg.Paths.Inbox, handle, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		log.Info(ctx, "Drop recordings into %s to process them", cfg.Paths.Inbox)

		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
			cancel()
			return nil
		case err := <-errChan:
			return err
		}
	},
}
