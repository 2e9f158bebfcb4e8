package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/meetingmind/meetingmind/internal/audio"
	"github.com/meetingmind/meetingmind/internal/directory"
	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/mailer"
	"github.com/meetingmind/meetingmind/internal/roles"
	"github.com/meetingmind/meetingmind/internal/search"
	"github.com/meetingmind/meetingmind/internal/storage"
	"github.com/meetingmind/meetingmind/internal/transcriber"
	"github.com/meetingmind/meetingmind/internal/transcript"
	"github.com/meetingmind/meetingmind/internal/workflow"
	"github.com/meetingmind/meetingmind/pkg/executor"
)

// pipeline bundles the wired components a command needs
type pipeline struct {
	store       storage.Store
	transcripts transcript.Manager
	coordinator workflow.Coordinator
}

func buildPipeline(ctx context.Context) (*pipeline, error) {
	store, err := storage.New(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	tr, err := transcriber.New(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}

	ext := audio.New(executor.New(), log)
	transcripts := transcript.New(cfg, store, ext, tr, log)

	client := llm.New(cfg.Gemini, log)
	searcher := search.New(cfg.Serper, log)
	dir := directory.New(nil)
	sender := mailer.New(cfg.SMTP, log)
	composer := roles.NewComposer(client, sender, cfg.SMTP, cfg.Paths.Temp, log)

	coordinator := workflow.New(
		transcripts,
		roles.NewSummaryWorker(client, log),
		roles.NewActionsWorker(client, dir, log),
		roles.NewClarifyWorker(client, searcher, log),
		roles.NewGlossaryWorker(client, searcher, log),
		composer,
		log,
	)

	return &pipeline{store: store, transcripts: transcripts, coordinator: coordinator}, nil
}

// resolveLocator accepts either a gs:// URI or a local recording path. Local
// files are uploaded under the configured video prefix first.
func (p *pipeline) resolveLocator(ctx context.Context, arg string) (storage.Locator, error) {
	if strings.HasPrefix(arg, "gs://") {
		return storage.ParseLocator(arg)
	}

	if _, err := os.Stat(arg); err != nil {
		return storage.Locator{}, fmt.Errorf("recording %s: %w", arg, err)
	}

	loc := storage.Locator{
		Bucket: cfg.GCS.Bucket,
		Key:    path.Join(cfg.GCS.VideoPrefix, filepath.Base(arg)),
	}
	log.Info(ctx, "Uploading %s to %s", arg, loc.URI())
	if _, err := p.store.Upload(ctx, arg, loc.Bucket, loc.Key); err != nil {
		return storage.Locator{}, fmt.Errorf("upload recording: %w", err)
	}
	return loc, nil
}

func ensureDirectories() error {
	for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
