package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <recording>",
	Short: "Transcribe a recording and print the transcript without emailing",
	Long: `Transcribe one recording and print the transcript to stdout. The
transcript is cached in the object store, so a later run of the full pipeline
reuses it instead of transcribing again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Performance.RunTimeoutMinutes)*time.Minute)
		defer cancel()

		if err := ensureDirectories(); err != nil {
			return err
		}
		p, err := buildPipeline(ctx)
		if err != nil {
			return err
		}
		loc, err := p.resolveLocator(ctx, args[0])
		if err != nil {
			return err
		}

		rec, err := p.transcripts.Get(ctx, loc)
		if err != nil {
			return fmt.Errorf("transcribe %s: %w", loc.URI(), err)
		}

		log.Info(ctx, "Transcript for %s: %d segments", rec.VideoKey, len(rec.Segments))
		fmt.Println(rec.FullText)
		return nil
	},
}
