package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetingmind/meetingmind/internal/workflow"
)

var (
	runCC  []string
	runBCC []string
)

var runCmd = &cobra.Command{
	Use:   "run <recording>",
	Short: "Process one recording end to end and email the recap",
	Long: `Process one meeting recording end to end: transcribe it, analyze the
transcript, and email the recap to the configured recipients.

The recording is either a gs:// URI of an already uploaded video or a local
file path, which is uploaded under the configured video prefix first.`,
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

		outcome := p.coordinator.Run(ctx, workflow.Request{Locator: loc, CC: runCC, BCC: runBCC})
		switch outcome.Status {
		case workflow.StatusSent:
			fmt.Printf("Run %s: recap sent\n", outcome.RunID)
		case workflow.StatusDegradedButSent:
			fmt.Printf("Run %s: recap sent with empty sections: %v\n", outcome.RunID, outcome.EmptyKinds)
		case workflow.StatusFailed:
			return fmt.Errorf("run %s failed: %w", outcome.RunID, outcome.Err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVar(&runCC, "cc", nil, "extra CC recipients")
	runCmd.Flags().StringSliceVar(&runBCC, "bcc", nil, "extra BCC recipients")
}
