package roles

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/mailer"
	"github.com/meetingmind/meetingmind/internal/meeting"
	"github.com/meetingmind/meetingmind/internal/report"
)

// Composer turns the merged document into an outbound email and delivers
// it. It is the only worker permitted to invoke the send capability.
type Composer struct {
	client  llm.Client
	sender  mailer.Sender
	smtp    config.SMTPConfig
	tempDir string
	logger  logger.Logger
}

// NewComposer creates the composition worker
func NewComposer(client llm.Client, sender mailer.Sender, smtp config.SMTPConfig, tempDir string, log logger.Logger) *Composer {
	return &Composer{
		client:  client,
		sender:  sender,
		smtp:    smtp,
		tempDir: tempDir,
		logger:  log,
	}
}

type composedEmail struct {
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// Compose builds the outbound message from the document. A reasoning
// failure degrades to the deterministic HTML rendering; composition itself
// never aborts the run.
func (c *Composer) Compose(ctx context.Context, doc meeting.Document, cc, bcc []string) mailer.Message {
	subject, body := c.renderEmail(ctx, doc)

	msg := mailer.Message{
		Subject:  subject,
		HTMLBody: body,
		To:       append([]string{}, c.smtp.FixedRecipients...),
		CC:       append([]string{}, cc...),
		BCC:      append([]string{}, bcc...),
	}

	docxPath := filepath.Join(c.tempDir, fmt.Sprintf("meeting-recap-%s.docx", time.Now().Format("20060102-150405")))
	if err := report.WriteDocx(doc, docxPath); err != nil {
		c.logger.Warn(ctx, "Failed to render docx attachment, sending without it: %v", err)
	} else {
		msg.Attachments = append(msg.Attachments, docxPath)
	}

	return msg
}

// Send delivers the message with a bounded retry. The caller owns the
// single-fire guard; a successful return means exactly one delivery.
func (c *Composer) Send(ctx context.Context, msg mailer.Message) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.sender.Send(ctx, msg); err == nil {
			return nil
		} else {
			lastErr = err
			c.logger.Warn(ctx, "Send attempt %d/%d failed: %v", attempt, maxAttempts, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("send budget exhausted: %w", lastErr)
}

func (c *Composer) renderEmail(ctx context.Context, doc meeting.Document) (subject, body string) {
	prompt := fmt.Sprintf(composePrompt, report.RenderMarkdown(doc))

	var composed composedEmail
	if err := generateInto(ctx, c.client, c.logger, prompt, &composed); err != nil {
		c.logger.Warn(ctx, "Email composition degraded to plain rendering: %v", err)
		return fallbackSubject(doc), report.RenderHTML(doc)
	}
	if composed.Subject == "" || composed.HTMLBody == "" {
		return fallbackSubject(doc), report.RenderHTML(doc)
	}

	return composed.Subject, composed.HTMLBody
}

func fallbackSubject(doc meeting.Document) string {
	if doc.Title != "" {
		return "Meeting Recap: " + doc.Title
	}
	return "Meeting Recap"
}
