package mailer

import "context"

// Message is the outbound email built by the composition stage. To carries
// the fixed recipient set from configuration; CC and BCC are run-supplied.
type Message struct {
	Subject     string
	HTMLBody    string
	To          []string
	CC          []string
	BCC         []string
	Attachments []string
}

// Sender delivers one message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
