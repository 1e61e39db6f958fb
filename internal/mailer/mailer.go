package mailer

import "context"

// Message is a fully-formed outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer delivers messages. The notification worker only needs this;
// transport details stay behind the interface.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
