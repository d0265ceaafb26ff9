package mail

import (
	"context"
	"log"
)

// Message is a single outbound notification email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender dispatches notification emails. Implementations own the from
// address and transport details.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the process log instead of delivering them.
// Used in development when no mail transport is configured.
type LogSender struct{}

// Send logs the message.
func (LogSender) Send(ctx context.Context, msg Message) error {
	log.Printf("mail (not delivered): to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
