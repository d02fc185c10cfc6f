package notify

import (
	"context"
	"encoding/json"
	"fmt"
)

// MessageTypeDonation tags queue messages carrying a donation recap.
const MessageTypeDonation = "donation_recap"

// Message is the SQS body consumed by the notification worker.
type Message struct {
	Type          string `json:"type"`
	Recap         Recap  `json:"recap"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Sender publishes a JSON body to a queue.
type Sender interface {
	Send(ctx context.Context, messageBody string, attributes map[string]string) error
}

// Queue hands confirmations to the worker instead of sending them inline.
type Queue struct {
	sender Sender
}

// NewQueue returns a Queue notifier.
func NewQueue(sender Sender) *Queue {
	return &Queue{sender: sender}
}

type correlationKey struct{}

// WithCorrelationID stores the request id so queued messages can be traced.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// NotifyDonation enqueues the recap.
func (q *Queue) NotifyDonation(ctx context.Context, r Recap) error {
	msg := Message{Type: MessageTypeDonation, Recap: r, CorrelationID: CorrelationID(ctx)}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	return q.sender.Send(ctx, string(body), map[string]string{
		"type":           msg.Type,
		"correlation_id": msg.CorrelationID,
	})
}
