package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// Publisher pushes an encoded notification onto the queue.
type Publisher interface {
	PublishNotification(ctx context.Context, payload []byte) error
}

// Encoder converts a JSON message to its wire encoding.
type Encoder interface {
	EncodeJSON(jsonData []byte) ([]byte, error)
}

// Dispatcher enqueues notifications for the delivery worker. Callers that
// must not fail on notification problems (admin status updates, payment
// reconciliation) use DispatchBestEffort.
type Dispatcher struct {
	encoder   Encoder
	publisher Publisher
	log       logger.Logger
}

func NewDispatcher(encoder Encoder, publisher Publisher, log logger.Logger) *Dispatcher {
	return &Dispatcher{encoder: encoder, publisher: publisher, log: log}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	payload, err := d.encoder.EncodeJSON(data)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	if err := d.publisher.PublishNotification(ctx, payload); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// DispatchBestEffort logs a failed enqueue instead of returning it, so the
// ledger write that triggered the notification stays committed and the
// caller's response is unaffected.
func (d *Dispatcher) DispatchBestEffort(ctx context.Context, msg Message) {
	if err := d.Dispatch(ctx, msg); err != nil {
		d.log.Error("notification enqueue failed",
			logger.String("order_id", msg.OrderID),
			logger.String("to", msg.To),
			logger.Error(err),
		)
	}
}
