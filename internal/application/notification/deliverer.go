package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// Sink delivers one message and returns a delivery id. It must surface
// failures rather than swallow them.
type Sink interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Decoder converts a wire payload back to JSON.
type Decoder interface {
	DecodeJSON(binary []byte) ([]byte, error)
}

// Deliverer consumes queued notifications and pushes them through the sink
// with bounded retries.
type Deliverer struct {
	decoder  Decoder
	sink     Sink
	log      logger.Logger
	attempts int
	backoff  time.Duration
}

func NewDeliverer(decoder Decoder, sink Sink, log logger.Logger) *Deliverer {
	return &Deliverer{
		decoder:  decoder,
		sink:     sink,
		log:      log,
		attempts: 3,
		backoff:  2 * time.Second,
	}
}

// Handle decodes and delivers one queued payload. A payload that cannot be
// decoded is dropped with an error log; retrying it would never succeed.
func (d *Deliverer) Handle(ctx context.Context, payload []byte) error {
	data, err := d.decoder.DecodeJSON(payload)
	if err != nil {
		d.log.Error("dropping undecodable notification", logger.Error(err))
		return nil
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		d.log.Error("dropping malformed notification", logger.Error(err))
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		deliveryID, err := d.sink.Send(ctx, msg)
		if err == nil {
			d.log.Info("notification delivered",
				logger.String("order_id", msg.OrderID),
				logger.String("to", msg.To),
				logger.String("delivery_id", deliveryID),
			)
			return nil
		}

		lastErr = err
		d.log.Warn("notification delivery failed",
			logger.String("order_id", msg.OrderID),
			logger.Int("attempt", attempt),
			logger.Error(err),
		)

		if attempt < d.attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.backoff * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("deliver notification for order %s: %w", msg.OrderID, lastErr)
}
