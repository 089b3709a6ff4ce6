package orders

import (
	"context"
	"fmt"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// StatusService applies admin-driven order updates: lifecycle status,
// payment status and shipping details, any subset per request.
type StatusService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher *notification.Dispatcher
	log        logger.Logger
}

func NewStatusService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	dispatcher *notification.Dispatcher,
	log logger.Logger,
) *StatusService {
	return &StatusService{
		orders:     orders,
		products:   products,
		dispatcher: dispatcher,
		log:        log,
	}
}

type UpdateCommand struct {
	OrderID       string
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
	Shipping      *order.Shipping
}

// Update loads the order, applies the supplied fields, persists, then
// queues the status notification. The ledger write commits regardless of
// notification delivery; a mail outage never fails the admin request.
func (s *StatusService) Update(ctx context.Context, cmd UpdateCommand) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", cmd.OrderID, err)
	}
	if o == nil {
		return nil, fmt.Errorf("%w: %s", order.ErrOrderNotFound, cmd.OrderID)
	}

	statusChanged := false
	if cmd.Status != nil && *cmd.Status != o.Status {
		if err := o.TransitionTo(*cmd.Status); err != nil {
			return nil, fmt.Errorf("%w: %s -> %s", err, o.Status, *cmd.Status)
		}
		statusChanged = true
	}

	if cmd.PaymentStatus != nil {
		if !cmd.PaymentStatus.Valid() {
			return nil, order.ErrInvalidPaymentStatus
		}
		o.PaymentStatus = *cmd.PaymentStatus
	}

	if cmd.Shipping != nil {
		o.Shipping = cmd.Shipping
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order %s: %w", o.ID, err)
	}

	if statusChanged && o.Status == order.StatusCancelled {
		s.restock(ctx, o)
	}

	if statusChanged {
		if msg, ok := notification.StatusUpdate(o); ok {
			s.dispatcher.DispatchBestEffort(ctx, msg)
		}
	}

	s.log.Info("order updated",
		logger.String("order_id", o.ID),
		logger.String("status", string(o.Status)),
		logger.String("payment_status", string(o.PaymentStatus)),
	)

	return o, nil
}

// restock compensates the checkout-time stock reservation when an order is
// cancelled. Failures are logged; the cancellation itself has committed.
func (s *StatusService) restock(ctx context.Context, o *order.Order) {
	for _, item := range o.Items {
		if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.log.Error("restock on cancellation failed",
				logger.String("order_id", o.ID),
				logger.String("product_id", item.ProductID),
				logger.Error(err),
			)
		}
	}
}
