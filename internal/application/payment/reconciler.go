package payment

import (
	"context"
	"fmt"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/http/paystack"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// Verifier confirms with the provider that a payment reference completed.
type Verifier interface {
	Verify(ctx context.Context, reference string) (*paystack.Verification, error)
}

// Reconciler handles the gateway callback: it verifies the payment, marks
// the order paid exactly once and queues the confirmation email. The payer
// is always answered with a redirect; internal state never leaks to the
// browser.
type Reconciler struct {
	orders     repository.OrderRepository
	verifier   Verifier
	dispatcher *notification.Dispatcher
	redirect   config.RedirectConfig
	log        logger.Logger
}

func NewReconciler(
	orders repository.OrderRepository,
	verifier Verifier,
	dispatcher *notification.Dispatcher,
	redirect config.RedirectConfig,
	log logger.Logger,
) *Reconciler {
	return &Reconciler{
		orders:     orders,
		verifier:   verifier,
		dispatcher: dispatcher,
		redirect:   redirect,
		log:        log,
	}
}

// Outcome carries the redirect destination for the payer's browser.
type Outcome struct {
	RedirectURL string
}

const (
	reasonVerificationFailed = "verification_failed"
	reasonServerError        = "server_error"
)

// Reconcile may run concurrently for the same order (gateway retries plus
// manual polling); the already-paid guard keeps the write and the
// confirmation email idempotent.
func (r *Reconciler) Reconcile(ctx context.Context, orderID, reference string) Outcome {
	verification, err := r.verifier.Verify(ctx, reference)
	if err != nil {
		r.log.Error("payment verification errored",
			logger.String("order_id", orderID),
			logger.String("reference", reference),
			logger.Error(err),
		)
		return r.failure(reasonServerError)
	}

	if !verification.Succeeded() {
		r.log.Warn("payment verification failed",
			logger.String("order_id", orderID),
			logger.String("reference", reference),
			logger.String("status", verification.Status),
		)
		return r.failure(reasonVerificationFailed)
	}

	o, err := r.orders.FindByID(ctx, orderID)
	if err != nil {
		r.log.Error("order lookup failed", logger.String("order_id", orderID), logger.Error(err))
		return r.failure(reasonServerError)
	}

	if o == nil {
		// The payment is real even if we cannot find the order; log it for
		// manual reconciliation and still send the payer to the success
		// page rather than failing their redirect.
		r.log.Error("paid order not found", logger.String("order_id", orderID), logger.String("reference", reference))
		return r.success(orderID)
	}

	changed := o.MarkPaid(reference)
	if err := r.orders.Save(ctx, o); err != nil {
		r.log.Error("persisting paid order failed", logger.String("order_id", o.ID), logger.Error(err))
		return r.failure(reasonServerError)
	}

	if changed {
		r.dispatcher.DispatchBestEffort(ctx, notification.OrderConfirmation(o))
		r.log.Info("payment reconciled",
			logger.String("order_id", o.ID),
			logger.String("reference", reference),
		)
	}

	return r.success(o.ID)
}

func (r *Reconciler) success(orderID string) Outcome {
	return Outcome{RedirectURL: fmt.Sprintf("%s?orderId=%s", r.redirect.SuccessURL, orderID)}
}

func (r *Reconciler) failure(reason string) Outcome {
	return Outcome{RedirectURL: fmt.Sprintf("%s?reason=%s", r.redirect.FailureURL, reason)}
}
