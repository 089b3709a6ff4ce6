package notification

import (
	"fmt"
	"strings"

	"github.com/afeayo2/Econmmerce/internal/domain/order"
)

// OrderConfirmation builds the email sent once a payment is confirmed:
// itemized summary, total and shipping address.
func OrderConfirmation(o *order.Order) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Thank you for your order, %s!</h2>", o.CustomerName)
	fmt.Fprintf(&b, "<p>Your payment for order <b>%s</b> has been received.</p>", o.ID)
	b.WriteString("<table border=\"1\" cellpadding=\"6\"><tr><th>Item</th><th>Qty</th><th>Price</th></tr>")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", item.Name, item.Quantity, item.Price)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p><b>Total: %.2f</b></p>", o.TotalAmount)
	fmt.Fprintf(&b, "<p>Shipping address: %s</p>", o.Address)

	return Message{
		To:      o.Email,
		Subject: fmt.Sprintf("Order Confirmation - %s", o.ID),
		HTML:    b.String(),
		OrderID: o.ID,
	}
}

// StatusUpdate builds the status-specific email for an order lifecycle
// change. ok is false for statuses that do not notify the customer.
func StatusUpdate(o *order.Order) (msg Message, ok bool) {
	var subject string
	var b strings.Builder

	switch o.Status {
	case order.StatusConfirmed:
		subject = fmt.Sprintf("Your order %s is confirmed", o.ID)
		fmt.Fprintf(&b, "<h2>Order confirmed</h2><p>Hi %s, we have confirmed your order and are preparing it for shipment.</p>", o.CustomerName)
	case order.StatusShipped:
		subject = fmt.Sprintf("Your order %s has shipped", o.ID)
		fmt.Fprintf(&b, "<h2>Order shipped</h2><p>Hi %s, your order is on its way.</p>", o.CustomerName)
		if o.Shipping != nil {
			fmt.Fprintf(&b, "<p>Courier: %s<br>Tracking number: %s</p>", o.Shipping.Courier, o.Shipping.TrackingNo)
			if o.Shipping.EstimatedDelivery != nil {
				fmt.Fprintf(&b, "<p>Estimated delivery: %s</p>", o.Shipping.EstimatedDelivery.Format("2 Jan 2006"))
			}
		}
	case order.StatusDelivered:
		subject = fmt.Sprintf("Your order %s was delivered", o.ID)
		fmt.Fprintf(&b, "<h2>Order delivered</h2><p>Hi %s, your order has been delivered. We hope you love it!</p>", o.CustomerName)
	case order.StatusCancelled:
		subject = fmt.Sprintf("Your order %s was cancelled", o.ID)
		fmt.Fprintf(&b, "<h2>Order cancelled</h2><p>Hi %s, your order has been cancelled. If you already paid, a refund will follow.</p>", o.CustomerName)
	default:
		return Message{}, false
	}

	fmt.Fprintf(&b, "<p>Order total: %.2f</p>", o.TotalAmount)

	return Message{
		To:      o.Email,
		Subject: subject,
		HTML:    b.String(),
		OrderID: o.ID,
	}, true
}
