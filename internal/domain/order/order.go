package order

import "time"

type PaymentMethod string

const (
	PaymentMethodPaystack     PaymentMethod = "paystack"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPaystack || m == PaymentMethodBankTransfer
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions is the legal edge set of the order lifecycle.
// Delivered and Cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

type Customization struct {
	CustomName string `json:"custom_name"`
	Font       string `json:"font"`
	Color      string `json:"color"`
}

func (c *Customization) Complete() bool {
	return c != nil && c.CustomName != "" && c.Font != "" && c.Color != ""
}

// LineItem snapshots product name and price at order time. Later product
// edits never change a historical line item.
type LineItem struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
}

type Shipping struct {
	Courier           string     `json:"courier"`
	TrackingNo        string     `json:"tracking_no"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	Note              string     `json:"note,omitempty"`
}

// Order carries a denormalized copy of the customer's name, email, address
// and phone so it survives customer deletion.
type Order struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	Phone         string        `json:"phone,omitempty"`
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        Status        `json:"status"`
	GatewayRef    string        `json:"gateway_ref,omitempty"`
	Shipping      *Shipping     `json:"shipping,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func New(id, customerID, customerName, email, address, phone string, items []LineItem, total float64, method PaymentMethod) (*Order, error) {
	if id == "" || customerID == "" || email == "" || address == "" {
		return nil, ErrMissingField
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	return &Order{
		ID:            id,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Email:         email,
		Address:       address,
		Phone:         phone,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: method,
		PaymentStatus: PaymentPending,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (o *Order) CanTransitionTo(next Status) bool {
	if next == o.Status {
		return true
	}
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the order along the lifecycle. A same-status update is
// a no-op so admins can resubmit a partial update safely.
func (o *Order) TransitionTo(next Status) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if !o.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

// MarkPaid is idempotent: re-applying the same reference to an already-paid
// order leaves it unchanged.
func (o *Order) MarkPaid(reference string) (changed bool) {
	if o.PaymentStatus == PaymentPaid {
		return false
	}
	o.PaymentStatus = PaymentPaid
	o.GatewayRef = reference
	return true
}
